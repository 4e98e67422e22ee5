package disasm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/program"
)

const (
	dataNaming  = "_data_%03x"
	funcNaming  = "_func_%03x"
	labelNaming = "_label_%03x"
)

// processJumpDestinations names all branch destinations and updates the
// referencing instructions with the generated label name.
func (dis *Disasm) processJumpDestinations() {
	branchDestinations := make([]data.Address, 0, len(dis.branchDestinations))
	for dest := range dis.branchDestinations {
		branchDestinations = append(branchDestinations, dest)
	}
	slices.Sort(branchDestinations)

	for _, address := range branchDestinations {
		offsetInfo := dis.app.OffsetInfo(address)

		name := offsetInfo.Label
		if name == "" {
			switch {
			case offsetInfo.IsType(program.CallDestination):
				name = fmt.Sprintf(funcNaming, address.Uint16())
			case offsetInfo.IsType(program.JumpDestination):
				name = fmt.Sprintf(labelNaming, address.Uint16())
			default:
				name = fmt.Sprintf(dataNaming, address.Uint16())
			}
			offsetInfo.Label = name
		}

		for _, from := range dis.branchFrom[address] {
			fromInfo := dis.app.OffsetInfo(from)
			if !fromInfo.IsType(program.CodeOffset) || len(fromInfo.Data) != instruction.Size {
				continue
			}
			ins := instruction.Decode(instruction.Word(data.Byte(fromInfo.Data[0]), data.Byte(fromInfo.Data[1])))
			fromInfo.BranchingTo = name
			fromInfo.Code = strings.Replace(ins.String(), ins.Address.String(), name, 1)
		}
	}
}

// handleJumpIntoInstruction converts the instruction that has a jump destination
// inside its second opcode byte into data.
func (dis *Disasm) handleJumpIntoInstruction(address data.Address) {
	start := address.Offset(data.AddressMask) // previous address
	offsetInfo := dis.app.OffsetInfo(start)
	current := dis.app.OffsetInfo(address)
	if offsetInfo == nil || len(offsetInfo.Data) != instruction.Size {
		return
	}

	offsetInfo.Comment = "branch into instruction detected: " + offsetInfo.Code
	offsetInfo.Code = ""
	offsetInfo.ClearType(program.CodeOffset)
	offsetInfo.SetType(program.CodeAsData | program.DataOffset)

	current.Data = offsetInfo.Data[1:]
	offsetInfo.Data = offsetInfo.Data[:1]
	current.ClearType(program.CodeOffset)
	current.SetType(program.DataOffset)
}
