// Package disasm implements a control flow tracing disassembler for CHIP-8 programs.
package disasm

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/program"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const startLabel = "Start"

// Disasm implements a disassembler.
type Disasm struct {
	logger *log.Logger
	memory *memory.Memory
	app    *program.Program

	pc data.Address // address of the instruction being processed

	branchDestinations set.Set[data.Address]          // set of all addresses that are branched to or referenced
	branchFrom         map[data.Address][]data.Address // instructions referencing a destination

	offsetsToParse      []data.Address
	offsetsToParseAdded set.Set[data.Address]
	offsetsParsed       set.Set[data.Address]
}

// New creates a new disassembler for the ROM that gets loaded at the start address.
func New(logger *log.Logger, rom []byte, start data.Address) (*Disasm, error) {
	mem := memory.New()
	if err := mem.Load(start, rom); err != nil {
		return nil, fmt.Errorf("mapping rom: %w", err)
	}

	app := program.New(start, len(rom))
	for i, b := range rom {
		app.Offsets[i].Data = []byte{b}
		app.Offsets[i].SetType(program.DataOffset)
	}
	app.Checksums.Overall = crc32.ChecksumIEEE(rom)

	dis := &Disasm{
		logger:              logger,
		memory:              mem,
		app:                 app,
		branchDestinations:  set.New[data.Address](),
		branchFrom:          map[data.Address][]data.Address{},
		offsetsToParseAdded: set.New[data.Address](),
		offsetsParsed:       set.New[data.Address](),
	}

	if offsetInfo := app.OffsetInfo(start); offsetInfo != nil {
		offsetInfo.Label = startLabel
		dis.addAddressToParse(start, start, program.UnknownOffset)
	}
	return dis, nil
}

// Process traces all code reachable from the start address and returns the
// program with labeled code and data offsets.
func (dis *Disasm) Process(ctx context.Context) (*program.Program, error) {
	if err := dis.followExecutionFlow(ctx); err != nil {
		return nil, err
	}
	dis.processJumpDestinations()
	return dis.app, nil
}

// ProgramCounter returns the address of the instruction being processed.
func (dis *Disasm) ProgramCounter() data.Address {
	return dis.pc
}

// followExecutionFlow parses all queued addresses until no new code
// addresses are found.
func (dis *Disasm) followExecutionFlow(ctx context.Context) error {
	for len(dis.offsetsToParse) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("following execution flow: %w", err)
		}

		address := dis.offsetsToParse[0]
		dis.offsetsToParse = dis.offsetsToParse[1:]
		if dis.offsetsParsed.Contains(address) {
			continue
		}
		dis.offsetsParsed.Add(address)

		dis.pc = address
		dis.processOffset(address)
	}
	return nil
}

// processOffset decodes the instruction at the address and queues its successors.
func (dis *Disasm) processOffset(address data.Address) {
	offsetInfo := dis.app.OffsetInfo(address)
	second := dis.app.OffsetInfo(address.Offset(1))
	if offsetInfo == nil || second == nil {
		dis.logger.Debug("Instruction outside of program", log.Stringer("address", address))
		return
	}

	if offsetInfo.IsType(program.CodeOffset) && len(offsetInfo.Data) == 0 {
		dis.handleJumpIntoInstruction(address)
		offsetInfo = dis.app.OffsetInfo(address)
	}
	if second.IsType(program.CodeOffset) {
		offsetInfo.Comment = fmt.Sprintf("instruction overlaps code at %s", address.Offset(1))
		offsetInfo.SetType(program.CodeAsData)
		return
	}

	high, low := dis.memory.Get(address), dis.memory.Get(address.Offset(1))
	word := instruction.Word(high, low)
	ins := instruction.Decode(word)
	if !ins.IsValid() {
		dis.logger.Debug("Invalid instruction",
			log.Stringer("address", address),
			log.Hex("opcode", word))
		offsetInfo.Comment = "invalid instruction"
		return
	}

	offsetInfo.Data = []byte{byte(high), byte(low)}
	offsetInfo.Code = ins.String()
	offsetInfo.ClearType(program.DataOffset)
	offsetInfo.SetType(program.CodeOffset)
	second.Data = nil
	second.ClearType(program.DataOffset)
	second.SetType(program.CodeOffset)

	dis.handleControlFlow(address, ins)
}

// handleControlFlow queues the addresses that execution can continue at.
func (dis *Disasm) handleControlFlow(address data.Address, ins instruction.Instruction) {
	next := address.Offset(instruction.Size)

	switch {
	case ins.IsJump(), ins.Kind == instruction.JumpOffset:
		dis.addAddressToParse(ins.Address, address, program.JumpDestination)

	case ins.IsCall():
		dis.addAddressToParse(ins.Address, address, program.CallDestination)
		dis.addAddressToParse(next, address, program.UnknownOffset)

	case ins.IsSkip():
		dis.addAddressToParse(next, address, program.UnknownOffset)
		dis.addAddressToParse(next.Offset(instruction.Size), address, program.UnknownOffset)

	case ins.IsDataReference():
		dis.addDataReference(ins.Address, address)
		dis.addAddressToParse(next, address, program.UnknownOffset)

	case !ins.EndsFlow():
		dis.addAddressToParse(next, address, program.UnknownOffset)
	}
}

// addAddressToParse adds an address to the list to be processed if the address
// has not been processed yet. Destinations of branches get the destination type set.
func (dis *Disasm) addAddressToParse(address, from data.Address, destination program.OffsetType) {
	offsetInfo := dis.app.OffsetInfo(address)
	if offsetInfo == nil {
		// targets in interpreter memory or outside of the rom
		return
	}

	if destination != program.UnknownOffset {
		offsetInfo.SetType(destination)
		dis.addBranchDestination(address, from)
	}

	if !dis.offsetsToParseAdded.Contains(address) {
		dis.offsetsToParseAdded.Add(address)
		dis.offsetsToParse = append(dis.offsetsToParse, address)
	}
}

// addDataReference marks the address loaded into the index register as data.
func (dis *Disasm) addDataReference(address, from data.Address) {
	offsetInfo := dis.app.OffsetInfo(address)
	if offsetInfo == nil {
		return
	}
	offsetInfo.SetType(program.DataReference)
	dis.addBranchDestination(address, from)
}

func (dis *Disasm) addBranchDestination(address, from data.Address) {
	dis.branchDestinations.Add(address)
	dis.branchFrom[address] = append(dis.branchFrom[address], from)
}
