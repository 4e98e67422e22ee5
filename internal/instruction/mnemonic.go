package instruction

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the retrogolib instruction definition whose opcode mask
// matches the word, or nil if no definition matches.
func Lookup(word uint16) *chip8.Instruction {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// kindNames contains the fallback mnemonics used when the opcode table has
// no definition for a word.
var kindNames = [kindCount]string{
	Invalid:          ".word",
	Sys:              "sys",
	Cls:              "cls",
	Return:           "ret",
	Jump:             "jp",
	Call:             "call",
	SkipEqualByte:    "se",
	SkipNotEqualByte: "sne",
	SkipEqualReg:     "se",
	Load:             "ld",
	Add:              "add",
	LoadReg:          "ld",
	Or:               "or",
	And:              "and",
	Xor:              "xor",
	AddReg:           "add",
	Sub:              "sub",
	ShiftRight:       "shr",
	SubReverse:       "subn",
	ShiftLeft:        "shl",
	SkipNotEqualReg:  "sne",
	LoadIndex:        "ld",
	JumpOffset:       "jp",
	Random:           "rnd",
	Draw:             "drw",
	SkipPressed:      "skp",
	SkipNotPressed:   "sknp",
	LoadDelayTimer:   "ld",
	WaitForKey:       "ld",
	SetDelayTimer:    "ld",
	SetSoundTimer:    "ld",
	AddIndex:         "add",
	LoadFont:         "ld",
	StoreBCD:         "ld",
	StoreRegisters:   "ld",
	LoadRegisters:    "ld",
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	if i.Kind != Invalid {
		if ins := Lookup(i.Raw); ins != nil {
			return ins.Name
		}
	}
	return kindNames[i.Kind]
}
