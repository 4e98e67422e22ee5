// Package instruction decodes raw 16 bit instruction words into instructions.
package instruction

import (
	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/register"
)

// Size is the width of an encoded instruction in bytes.
const Size = 2

// Kind identifies the instruction variant.
type Kind uint8

// Instruction variants, the comment shows the encoding.
const (
	Invalid          Kind = iota // any word that matches no encoding
	Sys                          // 0nnn - SYS addr
	Cls                          // 00E0 - CLS
	Return                       // 00EE - RET
	Jump                         // 1nnn - JP addr
	Call                         // 2nnn - CALL addr
	SkipEqualByte                // 3xkk - SE Vx, byte
	SkipNotEqualByte             // 4xkk - SNE Vx, byte
	SkipEqualReg                 // 5xy0 - SE Vx, Vy
	Load                         // 6xkk - LD Vx, byte
	Add                          // 7xkk - ADD Vx, byte
	LoadReg                      // 8xy0 - LD Vx, Vy
	Or                           // 8xy1 - OR Vx, Vy
	And                          // 8xy2 - AND Vx, Vy
	Xor                          // 8xy3 - XOR Vx, Vy
	AddReg                       // 8xy4 - ADD Vx, Vy
	Sub                          // 8xy5 - SUB Vx, Vy
	ShiftRight                   // 8xy6 - SHR Vx
	SubReverse                   // 8xy7 - SUBN Vx, Vy
	ShiftLeft                    // 8xyE - SHL Vx
	SkipNotEqualReg              // 9xy0 - SNE Vx, Vy
	LoadIndex                    // Annn - LD I, addr
	JumpOffset                   // Bnnn - JP V0, addr
	Random                       // Cxkk - RND Vx, byte
	Draw                         // Dxyn - DRW Vx, Vy, nibble
	SkipPressed                  // Ex9E - SKP Vx
	SkipNotPressed               // ExA1 - SKNP Vx
	LoadDelayTimer               // Fx07 - LD Vx, DT
	WaitForKey                   // Fx0A - LD Vx, K
	SetDelayTimer                // Fx15 - LD DT, Vx
	SetSoundTimer                // Fx18 - LD ST, Vx
	AddIndex                     // Fx1E - ADD I, Vx
	LoadFont                     // Fx29 - LD F, Vx
	StoreBCD                     // Fx33 - LD B, Vx
	StoreRegisters               // Fx55 - LD [I], Vx
	LoadRegisters                // Fx65 - LD Vx, [I]

	kindCount
)

// Instruction is a decoded instruction. Only the operands that the Kind
// uses are set, all others are zero.
type Instruction struct {
	Kind Kind
	Raw  uint16 // encoded instruction word

	X       register.Register // first register operand, bits 8-11
	Y       register.Register // second register operand, bits 4-7
	Byte    data.Byte         // byte literal, bits 0-7
	Address data.Address      // address literal, bits 0-11
	Nibble  data.Nibble       // sprite height, bits 0-3
}

// IsValid returns whether the instruction decoded to a known encoding.
func (i Instruction) IsValid() bool {
	return i.Kind != Invalid
}

// IsJump returns whether the instruction jumps to its address literal.
func (i Instruction) IsJump() bool {
	return i.Kind == Jump
}

// IsCall returns whether the instruction calls a subroutine.
func (i Instruction) IsCall() bool {
	return i.Kind == Call
}

// IsReturn returns whether the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.Kind == Return
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	switch i.Kind {
	case SkipEqualByte, SkipNotEqualByte, SkipEqualReg, SkipNotEqualReg,
		SkipPressed, SkipNotPressed:
		return true
	default:
		return false
	}
}

// IsDataReference returns whether the address literal references data (LD I, addr).
func (i Instruction) IsDataReference() bool {
	return i.Kind == LoadIndex
}

// EndsFlow returns whether execution never continues with the next
// instruction in memory.
func (i Instruction) EndsFlow() bool {
	switch i.Kind {
	case Jump, JumpOffset, Return, Invalid:
		return true
	default:
		return false
	}
}
