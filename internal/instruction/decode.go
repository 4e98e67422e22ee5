package instruction

import (
	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/register"
)

// Word combines two consecutive memory bytes into a big endian instruction word.
func Word(high, low data.Byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Decode turns a raw instruction word into an instruction. Words that do not
// match any encoding return an instruction of Kind Invalid that carries the
// raw word.
func Decode(word uint16) Instruction {
	switch word {
	case 0x00E0:
		return Instruction{Kind: Cls, Raw: word}
	case 0x00EE:
		return Instruction{Kind: Return, Raw: word}
	}

	switch word & 0xF000 {
	case 0x0000:
		return withAddress(Sys, word)
	case 0x1000:
		return withAddress(Jump, word)
	case 0x2000:
		return withAddress(Call, word)
	case 0x3000:
		return withRegisterByte(SkipEqualByte, word)
	case 0x4000:
		return withRegisterByte(SkipNotEqualByte, word)
	case 0x5000:
		return withRegisterPair(SkipEqualReg, word)
	case 0x6000:
		return withRegisterByte(Load, word)
	case 0x7000:
		return withRegisterByte(Add, word)
	case 0x8000:
		return decodeArithmetic(word)
	case 0x9000:
		return withRegisterPair(SkipNotEqualReg, word)
	case 0xA000:
		return withAddress(LoadIndex, word)
	case 0xB000:
		return withAddress(JumpOffset, word)
	case 0xC000:
		return withRegisterByte(Random, word)
	case 0xD000:
		ins := withRegisterPair(Draw, word)
		ins.Nibble = nibble(word)
		return ins
	case 0xE000:
		return decodeKeyboard(word)
	default:
		return decodeMisc(word)
	}
}

// decodeArithmetic decodes the 8xyn family that uses the lowest nibble as sub opcode.
func decodeArithmetic(word uint16) Instruction {
	switch word & 0x000F {
	case 0x0:
		return withRegisterPair(LoadReg, word)
	case 0x1:
		return withRegisterPair(Or, word)
	case 0x2:
		return withRegisterPair(And, word)
	case 0x3:
		return withRegisterPair(Xor, word)
	case 0x4:
		return withRegisterPair(AddReg, word)
	case 0x5:
		return withRegisterPair(Sub, word)
	case 0x6:
		return withRegister(ShiftRight, word)
	case 0x7:
		return withRegisterPair(SubReverse, word)
	case 0xE:
		return withRegister(ShiftLeft, word)
	default:
		return invalid(word)
	}
}

// decodeKeyboard decodes the Exkk family that uses the lowest byte as sub opcode.
func decodeKeyboard(word uint16) Instruction {
	switch word & 0x00FF {
	case 0x9E:
		return withRegister(SkipPressed, word)
	case 0xA1:
		return withRegister(SkipNotPressed, word)
	default:
		return invalid(word)
	}
}

// decodeMisc decodes the Fxkk family that uses the lowest byte as sub opcode.
func decodeMisc(word uint16) Instruction {
	var kind Kind
	switch word & 0x00FF {
	case 0x07:
		kind = LoadDelayTimer
	case 0x0A:
		kind = WaitForKey
	case 0x15:
		kind = SetDelayTimer
	case 0x18:
		kind = SetSoundTimer
	case 0x1E:
		kind = AddIndex
	case 0x29:
		kind = LoadFont
	case 0x33:
		kind = StoreBCD
	case 0x55:
		kind = StoreRegisters
	case 0x65:
		kind = LoadRegisters
	default:
		return invalid(word)
	}
	return withRegister(kind, word)
}

func invalid(word uint16) Instruction {
	return Instruction{Kind: Invalid, Raw: word}
}

func withAddress(kind Kind, word uint16) Instruction {
	return Instruction{Kind: kind, Raw: word, Address: data.NewAddress(word)}
}

func withRegister(kind Kind, word uint16) Instruction {
	return Instruction{Kind: kind, Raw: word, X: registerX(word)}
}

func withRegisterByte(kind Kind, word uint16) Instruction {
	return Instruction{Kind: kind, Raw: word, X: registerX(word), Byte: data.Byte(word & 0x00FF)}
}

func withRegisterPair(kind Kind, word uint16) Instruction {
	return Instruction{Kind: kind, Raw: word, X: registerX(word), Y: registerY(word)}
}

// registerX extracts the X register nibble from an instruction word.
func registerX(word uint16) register.Register {
	return register.FromNibble(data.NewNibble(uint8(word >> 8)))
}

// registerY extracts the Y register nibble from an instruction word.
func registerY(word uint16) register.Register {
	return register.FromNibble(data.NewNibble(uint8(word >> 4)))
}

func nibble(word uint16) data.Nibble {
	return data.NewNibble(uint8(word))
}
