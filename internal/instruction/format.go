package instruction

import "fmt"

// String returns the instruction in assembly notation.
func (i Instruction) String() string {
	name := i.Name()
	if params := i.Operands(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Operands formats the instruction parameters.
func (i Instruction) Operands() string {
	switch i.Kind {
	case Cls, Return:
		return "" // No parameters
	case Invalid:
		return fmt.Sprintf("$%04X", i.Raw)
	case Sys, Jump, Call:
		return i.Address.String()
	case JumpOffset:
		return fmt.Sprintf("V0, %s", i.Address)
	case LoadIndex:
		return fmt.Sprintf("I, %s", i.Address)
	case SkipEqualByte, SkipNotEqualByte, Load, Add, Random:
		return fmt.Sprintf("%s, %s", i.X, i.Byte)
	case SkipEqualReg, SkipNotEqualReg, LoadReg, Or, And, Xor, AddReg, Sub, SubReverse:
		return fmt.Sprintf("%s, %s", i.X, i.Y)
	case ShiftRight, ShiftLeft, SkipPressed, SkipNotPressed:
		return i.X.String()
	case Draw:
		return fmt.Sprintf("%s, %s, %s", i.X, i.Y, i.Nibble)
	}
	return i.miscOperands()
}

// miscOperands formats the Fxkk family.
func (i Instruction) miscOperands() string {
	switch i.Kind {
	case LoadDelayTimer:
		return fmt.Sprintf("%s, DT", i.X)
	case WaitForKey:
		return fmt.Sprintf("%s, K", i.X)
	case SetDelayTimer:
		return fmt.Sprintf("DT, %s", i.X)
	case SetSoundTimer:
		return fmt.Sprintf("ST, %s", i.X)
	case AddIndex:
		return fmt.Sprintf("I, %s", i.X)
	case LoadFont:
		return fmt.Sprintf("F, %s", i.X)
	case StoreBCD:
		return fmt.Sprintf("B, %s", i.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], %s", i.X)
	case LoadRegisters:
		return fmt.Sprintf("%s, [I]", i.X)
	default:
		return ""
	}
}
