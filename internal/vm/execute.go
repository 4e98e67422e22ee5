package vm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrogolib/log"
)

// Program counter advances after executing an instruction.
const (
	redirected uint16 = 0                    // the instruction set the program counter
	next              = instruction.Size     // continue with the next instruction
	skip              = 2 * instruction.Size // skip the next instruction
)

// execute runs the instruction and returns by how many bytes the program
// counter has to be advanced.
func (v *VM) execute(ins instruction.Instruction) (uint16, error) {
	switch ins.Kind {
	case instruction.Invalid:
		return v.invalid(ins)

	case instruction.Sys:
		// native machine code routines are not supported
		return next, nil

	case instruction.Cls:
		v.display.Clear()
		return next, nil

	case instruction.Return:
		if err := v.pc.Return(); err != nil {
			return redirected, err
		}
		return next, nil // continue after the call instruction of the caller frame

	case instruction.Jump:
		v.pc.Set(ins.Address)
		return redirected, nil

	case instruction.JumpOffset:
		v.pc.Set(ins.Address.Add(v.registers.V(register.V0)))
		return redirected, nil

	case instruction.Call:
		if err := v.pc.ToSubroutine(ins.Address); err != nil {
			return redirected, err
		}
		return redirected, nil

	case instruction.SkipEqualByte:
		return skipIf(v.registers.V(ins.X) == ins.Byte), nil
	case instruction.SkipNotEqualByte:
		return skipIf(v.registers.V(ins.X) != ins.Byte), nil
	case instruction.SkipEqualReg:
		return skipIf(v.registers.V(ins.X) == v.registers.V(ins.Y)), nil
	case instruction.SkipNotEqualReg:
		return skipIf(v.registers.V(ins.X) != v.registers.V(ins.Y)), nil
	case instruction.SkipPressed:
		return skipIf(v.keyboard.IsPressed(v.registers.V(ins.X).LowNibble())), nil
	case instruction.SkipNotPressed:
		return skipIf(!v.keyboard.IsPressed(v.registers.V(ins.X).LowNibble())), nil

	case instruction.Load:
		v.registers.SetV(ins.X, ins.Byte)
		return next, nil

	case instruction.Add:
		sum, _ := v.registers.V(ins.X).Add(ins.Byte)
		v.registers.SetV(ins.X, sum)
		return next, nil

	case instruction.LoadReg, instruction.Or, instruction.And, instruction.Xor,
		instruction.AddReg, instruction.Sub, instruction.SubReverse,
		instruction.ShiftRight, instruction.ShiftLeft:
		v.arithmetic(ins)
		return next, nil

	case instruction.LoadIndex:
		v.registers.SetI(ins.Address)
		return next, nil

	case instruction.Random:
		n := data.Byte(v.random.Uint32())
		v.registers.SetV(ins.X, n.And(ins.Byte))
		return next, nil

	case instruction.Draw:
		return v.draw(ins)

	case instruction.WaitForKey:
		v.keyWait = ins
		v.state = State{Kind: WaitingForKey}
		return redirected, nil // advanced once the key wait completes

	default:
		return v.misc(ins)
	}
}

// invalid handles undefined instructions depending on the configured policy.
func (v *VM) invalid(ins instruction.Instruction) (uint16, error) {
	if v.options.StopOnInvalid {
		return redirected, fmt.Errorf("%w: $%04X", ErrInvalidInstruction, ins.Raw)
	}
	v.logger.Warn("Skipping invalid instruction",
		log.Hex("address", v.pc.Current().Uint16()),
		log.Hex("opcode", ins.Raw))
	return next, nil
}

func skipIf(condition bool) uint16 {
	if condition {
		return skip
	}
	return next
}

// arithmetic executes the 8xyn family. The flag register is written before
// the result, a result stored in VF overwrites the flag.
func (v *VM) arithmetic(ins instruction.Instruction) {
	x := v.registers.V(ins.X)
	y := v.registers.V(ins.Y)

	var result data.Byte
	switch ins.Kind {
	case instruction.LoadReg:
		result = y
	case instruction.Or:
		result = x.Or(y)
	case instruction.And:
		result = x.And(y)
	case instruction.Xor:
		result = x.Xor(y)

	case instruction.AddReg:
		var carry bool
		result, carry = x.Add(y)
		v.setFlag(carry)

	case instruction.Sub:
		result, _ = x.Sub(y)
		v.setFlag(x > y)

	case instruction.SubReverse:
		result, _ = y.Sub(x)
		v.setFlag(y > x)

	case instruction.ShiftRight:
		v.registers.SetV(register.Flag, x.LSB())
		result = x.ShiftRight()

	case instruction.ShiftLeft:
		v.registers.SetV(register.Flag, x.MSB())
		result = x.ShiftLeft()
	}

	v.registers.SetV(ins.X, result)
}

func (v *VM) setFlag(set bool) {
	var value data.Byte
	if set {
		value = 1
	}
	v.registers.SetV(register.Flag, value)
}

// draw renders the sprite at the index register to the frame buffer and
// reports a collision in the flag register.
func (v *VM) draw(ins instruction.Instruction) (uint16, error) {
	sprite, err := v.memory.Slice(v.registers.I(), ins.Nibble.Int())
	if err != nil {
		return redirected, fmt.Errorf("reading sprite: %w", err)
	}

	collision := v.display.Draw(v.registers.V(ins.X), v.registers.V(ins.Y), sprite)
	v.setFlag(collision)
	return next, nil
}

// misc executes the timer, index and block copy instructions of the Fxkk family.
func (v *VM) misc(ins instruction.Instruction) (uint16, error) {
	x := v.registers.V(ins.X)
	i := v.registers.I()

	switch ins.Kind {
	case instruction.LoadDelayTimer:
		v.registers.SetV(ins.X, v.delayTimer)

	case instruction.SetDelayTimer:
		v.delayTimer = x

	case instruction.SetSoundTimer:
		v.soundTimer = x

	case instruction.AddIndex:
		v.registers.SetI(i.Add(x))

	case instruction.LoadFont:
		glyph := uint16(x.LowNibble())
		v.registers.SetI(data.NewAddress(glyph * memory.GlyphSize))

	case instruction.StoreBCD:
		hundreds, tens, ones := x.BCD()
		if err := v.memory.Write(i, []data.Byte{hundreds, tens, ones}); err != nil {
			return redirected, fmt.Errorf("storing bcd: %w", err)
		}

	case instruction.StoreRegisters:
		regs := register.Through(ins.X)
		values := make([]data.Byte, len(regs))
		for j, reg := range regs {
			values[j] = v.registers.V(reg)
		}
		if err := v.memory.Write(i, values); err != nil {
			return redirected, fmt.Errorf("storing registers: %w", err)
		}
		v.registers.SetI(i.Offset(uint16(len(regs))))

	case instruction.LoadRegisters:
		regs := register.Through(ins.X)
		values, err := v.memory.Slice(i, len(regs))
		if err != nil {
			return redirected, fmt.Errorf("loading registers: %w", err)
		}
		for j, reg := range regs {
			v.registers.SetV(reg, values[j])
		}
		v.registers.SetI(i.Offset(uint16(len(regs))))

	default:
		return redirected, fmt.Errorf("%w: unhandled instruction kind %d", ErrInvalidInstruction, ins.Kind)
	}
	return next, nil
}
