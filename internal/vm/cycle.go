package vm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/log"
)

// RunCycle runs a single cycle.
func (v *VM) RunCycle() error {
	return v.RunCycles(1)
}

// RunCycles runs n cycles. It returns early with the fatal error that
// stopped the engine, all later calls return the same error until Reset.
func (v *VM) RunCycles(n int) error {
	if v.fault != nil {
		return v.fault
	}

	for range n {
		if err := v.cycle(); err != nil {
			v.fault = err
			v.logger.Debug("Execution stopped",
				log.Hex("address", v.pc.Current().Uint16()),
				log.Err(err))
			return err
		}
	}
	return nil
}

// cycle ticks the timers and advances the engine by one step.
func (v *VM) cycle() error {
	v.cycles++
	v.tickTimers()

	switch v.state.Kind {
	case Paused:
		return nil

	case WaitingForKey:
		v.pollKey()
		return nil

	case Initializing, LoadingROM, Executing:
		if v.hitBreakpoint() {
			return nil
		}
		return v.step()

	default:
		return fmt.Errorf("%w: %d", ErrInvalidState, v.state.Kind)
	}
}

// tickTimers decrements both timers, they stop at zero.
func (v *VM) tickTimers() {
	if v.delayTimer > 0 {
		v.delayTimer--
	}
	if v.soundTimer > 0 {
		v.soundTimer--
	}
}

// hitBreakpoint pauses the engine if the current address is a breakpoint.
// After resuming the breakpoint is ignored once so that the instruction executes.
func (v *VM) hitBreakpoint() bool {
	address := v.pc.Current()
	if v.skipBreakpoint && v.skipBreakpointAdr == address {
		v.skipBreakpoint = false
		return false
	}
	v.skipBreakpoint = false
	if !v.breakpoints.Contains(address) {
		return false
	}

	v.logger.Info("Breakpoint reached", log.Hex("address", address.Uint16()))
	v.Pause()
	v.skipBreakpoint = true
	v.skipBreakpointAdr = address
	return true
}

// step fetches, decodes and executes the instruction at the program counter.
func (v *VM) step() error {
	address := v.pc.Current()
	word := instruction.Word(v.memory.Get(address), v.memory.Get(address.Offset(1)))
	ins := instruction.Decode(word)

	v.state = State{Kind: Executing, Instruction: ins}
	if v.options.Trace {
		v.logger.Debug("Executing",
			log.Hex("address", address.Uint16()),
			log.Hex("opcode", word),
			log.String("instruction", ins.String()))
	}

	advance, err := v.execute(ins)
	if err != nil {
		return fmt.Errorf("executing '%s' at %s: %w", ins, address, err)
	}
	v.pc.IncBy(advance)
	return nil
}

// pollKey continues a key wait. A pressed key becomes the candidate, a
// candidate that is still pressed on the next poll completes the wait.
func (v *VM) pollKey() {
	if !v.state.KeyPending {
		key, pressed := v.keyboard.Pressed()
		if pressed {
			v.state.Key = key
			v.state.KeyPending = true
		}
		return
	}

	if !v.keyboard.IsPressed(v.state.Key) {
		v.state.Key = 0
		v.state.KeyPending = false
		return
	}

	v.registers.SetV(v.keyWait.X, v.state.Key.Byte())
	v.pc.IncBy(instruction.Size)
	v.state = State{Kind: Executing, Instruction: v.keyWait}
}
