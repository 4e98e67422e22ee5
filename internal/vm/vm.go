package vm

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/exp/rand"
)

// VM is the execution engine.
type VM struct {
	logger  *log.Logger
	options Options

	memory    Memory
	registers Registers
	pc        ProgramCounter
	keyboard  Keyboard
	display   FrameBuffer

	state       State
	resumeState State                   // state to return to when leaving Paused
	keyWait     instruction.Instruction // instruction of the active key wait
	fault       error                   // latched fatal error

	delayTimer data.Byte
	soundTimer data.Byte
	cycles     uint64

	random *rand.Rand

	breakpoints       set.Set[data.Address]
	skipBreakpointAdr data.Address // breakpoint address to ignore once after resuming
	skipBreakpoint    bool
}

// New returns a VM assembled from the default components.
func New(logger *log.Logger, options Options) (*VM, error) {
	return NewWithComponents(logger, options, Components{})
}

// NewWithComponents returns a VM assembled from the passed components.
// Missing components are replaced by the default implementations.
func NewWithComponents(logger *log.Logger, options Options, components Components) (*VM, error) {
	if options.StartAddress == 0 {
		options.StartAddress = memory.ProgramStart
	}
	components = components.withDefaults(options)

	seed := options.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	v := &VM{
		logger:      logger,
		options:     options,
		memory:      components.Memory,
		registers:   components.Registers,
		pc:          components.ProgramCounter,
		keyboard:    components.Keyboard,
		display:     components.FrameBuffer,
		random:      rand.New(rand.NewSource(seed)),
		breakpoints: set.New[data.Address](),
	}
	for _, address := range options.Breakpoints {
		v.breakpoints.Add(address)
	}

	if err := v.Reset(); err != nil {
		return nil, err
	}
	return v, nil
}

// Reset re-initializes all components, loads the font set and returns the
// engine to the Initializing state. Loaded programs are cleared.
func (v *VM) Reset() error {
	v.memory.Reset()
	if err := v.loadFont(); err != nil {
		return err
	}
	v.registers.Reset()
	v.pc.Reset(v.options.StartAddress)
	v.keyboard.Clear()
	v.display.Clear()

	v.state = State{Kind: Initializing}
	v.resumeState = State{}
	v.fault = nil
	v.delayTimer = 0
	v.soundTimer = 0
	v.cycles = 0
	v.skipBreakpoint = false
	return nil
}

func (v *VM) loadFont() error {
	if err := v.memory.Write(0, memory.Font[:]); err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	return nil
}

// LoadProgram copies the program into memory starting at the current
// program counter address. It is only allowed in the Initializing state.
func (v *VM) LoadProgram(program []byte) error {
	if v.state.Kind != Initializing {
		return fmt.Errorf("%w: loading program while %s", ErrInvalidState, v.state.Kind)
	}

	v.state = State{Kind: LoadingROM}
	defer func() {
		v.state = State{Kind: Initializing}
	}()

	start := v.pc.Current()
	if err := v.memory.Load(start, program); err != nil {
		return fmt.Errorf("%w: %d bytes at %s: %w", ErrProgramTooLarge, len(program), start, err)
	}

	v.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Hex("address", start.Uint16()))
	return nil
}

// Pause stops instruction execution until Resume is called.
// Timers keep decrementing for every invoked cycle.
func (v *VM) Pause() {
	if v.state.Kind == Paused {
		return
	}
	v.resumeState = v.state
	v.state = State{Kind: Paused}
}

// Resume continues execution in the state that was active before pausing.
func (v *VM) Resume() {
	if v.state.Kind != Paused {
		return
	}
	v.state = v.resumeState
	v.resumeState = State{}
}

// PressKey marks the key as pressed.
func (v *VM) PressKey(key data.Nibble) {
	v.keyboard.Press(key)
}

// ReleaseKey releases the key if it is pressed.
func (v *VM) ReleaseKey(key data.Nibble) {
	v.keyboard.Release(key)
}

// ReleaseKeys releases any pressed key.
func (v *VM) ReleaseKeys() {
	v.keyboard.Clear()
}

// ReadFramebuffer returns a copy of the packed scanlines, bit 63 of every
// row is the leftmost pixel.
func (v *VM) ReadFramebuffer() []uint64 {
	return v.display.Rows()
}

// State returns the current engine state.
func (v *VM) State() State {
	return v.state
}

// Err returns the latched fatal error, if any.
func (v *VM) Err() error {
	return v.fault
}

// ProgramCounter returns the address of the next instruction.
func (v *VM) ProgramCounter() data.Address {
	return v.pc.Current()
}

// StackDepth returns the number of active call frames including the initial one.
func (v *VM) StackDepth() int {
	return v.pc.Depth()
}

// Registers returns a copy of the general purpose registers.
func (v *VM) Registers() [register.Count]data.Byte {
	return v.registers.Snapshot()
}

// Index returns the index register.
func (v *VM) Index() data.Address {
	return v.registers.I()
}

// ReadMemory returns the byte at address.
func (v *VM) ReadMemory(address data.Address) data.Byte {
	return v.memory.Get(address)
}

// DelayTimer returns the delay timer value.
func (v *VM) DelayTimer() data.Byte {
	return v.delayTimer
}

// SoundTimer returns the sound timer value.
func (v *VM) SoundTimer() data.Byte {
	return v.soundTimer
}

// SoundActive returns whether the sound timer is running.
// The engine does not produce audio, front ends can use this to do so.
func (v *VM) SoundActive() bool {
	return v.soundTimer > 0
}

// Cycles returns the number of cycles run since the last reset.
func (v *VM) Cycles() uint64 {
	return v.cycles
}
