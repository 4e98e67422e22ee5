package vm

import (
	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/programcounter"
	"github.com/retroenv/retrochip8/internal/register"
)

// Memory is the addressable byte store.
type Memory interface {
	// Get returns the byte at address.
	Get(address data.Address) data.Byte
	// Set writes the byte at address.
	Set(address data.Address, value data.Byte)
	// Slice returns length consecutive bytes starting at address.
	Slice(address data.Address, length int) ([]data.Byte, error)
	// Write copies values into memory starting at address.
	Write(address data.Address, values []data.Byte) error
	// Load copies a program into memory starting at address.
	Load(address data.Address, program []byte) error
	// Reset clears the memory.
	Reset()
}

// Registers is the register bank.
type Registers interface {
	V(r register.Register) data.Byte
	SetV(r register.Register, value data.Byte)
	I() data.Address
	SetI(address data.Address)
	Snapshot() [register.Count]data.Byte
	Reset()
}

// ProgramCounter is the current instruction address with its call stack.
type ProgramCounter interface {
	Current() data.Address
	Set(address data.Address)
	IncBy(n uint16)
	ToSubroutine(address data.Address) error
	Return() error
	Depth() int
	Reset(initial data.Address)
}

// Keyboard is the single key input device.
type Keyboard interface {
	Press(key data.Nibble)
	Release(key data.Nibble)
	Clear()
	IsPressed(key data.Nibble) bool
	Pressed() (data.Nibble, bool)
}

// FrameBuffer is the monochrome bitmap output.
type FrameBuffer interface {
	Draw(x, y data.Byte, sprite []data.Byte) bool
	Clear()
	Rows() []uint64
	Height() int
}

// Compile-time checks of the default component implementations.
var (
	_ Memory         = (*memory.Memory)(nil)
	_ Registers      = (*register.Bank)(nil)
	_ ProgramCounter = (*programcounter.ProgramCounter)(nil)
	_ Keyboard       = (*keyboard.Keyboard)(nil)
	_ FrameBuffer    = (*framebuffer.FrameBuffer)(nil)
)

// Components contains the component implementations that a VM is assembled
// from. Nil fields get the default implementation.
type Components struct {
	Memory         Memory
	Registers      Registers
	ProgramCounter ProgramCounter
	Keyboard       Keyboard
	FrameBuffer    FrameBuffer
}

// withDefaults returns the components with nil fields replaced by the
// default implementations.
func (c Components) withDefaults(opts Options) Components {
	if c.Memory == nil {
		c.Memory = memory.New()
	}
	if c.Registers == nil {
		c.Registers = register.NewBank()
	}
	if c.ProgramCounter == nil {
		c.ProgramCounter = programcounter.New(opts.StartAddress)
	}
	if c.Keyboard == nil {
		c.Keyboard = keyboard.New()
	}
	if c.FrameBuffer == nil {
		c.FrameBuffer = framebuffer.New(opts.Height)
	}
	return c
}
