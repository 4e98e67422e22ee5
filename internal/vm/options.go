package vm

import (
	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/memory"
)

// Options defines options to control the execution engine.
type Options struct {
	StartAddress data.Address // address of the first instruction
	Height       int          // frame buffer rows

	Seed          uint64 // random seed, 0 seeds from the current time
	StopOnInvalid bool   // treat invalid instructions as fatal
	Trace         bool   // log every executed instruction at debug level

	Breakpoints []data.Address // addresses that pause the engine before executing
}

// NewOptions returns the default options.
func NewOptions() Options {
	return Options{
		StartAddress: memory.ProgramStart,
		Height:       framebuffer.DefaultHeight,
	}
}
