// Package programcounter implements the program counter of the virtual
// machine together with its bounded call stack.
package programcounter

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/data"
)

// StackSize is the maximum number of frames including the initial one.
const StackSize = 16

var (
	// ErrStackUnderflow is returned when returning with no enclosing call.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrStackOverflow is returned when calling with all frames in use.
	ErrStackOverflow = errors.New("call stack overflow")
)

// ProgramCounter keeps the current execution address of every active
// subroutine frame. Frame 0 holds the initial execution address.
type ProgramCounter struct {
	frames  [StackSize]data.Address
	pointer int
}

// New returns a program counter with a single frame at initial.
func New(initial data.Address) *ProgramCounter {
	pc := &ProgramCounter{}
	pc.frames[0] = initial
	return pc
}

// Current returns the address of the active frame.
func (pc *ProgramCounter) Current() data.Address {
	return pc.frames[pc.pointer]
}

// Set sets the address of the active frame.
func (pc *ProgramCounter) Set(address data.Address) {
	pc.frames[pc.pointer] = address
}

// IncBy advances the active frame by n bytes, wrapping at the end of the
// address space.
func (pc *ProgramCounter) IncBy(n uint16) {
	pc.frames[pc.pointer] = pc.frames[pc.pointer].Offset(n)
}

// ToSubroutine pushes a new frame starting at address.
func (pc *ProgramCounter) ToSubroutine(address data.Address) error {
	if pc.pointer+1 >= StackSize {
		return fmt.Errorf("%w: calling %s at depth %d", ErrStackOverflow, address, pc.Depth())
	}
	pc.pointer++
	pc.frames[pc.pointer] = address
	return nil
}

// Return pops the active frame, the caller frame becomes active again.
// Returning from the initial frame fails with ErrStackUnderflow.
func (pc *ProgramCounter) Return() error {
	if pc.pointer == 0 {
		return fmt.Errorf("%w: return at %s without call", ErrStackUnderflow, pc.Current())
	}
	pc.pointer--
	return nil
}

// Depth returns the number of active frames, including the initial one.
func (pc *ProgramCounter) Depth() int {
	return pc.pointer + 1
}

// Reset drops all frames and restarts at initial.
func (pc *ProgramCounter) Reset(initial data.Address) {
	pc.frames = [StackSize]data.Address{}
	pc.pointer = 0
	pc.frames[0] = initial
}
