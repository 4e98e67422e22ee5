package vm

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/programcounter"
)

var (
	// ErrInvalidInstruction is returned for undefined opcodes when Options.StopOnInvalid is set.
	ErrInvalidInstruction = errors.New("invalid instruction")
	// ErrInvalidState is returned when an operation is not allowed in the current engine state.
	ErrInvalidState = errors.New("invalid engine state")
	// ErrProgramTooLarge is returned when a program does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrStackUnderflow is returned when a return is executed without enclosing call.
	ErrStackUnderflow = programcounter.ErrStackUnderflow
	// ErrStackOverflow is returned when the call depth exceeds the call stack size.
	ErrStackOverflow = programcounter.ErrStackOverflow
	// ErrOutOfBounds is returned for sprite reads and block copies past the end of memory.
	ErrOutOfBounds = memory.ErrOutOfBounds
)
