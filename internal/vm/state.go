package vm

import (
	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/instruction"
)

// StateKind identifies the engine state.
type StateKind uint8

// Engine states.
const (
	Initializing StateKind = iota
	LoadingROM
	Executing
	Paused
	WaitingForKey
)

var stateNames = map[StateKind]string{
	Initializing:  "initializing",
	LoadingROM:    "loading rom",
	Executing:     "executing",
	Paused:        "paused",
	WaitingForKey: "waiting for key",
}

func (k StateKind) String() string {
	if name, ok := stateNames[k]; ok {
		return name
	}
	return "unknown"
}

// State is the engine state. Instruction is only set for Executing,
// Key and KeyPending only for WaitingForKey.
type State struct {
	Kind        StateKind
	Instruction instruction.Instruction // last executed instruction

	Key        data.Nibble // candidate key of a key wait
	KeyPending bool        // whether Key holds a candidate
}

func (s State) String() string {
	switch s.Kind {
	case Executing:
		return s.Kind.String() + " " + s.Instruction.String()
	case WaitingForKey:
		if s.KeyPending {
			return s.Kind.String() + " " + s.Key.String()
		}
		return s.Kind.String()
	default:
		return s.Kind.String()
	}
}
