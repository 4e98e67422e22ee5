// Package register provides the general purpose register identities and the
// register bank of the virtual machine.
package register

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/data"
)

// Count is the number of general purpose registers.
const Count = 16

// Register identifies one of the 16 general purpose registers V0-VF.
// VF is used as carry, borrow and collision flag.
type Register uint8

// General purpose registers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// Flag is the register used for carry, borrow and collision reporting.
const Flag = VF

// FromNibble returns the register with the ordinal of n.
// A nibble can only hold 16 values, so every nibble maps to a register.
func FromNibble(n data.Nibble) Register {
	return Register(n)
}

// New returns the register with the given ordinal or an error if the
// ordinal is out of range.
func New(ordinal uint8) (Register, error) {
	if ordinal >= Count {
		return 0, fmt.Errorf("invalid register ordinal %d", ordinal)
	}
	return Register(ordinal), nil
}

// Ordinal returns the index of the register.
func (r Register) Ordinal() int {
	return int(r)
}

// Through returns the registers V0 up to and including r in ascending order.
func Through(r Register) []Register {
	regs := make([]Register, 0, r.Ordinal()+1)
	for i := V0; i <= r; i++ {
		regs = append(regs, i)
	}
	return regs
}

func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}
