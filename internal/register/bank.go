package register

import "github.com/retroenv/retrochip8/internal/data"

// Bank holds the general purpose registers and the index register.
type Bank struct {
	v [Count]data.Byte
	i data.Address
}

// NewBank returns a bank with all registers cleared.
func NewBank() *Bank {
	return &Bank{}
}

// V returns the value of register r.
func (b *Bank) V(r Register) data.Byte {
	return b.v[r&0x0F]
}

// SetV sets register r to value.
func (b *Bank) SetV(r Register, value data.Byte) {
	b.v[r&0x0F] = value
}

// I returns the index register.
func (b *Bank) I() data.Address {
	return b.i
}

// SetI sets the index register.
func (b *Bank) SetI(address data.Address) {
	b.i = address
}

// Snapshot returns a copy of the general purpose registers.
func (b *Bank) Snapshot() [Count]data.Byte {
	return b.v
}

// Reset clears all registers.
func (b *Bank) Reset() {
	b.v = [Count]data.Byte{}
	b.i = 0
}
