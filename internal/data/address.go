package data

import "fmt"

// AddressMask limits addresses to the 12 bit address space.
const AddressMask = 0x0FFF

// Address is a 12 bit memory address. Arithmetic wraps around at 0xFFF.
type Address uint16

// NewAddress returns the address masked to 12 bits.
func NewAddress(value uint16) Address {
	return Address(value & AddressMask)
}

// Add returns the address incremented by the value of b.
func (a Address) Add(b Byte) Address {
	return NewAddress(uint16(a) + uint16(b))
}

// AddAddress returns the sum of both addresses.
func (a Address) AddAddress(other Address) Address {
	return NewAddress(uint16(a) + uint16(other))
}

// Offset returns the address incremented by n.
func (a Address) Offset(n uint16) Address {
	return NewAddress(uint16(a) + n)
}

// Uint16 returns the raw value.
func (a Address) Uint16() uint16 {
	return uint16(a)
}

func (a Address) String() string {
	return fmt.Sprintf("$%03X", uint16(a))
}
