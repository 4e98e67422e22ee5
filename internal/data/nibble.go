package data

import "fmt"

// Nibble is a 4 bit value.
type Nibble uint8

// NewNibble returns the lower 4 bits of value.
func NewNibble(value uint8) Nibble {
	return Nibble(value & 0x0F)
}

// Int returns the value as int, useful for lengths and indexes.
func (n Nibble) Int() int {
	return int(n)
}

func (n Nibble) String() string {
	return fmt.Sprintf("$%X", uint8(n))
}

// Byte returns the value as Byte.
func (n Nibble) Byte() Byte {
	return Byte(n)
}
