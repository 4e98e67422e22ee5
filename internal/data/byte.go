package data

import "fmt"

// Byte is an 8 bit value. Arithmetic wraps around.
type Byte uint8

// Or returns the bitwise OR of both values.
func (b Byte) Or(other Byte) Byte { return b | other }

// And returns the bitwise AND of both values.
func (b Byte) And(other Byte) Byte { return b & other }

// Xor returns the bitwise XOR of both values.
func (b Byte) Xor(other Byte) Byte { return b ^ other }

// Add returns the wrapping sum and whether the sum overflowed.
func (b Byte) Add(other Byte) (Byte, bool) {
	sum := uint16(b) + uint16(other)
	return Byte(sum), sum > 0xFF
}

// Sub returns the wrapping difference and whether no borrow occurred.
func (b Byte) Sub(other Byte) (Byte, bool) {
	return b - other, b >= other
}

// ShiftRight returns the value shifted right by one bit.
func (b Byte) ShiftRight() Byte { return b >> 1 }

// ShiftLeft returns the value shifted left by one bit.
func (b Byte) ShiftLeft() Byte { return b << 1 }

// LSB returns the least significant bit.
func (b Byte) LSB() Byte { return b & 0b00000001 }

// MSB returns the most significant bit.
func (b Byte) MSB() Byte { return (b & 0b10000000) >> 7 }

// LowNibble returns the lower 4 bits.
func (b Byte) LowNibble() Nibble { return NewNibble(uint8(b)) }

// BCD returns the decimal digits of the value as hundreds, tens and ones.
func (b Byte) BCD() (hundreds, tens, ones Byte) {
	v := uint8(b)
	return Byte(v / 100), Byte(v % 100 / 10), Byte(v % 10)
}

func (b Byte) String() string {
	return fmt.Sprintf("$%02X", uint8(b))
}
