// Package data contains the fixed width value types of the virtual machine.
//
// All constructors mask their input so that a value can never leave its
// declared range:
//   - Address: 12 bit memory address (0x000-0xFFF)
//   - Byte: 8 bit register and memory value
//   - Nibble: 4 bit sprite height or key identifier
package data
