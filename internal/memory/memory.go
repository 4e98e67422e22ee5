// Package memory implements the flat 4 KiB memory of the virtual machine.
package memory

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/data"
)

// Memory layout constants.
//
//	0x000-0x04F: built in font set
//	0x050-0x1FF: interpreter area
//	0x200-0xFFF: program and data area
const (
	Size         = 0x1000
	ProgramStart = 0x200
)

// ErrOutOfBounds is returned for accesses that run past the end of memory.
var ErrOutOfBounds = errors.New("memory access out of bounds")

// Memory is the byte store of the virtual machine.
type Memory struct {
	store [Size]data.Byte
}

// New returns a memory with the font set loaded at address 0.
func New() *Memory {
	m := &Memory{}
	copy(m.store[:], Font[:])
	return m
}

// Reset clears the memory including the font set.
func (m *Memory) Reset() {
	m.store = [Size]data.Byte{}
}

// Get returns the byte at address.
func (m *Memory) Get(address data.Address) data.Byte {
	return m.store[address&data.AddressMask]
}

// Set writes the byte at address.
func (m *Memory) Set(address data.Address, value data.Byte) {
	m.store[address&data.AddressMask] = value
}

// Slice returns a copy of length consecutive bytes starting at address.
// It returns ErrOutOfBounds if the range exceeds the end of memory.
func (m *Memory) Slice(address data.Address, length int) ([]data.Byte, error) {
	start, end, err := bounds(address, length)
	if err != nil {
		return nil, err
	}
	result := make([]data.Byte, length)
	copy(result, m.store[start:end])
	return result, nil
}

// Write copies values into memory starting at address.
// It returns ErrOutOfBounds if the values do not fit.
func (m *Memory) Write(address data.Address, values []data.Byte) error {
	start, end, err := bounds(address, len(values))
	if err != nil {
		return err
	}
	copy(m.store[start:end], values)
	return nil
}

// Load copies a program into memory starting at address.
func (m *Memory) Load(address data.Address, program []byte) error {
	start, _, err := bounds(address, len(program))
	if err != nil {
		return fmt.Errorf("loading program of %d bytes: %w", len(program), err)
	}
	for i, b := range program {
		m.store[start+i] = data.Byte(b)
	}
	return nil
}

func bounds(address data.Address, length int) (int, int, error) {
	start := int(address & data.AddressMask)
	end := start + length
	if length < 0 || end > Size {
		return 0, 0, fmt.Errorf("%w: address %s length %d", ErrOutOfBounds, address, length)
	}
	return start, end, nil
}
