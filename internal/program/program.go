// Package program represents a disassembled CHIP-8 program.
package program

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/data"
)

// Offset defines the content of an offset in a program that can represent data or code.
type Offset struct {
	Data []byte // data byte or both opcode bytes of the instruction starting at this offset

	Type OffsetType

	Label       string // name of label or subroutine if identified as a jump destination
	Code        string // asm output of this instruction
	Comment     string
	BranchingTo string // label name of the branch destination
}

// HexCodeComment returns the data bytes of the offset formatted as hex string.
func (o Offset) HexCodeComment() (string, error) {
	buf := &strings.Builder{}

	for i, b := range o.Data {
		if i > 0 {
			if err := buf.WriteByte(' '); err != nil {
				return "", fmt.Errorf("writing separator: %w", err)
			}
		}
		if _, err := fmt.Fprintf(buf, "%02X", b); err != nil {
			return "", fmt.Errorf("writing hex byte: %w", err)
		}
	}

	return buf.String(), nil
}

// Checksums contains the CRC32 checksum to identify the ROM.
type Checksums struct {
	Overall uint32
}

// Program defines a CHIP-8 program that contains code or data.
type Program struct {
	StartAddress data.Address // memory address of the first offset
	Offsets      []Offset     // one entry per ROM byte
	Checksums    Checksums
}

// New creates a new program for a ROM of the given size that gets loaded at
// the start address.
func New(start data.Address, size int) *Program {
	return &Program{
		StartAddress: start,
		Offsets:      make([]Offset, size),
	}
}

// Contains returns whether the address is part of the program.
func (p *Program) Contains(address data.Address) bool {
	return address >= p.StartAddress && int(address-p.StartAddress) < len(p.Offsets)
}

// OffsetInfo returns the offset for the address or nil if the address is
// outside of the program.
func (p *Program) OffsetInfo(address data.Address) *Offset {
	if !p.Contains(address) {
		return nil
	}
	return &p.Offsets[address-p.StartAddress]
}

// Address returns the memory address of the offset index.
func (p *Program) Address(index int) data.Address {
	return p.StartAddress.Offset(uint16(index))
}

// LastNonZeroByte searches for the last offset that is not a zero byte,
// unlabeled data byte.
func (p *Program) LastNonZeroByte() int {
	for i := len(p.Offsets) - 1; i >= 0; i-- {
		offset := p.Offsets[i]
		if offset.Label == "" && !offset.IsType(CodeOffset) &&
			(len(offset.Data) == 0 || offset.Data[0] == 0) {
			continue
		}
		return i + 1
	}
	return 0
}
