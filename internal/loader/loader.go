// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
)

// MaxSize is the largest ROM that fits into memory after the program start address.
const MaxSize = memory.Size - memory.ProgramStart

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw ROM file.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return rom, nil
}

// LoadReader reads a raw ROM from the reader.
func (l *Loader) LoadReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized files
	rom, err := io.ReadAll(io.LimitReader(reader, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	switch {
	case len(rom) == 0:
		return nil, ErrEmpty
	case len(rom) > MaxSize:
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxSize)
	}
	return rom, nil
}
