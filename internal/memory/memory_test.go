package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrogolib/assert"
)

func TestNewLoadsFont(t *testing.T) {
	m := New()

	for i, b := range Font {
		assert.Equal(t, b, m.Get(data.Address(i)))
	}
	assert.Equal(t, data.Byte(0), m.Get(ProgramStart))
}

func TestGetSet(t *testing.T) {
	m := New()

	m.Set(0x300, 0xAB)
	assert.Equal(t, data.Byte(0xAB), m.Get(0x300))

	m.Set(0xFFF, 0x01)
	assert.Equal(t, data.Byte(0x01), m.Get(0xFFF))
}

func TestSlice(t *testing.T) {
	m := New()
	m.Set(0x300, 1)
	m.Set(0x301, 2)
	m.Set(0x302, 3)

	slice, err := m.Slice(0x300, 3)
	assert.NoError(t, err)
	assert.Equal(t, []data.Byte{1, 2, 3}, slice)

	// modifying the returned slice does not change memory
	slice[0] = 0xFF
	assert.Equal(t, data.Byte(1), m.Get(0x300))

	slice, err = m.Slice(0xFFF, 1)
	assert.NoError(t, err)
	assert.Len(t, slice, 1)

	empty, err := m.Slice(0x300, 0)
	assert.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestSliceOutOfBounds(t *testing.T) {
	m := New()

	_, err := m.Slice(0xFFE, 3)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestWrite(t *testing.T) {
	m := New()

	assert.NoError(t, m.Write(0x400, []data.Byte{7, 8}))
	assert.Equal(t, data.Byte(7), m.Get(0x400))
	assert.Equal(t, data.Byte(8), m.Get(0x401))

	err := m.Write(0xFFF, []data.Byte{1, 2})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestLoad(t *testing.T) {
	m := New()

	assert.NoError(t, m.Load(ProgramStart, []byte{0x00, 0xE0, 0x12, 0x00}))
	assert.Equal(t, data.Byte(0x00), m.Get(0x200))
	assert.Equal(t, data.Byte(0xE0), m.Get(0x201))
	assert.Equal(t, data.Byte(0x12), m.Get(0x202))

	// font is untouched by programs loaded at the program start
	assert.Equal(t, Font[0], m.Get(0))

	tooLarge := make([]byte, Size-ProgramStart+1)
	err := m.Load(ProgramStart, tooLarge)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestReset(t *testing.T) {
	m := New()
	m.Set(0, 0)
	m.Set(0x200, 0x12)

	m.Reset()
	assert.Equal(t, data.Byte(0), m.Get(0))
	assert.Equal(t, data.Byte(0), m.Get(0x200))
}
