package keyboard

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrogolib/assert"
)

func TestNothingPressed(t *testing.T) {
	k := New()

	for key := data.Nibble(0); key <= 0xF; key++ {
		assert.False(t, k.IsPressed(key))
	}
	_, ok := k.Pressed()
	assert.False(t, ok)
}

func TestPressOverwrites(t *testing.T) {
	k := New()

	k.Press(0x1)
	assert.True(t, k.IsPressed(0x1))

	k.Press(0xA)
	assert.True(t, k.IsPressed(0xA))
	assert.False(t, k.IsPressed(0x1))

	key, ok := k.Pressed()
	assert.True(t, ok)
	assert.Equal(t, data.Nibble(0xA), key)
}

func TestPressedKeyZero(t *testing.T) {
	k := New()

	k.Press(0x0)
	assert.True(t, k.IsPressed(0x0))
}

func TestRelease(t *testing.T) {
	k := New()
	k.Press(0x5)

	k.Release(0x6)
	assert.True(t, k.IsPressed(0x5))

	k.Release(0x5)
	assert.False(t, k.IsPressed(0x5))
}

func TestClear(t *testing.T) {
	k := New()
	k.Press(0x5)

	k.Clear()
	assert.False(t, k.IsPressed(0x5))
	_, ok := k.Pressed()
	assert.False(t, ok)
}
