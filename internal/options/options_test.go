package options

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrogolib/assert"
)

func TestEmulation_CyclesPerFrame(t *testing.T) {
	tests := []struct {
		name     string
		ips, fps int
		expected int
	}{
		{"defaults", DefaultIPS, DefaultFPS, 10},
		{"fast", 1200, 60, 20},
		{"slower than frame rate", 30, 60, 1},
		{"invalid frame rate", 600, 0, 10},
		{"invalid ips", -1, 60, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Emulation{IPS: tt.ips, FPS: tt.fps}
			assert.Equal(t, tt.expected, e.CyclesPerFrame())
		})
	}
}

func TestEmulation_PressedKey(t *testing.T) {
	tests := []struct {
		input    string
		expected data.Nibble
		pressed  bool
		valid    bool
	}{
		{"", 0, false, true},
		{"0", 0x0, true, true},
		{"a", 0xA, true, true},
		{"F", 0xF, true, true},
		{"0x5", 0x5, true, true},
		{"10", 0, false, false},
		{"x", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, pressed, err := Emulation{Key: tt.input}.PressedKey()
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, key)
			assert.Equal(t, tt.pressed, pressed)
		})
	}
}
