// Package keyboard implements the single key input device.
package keyboard

import "github.com/retroenv/retrochip8/internal/data"

// Keyboard remembers the most recently pressed key only.
type Keyboard struct {
	key     data.Nibble
	pressed bool
}

// New returns a keyboard with no key pressed.
func New() *Keyboard {
	return &Keyboard{}
}

// Press marks key as pressed, replacing any previously pressed key.
func (k *Keyboard) Press(key data.Nibble) {
	k.key = data.NewNibble(uint8(key))
	k.pressed = true
}

// Release releases key if it is the pressed key.
func (k *Keyboard) Release(key data.Nibble) {
	if k.IsPressed(key) {
		k.Clear()
	}
}

// Clear releases any pressed key.
func (k *Keyboard) Clear() {
	k.key = 0
	k.pressed = false
}

// IsPressed returns whether key is the pressed key.
func (k *Keyboard) IsPressed(key data.Nibble) bool {
	return k.pressed && k.key == data.NewNibble(uint8(key))
}

// Pressed returns the pressed key and whether any key is pressed.
func (k *Keyboard) Pressed() (data.Nibble, bool) {
	return k.key, k.pressed
}
