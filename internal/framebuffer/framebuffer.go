// Package framebuffer implements the monochrome bitmap of the virtual machine.
//
// Every row is a 64 bit packed scanline, bit 63 is the leftmost pixel.
package framebuffer

import (
	"math/bits"

	"github.com/retroenv/retrochip8/internal/data"
)

// Display dimensions.
const (
	Width         = 64
	DefaultHeight = 32
)

// FrameBuffer contains a fixed number of packed scanlines.
type FrameBuffer struct {
	rows []uint64
}

// New returns a cleared frame buffer with the given number of rows.
// A height of 0 or less selects DefaultHeight.
func New(height int) *FrameBuffer {
	if height <= 0 {
		height = DefaultHeight
	}
	return &FrameBuffer{
		rows: make([]uint64, height),
	}
}

// Height returns the number of rows.
func (f *FrameBuffer) Height() int {
	return len(f.rows)
}

// Draw XORs the sprite rows into the buffer with the top left corner at x, y.
// Rows wrap vertically around the buffer height, pixels that move past the
// right edge wrap around the 64 bit scanline. It returns whether any pixel
// that was set got cleared.
func (f *FrameBuffer) Draw(x, y data.Byte, sprite []data.Byte) bool {
	var collision bool
	height := len(f.rows)

	for i, b := range sprite {
		index := (int(y) + i) % height
		line := spriteLine(b, x)

		current := f.rows[index]
		updated := current ^ line
		if updated&current != current || line&updated != line {
			collision = true
		}
		f.rows[index] = updated
	}
	return collision
}

// spriteLine positions a sprite byte in a scanline at horizontal offset x.
func spriteLine(b, x data.Byte) uint64 {
	line := uint64(b) << (Width - 8)
	return bits.RotateLeft64(line, -int(x))
}

// Clear resets all pixels.
func (f *FrameBuffer) Clear() {
	for i := range f.rows {
		f.rows[i] = 0
	}
}

// Rows returns a copy of the scanlines.
func (f *FrameBuffer) Rows() []uint64 {
	rows := make([]uint64, len(f.rows))
	copy(rows, f.rows)
	return rows
}

// Pixel returns whether the pixel at x, y is set.
func (f *FrameBuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= len(f.rows) {
		return false
	}
	return f.rows[y]&(1<<(Width-1-x)) != 0
}
