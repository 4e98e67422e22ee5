package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/framebuffer"
)

// Pixel characters of the text frame buffer output.
const (
	PixelOn  = '#'
	PixelOff = '.'
)

// WriteFrameBuffer writes the packed scanlines as text, one line per row.
// Bit 63 of a row is the leftmost pixel.
func WriteFrameBuffer(writer io.Writer, rows []uint64) error {
	buf := &strings.Builder{}
	buf.Grow(len(rows) * (framebuffer.Width + 1))

	for _, row := range rows {
		for x := range framebuffer.Width {
			if row&(1<<(framebuffer.Width-1-x)) != 0 {
				buf.WriteByte(PixelOn)
			} else {
				buf.WriteByte(PixelOff)
			}
		}
		buf.WriteByte('\n')
	}

	if _, err := io.WriteString(writer, buf.String()); err != nil {
		return fmt.Errorf("writing frame buffer: %w", err)
	}
	return nil
}
