package verification

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/program"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestVerifyOutput(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0xF0}

	app := program.New(0x200, 3)
	app.Offsets[0].Data = []byte{0x00, 0xE0}
	app.Offsets[2].Data = []byte{0xF0}

	logger := log.NewTestLogger(t)
	assert.NoError(t, VerifyOutput(logger, rom, app))

	app.Offsets[2].Data = []byte{0xF1}
	assert.ErrorContains(t, VerifyOutput(logger, rom, app), "1 offset mismatches")

	app.Offsets[2].Data = nil
	assert.ErrorContains(t, VerifyOutput(logger, rom, app), "mismatched lengths")
}
