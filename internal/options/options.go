// Package options contains the program options.
package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/data"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // input ROM file
	Output string // output file, printed on console if empty
	Batch  string // batch process files matching a pattern
}

// Flags contains behavior options.
type Flags struct {
	Disasm bool // disassemble the ROM instead of running it
	Verify bool // verify that the disassembled program recreates the ROM
	Debug  bool
	Quiet  bool
}

// Emulation contains the options of the run loop.
type Emulation struct {
	Frames   int    // host frames to run
	IPS      int    // instructions per second
	FPS      int    // host frames per second
	Key      string // hexadecimal key id that is held pressed during the run
	Realtime bool   // pace the frames with the frame rate instead of running as fast as possible
}

// OutputFlags contains output formatting options of the disassembler.
type OutputFlags struct {
	NoHexComments bool
	NoOffsets     bool
	ZeroBytes     bool
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Emulation
	OutputFlags
}

// Default run loop settings.
const (
	DefaultFrames = 60
	DefaultIPS    = 600
	DefaultFPS    = 60
)

// CyclesPerFrame returns the number of cycles to run per host frame.
func (e Emulation) CyclesPerFrame() int {
	if e.FPS <= 0 || e.IPS <= 0 {
		return DefaultIPS / DefaultFPS
	}
	return max(e.IPS/e.FPS, 1)
}

// PressedKey returns the key that is held pressed during the run.
func (e Emulation) PressedKey() (data.Nibble, bool, error) {
	if e.Key == "" {
		return 0, false, nil
	}

	key, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(e.Key), "0x"), 16, 4)
	if err != nil {
		return 0, false, fmt.Errorf("invalid key '%s', expected a hexadecimal digit 0-F", e.Key)
	}
	return data.NewNibble(uint8(key)), true, nil
}
