package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawGlyph draws the font glyph 0 at the top left corner and loops.
var drawGlyph = []byte{
	0x60, 0x00, // ld V0, $00
	0xF0, 0x29, // ld F, V0
	0xD0, 0x05, // drw V0, V0, 5
	0x12, 0x06, // jp $206
}

func testOptions() (options.Program, vm.Options) {
	opts := options.Program{
		Emulation: options.Emulation{
			Frames: 2,
			IPS:    options.DefaultIPS,
			FPS:    options.DefaultFPS,
		},
	}
	vmOptions := vm.NewOptions()
	vmOptions.Seed = 1
	return opts, vmOptions
}

func TestNew(t *testing.T) {
	p := New(log.NewTestLogger(t))

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecuteRun(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()

	buf := &bytes.Buffer{}
	err := p.ExecuteWithROM(context.Background(), drawGlyph, opts, vmOptions, buf)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 32)
	assert.Equal(t, "####"+strings.Repeat(".", 60), lines[0])
	assert.Equal(t, "#..#"+strings.Repeat(".", 60), lines[1])
	assert.Equal(t, "####"+strings.Repeat(".", 60), lines[4])
	assert.Equal(t, strings.Repeat(".", 64), lines[5])
}

func TestExecuteRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyph.ch8")
	assert.NoError(t, os.WriteFile(path, drawGlyph, 0o600))

	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()
	opts.Input = path
	vmOptions.Height = 16

	buf := &bytes.Buffer{}
	assert.NoError(t, p.Execute(context.Background(), opts, vmOptions, buf))
	assert.Equal(t, 16, strings.Count(buf.String(), "\n"))
}

func TestExecuteMissingFile(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()
	opts.Input = filepath.Join(t.TempDir(), "missing.ch8")

	err := p.Execute(context.Background(), opts, vmOptions, &bytes.Buffer{})
	assert.ErrorContains(t, err, "loading rom")
}

func TestExecuteFatalError(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()

	err := p.ExecuteWithROM(context.Background(), []byte{0x00, 0xEE}, opts, vmOptions, &bytes.Buffer{})
	assert.True(t, errors.Is(err, vm.ErrStackUnderflow))
}

func TestExecutePressedKey(t *testing.T) {
	rom := []byte{
		0xF3, 0x0A, // ld V3, K
		0xF3, 0x29, // ld F, V3
		0xD0, 0x05, // drw V0, V0, 5
		0x12, 0x06, // jp $206
	}

	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()
	opts.Key = "1"

	buf := &bytes.Buffer{}
	assert.NoError(t, p.ExecuteWithROM(context.Background(), rom, opts, vmOptions, buf))

	// glyph 1 starts with $20
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "..#."+strings.Repeat(".", 60), lines[0])
}

func TestExecuteBreakpoint(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()
	vmOptions.Breakpoints = []data.Address{0x204}

	buf := &bytes.Buffer{}
	assert.NoError(t, p.ExecuteWithROM(context.Background(), drawGlyph, opts, vmOptions, buf))

	// paused before drawing
	assert.False(t, strings.Contains(buf.String(), "#"))
}

func TestExecuteCanceled(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.ExecuteWithROM(ctx, drawGlyph, opts, vmOptions, &bytes.Buffer{})
	assert.True(t, errors.Is(err, context.Canceled))

	opts.Realtime = true
	err = p.ExecuteWithROM(ctx, drawGlyph, opts, vmOptions, &bytes.Buffer{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecuteRealtime(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()
	opts.Realtime = true
	opts.FPS = 1000
	opts.IPS = 10000

	buf := &bytes.Buffer{}
	assert.NoError(t, p.ExecuteWithROM(context.Background(), drawGlyph, opts, vmOptions, buf))
	assert.True(t, strings.HasPrefix(buf.String(), "####"))
}

func TestExecuteDisasm(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts, vmOptions := testOptions()
	opts.Disasm = true
	opts.Verify = true
	opts.NoHexComments = true
	opts.NoOffsets = true

	buf := &bytes.Buffer{}
	assert.NoError(t, p.ExecuteWithROM(context.Background(), drawGlyph, opts, vmOptions, buf))

	output := buf.String()
	assert.Contains(t, output, "; Start address: $200")
	assert.Contains(t, output, "Start:\n")
	assert.Contains(t, output, "_label_206:\n")
	assert.Contains(t, output, " _label_206\n")
}
