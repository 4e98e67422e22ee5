package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "clear.ch8")
	assert.NoError(t, os.WriteFile(input, []byte{0x00, 0xE0, 0x12, 0x00}, 0o600))

	tests := []struct {
		name     string
		disasm   bool
		contains string
	}{
		{"run", false, strings.Repeat(".", 64) + "\n"},
		{"disasm", true, "Start:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{
					Input:  input,
					Output: GenerateOutputFilename(input, tt.disasm),
				},
				Flags:     options.Flags{Disasm: tt.disasm},
				Emulation: options.Emulation{Frames: 1, IPS: 600, FPS: 60},
			}

			err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, vm.NewOptions())
			assert.NoError(t, err)

			output, err := os.ReadFile(opts.Output)
			assert.NoError(t, err)
			assert.Contains(t, string(output), tt.contains)
		})
	}
}

func TestProcessFileError(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(t.TempDir(), "missing.ch8"),
			Output: filepath.Join(t.TempDir(), "out.txt"),
		},
	}

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, vm.NewOptions())
	assert.ErrorContains(t, err, "missing.ch8")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ch8", "b.ch8", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0}, 0o600))
	}

	files, err := GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.ch8")}})
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Input: "game.ch8"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"game.ch8"}, files)
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "roms/pong.asm", GenerateOutputFilename("roms/pong.ch8", true))
	assert.Equal(t, "roms/pong.txt", GenerateOutputFilename("roms/pong.ch8", false))
	assert.Equal(t, "pong.txt", GenerateOutputFilename("pong", false))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef0123", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
