// Package verification verifies that the disassembled program recreates the input.
package verification

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/program"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

// VerifyOutput verifies that the data of all program offsets recreates the exact ROM.
func VerifyOutput(logger *log.Logger, rom []byte, app *program.Program) error {
	output := make([]byte, 0, len(rom))
	for _, offset := range app.Offsets {
		output = append(output, offset.Data...)
	}

	if err := checkBufferEqual(logger, app, rom, output); err != nil {
		return fmt.Errorf("program mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, app *program.Program, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs int
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < maxLoggedMismatches {
			logger.Warn("Offset mismatch",
				log.Stringer("address", app.Address(i)),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
