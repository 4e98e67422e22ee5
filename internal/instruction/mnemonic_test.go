package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

// Test that the decoder agrees with the retrogolib opcode table.
func TestLookupMatchesDecoder(t *testing.T) {
	tests := []struct {
		word     uint16
		expected *chip8.Instruction
	}{
		{0x1234, chip8.Jp},
		{0x2345, chip8.Call},
		{0x3142, chip8.Se},
		{0x4142, chip8.Sne},
		{0x5120, chip8.Se},
		{0x6005, chip8.Ld},
		{0x7003, chip8.Add},
		{0x8120, chip8.Ld},
		{0x8121, chip8.Or},
		{0x8122, chip8.And},
		{0x8123, chip8.Xor},
		{0x8124, chip8.Add},
		{0x8125, chip8.Sub},
		{0x8126, chip8.Shr},
		{0x8127, chip8.Subn},
		{0x812E, chip8.Shl},
		{0x9120, chip8.Sne},
		{0xA2F0, chip8.Ld},
		{0xB300, chip8.Jp},
		{0xC30F, chip8.Rnd},
		{0xD125, chip8.Drw},
		{0xE39E, chip8.Skp},
		{0xE3A1, chip8.Sknp},
		{0xF407, chip8.Ld},
		{0xF41E, chip8.Add},
		{0xF455, chip8.Ld},
	}

	for _, tt := range tests {
		t.Run(tt.expected.Name, func(t *testing.T) {
			ins := Lookup(tt.word)
			assert.NotNil(t, ins)
			assert.Equal(t, tt.expected.Name, ins.Name)
			assert.Equal(t, tt.expected.Name, Decode(tt.word).Name())
		})
	}
}

func TestNameInvalid(t *testing.T) {
	assert.Equal(t, ".word", Decode(0xFFFF).Name())
	assert.Equal(t, ".word $FFFF", Decode(0xFFFF).String())
}

func TestOperands(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, ""},
		{0x00EE, ""},
		{0x1234, "$234"},
		{0x2345, "$345"},
		{0x3142, "V1, $42"},
		{0x5120, "V1, V2"},
		{0x8126, "V1"},
		{0xA2F0, "I, $2F0"},
		{0xB300, "V0, $300"},
		{0xD125, "V1, V2, $5"},
		{0xE39E, "V3"},
		{0xF407, "V4, DT"},
		{0xF40A, "V4, K"},
		{0xF415, "DT, V4"},
		{0xF418, "ST, V4"},
		{0xF41E, "I, V4"},
		{0xF429, "F, V4"},
		{0xF433, "B, V4"},
		{0xF455, "[I], V4"},
		{0xF465, "V4, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).Operands())
		})
	}
}
