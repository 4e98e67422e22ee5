package program

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/data"
	"github.com/retroenv/retrogolib/assert"
)

func TestOffset_Type(t *testing.T) {
	offset := &Offset{}
	assert.False(t, offset.IsType(CodeOffset))

	offset.SetType(CodeOffset)
	offset.SetType(CallDestination)
	assert.True(t, offset.IsType(CodeOffset))
	assert.True(t, offset.IsType(CallDestination))
	assert.True(t, offset.IsType(DataOffset|CallDestination))
	assert.False(t, offset.IsType(DataOffset))

	offset.ClearType(CodeOffset)
	assert.False(t, offset.IsType(CodeOffset))
	assert.True(t, offset.IsType(CallDestination))
}

func TestOffset_HexCodeComment(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"data byte", []byte{0xF0}, "F0"},
		{"instruction", []byte{0x00, 0xE0}, "00 E0"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := Offset{Data: tt.data}
			comment, err := offset.HexCodeComment()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, comment)
		})
	}
}

func TestProgram_OffsetInfo(t *testing.T) {
	app := New(0x200, 4)

	assert.True(t, app.Contains(0x200))
	assert.True(t, app.Contains(0x203))
	assert.False(t, app.Contains(0x1FF))
	assert.False(t, app.Contains(0x204))

	assert.Nil(t, app.OffsetInfo(0x204))
	offset := app.OffsetInfo(0x202)
	assert.NotNil(t, offset)
	offset.Label = "test"
	assert.Equal(t, "test", app.Offsets[2].Label)

	assert.Equal(t, data.Address(0x203), app.Address(3))
}

func TestProgram_LastNonZeroByte(t *testing.T) {
	app := New(0x200, 6)
	for i := range app.Offsets {
		app.Offsets[i].Data = []byte{0}
	}
	assert.Equal(t, 0, app.LastNonZeroByte())

	app.Offsets[1].Data = []byte{0x12}
	assert.Equal(t, 2, app.LastNonZeroByte())

	app.Offsets[3].Label = "_data_203"
	assert.Equal(t, 4, app.LastNonZeroByte())
}
