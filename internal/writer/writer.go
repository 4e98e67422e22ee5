// Package writer implements the text output of disassembled programs and frame buffers.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/program"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, byteCount int) error

// Writer implements assembly listing writing functionality.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexComments    bool // output the opcode bytes as hex values in comments
	OffsetComments bool // output the address of every line in comments
	ZeroBytes      bool // output trailing zero bytes
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the header and all program offsets.
func (w Writer) Write() error {
	if err := w.WriteCommentHeader(); err != nil {
		return err
	}

	endIndex := len(w.app.Offsets)
	if !w.options.ZeroBytes {
		endIndex = w.app.LastNonZeroByte()
	}
	return w.ProcessOffsets(endIndex)
}

// WriteCommentHeader writes the CRC32 checksum and start address as comments to the output.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksums.Overall); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Start address: %s\n\n", w.app.StartAddress); err != nil {
		return fmt.Errorf("writing start address: %w", err)
	}
	return nil
}

// ProcessOffsets writes all code offsets, labels and their comments up to the end index.
func (w Writer) ProcessOffsets(endIndex int) error {
	var previousLineWasCode bool

	for i := 0; i < endIndex; i++ {
		offset := w.app.Offsets[i]

		if err := w.writeLabel(i, offset); err != nil {
			return err
		}

		// print an empty line in case of data after code and vice versa
		isCode := offset.IsType(program.CodeOffset)
		if i > 0 && offset.Label == "" && len(offset.Data) > 0 && isCode != previousLineWasCode {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		if len(offset.Data) > 0 {
			previousLineWasCode = isCode
		}

		adjustment, err := w.writeOffset(i, endIndex, offset)
		if err != nil {
			return err
		}
		i += adjustment
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w Writer) BundleDataWrites(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			if _, err := fmt.Fprintf(buf, "$%02x, ", data[i+j]); err != nil {
				return fmt.Errorf("writing data byte: %w", err)
			}
		}

		line := strings.TrimRight(buf.String(), ", ")

		if lineWriter != nil {
			if err := lineWriter(line, toWrite); err != nil {
				return fmt.Errorf("writing data line using custom writer: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
				return fmt.Errorf("writing data line: %w", err)
			}
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

func (w Writer) writeOffset(index, endIndex int, offset program.Offset) (int, error) {
	if len(offset.Data) == 0 {
		return 0, nil
	}

	if !offset.IsType(program.CodeOffset) {
		count, err := w.bundleDataWrites(index, endIndex)
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return count - 1, nil
		}
		return 0, nil
	}

	if err := w.writeCodeLine(index, offset); err != nil {
		return 0, fmt.Errorf("writing code line: %w", err)
	}
	return 0, nil
}

func (w Writer) writeLabel(index int, offset program.Offset) error {
	if offset.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w.writer, "%s:\n", offset.Label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(index int, offset program.Offset) error {
	comment, err := w.comment(index, offset)
	if err != nil {
		return err
	}

	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "  %s\n", offset.Code)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %-30s ; %s\n", offset.Code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// comment returns the combined address, opcode bytes and offset comment.
func (w Writer) comment(index int, offset program.Offset) (string, error) {
	var parts []string

	if w.options.OffsetComments {
		parts = append(parts, w.app.Address(index).String())
	}
	if w.options.HexComments {
		hex, err := offset.HexCodeComment()
		if err != nil {
			return "", err
		}
		parts = append(parts, hex)
	}
	if offset.Comment != "" {
		parts = append(parts, offset.Comment)
	}
	return strings.Join(parts, "  "), nil
}

// bundleDataWrites writes the data bytes starting at the index bundled per line.
func (w Writer) bundleDataWrites(startIndex, endIndex int) (int, error) {
	data := w.getData(startIndex, endIndex)
	if len(data) == 0 {
		return 0, nil
	}

	currentIndex := startIndex
	lineWriter := func(line string, byteCount int) error {
		var parts []string
		if w.options.OffsetComments {
			parts = append(parts, w.app.Address(currentIndex).String())
		}
		if comment := w.app.Offsets[currentIndex].Comment; comment != "" {
			parts = append(parts, comment)
		}

		var err error
		if len(parts) == 0 {
			_, err = fmt.Fprintf(w.writer, "  %s\n", line)
		} else {
			_, err = fmt.Fprintf(w.writer, "  %-30s ; %s\n", line, strings.Join(parts, "  "))
		}
		if err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		currentIndex += byteCount
		return nil
	}

	if err := w.BundleDataWrites(data, lineWriter); err != nil {
		return 0, fmt.Errorf("writing data: %w", err)
	}

	return len(data), nil
}

func (w Writer) getData(startIndex, endIndex int) []byte {
	var data []byte

	for i := startIndex; i < endIndex; i++ {
		offset := w.app.Offsets[i]

		if offset.IsType(program.CodeOffset) || len(offset.Data) == 0 {
			break
		}
		// stop at first label or commented offset after start index
		if i > startIndex && (offset.Label != "" || offset.Comment != "") {
			break
		}

		data = append(data, offset.Data...)
	}

	return data
}
