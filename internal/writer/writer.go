// Package writer implements the listing and assembly file output.
package writer

import (
	"fmt"
	"io"
	"strings"
)

const (
	colorUnknown = "\x1b[31m"
	colorReset   = "\x1b[m"
)

// Writer writes disassembled instructions line by line.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Addresses   bool // prefix listing lines with the memory address
	Color       bool // highlight unknown opcodes using terminal colors
	HexComments bool // append address and opcode as comment to assembly lines
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// WriteListingLine writes a single listing line of the form
// "<opcode> <text>", the opcode as 4 digit lowercase hex.
func (w Writer) WriteListingLine(address, opcode uint16, text string, unknown bool) error {
	buf := &strings.Builder{}
	if w.options.Addresses {
		fmt.Fprintf(buf, "%04x: ", address)
	}
	fmt.Fprintf(buf, "%04x %s\n", opcode, w.highlight(text, unknown))

	if _, err := io.WriteString(w.writer, buf.String()); err != nil {
		return fmt.Errorf("writing listing line: %w", err)
	}
	return nil
}

// WriteAssemblyHeader writes the header comments and origin directive of an
// assembly file.
func (w Writer) WriteAssemblyHeader(checksum uint32, baseAddress uint16) error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Program starts at $%03X in CHIP-8 memory space\n\n", baseAddress); err != nil {
		return fmt.Errorf("writing memory space comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, ".org $%03X\n\n", baseAddress); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}
	return nil
}

// WriteLabel writes a label line, preceded by an empty line unless it is the
// first line after the header.
func (w Writer) WriteLabel(name string, first bool) error {
	if !first {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", name); err != nil {
		return fmt.Errorf("writing label %s: %w", name, err)
	}
	return nil
}

// WriteAssemblyLine writes an indented instruction with an optional comment.
func (w Writer) WriteAssemblyLine(address, opcode uint16, code string, unknown bool) error {
	var comment string
	if w.options.HexComments {
		comment = fmt.Sprintf("$%04X %04X", address, opcode)
	}
	return w.writeCodeLine(w.highlight(code, unknown), comment)
}

// WriteAssemblyData writes raw data bytes as a data directive.
func (w Writer) WriteAssemblyData(address uint16, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	buf := &strings.Builder{}
	buf.WriteString(".byte ")
	for i, b := range data {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "$%02X", b)
	}

	var comment string
	if w.options.HexComments {
		comment = fmt.Sprintf("$%04X", address)
	}
	return w.writeCodeLine(buf.String(), comment)
}

func (w Writer) writeCodeLine(code, comment string) error {
	line := "    " + code
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
			return fmt.Errorf("writing code: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", line, comment); err != nil {
		return fmt.Errorf("writing code with comment: %w", err)
	}
	return nil
}

func (w Writer) highlight(text string, unknown bool) string {
	if !unknown || !w.options.Color {
		return text
	}
	return colorUnknown + text + colorReset
}
