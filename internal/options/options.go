// Package options contains the program options.
package options

import (
	"strings"
)

// Output syntaxes.
const (
	SyntaxPseudo   = "pseudo"
	SyntaxAssembly = "asm"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ProgramStart is the CHIP-8 memory address that ROM offset 0 is loaded to.
const ProgramStart = 0x200

// Parameters contains file path options.
type Parameters struct {
	Input  string // input ROM file
	Output string // output file, stdout if empty
	Batch  string // batch process files matching pattern
}

// Flags contains behavior options.
type Flags struct {
	Syntax string // output syntax: pseudo, asm
	Color  string // color mode for unknown opcodes: auto, always, never
	Debug  bool
	Quiet  bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Syntax      string // what output syntax to use
	BaseAddress uint16 // memory address of the first ROM byte

	Addresses   bool // prefix every line with the memory address
	Color       bool // highlight unknown opcodes with terminal colors
	HexComments bool // assembly syntax: append address and opcode as comment
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(syntax string) Disassembler {
	return Disassembler{
		Syntax:      strings.ToLower(syntax),
		BaseAddress: ProgramStart,

		HexComments: true,
	}
}
