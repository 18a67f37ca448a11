// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/chip8disasm/internal/options"
)

var (
	validSyntaxes   = []string{options.SyntaxPseudo, options.SyntaxAssembly}
	validColorModes = []string{options.ColorAuto, options.ColorAlways, options.ColorNever}
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	var disasmFlags disasmOptionFlags
	readDisasmOptionFlags(flags, &disasmFlags)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions := options.NewDisassembler(opts.Syntax)
	disasmFlags.apply(&disasmOptions)

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8disasm [options] <file to disassemble>\n\n")
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Syntax = strings.ToLower(opts.Syntax)
	if opts.Syntax == "assembly" || opts.Syntax == "retroasm" {
		opts.Syntax = options.SyntaxAssembly
	}
	if !slices.Contains(validSyntaxes, opts.Syntax) {
		return fmt.Errorf("unsupported syntax: %s. Valid options: %s",
			opts.Syntax, strings.Join(validSyntaxes, ", "))
	}

	opts.Color = strings.ToLower(opts.Color)
	if !slices.Contains(validColorModes, opts.Color) {
		return fmt.Errorf("unsupported color mode: %s. Valid options: %s",
			opts.Color, strings.Join(validColorModes, ", "))
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically name output files, for example *.ch8")
	flags.StringVar(&opts.Syntax, "syntax", options.SyntaxPseudo, "output syntax (pseudo/asm)")
	flags.StringVar(&opts.Color, "color", options.ColorAuto, "highlight unknown opcodes (auto/always/never)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// disasmOptionFlags holds the raw flag values that map to disassembler options.
type disasmOptionFlags struct {
	addresses     bool
	noHexComments bool
}

func readDisasmOptionFlags(flags *flag.FlagSet, opts *disasmOptionFlags) {
	flags.BoolVar(&opts.addresses, "addr", false, "prefix every line with the CHIP-8 memory address")
	flags.BoolVar(&opts.noHexComments, "nohexcomments", false, "do not output address and opcode as comments in asm syntax")
}

func (f disasmOptionFlags) apply(opts *options.Disassembler) {
	opts.Addresses = f.addresses
	// Apply inverse logic for hex comments
	opts.HexComments = !f.noHexComments
}
