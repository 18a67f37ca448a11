// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/chip8disasm/internal/detector"
	"github.com/retroenv/chip8disasm/internal/disasm"
	"github.com/retroenv/chip8disasm/internal/loader"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

var errUnsupportedSystem = errors.New("unsupported system")

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	writer io.Writer) (disasm.Stats, error) {

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return disasm.Stats{}, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, disasmOpts, writer)
}

// ExecuteWithROM runs the disassembly pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom *loader.ROM, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (disasm.Stats, error) {

	switch system := p.detector.Detect(opts.Input, rom.Data); system {
	case arch.CHIP8System:
	case "":
		p.logger.Warn("Unknown file extension, disassembling as CHIP-8 ROM",
			log.String("file", opts.Input))
	default:
		return disasm.Stats{}, fmt.Errorf("%w '%s', only CHIP-8 ROMs can be disassembled", errUnsupportedSystem, system)
	}

	p.printInfo(opts, rom)

	dis := disasm.New(p.logger, disasmOpts)
	stats, err := dis.Process(ctx, rom, writer)
	if err != nil {
		return stats, fmt.Errorf("disassembling: %w", err)
	}

	if !opts.Quiet {
		p.logger.Info("Disassembly finished",
			log.Int("instructions", stats.Instructions),
			log.Int("unknown", stats.Unknown),
			log.Int("labels", stats.Labels),
		)
	}
	return stats, nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, rom *loader.ROM) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.String("syntax", opts.Syntax),
		log.Int("size", len(rom.Data)),
		log.String("crc32", fmt.Sprintf("%08x", rom.Checksum())),
	)
	if rom.ExceedsMemory() {
		p.logger.Warn("ROM is larger than the CHIP-8 program memory",
			log.Int("size", len(rom.Data)),
			log.Int("max", loader.MaxProgramSize))
	}
}
