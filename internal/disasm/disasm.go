// Package disasm implements the CHIP-8 ROM disassembly driver.
package disasm

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/chip8disasm/internal/chip8"
	"github.com/retroenv/chip8disasm/internal/loader"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

const (
	opcodeSize   = 2
	addressSpace = 0x10000
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
}

// Stats contains counters collected while disassembling a ROM.
type Stats struct {
	Instructions int
	Unknown      int
	Jumps        int
	Calls        int
	Returns      int
	Skips        int
	Labels       int

	Families map[chip8.Family]int
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
	}
}

// Process disassembles the ROM and writes the output to the writer.
// Cancellation of the context is checked between instructions.
func (dis *Disasm) Process(ctx context.Context, rom *loader.ROM, output io.Writer) (Stats, error) {
	opcodes := rom.Opcodes()
	trailing := rom.Trailing()
	if limit := dis.addressableInstructions(); len(opcodes) > limit || (len(opcodes) == limit && len(trailing) > 0) {
		dis.logger.Warn("ROM exceeds the 16-bit address space, remaining data is not disassembled",
			log.Int("skipped_bytes", (len(opcodes)-limit)*opcodeSize+len(trailing)))
		opcodes = opcodes[:limit]
		trailing = nil
	}

	instructions := make([]chip8.Instruction, len(opcodes))
	for i, opcode := range opcodes {
		instructions[i] = chip8.Decode(opcode)
	}
	stats := collectStats(instructions)

	w := writer.New(output, writer.Options{
		Addresses:   dis.options.Addresses,
		Color:       dis.options.Color,
		HexComments: dis.options.HexComments,
	})

	var err error
	switch dis.options.Syntax {
	case options.SyntaxAssembly:
		err = dis.writeAssembly(ctx, w, rom.Checksum(), instructions, trailing, &stats)
	default:
		err = dis.writeListing(ctx, w, instructions)
	}
	if err != nil {
		return stats, err
	}

	if len(trailing) > 0 {
		dis.logger.Warn("ROM has an odd length, trailing byte is not an instruction",
			log.String("byte", fmt.Sprintf("%02x", trailing[0])))
	}
	dis.logStats(stats)
	return stats, nil
}

// addressableInstructions returns the number of instructions that fit
// between the base address and the end of the address space.
func (dis *Disasm) addressableInstructions() int {
	return (addressSpace - int(dis.options.BaseAddress)) / opcodeSize
}

// address returns the CHIP-8 memory address of the instruction with the given index.
func (dis *Disasm) address(index int) uint16 {
	return dis.options.BaseAddress + uint16(index*opcodeSize)
}

func (dis *Disasm) writeListing(ctx context.Context, w *writer.Writer, instructions []chip8.Instruction) error {
	for i, ins := range instructions {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}

		if err := w.WriteListingLine(dis.address(i), ins.Raw, chip8.Render(ins), ins.IsUnknown()); err != nil {
			return fmt.Errorf("writing instruction %d: %w", i, err)
		}
	}
	return nil
}

func (dis *Disasm) writeAssembly(ctx context.Context, w *writer.Writer, checksum uint32,
	instructions []chip8.Instruction, trailing []byte, stats *Stats) error {

	if err := w.WriteAssemblyHeader(checksum, dis.options.BaseAddress); err != nil {
		return err
	}

	labels := dis.collectLabels(instructions)
	stats.Labels = len(labels)

	for i, ins := range instructions {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("writing assembly: %w", err)
		}

		address := dis.address(i)
		if name, ok := labels[address]; ok {
			if err := w.WriteLabel(name, i == 0); err != nil {
				return err
			}
		}

		code := chip8.RenderAssemblyWithLabel(ins, labels[ins.NNN])
		if err := w.WriteAssemblyLine(address, ins.Raw, code, ins.IsUnknown()); err != nil {
			return fmt.Errorf("writing instruction %d: %w", i, err)
		}
	}

	if err := w.WriteAssemblyData(dis.address(len(instructions)), trailing); err != nil {
		return fmt.Errorf("writing trailing data: %w", err)
	}
	return nil
}

func (dis *Disasm) logStats(stats Stats) {
	for _, family := range chip8.Families() {
		if count := stats.Families[family]; count > 0 {
			dis.logger.Debug("Instruction usage",
				log.String("family", family.String()),
				log.Int("count", count))
		}
	}
}

func collectStats(instructions []chip8.Instruction) Stats {
	stats := Stats{
		Instructions: len(instructions),
		Families:     map[chip8.Family]int{},
	}

	for _, ins := range instructions {
		stats.Families[ins.Family]++

		switch {
		case ins.IsUnknown():
			stats.Unknown++
		case ins.Family.IsJump():
			stats.Jumps++
		case ins.Family.IsCall():
			stats.Calls++
		case ins.Family.IsReturn():
			stats.Returns++
		case ins.Family.IsSkip():
			stats.Skips++
		}
	}
	return stats
}
