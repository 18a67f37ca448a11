// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8disasm/internal/config"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var errOutputIsInput = errors.New("output file would overwrite the input file")

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) (err error) {
	if err = checkOutputPath(opts.Input, opts.Output); err != nil {
		return err
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closeErr := closeOutput(writer, opts.Output); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	disasmOptions.Color = config.UseColor(opts.Color, writer)

	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, disasmOptions, writer); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}
	return nil
}

// checkOutputPath rejects an output path that points to the input file, as
// creating the output truncates the file before the ROM is read.
func checkOutputPath(input, output string) error {
	if output == "" {
		return nil
	}

	inputPath, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	outputPath, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if inputPath == outputPath {
		return fmt.Errorf("%w: %s", errOutputIsInput, output)
	}

	inputInfo, err := os.Stat(input)
	if err != nil {
		return nil // reported by the loader
	}
	outputInfo, err := os.Stat(output)
	if err != nil {
		return nil
	}
	if os.SameFile(inputInfo, outputInfo) {
		return fmt.Errorf("%w: %s", errOutputIsInput, output)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files found matching batch pattern '%s'", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile, syntax string) string {
	ext := filepath.Ext(inputFile)
	base := inputFile[:len(inputFile)-len(ext)]
	if syntax == options.SyntaxAssembly {
		return base + ".asm"
	}
	return base + ".txt"
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// closeOutput closes the writer unless it is stdout.
func closeOutput(writer io.Writer, path string) error {
	closer, ok := writer.(io.Closer)
	if !ok || writer == os.Stdout {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8disasm - CHIP-8 ROM disassembler",
		log.String("version", buildinfo.Version(version, commit, date)))
	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
