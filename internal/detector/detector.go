// Package detector handles ROM system detection.
package detector

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// nesMagic is the start of an iNES file header.
var nesMagic = []byte{'N', 'E', 'S', 0x1A}

// Detector handles system detection from file contents and extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system of a ROM. A known file header takes
// precedence over the file extension. An empty system is returned if
// neither identifies the system.
func (d *Detector) Detect(filename string, data []byte) arch.System {
	if bytes.HasPrefix(data, nesMagic) {
		return arch.NES
	}

	system := d.detectFromFile(filename)
	d.logger.Debug("Auto-detected system",
		log.String("system", string(system)),
		log.String("file", filename))
	return system
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom", ".bin", "":
		// CHIP-8 programs are raw images, .rom and .bin are commonly used as well
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		return ""
	}
}
