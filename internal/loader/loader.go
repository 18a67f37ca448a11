// Package loader handles CHIP-8 ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"hash/crc32"
	"os"
)

// MaxProgramSize is the number of bytes available for a program in the 4KB
// CHIP-8 memory, which reserves the first 0x200 bytes for the interpreter.
const MaxProgramSize = 0x1000 - 0x200

const opcodeSize = 2

var errEmptyROM = errors.New("ROM is empty")

// ROM is a loaded CHIP-8 program image.
type ROM struct {
	Data []byte
}

// Opcodes returns the big-endian 16-bit words of the ROM. A trailing odd byte
// is not part of the result, see Trailing.
func (r *ROM) Opcodes() []uint16 {
	count := len(r.Data) / opcodeSize
	opcodes := make([]uint16, count)
	for i := range count {
		opcodes[i] = uint16(r.Data[i*opcodeSize])<<8 | uint16(r.Data[i*opcodeSize+1])
	}
	return opcodes
}

// Trailing returns the last byte of a ROM with an odd length, or nil.
func (r *ROM) Trailing() []byte {
	if len(r.Data)%opcodeSize == 0 {
		return nil
	}
	return r.Data[len(r.Data)-1:]
}

// Checksum returns the CRC-32 checksum of the ROM data.
func (r *ROM) Checksum() uint32 {
	return crc32.ChecksumIEEE(r.Data)
}

// ExceedsMemory returns whether the ROM does not fit into CHIP-8 program memory.
func (r *ROM) ExceedsMemory() bool {
	return len(r.Data) > MaxProgramSize
}

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file at the given path. CHIP-8 ROMs are raw program
// images without any header.
func (l *Loader) Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	rom, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return rom, nil
}

// LoadFromBytes creates a ROM from the given program image.
func (l *Loader) LoadFromBytes(data []byte) (*ROM, error) {
	if len(data) == 0 {
		return nil, errEmptyROM
	}
	return &ROM{Data: data}, nil
}
