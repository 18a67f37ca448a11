// Package chip8 decodes CHIP-8 opcodes and renders them as readable mnemonics.
//
// # Instruction Set
//
// Every CHIP-8 instruction is a single big-endian 16-bit word. The top nibble
// selects one of 16 groups; the groups 0, 5, 8, 9, E and F use a second,
// group specific mask to pick the instruction:
//
//	0x0NNN  low 12 bits: 0E0 cls, 0EE ret, anything else sys NNN
//	0x5XY0  low nibble must be 0
//	0x8XYn  low nibble 0-7 or E
//	0x9XY0  low nibble must be 0
//	0xEXnn  low byte 9E or A1
//	0xFXnn  low byte 07, 0A, 15, 18, 1E, 29, 33, 55 or 65
//
// All other groups hold exactly one instruction. Opcodes that match no
// encoding decode to the Unknown family, decoding never fails.
//
// # Operands
//
// Operands are read from fixed bit positions:
//
//	X   = (opcode >> 8) & 0xF
//	Y   = (opcode >> 4) & 0xF
//	N   = opcode & 0xF
//	NN  = opcode & 0xFF
//	NNN = opcode & 0xFFF
//
// Only the operands used by the decoded family are set.
//
// # Rendering
//
// Render returns the pseudo code form used for listings, for example
// "V10 = 63" for 0x6A3F. RenderAssembly returns the assembler form, for
// example "ld VA, $3F". Both are pure and safe for concurrent use.
package chip8
