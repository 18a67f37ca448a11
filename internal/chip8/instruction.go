package chip8

// Operands contains the fields extracted from an opcode. Only the fields used
// by the family of the instruction are set.
type Operands struct {
	X   uint8  // register index, bits 8-11
	Y   uint8  // register index, bits 4-7
	N   uint8  // nibble, bits 0-3
	NN  uint8  // byte, bits 0-7
	NNN uint16 // address, bits 0-11
}

// Instruction is a decoded CHIP-8 opcode.
type Instruction struct {
	Operands

	Family Family
	Raw    uint16 // opcode the instruction was decoded from
}

// IsUnknown returns whether the opcode did not match any instruction encoding.
func (i Instruction) IsUnknown() bool {
	return i.Family == Unknown || i.Family >= familyCount
}

// args returns the operands used by the family in template order.
func (i Instruction) args() []any {
	switch i.Family.info().shape {
	case shapeRaw:
		return []any{i.Raw}
	case shapeAddress:
		return []any{i.NNN}
	case shapeRegister:
		return []any{i.X}
	case shapeRegisterByte:
		return []any{i.X, i.NN}
	case shapeRegisterPair:
		return []any{i.X, i.Y}
	case shapeDraw:
		return []any{i.X, i.Y, i.N}
	default:
		return nil
	}
}
