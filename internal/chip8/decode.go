package chip8

// arithmeticFamilies maps the low nibble of 0x8XYn opcodes.
var arithmeticFamilies = [16]Family{
	0x0: Assign,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: AddReg,
	0x5: SubReg,
	0x6: ShiftRight,
	0x7: SubReverse,
	0xE: ShiftLeft,
}

// keyFamilies maps the low byte of 0xEXnn opcodes.
var keyFamilies = [256]Family{
	0x9E: SkipIfKeyPressed,
	0xA1: SkipIfKeyNotPressed,
}

// miscFamilies maps the low byte of 0xFXnn opcodes.
var miscFamilies = [256]Family{
	0x07: GetDelayTimer,
	0x0A: WaitKey,
	0x15: SetDelayTimer,
	0x18: SetSoundTimer,
	0x1E: AddIndex,
	0x29: SetIndexToSpriteAddr,
	0x33: StoreBCD,
	0x55: DumpRegisters,
	0x65: LoadRegisters,
}

const (
	clearScreenCode = 0x0E0
	returnCode      = 0x0EE
)

// Decode decodes a 16-bit opcode. Every opcode decodes to exactly one
// instruction, opcodes without a matching encoding return the Unknown family.
func Decode(opcode uint16) Instruction {
	switch opcode >> 12 {
	case 0x0:
		switch opcode & 0x0FFF {
		case clearScreenCode:
			return Instruction{Family: ClearScreen, Raw: opcode}
		case returnCode:
			return Instruction{Family: Return, Raw: opcode}
		default:
			return withAddress(CallMachineRoutine, opcode)
		}
	case 0x1:
		return withAddress(Jump, opcode)
	case 0x2:
		return withAddress(CallSubroutine, opcode)
	case 0x3:
		return withRegisterByte(SkipEqualImmediate, opcode)
	case 0x4:
		return withRegisterByte(SkipNotEqualImmediate, opcode)
	case 0x5:
		if opcode&0x000F != 0 {
			return unknown(opcode)
		}
		return withRegisterPair(SkipEqualRegister, opcode)
	case 0x6:
		return withRegisterByte(SetImmediate, opcode)
	case 0x7:
		return withRegisterByte(AddImmediate, opcode)
	case 0x8:
		return withRegisterPair(arithmeticFamilies[opcode&0x000F], opcode)
	case 0x9:
		if opcode&0x000F != 0 {
			return unknown(opcode)
		}
		return withRegisterPair(SkipNotEqualRegister, opcode)
	case 0xA:
		return withAddress(SetIndex, opcode)
	case 0xB:
		return withAddress(JumpAddOffset, opcode)
	case 0xC:
		return withRegisterByte(Random, opcode)
	case 0xD:
		ins := withRegisterPair(Draw, opcode)
		ins.N = uint8(opcode & 0x000F)
		return ins
	case 0xE:
		return withRegister(keyFamilies[opcode&0x00FF], opcode)
	default: // 0xF
		return withRegister(miscFamilies[opcode&0x00FF], opcode)
	}
}

func unknown(opcode uint16) Instruction {
	return Instruction{Family: Unknown, Raw: opcode}
}

func withAddress(family Family, opcode uint16) Instruction {
	return Instruction{
		Operands: Operands{NNN: opcode & 0x0FFF},
		Family:   family,
		Raw:      opcode,
	}
}

// withRegister returns an instruction using only the X operand. A table
// miss passes Unknown, which keeps the operands empty.
func withRegister(family Family, opcode uint16) Instruction {
	if family == Unknown {
		return unknown(opcode)
	}
	return Instruction{
		Operands: Operands{X: registerX(opcode)},
		Family:   family,
		Raw:      opcode,
	}
}

func withRegisterByte(family Family, opcode uint16) Instruction {
	return Instruction{
		Operands: Operands{
			X:  registerX(opcode),
			NN: uint8(opcode & 0x00FF),
		},
		Family: family,
		Raw:    opcode,
	}
}

func withRegisterPair(family Family, opcode uint16) Instruction {
	if family == Unknown {
		return unknown(opcode)
	}
	return Instruction{
		Operands: Operands{
			X: registerX(opcode),
			Y: registerY(opcode),
		},
		Family: family,
		Raw:    opcode,
	}
}

// registerX extracts the X register nibble from an opcode.
func registerX(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// registerY extracts the Y register nibble from an opcode.
func registerY(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}
