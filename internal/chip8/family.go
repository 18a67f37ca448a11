package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Family identifies the kind of a decoded instruction.
type Family uint8

// Instruction families, Unknown is the zero value.
const (
	Unknown Family = iota
	ClearScreen
	Return
	CallMachineRoutine
	Jump
	CallSubroutine
	SkipEqualImmediate
	SkipNotEqualImmediate
	SkipEqualRegister
	SetImmediate
	AddImmediate
	Assign
	Or
	And
	Xor
	AddReg
	SubReg
	ShiftRight
	SubReverse
	ShiftLeft
	SkipNotEqualRegister
	SetIndex
	JumpAddOffset
	Random
	Draw
	SkipIfKeyPressed
	SkipIfKeyNotPressed
	GetDelayTimer
	WaitKey
	SetDelayTimer
	SetSoundTimer
	AddIndex
	SetIndexToSpriteAddr
	StoreBCD
	DumpRegisters
	LoadRegisters

	familyCount
)

// sysMnemonic is the assembler name of the machine routine call, which the
// CHIP-8 instruction table of retrogolib does not define.
const sysMnemonic = "sys"

// shape describes which operands a family uses.
type shape uint8

const (
	shapeNone         shape = iota
	shapeRaw                // raw opcode
	shapeAddress            // nnn
	shapeRegister           // x
	shapeRegisterByte       // x, nn
	shapeRegisterPair       // x, y
	shapeDraw               // x, y, n
)

type familyInfo struct {
	name     string
	mnemonic string
	shape    shape
	pseudo   string // fmt template for Render
	assembly string // fmt template for the operands of RenderAssembly
}

var families = [familyCount]familyInfo{
	Unknown:               {"Unknown", "", shapeRaw, "unknown(0x%04x)", ""},
	ClearScreen:           {"ClearScreen", chip8cpu.Cls.Name, shapeNone, "disp_clear()", ""},
	Return:                {"Return", chip8cpu.Ret.Name, shapeNone, "return", ""},
	CallMachineRoutine:    {"CallMachineRoutine", sysMnemonic, shapeAddress, "call_machine(0x%03x)", "$%03X"},
	Jump:                  {"Jump", chip8cpu.Jp.Name, shapeAddress, "goto 0x%03x", "$%03X"},
	CallSubroutine:        {"CallSubroutine", chip8cpu.Call.Name, shapeAddress, "call 0x%03x", "$%03X"},
	SkipEqualImmediate:    {"SkipEqualImmediate", chip8cpu.Se.Name, shapeRegisterByte, "skip if V%d == %d", "V%X, $%02X"},
	SkipNotEqualImmediate: {"SkipNotEqualImmediate", chip8cpu.Sne.Name, shapeRegisterByte, "skip if V%d != %d", "V%X, $%02X"},
	SkipEqualRegister:     {"SkipEqualRegister", chip8cpu.Se.Name, shapeRegisterPair, "skip if V%d == V%d", "V%X, V%X"},
	SetImmediate:          {"SetImmediate", chip8cpu.Ld.Name, shapeRegisterByte, "V%d = %d", "V%X, $%02X"},
	AddImmediate:          {"AddImmediate", chip8cpu.Add.Name, shapeRegisterByte, "V%d += %d", "V%X, $%02X"},
	Assign:                {"Assign", chip8cpu.Ld.Name, shapeRegisterPair, "V%d = V%d", "V%X, V%X"},
	Or:                    {"Or", chip8cpu.Or.Name, shapeRegisterPair, "V%d |= V%d", "V%X, V%X"},
	And:                   {"And", chip8cpu.And.Name, shapeRegisterPair, "V%d &= V%d", "V%X, V%X"},
	Xor:                   {"Xor", chip8cpu.Xor.Name, shapeRegisterPair, "V%d ^= V%d", "V%X, V%X"},
	AddReg:                {"AddReg", chip8cpu.Add.Name, shapeRegisterPair, "V%d += V%d", "V%X, V%X"},
	SubReg:                {"SubReg", chip8cpu.Sub.Name, shapeRegisterPair, "V%d -= V%d", "V%X, V%X"},
	ShiftRight:            {"ShiftRight", chip8cpu.Shr.Name, shapeRegisterPair, "V%[1]d = V%[2]d >> 1", "V%X, V%X"},
	SubReverse:            {"SubReverse", chip8cpu.Subn.Name, shapeRegisterPair, "V%[1]d = V%[2]d - V%[1]d", "V%X, V%X"},
	ShiftLeft:             {"ShiftLeft", chip8cpu.Shl.Name, shapeRegisterPair, "V%[1]d = V%[2]d << 1", "V%X, V%X"},
	SkipNotEqualRegister:  {"SkipNotEqualRegister", chip8cpu.Sne.Name, shapeRegisterPair, "skip if V%d != V%d", "V%X, V%X"},
	SetIndex:              {"SetIndex", chip8cpu.Ld.Name, shapeAddress, "I = 0x%03x", "I, $%03X"},
	JumpAddOffset:         {"JumpAddOffset", chip8cpu.Jp.Name, shapeAddress, "goto V0 + 0x%03x", "V0, $%03X"},
	Random:                {"Random", chip8cpu.Rnd.Name, shapeRegisterByte, "V%d = rand() & %d", "V%X, $%02X"},
	Draw:                  {"Draw", chip8cpu.Drw.Name, shapeDraw, "draw(V%d, V%d, %d)", "V%X, V%X, $%X"},
	SkipIfKeyPressed:      {"SkipIfKeyPressed", chip8cpu.Skp.Name, shapeRegister, "skip if key() == V%d", "V%X"},
	SkipIfKeyNotPressed:   {"SkipIfKeyNotPressed", chip8cpu.Sknp.Name, shapeRegister, "skip if key() != V%d", "V%X"},
	GetDelayTimer:         {"GetDelayTimer", chip8cpu.Ld.Name, shapeRegister, "V%d = get_delay()", "V%X, DT"},
	WaitKey:               {"WaitKey", chip8cpu.Ld.Name, shapeRegister, "V%d = get_key()", "V%X, K"},
	SetDelayTimer:         {"SetDelayTimer", chip8cpu.Ld.Name, shapeRegister, "delay_timer(V%d)", "DT, V%X"},
	SetSoundTimer:         {"SetSoundTimer", chip8cpu.Ld.Name, shapeRegister, "sound_timer(V%d)", "ST, V%X"},
	AddIndex:              {"AddIndex", chip8cpu.Add.Name, shapeRegister, "I += V%d", "I, V%X"},
	SetIndexToSpriteAddr:  {"SetIndexToSpriteAddr", chip8cpu.Ld.Name, shapeRegister, "I = sprite_addr[V%d]", "F, V%X"},
	StoreBCD:              {"StoreBCD", chip8cpu.Ld.Name, shapeRegister, "set_bcd(V%d)", "B, V%X"},
	DumpRegisters:         {"DumpRegisters", chip8cpu.Ld.Name, shapeRegister, "reg_dump(V%d, &I)", "[I], V%X"},
	LoadRegisters:         {"LoadRegisters", chip8cpu.Ld.Name, shapeRegister, "reg_load(V%d, &I)", "V%X, [I]"},
}

// info returns the table entry of the family, out of range values map to Unknown.
func (f Family) info() familyInfo {
	if f >= familyCount {
		return families[Unknown]
	}
	return families[f]
}

// String returns the family name, for example "SetImmediate".
func (f Family) String() string {
	return f.info().name
}

// Mnemonic returns the assembler mnemonic of the family, for example "ld".
// Unknown has no mnemonic and returns an empty string.
func (f Family) Mnemonic() string {
	return f.info().mnemonic
}

// IsJump returns whether the family unconditionally transfers control.
func (f Family) IsJump() bool {
	return f == Jump || f == JumpAddOffset
}

// IsCall returns whether the family calls a subroutine.
func (f Family) IsCall() bool {
	return f == CallSubroutine
}

// IsReturn returns whether the family returns from a subroutine.
func (f Family) IsReturn() bool {
	return f == Return
}

// IsSkip returns whether the family conditionally skips the next instruction.
func (f Family) IsSkip() bool {
	if f == Unknown || f >= familyCount {
		return false
	}
	return chip8cpu.SkipInstructions.Contains(f.Mnemonic())
}

// Families returns all defined families in encoding order, Unknown excluded.
func Families() []Family {
	result := make([]Family, 0, familyCount-1)
	for f := ClearScreen; f < familyCount; f++ {
		result = append(result, f)
	}
	return result
}
