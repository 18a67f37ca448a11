package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected Instruction
	}{
		{"CLS", 0x00E0, Instruction{Family: ClearScreen, Raw: 0x00E0}},
		{"RET", 0x00EE, Instruction{Family: Return, Raw: 0x00EE}},
		{"SYS next to CLS", 0x00E1, Instruction{Operands: Operands{NNN: 0x0E1}, Family: CallMachineRoutine, Raw: 0x00E1}},
		{"SYS zero", 0x0000, Instruction{Family: CallMachineRoutine, Raw: 0x0000}},
		{"SYS with CLS low byte", 0x01E0, Instruction{Operands: Operands{NNN: 0x1E0}, Family: CallMachineRoutine, Raw: 0x01E0}},
		{"JP addr", 0x1234, Instruction{Operands: Operands{NNN: 0x234}, Family: Jump, Raw: 0x1234}},
		{"CALL addr", 0x2FFF, Instruction{Operands: Operands{NNN: 0xFFF}, Family: CallSubroutine, Raw: 0x2FFF}},
		{"SE Vx, byte", 0x3A12, Instruction{Operands: Operands{X: 0xA, NN: 0x12}, Family: SkipEqualImmediate, Raw: 0x3A12}},
		{"SNE Vx, byte", 0x4B34, Instruction{Operands: Operands{X: 0xB, NN: 0x34}, Family: SkipNotEqualImmediate, Raw: 0x4B34}},
		{"SE Vx, Vy", 0x5120, Instruction{Operands: Operands{X: 1, Y: 2}, Family: SkipEqualRegister, Raw: 0x5120}},
		{"5XY1 unassigned", 0x5121, Instruction{Family: Unknown, Raw: 0x5121}},
		{"SE Vx, Vy valid", 0x5230, Instruction{Operands: Operands{X: 2, Y: 3}, Family: SkipEqualRegister, Raw: 0x5230}},
		{"SE Vx, Vy low nibble set", 0x5231, Instruction{Family: Unknown, Raw: 0x5231}},
		{"LD Vx, byte", 0x6A3F, Instruction{Operands: Operands{X: 0xA, NN: 0x3F}, Family: SetImmediate, Raw: 0x6A3F}},
		{"ADD Vx, byte", 0x7F01, Instruction{Operands: Operands{X: 0xF, NN: 0x01}, Family: AddImmediate, Raw: 0x7F01}},
		{"LD Vx, Vy", 0x8120, Instruction{Operands: Operands{X: 1, Y: 2}, Family: Assign, Raw: 0x8120}},
		{"OR", 0x8121, Instruction{Operands: Operands{X: 1, Y: 2}, Family: Or, Raw: 0x8121}},
		{"AND", 0x8122, Instruction{Operands: Operands{X: 1, Y: 2}, Family: And, Raw: 0x8122}},
		{"XOR", 0x8123, Instruction{Operands: Operands{X: 1, Y: 2}, Family: Xor, Raw: 0x8123}},
		{"ADD Vx, Vy", 0x8124, Instruction{Operands: Operands{X: 1, Y: 2}, Family: AddReg, Raw: 0x8124}},
		{"SUB", 0x8125, Instruction{Operands: Operands{X: 1, Y: 2}, Family: SubReg, Raw: 0x8125}},
		{"SHR", 0x8126, Instruction{Operands: Operands{X: 1, Y: 2}, Family: ShiftRight, Raw: 0x8126}},
		{"SUBN", 0x8127, Instruction{Operands: Operands{X: 1, Y: 2}, Family: SubReverse, Raw: 0x8127}},
		{"SHL", 0x812E, Instruction{Operands: Operands{X: 1, Y: 2}, Family: ShiftLeft, Raw: 0x812E}},
		{"8XY8 unassigned", 0x8128, Instruction{Family: Unknown, Raw: 0x8128}},
		{"8XYF unassigned", 0x812F, Instruction{Family: Unknown, Raw: 0x812F}},
		{"SNE Vx, Vy", 0x9AB0, Instruction{Operands: Operands{X: 0xA, Y: 0xB}, Family: SkipNotEqualRegister, Raw: 0x9AB0}},
		{"SNE Vx, Vy low nibble set", 0x9121, Instruction{Family: Unknown, Raw: 0x9121}},
		{"LD I, addr", 0xA234, Instruction{Operands: Operands{NNN: 0x234}, Family: SetIndex, Raw: 0xA234}},
		{"JP V0, addr", 0xB234, Instruction{Operands: Operands{NNN: 0x234}, Family: JumpAddOffset, Raw: 0xB234}},
		{"RND", 0xC2FF, Instruction{Operands: Operands{X: 2, NN: 0xFF}, Family: Random, Raw: 0xC2FF}},
		{"DRW", 0xD235, Instruction{Operands: Operands{X: 2, Y: 3, N: 5}, Family: Draw, Raw: 0xD235}},
		{"SKP V0", 0xE09E, Instruction{Family: SkipIfKeyPressed, Raw: 0xE09E}},
		{"SKP VF", 0xEF9E, Instruction{Operands: Operands{X: 0xF}, Family: SkipIfKeyPressed, Raw: 0xEF9E}},
		{"SKNP V0", 0xE0A1, Instruction{Family: SkipIfKeyNotPressed, Raw: 0xE0A1}},
		{"SKNP VF", 0xEFA1, Instruction{Operands: Operands{X: 0xF}, Family: SkipIfKeyNotPressed, Raw: 0xEFA1}},
		{"E091 unassigned", 0xE091, Instruction{Family: Unknown, Raw: 0xE091}},
		{"LD Vx, DT", 0xF107, Instruction{Operands: Operands{X: 1}, Family: GetDelayTimer, Raw: 0xF107}},
		{"LD Vx, K", 0xF20A, Instruction{Operands: Operands{X: 2}, Family: WaitKey, Raw: 0xF20A}},
		{"LD DT, Vx", 0xF315, Instruction{Operands: Operands{X: 3}, Family: SetDelayTimer, Raw: 0xF315}},
		{"LD ST, Vx", 0xF418, Instruction{Operands: Operands{X: 4}, Family: SetSoundTimer, Raw: 0xF418}},
		{"ADD I, Vx", 0xF51E, Instruction{Operands: Operands{X: 5}, Family: AddIndex, Raw: 0xF51E}},
		{"LD F, Vx", 0xF629, Instruction{Operands: Operands{X: 6}, Family: SetIndexToSpriteAddr, Raw: 0xF629}},
		{"LD B, Vx", 0xF733, Instruction{Operands: Operands{X: 7}, Family: StoreBCD, Raw: 0xF733}},
		{"LD [I], Vx", 0xF855, Instruction{Operands: Operands{X: 8}, Family: DumpRegisters, Raw: 0xF855}},
		{"LD Vx, [I]", 0xFF65, Instruction{Operands: Operands{X: 0xF}, Family: LoadRegisters, Raw: 0xFF65}},
		{"FFFF unassigned", 0xFFFF, Instruction{Family: Unknown, Raw: 0xFFFF}},
		{"F000 unassigned", 0xF000, Instruction{Family: Unknown, Raw: 0xF000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.opcode))
		})
	}
}

// encoding describes one instruction encoding as mask and value, independent
// of the decoder dispatch.
type encoding struct {
	family Family
	mask   uint16
	value  uint16
	except []uint16
}

var encodings = []encoding{
	{ClearScreen, 0xFFFF, 0x00E0, nil},
	{Return, 0xFFFF, 0x00EE, nil},
	{CallMachineRoutine, 0xF000, 0x0000, []uint16{0x00E0, 0x00EE}},
	{Jump, 0xF000, 0x1000, nil},
	{CallSubroutine, 0xF000, 0x2000, nil},
	{SkipEqualImmediate, 0xF000, 0x3000, nil},
	{SkipNotEqualImmediate, 0xF000, 0x4000, nil},
	{SkipEqualRegister, 0xF00F, 0x5000, nil},
	{SetImmediate, 0xF000, 0x6000, nil},
	{AddImmediate, 0xF000, 0x7000, nil},
	{Assign, 0xF00F, 0x8000, nil},
	{Or, 0xF00F, 0x8001, nil},
	{And, 0xF00F, 0x8002, nil},
	{Xor, 0xF00F, 0x8003, nil},
	{AddReg, 0xF00F, 0x8004, nil},
	{SubReg, 0xF00F, 0x8005, nil},
	{ShiftRight, 0xF00F, 0x8006, nil},
	{SubReverse, 0xF00F, 0x8007, nil},
	{ShiftLeft, 0xF00F, 0x800E, nil},
	{SkipNotEqualRegister, 0xF00F, 0x9000, nil},
	{SetIndex, 0xF000, 0xA000, nil},
	{JumpAddOffset, 0xF000, 0xB000, nil},
	{Random, 0xF000, 0xC000, nil},
	{Draw, 0xF000, 0xD000, nil},
	{SkipIfKeyPressed, 0xF0FF, 0xE09E, nil},
	{SkipIfKeyNotPressed, 0xF0FF, 0xE0A1, nil},
	{GetDelayTimer, 0xF0FF, 0xF007, nil},
	{WaitKey, 0xF0FF, 0xF00A, nil},
	{SetDelayTimer, 0xF0FF, 0xF015, nil},
	{SetSoundTimer, 0xF0FF, 0xF018, nil},
	{AddIndex, 0xF0FF, 0xF01E, nil},
	{SetIndexToSpriteAddr, 0xF0FF, 0xF029, nil},
	{StoreBCD, 0xF0FF, 0xF033, nil},
	{DumpRegisters, 0xF0FF, 0xF055, nil},
	{LoadRegisters, 0xF0FF, 0xF065, nil},
}

func (e encoding) matches(opcode uint16) bool {
	if opcode&e.mask != e.value {
		return false
	}
	for _, ex := range e.except {
		if opcode == ex {
			return false
		}
	}
	return true
}

func TestDecode_Encodings(t *testing.T) {
	assert.Len(t, encodings, int(familyCount-1))
}

func TestDecode_Disjoint(t *testing.T) {
	for i := range 0x10000 {
		opcode := uint16(i)
		ins := Decode(opcode)

		var matched []Family
		for _, e := range encodings {
			if e.matches(opcode) {
				matched = append(matched, e.family)
			}
		}

		switch len(matched) {
		case 0:
			if ins.Family != Unknown {
				t.Fatalf("opcode %04x decoded to %s, expected Unknown", opcode, ins.Family)
			}
		case 1:
			if ins.Family != matched[0] {
				t.Fatalf("opcode %04x decoded to %s, expected %s", opcode, ins.Family, matched[0])
			}
		default:
			t.Fatalf("opcode %04x matches %d encodings: %v", opcode, len(matched), matched)
		}
	}
}

// encode rebuilds the opcode from the family and its used operands.
func encode(t *testing.T, ins Instruction) uint16 {
	t.Helper()

	var value uint16
	for _, e := range encodings {
		if e.family == ins.Family {
			value = e.value
		}
	}

	x := uint16(ins.X) << 8
	y := uint16(ins.Y) << 4
	switch ins.Family.info().shape {
	case shapeNone:
		return value
	case shapeAddress:
		return value | ins.NNN
	case shapeRegister:
		return value | x
	case shapeRegisterByte:
		return value | x | uint16(ins.NN)
	case shapeRegisterPair:
		return value | x | y
	case shapeDraw:
		return value | x | y | uint16(ins.N)
	default:
		t.Fatalf("unexpected shape for family %s", ins.Family)
		return 0
	}
}

func TestDecode_OperandFidelity(t *testing.T) {
	for i := range 0x10000 {
		opcode := uint16(i)
		ins := Decode(opcode)
		if ins.Raw != opcode {
			t.Fatalf("opcode %04x has raw value %04x", opcode, ins.Raw)
		}
		if ins.IsUnknown() {
			if ins.Operands != (Operands{}) {
				t.Fatalf("unknown opcode %04x has operands %+v", opcode, ins.Operands)
			}
			continue
		}
		if encoded := encode(t, ins); encoded != opcode {
			t.Fatalf("opcode %04x re-encodes to %04x from %+v", opcode, encoded, ins)
		}
	}
}

func TestDecode_Deterministic(t *testing.T) {
	for i := range 0x10000 {
		opcode := uint16(i)
		first := Decode(opcode)
		second := Decode(opcode)
		if first != second {
			t.Fatalf("opcode %04x decoded differently: %+v and %+v", opcode, first, second)
		}
		if first.Family >= familyCount {
			t.Fatalf("opcode %04x decoded to invalid family %d", opcode, first.Family)
		}
	}
}

func TestDecode_FamilyCoverage(t *testing.T) {
	seen := map[Family]int{}
	for i := range 0x10000 {
		seen[Decode(uint16(i)).Family]++
	}

	for _, family := range Families() {
		assert.True(t, seen[family] > 0, family.String())
	}
	assert.Equal(t, 1, seen[ClearScreen])
	assert.Equal(t, 1, seen[Return])
	assert.Equal(t, 0x1000-2, seen[CallMachineRoutine])
	assert.Equal(t, 0x100, seen[SkipEqualRegister])
	assert.Equal(t, 0x10, seen[LoadRegisters])
}
