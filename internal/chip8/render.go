package chip8

import (
	"fmt"
	"strings"
)

// addressOperand is the assembly template verb of a 12-bit address operand.
const addressOperand = "$%03X"

// Render returns the pseudo code form of the instruction, for example
// "V10 = 63" for 0x6A3F. Registers, bytes and nibbles are printed in decimal,
// addresses as 3 digit hex. Unknown opcodes render as "unknown(0x5121)".
func Render(ins Instruction) string {
	info := ins.Family.info()
	if ins.IsUnknown() {
		return fmt.Sprintf(info.pseudo, ins.Raw)
	}
	args := ins.args()
	if len(args) == 0 {
		return info.pseudo
	}
	return fmt.Sprintf(info.pseudo, args...)
}

// RenderAssembly returns the assembler form of the instruction, for example
// "ld VA, $3F" for 0x6A3F. Unknown opcodes are emitted as a data directive so
// that the output can still be assembled.
func RenderAssembly(ins Instruction) string {
	if ins.IsUnknown() {
		return fmt.Sprintf(".byte $%02X, $%02X", ins.Raw>>8, ins.Raw&0x00FF)
	}

	info := ins.Family.info()
	if info.assembly == "" {
		return info.mnemonic
	}
	return info.mnemonic + " " + fmt.Sprintf(info.assembly, ins.args()...)
}

// RenderAssemblyWithLabel returns the assembler form of an instruction with an
// address operand, using the label instead of the numeric address. All other
// instructions render like RenderAssembly.
func RenderAssemblyWithLabel(ins Instruction, label string) string {
	info := ins.Family.info()
	if label == "" || ins.IsUnknown() || info.shape != shapeAddress {
		return RenderAssembly(ins)
	}

	template := strings.Replace(info.assembly, addressOperand, "%s", 1)
	return info.mnemonic + " " + fmt.Sprintf(template, label)
}

// String implements fmt.Stringer using the pseudo code form.
func (i Instruction) String() string {
	return Render(i)
}
