package disasm

import (
	"fmt"

	"github.com/retroenv/chip8disasm/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

const (
	startLabel  = "Start"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"
)

// collectLabels returns the label names of all addresses inside the ROM that
// are referenced by jumps, calls or index register loads. Addresses that do
// not start an instruction can not be labeled and are skipped.
func (dis *Disasm) collectLabels(instructions []chip8.Instruction) map[uint16]string {
	callDestinations := set.New[uint16]()
	branchDestinations := set.New[uint16]()
	dataReferences := set.New[uint16]()

	for _, ins := range instructions {
		target := ins.NNN
		if !dis.isInstructionAddress(target, len(instructions)) {
			continue
		}

		switch {
		case ins.Family.IsCall():
			callDestinations.Add(target)
		case ins.Family.IsJump():
			branchDestinations.Add(target)
		case ins.Family == chip8.SetIndex:
			dataReferences.Add(target)
		}
	}

	labels := map[uint16]string{}
	if len(instructions) > 0 {
		labels[dis.options.BaseAddress] = startLabel
	}
	for i := range instructions {
		address := dis.address(i)
		if _, ok := labels[address]; ok {
			continue
		}

		switch {
		case callDestinations.Contains(address):
			labels[address] = fmt.Sprintf(funcNaming, address)
		case branchDestinations.Contains(address):
			labels[address] = fmt.Sprintf(labelNaming, address)
		case dataReferences.Contains(address):
			labels[address] = fmt.Sprintf(dataNaming, address)
		}
	}
	return labels
}

// isInstructionAddress returns whether the address points to the start of one
// of the count instructions.
func (dis *Disasm) isInstructionAddress(address uint16, count int) bool {
	if address < dis.options.BaseAddress {
		return false
	}
	offset := int(address - dis.options.BaseAddress)
	return offset%opcodeSize == 0 && offset/opcodeSize < count
}
