// This file is part of sim6502.
//
// sim6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sim6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sim6502.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
	"github.com/jetsetilly/sim6502/hardware/memory"
)

// branch adds the signed operand to the program counter if the condition is
// met. A taken branch costs one cycle and a further cycle if the destination
// is on a different page to the instruction following the branch.
type branch struct {
	instruction
	cond func(st *state.MachineState) bool
}

// Execute implements the state.Instruction interface.
func (ins *branch) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode() != ins.opcodes[0] {
		ins.unknownOpcode(st)
	}

	if !ins.cond(st) {
		return
	}

	pc := st.Regs.PC.Address()
	dest := pc + uint16(int16(int8(uint8(operand))))
	st.Regs.PC.Load(dest)

	st.AddCycles(1)
	if memory.PageCrossed(pc, dest) {
		st.AddCycles(1)
	}
}

// BCC branches if the carry flag is clear.
type BCC struct{ branch }

func newBCC() *BCC {
	return &BCC{branch{instruction{"BCC", []uint8{0x90}},
		func(st *state.MachineState) bool { return !st.Flags.Carry }}}
}

// BCS branches if the carry flag is set.
type BCS struct{ branch }

func newBCS() *BCS {
	return &BCS{branch{instruction{"BCS", []uint8{0xb0}},
		func(st *state.MachineState) bool { return st.Flags.Carry }}}
}

// BEQ branches if the zero flag is set.
type BEQ struct{ branch }

func newBEQ() *BEQ {
	return &BEQ{branch{instruction{"BEQ", []uint8{0xf0}},
		func(st *state.MachineState) bool { return st.Flags.Zero }}}
}

// BNE branches if the zero flag is clear.
type BNE struct{ branch }

func newBNE() *BNE {
	return &BNE{branch{instruction{"BNE", []uint8{0xd0}},
		func(st *state.MachineState) bool { return !st.Flags.Zero }}}
}

// BMI branches if the sign flag is set.
type BMI struct{ branch }

func newBMI() *BMI {
	return &BMI{branch{instruction{"BMI", []uint8{0x30}},
		func(st *state.MachineState) bool { return st.Flags.Sign }}}
}

// BPL branches if the sign flag is clear.
type BPL struct{ branch }

func newBPL() *BPL {
	return &BPL{branch{instruction{"BPL", []uint8{0x10}},
		func(st *state.MachineState) bool { return !st.Flags.Sign }}}
}

// BVC branches if the overflow flag is clear.
type BVC struct{ branch }

func newBVC() *BVC {
	return &BVC{branch{instruction{"BVC", []uint8{0x50}},
		func(st *state.MachineState) bool { return !st.Flags.Overflow }}}
}

// BVS branches if the overflow flag is set.
type BVS struct{ branch }

func newBVS() *BVS {
	return &BVS{branch{instruction{"BVS", []uint8{0x70}},
		func(st *state.MachineState) bool { return st.Flags.Overflow }}}
}
