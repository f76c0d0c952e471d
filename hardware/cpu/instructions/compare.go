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
)

// sets the flags for a comparison of register value with memory value.
func compare(st *state.MachineState, reg uint8, v uint8) {
	st.Flags.Carry = reg >= v
	st.Flags.Zero = reg == v
	st.Flags.Sign = (reg-v)&0x80 == 0x80
}

// CMP compares memory with the accumulator.
type CMP struct{ instruction }

func newCMP() *CMP {
	return &CMP{instruction{"CMP", logicalOpcodes(0xc0)}}
}

// Execute implements the state.Instruction interface.
func (ins *CMP) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0xc0 {
		ins.unknownOpcode(st)
	}
	compare(st, st.Regs.A.Value(), readLogical(ins.instruction, st, operand))
}

// CPX compares memory with the X register.
type CPX struct{ instruction }

func newCPX() *CPX {
	return &CPX{instruction{"CPX", []uint8{0xe0, 0xe4, 0xec}}}
}

// Execute implements the state.Instruction interface.
func (ins *CPX) Execute(st *state.MachineState, operand uint16) {
	var v uint8

	switch st.ExecutingOpcode() {
	case 0xe0:
		v = st.Mem.Immediate(operand)
	case 0xe4:
		v = st.Mem.ReadZeroPage(operand)
	case 0xec:
		v = st.Mem.ReadAbsolute(operand)
	default:
		ins.unknownOpcode(st)
	}

	compare(st, st.Regs.X.Value(), v)
}

// CPY compares memory with the Y register.
type CPY struct{ instruction }

func newCPY() *CPY {
	return &CPY{instruction{"CPY", []uint8{0xc0, 0xc4, 0xcc}}}
}

// Execute implements the state.Instruction interface.
func (ins *CPY) Execute(st *state.MachineState, operand uint16) {
	var v uint8

	switch st.ExecutingOpcode() {
	case 0xc0:
		v = st.Mem.Immediate(operand)
	case 0xc4:
		v = st.Mem.ReadZeroPage(operand)
	case 0xcc:
		v = st.Mem.ReadAbsolute(operand)
	default:
		ins.unknownOpcode(st)
	}

	compare(st, st.Regs.Y.Value(), v)
}
