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

// ADC adds memory to the accumulator with carry.
type ADC struct{ instruction }

func newADC() *ADC {
	return &ADC{instruction{"ADC", []uint8{0x69, 0x65, 0x75, 0x6d, 0x7d, 0x79, 0x61, 0x71}}}
}

// Execute implements the state.Instruction interface.
func (ins *ADC) Execute(st *state.MachineState, operand uint16) {
	var v uint8
	var pageCrossed bool

	switch st.ExecutingOpcode() {
	case 0x69:
		v = st.Mem.Immediate(operand)
	case 0x65:
		v = st.Mem.ReadZeroPage(operand)
	case 0x75:
		v = st.Mem.ReadZeroPageX(operand, st.Regs.X.Value())
	case 0x6d:
		v = st.Mem.ReadAbsolute(operand)
	case 0x7d:
		pageCrossed, v = st.Mem.ReadAbsoluteX(operand, st.Regs.X.Value())
	case 0x79:
		pageCrossed, v = st.Mem.ReadAbsoluteY(operand, st.Regs.Y.Value())
	case 0x61:
		v = st.Mem.ReadIndexedIndirect(operand, st.Regs.X.Value())
	case 0x71:
		pageCrossed, v = st.Mem.ReadIndirectIndexed(operand, st.Regs.Y.Value())
	default:
		ins.unknownOpcode(st)
	}

	pageCross(st, pageCrossed)

	if st.Flags.DecimalMode {
		st.Flags.Carry, st.Flags.Overflow = st.Regs.A.AddDecimal(v, st.Flags.Carry)
	} else {
		st.Flags.Carry, st.Flags.Overflow = st.Regs.A.Add(v, st.Flags.Carry)
	}
	st.SetZeroSign(st.Regs.A.Value())
}

// SBC subtracts memory from the accumulator with borrow.
type SBC struct{ instruction }

func newSBC() *SBC {
	return &SBC{instruction{"SBC", []uint8{0xe9, 0xe5, 0xf5, 0xed, 0xfd, 0xf9, 0xe1, 0xf1}}}
}

// Execute implements the state.Instruction interface.
func (ins *SBC) Execute(st *state.MachineState, operand uint16) {
	var v uint8
	var pageCrossed bool

	switch st.ExecutingOpcode() {
	case 0xe9:
		v = st.Mem.Immediate(operand)
	case 0xe5:
		v = st.Mem.ReadZeroPage(operand)
	case 0xf5:
		v = st.Mem.ReadZeroPageX(operand, st.Regs.X.Value())
	case 0xed:
		v = st.Mem.ReadAbsolute(operand)
	case 0xfd:
		pageCrossed, v = st.Mem.ReadAbsoluteX(operand, st.Regs.X.Value())
	case 0xf9:
		pageCrossed, v = st.Mem.ReadAbsoluteY(operand, st.Regs.Y.Value())
	case 0xe1:
		v = st.Mem.ReadIndexedIndirect(operand, st.Regs.X.Value())
	case 0xf1:
		pageCrossed, v = st.Mem.ReadIndirectIndexed(operand, st.Regs.Y.Value())
	default:
		ins.unknownOpcode(st)
	}

	pageCross(st, pageCrossed)

	if st.Flags.DecimalMode {
		st.Flags.Carry, st.Flags.Overflow = st.Regs.A.SubtractDecimal(v, st.Flags.Carry)
	} else {
		st.Flags.Carry, st.Flags.Overflow = st.Regs.A.Subtract(v, st.Flags.Carry)
	}
	st.SetZeroSign(st.Regs.A.Value())
}
