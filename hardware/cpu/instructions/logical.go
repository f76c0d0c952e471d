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
	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
)

// reads the operand of the AND, EOR and ORA instructions. the opcodes of
// these instructions differ only in the high three bits so the addressing
// mode can be selected from the low five bits.
func readLogical(ins instruction, st *state.MachineState, operand uint16) uint8 {
	var v uint8
	var pageCrossed bool

	switch st.ExecutingOpcode() & 0x1f {
	case 0x09:
		v = st.Mem.Immediate(operand)
	case 0x05:
		v = st.Mem.ReadZeroPage(operand)
	case 0x15:
		v = st.Mem.ReadZeroPageX(operand, st.Regs.X.Value())
	case 0x0d:
		v = st.Mem.ReadAbsolute(operand)
	case 0x1d:
		pageCrossed, v = st.Mem.ReadAbsoluteX(operand, st.Regs.X.Value())
	case 0x19:
		pageCrossed, v = st.Mem.ReadAbsoluteY(operand, st.Regs.Y.Value())
	case 0x01:
		v = st.Mem.ReadIndexedIndirect(operand, st.Regs.X.Value())
	case 0x11:
		pageCrossed, v = st.Mem.ReadIndirectIndexed(operand, st.Regs.Y.Value())
	default:
		ins.unknownOpcode(st)
	}

	pageCross(st, pageCrossed)

	return v
}

// the opcodes of a logical instruction with the high three bits given.
func logicalOpcodes(hi uint8) []uint8 {
	return []uint8{hi | 0x09, hi | 0x05, hi | 0x15, hi | 0x0d, hi | 0x1d, hi | 0x19, hi | 0x01, hi | 0x11}
}

// AND memory with accumulator.
type AND struct{ instruction }

func newAND() *AND {
	return &AND{instruction{"AND", logicalOpcodes(0x20)}}
}

// Execute implements the state.Instruction interface.
func (ins *AND) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0x20 {
		ins.unknownOpcode(st)
	}
	st.Regs.A.AND(readLogical(ins.instruction, st, operand))
	st.SetZeroSign(st.Regs.A.Value())
}

// EOR exclusive-ors memory with accumulator.
type EOR struct{ instruction }

func newEOR() *EOR {
	return &EOR{instruction{"EOR", logicalOpcodes(0x40)}}
}

// Execute implements the state.Instruction interface.
func (ins *EOR) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0x40 {
		ins.unknownOpcode(st)
	}
	st.Regs.A.EOR(readLogical(ins.instruction, st, operand))
	st.SetZeroSign(st.Regs.A.Value())
}

// ORA ors memory with accumulator.
type ORA struct{ instruction }

func newORA() *ORA {
	return &ORA{instruction{"ORA", logicalOpcodes(0x00)}}
}

// Execute implements the state.Instruction interface.
func (ins *ORA) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0x00 {
		ins.unknownOpcode(st)
	}
	st.Regs.A.ORA(readLogical(ins.instruction, st, operand))
	st.SetZeroSign(st.Regs.A.Value())
}

// BIT tests bits in memory with the accumulator. The accumulator is not
// changed.
type BIT struct{ instruction }

func newBIT() *BIT {
	return &BIT{instruction{"BIT", []uint8{0x24, 0x2c}}}
}

// Execute implements the state.Instruction interface.
func (ins *BIT) Execute(st *state.MachineState, operand uint16) {
	var v uint8

	switch st.ExecutingOpcode() {
	case 0x24:
		v = st.Mem.ReadZeroPage(operand)
	case 0x2c:
		v = st.Mem.ReadAbsolute(operand)
	default:
		ins.unknownOpcode(st)
	}

	m := registers.NewRegister(v, "M")
	st.Flags.Zero = st.Regs.A.Value()&v == 0
	st.Flags.Sign = m.IsNegative()
	st.Flags.Overflow = m.IsBitV()
}
