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

// LDA loads the accumulator with memory.
type LDA struct{ instruction }

func newLDA() *LDA {
	return &LDA{instruction{"LDA", logicalOpcodes(0xa0)}}
}

// Execute implements the state.Instruction interface.
func (ins *LDA) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0xa0 {
		ins.unknownOpcode(st)
	}
	st.Regs.A.Load(readLogical(ins.instruction, st, operand))
	st.SetZeroSign(st.Regs.A.Value())
}

// LDX loads the X register with memory.
type LDX struct{ instruction }

func newLDX() *LDX {
	return &LDX{instruction{"LDX", []uint8{0xa2, 0xa6, 0xb6, 0xae, 0xbe}}}
}

// Execute implements the state.Instruction interface.
func (ins *LDX) Execute(st *state.MachineState, operand uint16) {
	var v uint8
	var pageCrossed bool

	switch st.ExecutingOpcode() {
	case 0xa2:
		v = st.Mem.Immediate(operand)
	case 0xa6:
		v = st.Mem.ReadZeroPage(operand)
	case 0xb6:
		v = st.Mem.ReadZeroPageY(operand, st.Regs.Y.Value())
	case 0xae:
		v = st.Mem.ReadAbsolute(operand)
	case 0xbe:
		pageCrossed, v = st.Mem.ReadAbsoluteY(operand, st.Regs.Y.Value())
	default:
		ins.unknownOpcode(st)
	}

	pageCross(st, pageCrossed)
	st.Regs.X.Load(v)
	st.SetZeroSign(v)
}

// LDY loads the Y register with memory.
type LDY struct{ instruction }

func newLDY() *LDY {
	return &LDY{instruction{"LDY", []uint8{0xa0, 0xa4, 0xb4, 0xac, 0xbc}}}
}

// Execute implements the state.Instruction interface.
func (ins *LDY) Execute(st *state.MachineState, operand uint16) {
	var v uint8
	var pageCrossed bool

	switch st.ExecutingOpcode() {
	case 0xa0:
		v = st.Mem.Immediate(operand)
	case 0xa4:
		v = st.Mem.ReadZeroPage(operand)
	case 0xb4:
		v = st.Mem.ReadZeroPageX(operand, st.Regs.X.Value())
	case 0xac:
		v = st.Mem.ReadAbsolute(operand)
	case 0xbc:
		pageCrossed, v = st.Mem.ReadAbsoluteX(operand, st.Regs.X.Value())
	default:
		ins.unknownOpcode(st)
	}

	pageCross(st, pageCrossed)
	st.Regs.Y.Load(v)
	st.SetZeroSign(v)
}

// STA stores the accumulator in memory. Stores never incur a page crossing
// penalty because the worst case is already included in the cycle count.
type STA struct{ instruction }

func newSTA() *STA {
	return &STA{instruction{"STA", []uint8{0x85, 0x95, 0x8d, 0x9d, 0x99, 0x81, 0x91}}}
}

// Execute implements the state.Instruction interface.
func (ins *STA) Execute(st *state.MachineState, operand uint16) {
	v := st.Regs.A.Value()

	switch st.ExecutingOpcode() {
	case 0x85:
		st.Mem.WriteZeroPage(operand, v)
	case 0x95:
		st.Mem.WriteZeroPageX(operand, st.Regs.X.Value(), v)
	case 0x8d:
		st.Mem.WriteAbsolute(operand, v)
	case 0x9d:
		_ = st.Mem.WriteAbsoluteX(operand, st.Regs.X.Value(), v)
	case 0x99:
		_ = st.Mem.WriteAbsoluteY(operand, st.Regs.Y.Value(), v)
	case 0x81:
		st.Mem.WriteIndexedIndirect(operand, st.Regs.X.Value(), v)
	case 0x91:
		_ = st.Mem.WriteIndirectIndexed(operand, st.Regs.Y.Value(), v)
	default:
		ins.unknownOpcode(st)
	}
}

// STX stores the X register in memory.
type STX struct{ instruction }

func newSTX() *STX {
	return &STX{instruction{"STX", []uint8{0x86, 0x96, 0x8e}}}
}

// Execute implements the state.Instruction interface.
func (ins *STX) Execute(st *state.MachineState, operand uint16) {
	v := st.Regs.X.Value()

	switch st.ExecutingOpcode() {
	case 0x86:
		st.Mem.WriteZeroPage(operand, v)
	case 0x96:
		st.Mem.WriteZeroPageY(operand, st.Regs.Y.Value(), v)
	case 0x8e:
		st.Mem.WriteAbsolute(operand, v)
	default:
		ins.unknownOpcode(st)
	}
}

// STY stores the Y register in memory.
type STY struct{ instruction }

func newSTY() *STY {
	return &STY{instruction{"STY", []uint8{0x84, 0x94, 0x8c}}}
}

// Execute implements the state.Instruction interface.
func (ins *STY) Execute(st *state.MachineState, operand uint16) {
	v := st.Regs.Y.Value()

	switch st.ExecutingOpcode() {
	case 0x84:
		st.Mem.WriteZeroPage(operand, v)
	case 0x94:
		st.Mem.WriteZeroPageX(operand, st.Regs.X.Value(), v)
	case 0x8c:
		st.Mem.WriteAbsolute(operand, v)
	default:
		ins.unknownOpcode(st)
	}
}
