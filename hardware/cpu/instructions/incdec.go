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

// INC increments memory by one.
type INC struct{ instruction }

func newINC() *INC {
	return &INC{instruction{"INC", []uint8{0xe6, 0xf6, 0xee, 0xfe}}}
}

// Execute implements the state.Instruction interface.
func (ins *INC) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0xe0 {
		ins.unknownOpcode(st)
	}
	a := rmwAddress(ins.instruction, st, operand)
	v := st.Mem.Read(a) + 1
	st.Mem.Write(a, v)
	st.SetZeroSign(v)
}

// DEC decrements memory by one.
type DEC struct{ instruction }

func newDEC() *DEC {
	return &DEC{instruction{"DEC", []uint8{0xc6, 0xd6, 0xce, 0xde}}}
}

// Execute implements the state.Instruction interface.
func (ins *DEC) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != 0xc0 {
		ins.unknownOpcode(st)
	}
	a := rmwAddress(ins.instruction, st, operand)
	v := st.Mem.Read(a) - 1
	st.Mem.Write(a, v)
	st.SetZeroSign(v)
}

// step adds a delta to an index register.
type step struct {
	instruction
	reg   func(st *state.MachineState) *registers.Register
	delta uint8
}

// Execute implements the state.Instruction interface.
func (ins *step) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != ins.opcodes[0] {
		ins.unknownOpcode(st)
	}
	r := ins.reg(st)
	r.Load(r.Value() + ins.delta)
	st.SetZeroSign(r.Value())
}

// INX increments the X register by one.
type INX struct{ step }

func newINX() *INX {
	return &INX{step{instruction{"INX", []uint8{0xe8}}, regX, 0x01}}
}

// INY increments the Y register by one.
type INY struct{ step }

func newINY() *INY {
	return &INY{step{instruction{"INY", []uint8{0xc8}}, regY, 0x01}}
}

// DEX decrements the X register by one.
type DEX struct{ step }

func newDEX() *DEX {
	return &DEX{step{instruction{"DEX", []uint8{0xca}}, regX, 0xff}}
}

// DEY decrements the Y register by one.
type DEY struct{ step }

func newDEY() *DEY {
	return &DEY{step{instruction{"DEY", []uint8{0x88}}, regY, 0xff}}
}
