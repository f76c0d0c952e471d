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

// transfer copies the value of one register to another. every transfer
// instruction except TXS sets the zero and sign flags.
type transfer struct {
	instruction
	from  func(st *state.MachineState) *registers.Register
	to    func(st *state.MachineState) *registers.Register
	flags bool
}

// Execute implements the state.Instruction interface.
func (ins *transfer) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != ins.opcodes[0] {
		ins.unknownOpcode(st)
	}
	v := ins.from(st).Value()
	ins.to(st).Load(v)
	if ins.flags {
		st.SetZeroSign(v)
	}
}

func regA(st *state.MachineState) *registers.Register  { return &st.Regs.A }
func regX(st *state.MachineState) *registers.Register  { return &st.Regs.X }
func regY(st *state.MachineState) *registers.Register  { return &st.Regs.Y }
func regSP(st *state.MachineState) *registers.Register { return &st.Regs.SP }

// TAX transfers the accumulator to the X register.
type TAX struct{ transfer }

func newTAX() *TAX {
	return &TAX{transfer{instruction{"TAX", []uint8{0xaa}}, regA, regX, true}}
}

// TAY transfers the accumulator to the Y register.
type TAY struct{ transfer }

func newTAY() *TAY {
	return &TAY{transfer{instruction{"TAY", []uint8{0xa8}}, regA, regY, true}}
}

// TSX transfers the stack pointer to the X register.
type TSX struct{ transfer }

func newTSX() *TSX {
	return &TSX{transfer{instruction{"TSX", []uint8{0xba}}, regSP, regX, true}}
}

// TXA transfers the X register to the accumulator.
type TXA struct{ transfer }

func newTXA() *TXA {
	return &TXA{transfer{instruction{"TXA", []uint8{0x8a}}, regX, regA, true}}
}

// TXS transfers the X register to the stack pointer. The flags are not
// affected.
type TXS struct{ transfer }

func newTXS() *TXS {
	return &TXS{transfer{instruction{"TXS", []uint8{0x9a}}, regX, regSP, false}}
}

// TYA transfers the Y register to the accumulator.
type TYA struct{ transfer }

func newTYA() *TYA {
	return &TYA{transfer{instruction{"TYA", []uint8{0x98}}, regY, regA, true}}
}
