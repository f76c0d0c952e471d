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
	"github.com/jetsetilly/sim6502/hardware/memory"
)

// the opcodes of a read-modify-write instruction with the high three bits
// given. the accumulator form is the first opcode in the list.
func rmwOpcodes(hi uint8) []uint8 {
	return []uint8{hi | 0x0a, hi | 0x06, hi | 0x16, hi | 0x0e, hi | 0x1e}
}

// resolves the effective address of a read-modify-write opcode. the indexed
// absolute form never incurs a page crossing penalty.
func rmwAddress(ins instruction, st *state.MachineState, operand uint16) uint16 {
	switch st.ExecutingOpcode() & 0x1f {
	case 0x06:
		return memory.ZeroPageAddress(operand, 0)
	case 0x16:
		return memory.ZeroPageAddress(operand, st.Regs.X.Value())
	case 0x0e:
		return operand
	case 0x1e:
		_, a := memory.AbsoluteIndexedAddress(operand, st.Regs.X.Value())
		return a
	}
	ins.unknownOpcode(st)
	return 0
}

// shift applies a shift or rotate to the accumulator or to memory.
type shift struct {
	instruction
	op func(r *registers.Register, carry bool) bool
}

// Execute implements the state.Instruction interface.
func (ins *shift) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode()&0xe0 != ins.opcodes[0]&0xe0 {
		ins.unknownOpcode(st)
	}

	if st.ExecutingOpcode()&0x1f == 0x0a {
		st.Flags.Carry = ins.op(&st.Regs.A, st.Flags.Carry)
		st.SetZeroSign(st.Regs.A.Value())
		return
	}

	a := rmwAddress(ins.instruction, st, operand)
	r := registers.NewRegister(st.Mem.Read(a), "")
	st.Flags.Carry = ins.op(&r, st.Flags.Carry)
	st.Mem.Write(a, r.Value())
	st.SetZeroSign(r.Value())
}

// ASL shifts one bit left. Bit 7 goes to the carry flag.
type ASL struct{ shift }

func newASL() *ASL {
	return &ASL{shift{instruction{"ASL", rmwOpcodes(0x00)},
		func(r *registers.Register, _ bool) bool { return r.ASL() }}}
}

// LSR shifts one bit right. Bit 0 goes to the carry flag.
type LSR struct{ shift }

func newLSR() *LSR {
	return &LSR{shift{instruction{"LSR", rmwOpcodes(0x40)},
		func(r *registers.Register, _ bool) bool { return r.LSR() }}}
}

// ROL rotates one bit left through the carry flag.
type ROL struct{ shift }

func newROL() *ROL {
	return &ROL{shift{instruction{"ROL", rmwOpcodes(0x20)},
		func(r *registers.Register, carry bool) bool { return r.ROL(carry) }}}
}

// ROR rotates one bit right through the carry flag.
type ROR struct{ shift }

func newROR() *ROR {
	return &ROR{shift{instruction{"ROR", rmwOpcodes(0x60)},
		func(r *registers.Register, carry bool) bool { return r.ROR(carry) }}}
}
