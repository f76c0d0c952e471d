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

// the break flag bit in the stack image of the status register.
const breakBit = 0x10

// PHA pushes the accumulator onto the stack.
type PHA struct{ instruction }

func newPHA() *PHA {
	return &PHA{instruction{"PHA", []uint8{0x48}}}
}

// Execute implements the state.Instruction interface.
func (ins *PHA) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x48 {
		ins.unknownOpcode(st)
	}
	st.Stack.Push(st.Regs.A.Value())
}

// PHP pushes the status register onto the stack. The break flag is always
// set in the pushed value.
type PHP struct{ instruction }

func newPHP() *PHP {
	return &PHP{instruction{"PHP", []uint8{0x08}}}
}

// Execute implements the state.Instruction interface.
func (ins *PHP) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x08 {
		ins.unknownOpcode(st)
	}
	st.Stack.Push(st.Flags.Value() | breakBit)
}

// PLA pulls the accumulator from the stack.
type PLA struct{ instruction }

func newPLA() *PLA {
	return &PLA{instruction{"PLA", []uint8{0x68}}}
}

// Execute implements the state.Instruction interface.
func (ins *PLA) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x68 {
		ins.unknownOpcode(st)
	}
	st.Regs.A.Load(st.Stack.Pull())
	st.SetZeroSign(st.Regs.A.Value())
}

// PLP pulls the status register from the stack.
type PLP struct{ instruction }

func newPLP() *PLP {
	return &PLP{instruction{"PLP", []uint8{0x28}}}
}

// Execute implements the state.Instruction interface.
func (ins *PLP) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x28 {
		ins.unknownOpcode(st)
	}
	st.Flags.FromValue(st.Stack.Pull())
}
