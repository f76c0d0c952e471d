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

// Interrupt pushes the status register and then the program counter onto the
// stack, sets the interrupt disable flag and jumps through the IRQ vector.
//
// The break flag in the pushed status register is set for software
// interrupts (BRK) and clear for hardware interrupts.
func Interrupt(st *state.MachineState, software bool) {
	v := st.Flags.Value() &^ breakBit
	if software {
		v |= breakBit
	}
	st.Stack.Push(v)
	st.Stack.Push16(st.Regs.PC.Address())
	st.Flags.InterruptDisable = true
	st.Regs.PC.Load(st.Mem.Read16(memory.IRQ))
}

// JMP jumps to a new location.
type JMP struct{ instruction }

func newJMP() *JMP {
	return &JMP{instruction{"JMP", []uint8{0x4c, 0x6c}}}
}

// Execute implements the state.Instruction interface.
func (ins *JMP) Execute(st *state.MachineState, operand uint16) {
	switch st.ExecutingOpcode() {
	case 0x4c:
		st.Regs.PC.Load(operand)
	case 0x6c:
		st.Regs.PC.Load(st.Mem.ReadIndirect(operand))
	default:
		ins.unknownOpcode(st)
	}
}

// JSR jumps to a subroutine. The address of the last byte of the JSR
// instruction is pushed onto the stack.
type JSR struct{ instruction }

func newJSR() *JSR {
	return &JSR{instruction{"JSR", []uint8{0x20}}}
}

// Execute implements the state.Instruction interface.
func (ins *JSR) Execute(st *state.MachineState, operand uint16) {
	if st.ExecutingOpcode() != 0x20 {
		ins.unknownOpcode(st)
	}
	st.Stack.Push16(st.Regs.PC.Address() - 1)
	st.Regs.PC.Load(operand)
}

// RTS returns from a subroutine.
type RTS struct{ instruction }

func newRTS() *RTS {
	return &RTS{instruction{"RTS", []uint8{0x60}}}
}

// Execute implements the state.Instruction interface.
func (ins *RTS) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x60 {
		ins.unknownOpcode(st)
	}
	st.Regs.PC.Load(st.Stack.Pull16() + 1)
}

// BRK forces a software interrupt.
type BRK struct{ instruction }

func newBRK() *BRK {
	return &BRK{instruction{"BRK", []uint8{0x00}}}
}

// Execute implements the state.Instruction interface.
func (ins *BRK) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x00 {
		ins.unknownOpcode(st)
	}
	Interrupt(st, true)
}

// RTI returns from an interrupt. The program counter is pulled from the
// stack and then the status register.
type RTI struct{ instruction }

func newRTI() *RTI {
	return &RTI{instruction{"RTI", []uint8{0x40}}}
}

// Execute implements the state.Instruction interface.
func (ins *RTI) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0x40 {
		ins.unknownOpcode(st)
	}
	st.Regs.PC.Load(st.Stack.Pull16())
	st.Flags.FromValue(st.Stack.Pull())
}
