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

package state

import (
	"fmt"

	"github.com/jetsetilly/sim6502/hardware/cpu/definitions"
)

// Instruction is implemented by every instruction handler. An instruction is
// bound to a fixed set of opcodes and applies its effect by mutating the
// MachineState. The operand is the raw operand of the instruction, which is
// either an address or an immediate value depending on the addressing mode.
//
// Instructions that are bound to more than one opcode select their behaviour
// with the ExecutingOpcode() of the MachineState. The program counter has
// been advanced past the instruction before Execute() is called.
type Instruction interface {
	Mnemonic() string
	Opcodes() []uint8
	Execute(st *MachineState, operand uint16)
}

// DecodedInstruction is the result of decoding the instruction at an
// address.
type DecodedInstruction struct {
	Definition  definitions.Definition
	Instruction Instruction

	// the raw operand. zero if the instruction has no operand
	Operand uint16

	// address of the opcode
	Address uint16
}

func (d DecodedInstruction) String() string {
	switch d.Definition.OperandBytes {
	case 1:
		return fmt.Sprintf("0x%04x %s 0x%02x", d.Address, d.Definition.Mnemonic, d.Operand)
	case 2:
		return fmt.Sprintf("0x%04x %s 0x%04x", d.Address, d.Definition.Mnemonic, d.Operand)
	}
	return fmt.Sprintf("0x%04x %s", d.Address, d.Definition.Mnemonic)
}

// Length of the instruction in bytes, including the opcode.
func (d DecodedInstruction) Length() uint16 {
	return uint16(1 + d.Definition.OperandBytes)
}
