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

// Package instructions implements the instruction set of the 6502. There is
// one instruction type for each mnemonic. Each instruction type is bound to
// the opcodes of every addressing mode of the mnemonic and selects the
// behaviour for the opcode being executed with a switch statement.
//
// Instructions implement the state.Instruction interface. They mutate the
// MachineState directly and add any cycles over the minimum cycle count of
// the opcode with the AddCycles() function of the MachineState. For example,
// reads that cross a page boundary add one cycle.
//
// The Bindings type pairs every opcode in a definitions.Table with exactly
// one instruction. NewBindings() fails if an opcode in the table has no
// instruction, if an instruction claims an opcode that is not in the table,
// or if two instructions claim the same opcode.
//
// An instruction asked to execute an opcode it is not bound to will panic.
// This is only possible if the Bindings are bypassed.
package instructions
