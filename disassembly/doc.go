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

// Package disassembly creates linear disassemblies of 6502 programs.
//
// A linear disassembly decodes every instruction in turn from the start of
// the program, without following the flow of execution. Bytes that do not
// decode to an instruction are presented as data and disassembly continues
// from the next byte.
//
// The operand of every instruction is formatted according to its addressing
// mode. The operands of branch instructions are resolved to the destination
// address.
//
// The FromProgram() function disassembles a program as it would be loaded at
// the origin address:
//
//	dsm, _ := disassembly.FromProgram(data, 0x0600, nil)
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
package disassembly
