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

// Package state defines the MachineState type, the aggregate of everything
// that the 6502 instructions operate on: the registers, the status register,
// memory and the stack. It also tracks the cycle budget of the instruction
// currently being executed and any pending interrupt requests.
//
// Instructions mutate the MachineState directly. Collaborators that only
// observe the machine, such as the audio unit, should be given the View
// interface instead.
//
// The Save() and Load() functions serialise the entire machine state. The
// serialised form is a header of HeaderLength bytes followed by the memory
// image:
//
//	byte 0      cycles left (signed)
//	byte 1      executing opcode
//	byte 2      status register (see StatusRegister.Pack())
//	bytes 3-8   registers (see Registers.Save())
//	bytes 9-    memory
package state
