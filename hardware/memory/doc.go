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

// Package memory implements the flat 64KiB address space of the 6502.
//
// Every addressing mode of the CPU has a read and write function. The
// indexed modes report whether the indexing crossed a page boundary, the
// caller being responsible for any additional cycles that result:
//
//	pageCrossed, v := mem.ReadAbsoluteX(0x20f0, 0x20)
//
// Functions that resolve the effective address of an addressing mode are also
// provided. These are useful for instructions that read, modify and write
// back to the same address.
//
// Zero page indexing, and the fetching of pointers from the zero page, wraps
// within the zero page. The Indirect mode (used only by the JMP instruction)
// reproduces the hardware bug where a pointer with a low byte of 0xff fetches
// its high byte from the start of the same page.
package memory
