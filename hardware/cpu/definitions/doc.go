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

// Package definitions contains the opcode table of the 6502. Each entry of
// the table describes an opcode: its mnemonic, the number of operand bytes
// that follow it, the minimum and maximum number of cycles it takes to
// execute, and its addressing mode.
//
// Tables are created from CSV data with NewTable(). The Default() table is
// created from the opcodes.csv file embedded in the package and is the
// authoritative source of cycle timing for the CPU.
package definitions
