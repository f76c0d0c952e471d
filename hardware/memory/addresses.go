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

package memory

// Size of the address space.
const Size = 0x10000

// Notable addresses and areas of memory.
const (
	ZeroPage  = uint16(0x0000)
	StackPage = uint16(0x0100)

	// NMI is the address where the non-maskable interrupt address is stored.
	NMI = uint16(0xfffa)

	// Reset is the address where the reset address is stored.
	Reset = uint16(0xfffc)

	// IRQ is the address where the interrupt address is stored. The BRK
	// instruction also uses this vector.
	IRQ = uint16(0xfffe)
)

// Sentinel is the value of the program counter that indicates the end of a
// simulated program. A program loaded with LoadProgram() has its IRQ vector
// pointed at the sentinel.
const Sentinel = uint16(0xffff)

// PageCrossed returns true if the high byte of the two addresses differ.
func PageCrossed(a uint16, b uint16) bool {
	return a&0xff00 != b&0xff00
}
