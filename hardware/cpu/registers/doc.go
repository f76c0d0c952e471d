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

// Package registers implements the three types of registers found in the 6502
// CPU. The 8 bit general purpose registers (A, X, Y and the stack pointer),
// the 16 bit program counter, and the status register.
//
// The Register type implements the arithmetic and logical operations that
// can be performed on an 8 bit register. Operations return the carry and
// overflow information that results from the operation. The status register
// is not updated by the Register type. For example:
//
//	a := registers.NewRegister(0x50, "A")
//	carry, overflow := a.Add(0x50, false)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// The Registers type collates the register set of the CPU and can be
// serialised to a fixed length block of bytes.
package registers
