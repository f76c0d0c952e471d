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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
//
// There are two byte representations of the status register. The packed form
// returned by Pack() is used when the machine state is saved. The Value() form
// is the hardware layout that is pushed onto and pulled from the stack.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit positions of the packed form.
const (
	packedCarry = 0x01 << iota
	packedZero
	packedInterruptDisable
	packedDecimalMode
	packedBreak
	packedOverflow
	packedSign
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(v bool, set rune, unset rune) {
		if v {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Pack the flags into a single byte. Carry is bit 0, followed by zero,
// interrupt disable, decimal mode, break, overflow and sign in bit 6. Bit 7 is
// unused and is always zero.
func (sr StatusRegister) Pack() uint8 {
	var v uint8

	if sr.Carry {
		v |= packedCarry
	}
	if sr.Zero {
		v |= packedZero
	}
	if sr.InterruptDisable {
		v |= packedInterruptDisable
	}
	if sr.DecimalMode {
		v |= packedDecimalMode
	}
	if sr.Break {
		v |= packedBreak
	}
	if sr.Overflow {
		v |= packedOverflow
	}
	if sr.Sign {
		v |= packedSign
	}

	return v
}

// Unpack flags from a byte created by Pack(). Bit 7 is ignored.
func (sr *StatusRegister) Unpack(v uint8) {
	sr.Carry = v&packedCarry == packedCarry
	sr.Zero = v&packedZero == packedZero
	sr.InterruptDisable = v&packedInterruptDisable == packedInterruptDisable
	sr.DecimalMode = v&packedDecimalMode == packedDecimalMode
	sr.Break = v&packedBreak == packedBreak
	sr.Overflow = v&packedOverflow == packedOverflow
	sr.Sign = v&packedSign == packedSign
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	// unused bit in the status register is always 1 in the stack image
	v |= 0x20

	return v
}

// FromValue converts an 8 bit value taken from the stack to the
// StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
