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
	"fmt"

	"github.com/jetsetilly/sim6502/curated"
)

// Length of the serialised register block.
const Length = 6

// InvalidLength is returned by Registers.Load() when the data is not exactly
// Length bytes long.
const InvalidLength = "registers: invalid length (%d bytes, expecting %d)"

// Registers is the register set of the 6502.
type Registers struct {
	PC ProgramCounter
	SP Register
	A  Register
	X  Register
	Y  Register
}

// NewRegisters is the preferred method of initialisation for Registers.
func NewRegisters() Registers {
	return Registers{
		PC: NewProgramCounter(0),
		SP: NewRegister(0, "SP"),
		A:  NewRegister(0, "A"),
		X:  NewRegister(0, "X"),
		Y:  NewRegister(0, "Y"),
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s",
		r.PC.Label(), r.PC, r.A.Label(), r.A,
		r.X.Label(), r.X, r.Y.Label(), r.Y,
		r.SP.Label(), r.SP)
}

// Save the register set as a block of Length bytes. The order is PC low byte,
// PC high byte, SP, A, X, Y.
func (r Registers) Save() []byte {
	return []byte{
		r.PC.Lo(),
		r.PC.Hi(),
		r.SP.Value(),
		r.A.Value(),
		r.X.Value(),
		r.Y.Value(),
	}
}

// Load the register set from a block of bytes created by Save(). The
// registers are unchanged if the block is of the wrong length.
func (r *Registers) Load(data []byte) error {
	if len(data) != Length {
		return curated.Errorf(InvalidLength, len(data), Length)
	}

	r.PC.Load(uint16(data[0]) | uint16(data[1])<<8)
	r.SP.Load(data[2])
	r.A.Load(data[3])
	r.X.Load(data[4])
	r.Y.Load(data[5])

	return nil
}
