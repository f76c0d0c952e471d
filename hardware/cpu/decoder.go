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

package cpu

import (
	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/instructions"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
	"github.com/jetsetilly/sim6502/hardware/memory"
)

// DecodeError is returned when there is no definition or instruction for the
// byte at the program counter.
const DecodeError = "cpu: cannot decode opcode 0x%02x at 0x%04x"

// Decoder turns the bytes at an address into a DecodedInstruction.
type Decoder struct {
	bindings *instructions.Bindings
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(bindings *instructions.Bindings) *Decoder {
	return &Decoder{bindings: bindings}
}

// Decode the instruction at the address. The operand bytes declared by the
// opcode's definition are read in little-endian order.
func (dec *Decoder) Decode(mem *memory.Memory, address uint16) (*state.DecodedInstruction, error) {
	opcode := mem.Read(address)

	defn, ins, ok := dec.bindings.Lookup(opcode)
	if !ok {
		return nil, curated.Errorf(DecodeError, opcode, address)
	}

	d := &state.DecodedInstruction{
		Definition:  defn,
		Instruction: ins,
		Address:     address,
	}

	switch defn.OperandBytes {
	case 1:
		d.Operand = uint16(mem.Read(address + 1))
	case 2:
		d.Operand = mem.Read16(address + 1)
	}

	return d, nil
}
