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

package definitions

import (
	"fmt"
)

// Definition describes a single opcode. Definitions are equal if their
// opcodes are equal.
type Definition struct {
	Opcode         uint8
	Mnemonic       string
	OperandBytes   int
	MinCycles      int
	MaxCycles      int
	AddressingMode AddressingMode
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d-%d cycles) [%s]", defn.Opcode, defn.Mnemonic, defn.OperandBytes, defn.MinCycles, defn.MaxCycles, defn.AddressingMode)
}

// Equal returns true if the two definitions describe the same opcode.
func (defn Definition) Equal(o Definition) bool {
	return defn.Opcode == o.Opcode
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}

// ExtraCycles returns the maximum number of cycles that can be added to the
// minimum cycle count.
func (defn Definition) ExtraCycles() int {
	return defn.MaxCycles - defn.MinCycles
}
