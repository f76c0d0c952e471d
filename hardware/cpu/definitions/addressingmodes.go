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

import "strings"

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind (JMP only)

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// the names used in the CSV data for each addressing mode.
var addressingModeNames = map[string]AddressingMode{
	"IMPLIED":             Implied,
	"ACCUMULATOR":         Accumulator,
	"IMMEDIATE":           Immediate,
	"RELATIVE":            Relative,
	"ABSOLUTE":            Absolute,
	"ZERO_PAGE":           ZeroPage,
	"INDIRECT":            Indirect,
	"PRE_INDEX_INDIRECT":  IndexedIndirect,
	"POST_INDEX_INDIRECT": IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": ZeroPageIndexedY,
}

func parseAddressingMode(s string) (AddressingMode, bool) {
	m, ok := addressingModeNames[strings.ToUpper(s)]
	return m, ok
}

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}
