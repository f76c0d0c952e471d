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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/sim6502/hardware/cpu/definitions"
)

// Entry is a single decoded instruction or data byte.
type Entry struct {
	Address uint16
	Bytes   []uint8

	// the definition is only valid if Decoded is true
	Decoded bool
	Defn    definitions.Definition

	// operand formatted according to the addressing mode
	Operand string
}

// Mnemonic returns the mnemonic of the instruction or the data directive for
// undecoded bytes.
func (e Entry) Mnemonic() string {
	if !e.Decoded {
		return ".byte"
	}
	return e.Defn.Mnemonic
}

// Bytecode returns the bytes of the entry as a string of hex values.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Cycles returns the cycle count of the instruction. Instructions with a
// variable cycle count are shown as a range.
func (e Entry) Cycles() string {
	if !e.Decoded {
		return ""
	}
	if e.Defn.MinCycles == e.Defn.MaxCycles {
		return fmt.Sprintf("%d", e.Defn.MinCycles)
	}
	return fmt.Sprintf("%d-%d", e.Defn.MinCycles, e.Defn.MaxCycles)
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04x %s", e.Address, e.Mnemonic())
	}
	return fmt.Sprintf("%04x %s %s", e.Address, e.Mnemonic(), e.Operand)
}

// formats the operand of an instruction at the address.
func formatOperand(defn definitions.Definition, address uint16, operand uint16) string {
	switch defn.AddressingMode {
	case definitions.Implied:
		return ""
	case definitions.Accumulator:
		return "A"
	case definitions.Immediate:
		return fmt.Sprintf("#$%02x", operand)
	case definitions.Relative:
		dest := address + uint16(1+defn.OperandBytes) + uint16(int16(int8(uint8(operand))))
		return fmt.Sprintf("$%04x", dest)
	case definitions.Absolute:
		return fmt.Sprintf("$%04x", operand)
	case definitions.ZeroPage:
		return fmt.Sprintf("$%02x", operand)
	case definitions.Indirect:
		return fmt.Sprintf("($%04x)", operand)
	case definitions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", operand)
	case definitions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", operand)
	case definitions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", operand)
	case definitions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", operand)
	case definitions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", operand)
	case definitions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", operand)
	}
	return fmt.Sprintf("$%04x", operand)
}
