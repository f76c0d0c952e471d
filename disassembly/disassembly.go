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

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/definitions"
	"github.com/jetsetilly/sim6502/hardware/memory"
)

// ProgramTooLarge is returned by FromProgram() when the program does not fit
// in memory at the origin address.
const ProgramTooLarge = "disassembly: program too large (%d bytes at origin 0x%04x)"

// Disassembly is the linear disassembly of a program.
type Disassembly struct {
	Origin  uint16
	Entries []Entry
}

// FromProgram disassembles the program as though it were loaded at the
// origin address. The definitions table can be nil, in which case the
// default table is used.
func FromProgram(data []uint8, origin uint16, tab *definitions.Table) (*Disassembly, error) {
	if int(origin)+len(data) > memory.Size {
		return nil, curated.Errorf(ProgramTooLarge, len(data), origin)
	}

	if tab == nil {
		var err error
		tab, err = definitions.Default()
		if err != nil {
			return nil, curated.Errorf("disassembly: %v", err)
		}
	}

	dsm := &Disassembly{
		Origin:  origin,
		Entries: make([]Entry, 0, len(data)),
	}

	for i := 0; i < len(data); {
		address := origin + uint16(i)

		defn, ok := tab.Lookup(data[i])

		// treat undefined opcodes and instructions truncated by the end of
		// the program as data
		if !ok || i+1+defn.OperandBytes > len(data) {
			dsm.Entries = append(dsm.Entries, Entry{
				Address: address,
				Bytes:   data[i : i+1],
				Operand: fmt.Sprintf("$%02x", data[i]),
			})
			i++
			continue
		}

		var operand uint16
		switch defn.OperandBytes {
		case 1:
			operand = uint16(data[i+1])
		case 2:
			operand = uint16(data[i+1]) | uint16(data[i+2])<<8
		}

		n := 1 + defn.OperandBytes
		dsm.Entries = append(dsm.Entries, Entry{
			Address: address,
			Bytes:   data[i : i+n],
			Decoded: true,
			Defn:    defn,
			Operand: formatOperand(defn, address, operand),
		})
		i += n
	}

	return dsm, nil
}

// Find the entry that starts at the address. The boolean result is false if
// no entry starts at the address.
func (dsm *Disassembly) Find(address uint16) (Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Address == address {
			return e, true
		}
	}
	return Entry{}, false
}
