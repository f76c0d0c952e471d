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
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/logger"
)

// error patterns returned by NewTable().
const (
	MalformedRecord = "definitions: malformed record (%v)"
	InvalidField    = "definitions: invalid %s for opcode %s (%s)"
	DuplicateOpcode = "definitions: duplicate opcode (0x%02x)"
)

// Table of definitions indexed by opcode.
type Table struct {
	defns [256]*Definition
	count int
}

// NewTable creates a table from CSV data. Each record has six fields:
//
//	opcode, mnemonic, operand bytes, minimum cycles, maximum cycles, addressing mode
//
// Lines beginning with # are ignored. A maximum cycle count less than the
// minimum is raised to the minimum.
func NewTable(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 6

	tab := &Table{}

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(MalformedRecord, err)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn, err := parseRecord(rec)
		if err != nil {
			return nil, err
		}

		if tab.defns[defn.Opcode] != nil {
			return nil, curated.Errorf(DuplicateOpcode, defn.Opcode)
		}

		tab.defns[defn.Opcode] = &defn
		tab.count++
	}

	return tab, nil
}

func parseRecord(rec []string) (Definition, error) {
	defn := Definition{}

	// field: opcode
	opcode := rec[0]
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(opcode), "0x"), 16, 8)
	if err != nil {
		return defn, curated.Errorf(InvalidField, "opcode", opcode, rec[0])
	}
	defn.Opcode = uint8(n)

	// field: mnemonic
	defn.Mnemonic = strings.ToUpper(rec[1])
	if defn.Mnemonic == "" {
		return defn, curated.Errorf(InvalidField, "mnemonic", opcode, rec[1])
	}

	// field: operand bytes
	defn.OperandBytes, err = strconv.Atoi(rec[2])
	if err != nil || defn.OperandBytes < 0 || defn.OperandBytes > 2 {
		return defn, curated.Errorf(InvalidField, "operand length", opcode, rec[2])
	}

	// field: minimum cycles
	defn.MinCycles, err = strconv.Atoi(rec[3])
	if err != nil || defn.MinCycles < 1 {
		return defn, curated.Errorf(InvalidField, "minimum cycles", opcode, rec[3])
	}

	// field: maximum cycles
	defn.MaxCycles, err = strconv.Atoi(rec[4])
	if err != nil {
		return defn, curated.Errorf(InvalidField, "maximum cycles", opcode, rec[4])
	}
	if defn.MaxCycles < defn.MinCycles {
		logger.Logf(logger.Allow, "definitions", "maximum cycles for opcode %s raised to %d", opcode, defn.MinCycles)
		defn.MaxCycles = defn.MinCycles
	}

	// field: addressing mode
	var ok bool
	defn.AddressingMode, ok = parseAddressingMode(rec[5])
	if !ok {
		return defn, curated.Errorf(InvalidField, "addressing mode", opcode, rec[5])
	}

	return defn, nil
}

// Lookup the definition for an opcode.
func (tab *Table) Lookup(opcode uint8) (Definition, bool) {
	d := tab.defns[opcode]
	if d == nil {
		return Definition{}, false
	}
	return *d, true
}

// Len returns the number of definitions in the table.
func (tab *Table) Len() int {
	return tab.count
}

// Definitions returns every definition in the table in opcode order.
func (tab *Table) Definitions() []Definition {
	defns := make([]Definition, 0, tab.count)
	for _, d := range tab.defns {
		if d != nil {
			defns = append(defns, *d)
		}
	}
	return defns
}

//go:embed opcodes.csv
var opcodesCSV []byte

var defaultTable struct {
	once sync.Once
	tab  *Table
	err  error
}

// Default returns the table created from the embedded opcodes.csv file. The
// table is created once, on the first call to Default().
func Default() (*Table, error) {
	defaultTable.once.Do(func() {
		defaultTable.tab, defaultTable.err = NewTable(bytes.NewReader(opcodesCSV))
	})
	return defaultTable.tab, defaultTable.err
}
