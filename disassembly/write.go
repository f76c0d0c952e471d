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
	"io"
	"strings"

	"github.com/jetsetilly/sim6502/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	s := fmt.Sprintf("%04x ", e.Address)

	if attr.ByteCode {
		s = fmt.Sprintf("%s%-8s ", s, e.Bytecode())
	}

	s = fmt.Sprintf("%s%-5s %-10s", s, e.Mnemonic(), e.Operand)

	if attr.Cycles {
		s = fmt.Sprintf("%s %s", s, e.Cycles())
	}

	if _, err := io.WriteString(output, fmt.Sprintf("%s\n", strings.TrimRight(s, " "))); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
