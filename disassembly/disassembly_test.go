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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/disassembly"
	"github.com/jetsetilly/sim6502/test"
)

func TestFromProgram(t *testing.T) {
	program := []uint8{
		0xa2, 0x05, // LDX #$05
		0xca,       // DEX
		0xd0, 0xfd, // BNE $0602
		0x6c, 0x00, 0x10, // JMP ($1000)
		0xb1, 0x40, // LDA ($40),Y
		0x0a,             // ASL A
		0x9d, 0x00, 0x02, // STA $0200,X
		0x02,       // undefined
		0xad, 0x01, // truncated LDA
	}

	dsm, err := disassembly.FromProgram(program, 0x0600, nil)
	test.DemandSuccess(t, err)

	expected := []string{
		"0600 LDX #$05",
		"0602 DEX",
		"0603 BNE $0602",
		"0605 JMP ($1000)",
		"0608 LDA ($40),Y",
		"060a ASL A",
		"060b STA $0200,X",
		"060e .byte $02",
		"060f .byte $ad",
		"0610 .byte $01",
	}

	test.DemandEquality(t, len(dsm.Entries), len(expected))
	for i, e := range dsm.Entries {
		test.ExpectEquality(t, e.String(), expected[i], i)
	}

	e, ok := dsm.Find(0x0603)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Cycles(), "2-4")
	test.ExpectEquality(t, e.Bytecode(), "d0 fd")

	_, ok = dsm.Find(0x0604)
	test.ExpectFailure(t, ok)
}

func TestBranchForward(t *testing.T) {
	dsm, err := disassembly.FromProgram([]uint8{0xf0, 0x10}, 0x00f0, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Entries[0].String(), "00f0 BEQ $0102")
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromProgram([]uint8{0xa9, 0x01, 0xea}, 0x0000, nil)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "0000 LDA   #$01\n0002 NOP\n")

	w.Reset()
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true, Cycles: true}))
	test.ExpectEquality(t, w.String(), "0000 a9 01    LDA   #$01       2\n0002 ea       NOP              2\n")
}

func TestProgramTooLarge(t *testing.T) {
	_, err := disassembly.FromProgram(make([]uint8, 0x100), 0xff80, nil)
	test.ExpectSuccess(t, curated.Is(err, disassembly.ProgramTooLarge))
}
