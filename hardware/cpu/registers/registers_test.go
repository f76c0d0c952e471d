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

package registers_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/test"
)

func TestRegistersRoundTrip(t *testing.T) {
	r := registers.NewRegisters()

	blocks := [][]byte{
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x34, 0x12, 0xff, 0x01, 0x02, 0x03},
		{0xff, 0xff, 0xfd, 0x80, 0x7f, 0xaa},
	}

	for _, b := range blocks {
		test.DemandSuccess(t, r.Load(b))
		test.ExpectSuccess(t, bytes.Equal(r.Save(), b))
		test.ExpectEquality(t, r.PC.Address(), uint16(b[0])|uint16(b[1])<<8)
		test.ExpectEquality(t, r.SP.Value(), b[2])
		test.ExpectEquality(t, r.A.Value(), b[3])
		test.ExpectEquality(t, r.X.Value(), b[4])
		test.ExpectEquality(t, r.Y.Value(), b[5])
	}

	test.ExpectEquality(t, len(r.Save()), registers.Length)
}

func TestRegistersInvalidLength(t *testing.T) {
	r := registers.NewRegisters()
	test.DemandSuccess(t, r.Load([]byte{0x34, 0x12, 0xff, 0x01, 0x02, 0x03}))

	err := r.Load([]byte{0x00, 0x00})
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidLength))

	// registers are unchanged
	test.ExpectEquality(t, r.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, r.Y.Value(), uint8(0x03))
}

func TestRegistersString(t *testing.T) {
	r := registers.NewRegisters()
	r.PC.Load(0x0600)
	r.A.Load(0x10)
	test.ExpectEquality(t, r.String(), "PC=0x0600 A=0x10 X=0x00 Y=0x00 SP=0x00")
}
