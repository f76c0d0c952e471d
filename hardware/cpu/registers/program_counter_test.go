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
	"testing"

	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/test"
)

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), uint16(127))
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(129))

	// high and low bytes
	pc.Load(0x1234)
	test.ExpectEquality(t, pc.Hi(), uint8(0x12))
	test.ExpectEquality(t, pc.Lo(), uint8(0x34))
	test.ExpectEquality(t, pc.String(), "0x1234")

	// wrap
	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), uint16(0))
}
