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

package stack_test

import (
	"testing"

	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/hardware/cpu/stack"
	"github.com/jetsetilly/sim6502/hardware/memory"
	"github.com/jetsetilly/sim6502/test"
)

func TestStack(t *testing.T) {
	mem := memory.NewMemory()
	sp := registers.NewRegister(0xff, "SP")
	stk := stack.NewStack(mem, &sp)

	stk.Push(0x01)
	test.ExpectEquality(t, mem.Read(0x01ff), uint8(0x01))
	test.ExpectEquality(t, sp.Value(), uint8(0xfe))

	stk.Push(0x02)
	test.ExpectEquality(t, mem.Read(0x01fe), uint8(0x02))
	test.ExpectEquality(t, stk.Address(), uint16(0x01fd))

	test.ExpectEquality(t, stk.Pull(), uint8(0x02))
	test.ExpectEquality(t, stk.Pull(), uint8(0x01))
	test.ExpectEquality(t, sp.Value(), uint8(0xff))
}

func TestStack16(t *testing.T) {
	mem := memory.NewMemory()
	sp := registers.NewRegister(0xff, "SP")
	stk := stack.NewStack(mem, &sp)

	stk.Push16(0x1234)
	test.ExpectEquality(t, mem.Read(0x01ff), uint8(0x12))
	test.ExpectEquality(t, mem.Read(0x01fe), uint8(0x34))
	test.ExpectEquality(t, sp.Value(), uint8(0xfd))

	test.ExpectEquality(t, stk.Pull16(), uint16(0x1234))
	test.ExpectEquality(t, sp.Value(), uint8(0xff))
}

func TestStackWrap(t *testing.T) {
	mem := memory.NewMemory()
	sp := registers.NewRegister(0x00, "SP")
	stk := stack.NewStack(mem, &sp)

	// stack pointer wraps within the stack page
	stk.Push(0xaa)
	test.ExpectEquality(t, mem.Read(0x0100), uint8(0xaa))
	test.ExpectEquality(t, sp.Value(), uint8(0xff))

	test.ExpectEquality(t, stk.Pull(), uint8(0xaa))
	test.ExpectEquality(t, sp.Value(), uint8(0x00))

	// pulling from an empty stack wraps the other way
	sp.Load(0xff)
	mem.Write(0x0100, 0xbb)
	test.ExpectEquality(t, stk.Pull(), uint8(0xbb))
	test.ExpectEquality(t, mem.Read(0x0200), uint8(0x00))
}
