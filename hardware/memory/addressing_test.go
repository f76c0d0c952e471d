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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/sim6502/hardware/memory"
	"github.com/jetsetilly/sim6502/test"
)

func TestImmediate(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectEquality(t, mem.Immediate(0x00ab), uint8(0xab))
}

func TestZeroPage(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteZeroPage(0x0080, 0x01)
	test.ExpectEquality(t, mem.Read(0x0080), uint8(0x01))
	test.ExpectEquality(t, mem.ReadZeroPage(0x0080), uint8(0x01))

	// index wraps within the zero page
	mem.WriteZeroPageX(0x00ff, 0x02, 0x02)
	test.ExpectEquality(t, mem.Read(0x0001), uint8(0x02))
	test.ExpectEquality(t, mem.Read(0x0101), uint8(0x00))
	test.ExpectEquality(t, mem.ReadZeroPageX(0x00ff, 0x02), uint8(0x02))

	mem.WriteZeroPageY(0x0080, 0x90, 0x03)
	test.ExpectEquality(t, mem.Read(0x0010), uint8(0x03))
	test.ExpectEquality(t, mem.ReadZeroPageY(0x0080, 0x90), uint8(0x03))

	test.ExpectEquality(t, memory.ZeroPageAddress(0x00f0, 0x20), uint16(0x0010))
}

func TestAbsolute(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteAbsolute(0x1234, 0x01)
	test.ExpectEquality(t, mem.ReadAbsolute(0x1234), uint8(0x01))

	var pageCrossed bool
	var v uint8

	// no page crossed
	pageCrossed = mem.WriteAbsoluteX(0x2000, 0x10, 0x02)
	test.ExpectEquality(t, pageCrossed, false)
	pageCrossed, v = mem.ReadAbsoluteX(0x2000, 0x10)
	test.ExpectEquality(t, pageCrossed, false)
	test.ExpectEquality(t, v, uint8(0x02))

	// page crossed
	pageCrossed = mem.WriteAbsoluteY(0x20f0, 0x20, 0x03)
	test.ExpectEquality(t, pageCrossed, true)
	test.ExpectEquality(t, mem.Read(0x2110), uint8(0x03))
	pageCrossed, v = mem.ReadAbsoluteY(0x20f0, 0x20)
	test.ExpectEquality(t, pageCrossed, true)
	test.ExpectEquality(t, v, uint8(0x03))

	// top of memory wraps and is a page cross
	pageCrossed, address := memory.AbsoluteIndexedAddress(0xfff0, 0x20)
	test.ExpectEquality(t, pageCrossed, true)
	test.ExpectEquality(t, address, uint16(0x0010))
}

func TestIndirect(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0300, 0x00)
	mem.Write(0x0301, 0x06)
	test.ExpectEquality(t, mem.ReadIndirect(0x0300), uint16(0x0600))

	// pointer on page boundary takes the high byte from the start of the page
	mem.Write(0x03ff, 0x34)
	mem.Write(0x0400, 0x56)
	mem.Write(0x0300, 0x12)
	test.ExpectEquality(t, mem.ReadIndirect(0x03ff), uint16(0x1234))
}

func TestIndexedIndirect(t *testing.T) {
	mem := memory.NewMemory()

	// pointer at 0x24 points to 0x2074
	mem.Write(0x0024, 0x74)
	mem.Write(0x0025, 0x20)
	mem.Write(0x2074, 0xaa)

	test.ExpectEquality(t, mem.ReadIndexedIndirect(0x0020, 0x04), uint8(0xaa))
	mem.WriteIndexedIndirect(0x0020, 0x04, 0xbb)
	test.ExpectEquality(t, mem.Read(0x2074), uint8(0xbb))

	// pointer fetch wraps within the zero page
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x30)
	mem.Write(0x0100, 0x40)
	mem.Write(0x3000, 0xcc)
	test.ExpectEquality(t, mem.IndexedIndirectAddress(0x00fe, 0x01), uint16(0x3000))
	test.ExpectEquality(t, mem.ReadIndexedIndirect(0x00fe, 0x01), uint8(0xcc))
}

func TestIndirectIndexed(t *testing.T) {
	mem := memory.NewMemory()

	var pageCrossed bool
	var v uint8

	// pointer at 0x86 points to 0x4028
	mem.Write(0x0086, 0x28)
	mem.Write(0x0087, 0x40)
	mem.Write(0x4038, 0xaa)

	pageCrossed, v = mem.ReadIndirectIndexed(0x0086, 0x10)
	test.ExpectEquality(t, pageCrossed, false)
	test.ExpectEquality(t, v, uint8(0xaa))

	// page crossed
	pageCrossed = mem.WriteIndirectIndexed(0x0086, 0xe0, 0xbb)
	test.ExpectEquality(t, pageCrossed, true)
	test.ExpectEquality(t, mem.Read(0x4108), uint8(0xbb))

	pageCrossed, v = mem.ReadIndirectIndexed(0x0086, 0xe0)
	test.ExpectEquality(t, pageCrossed, true)
	test.ExpectEquality(t, v, uint8(0xbb))
}
