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

package memory

// Immediate returns the operand as the value. There is no memory access.
func (mem *Memory) Immediate(operand uint16) uint8 {
	return uint8(operand)
}

// ZeroPageAddress returns the effective address of the zero page modes. The
// index wraps within the zero page.
func ZeroPageAddress(operand uint16, index uint8) uint16 {
	return uint16(uint8(operand) + index)
}

// AbsoluteIndexedAddress returns the effective address of the absolute
// indexed modes and whether the index crossed a page boundary.
func AbsoluteIndexedAddress(operand uint16, index uint8) (bool, uint16) {
	address := operand + uint16(index)
	return PageCrossed(operand, address), address
}

// reads a 16 bit pointer from the zero page. the high byte wraps within the
// zero page.
func (mem *Memory) zeroPagePointer(address uint8) uint16 {
	lo := mem.data[address]
	hi := mem.data[uint8(address+1)]
	return uint16(lo) | uint16(hi)<<8
}

// IndexedIndirectAddress returns the effective address of the (zp,X) mode.
func (mem *Memory) IndexedIndirectAddress(operand uint16, x uint8) uint16 {
	return mem.zeroPagePointer(uint8(operand) + x)
}

// IndirectIndexedAddress returns the effective address of the (zp),Y mode
// and whether the index crossed a page boundary.
func (mem *Memory) IndirectIndexedAddress(operand uint16, y uint8) (bool, uint16) {
	base := mem.zeroPagePointer(uint8(operand))
	address := base + uint16(y)
	return PageCrossed(base, address), address
}

// ReadZeroPage reads from the zero page.
func (mem *Memory) ReadZeroPage(operand uint16) uint8 {
	return mem.data[ZeroPageAddress(operand, 0)]
}

// WriteZeroPage writes to the zero page.
func (mem *Memory) WriteZeroPage(operand uint16, value uint8) {
	mem.data[ZeroPageAddress(operand, 0)] = value
}

// ReadZeroPageX reads from the zero page indexed by X.
func (mem *Memory) ReadZeroPageX(operand uint16, x uint8) uint8 {
	return mem.data[ZeroPageAddress(operand, x)]
}

// WriteZeroPageX writes to the zero page indexed by X.
func (mem *Memory) WriteZeroPageX(operand uint16, x uint8, value uint8) {
	mem.data[ZeroPageAddress(operand, x)] = value
}

// ReadZeroPageY reads from the zero page indexed by Y.
func (mem *Memory) ReadZeroPageY(operand uint16, y uint8) uint8 {
	return mem.data[ZeroPageAddress(operand, y)]
}

// WriteZeroPageY writes to the zero page indexed by Y.
func (mem *Memory) WriteZeroPageY(operand uint16, y uint8, value uint8) {
	mem.data[ZeroPageAddress(operand, y)] = value
}

// ReadAbsolute reads from the absolute address.
func (mem *Memory) ReadAbsolute(operand uint16) uint8 {
	return mem.data[operand]
}

// WriteAbsolute writes to the absolute address.
func (mem *Memory) WriteAbsolute(operand uint16, value uint8) {
	mem.data[operand] = value
}

// ReadAbsoluteX reads from the absolute address indexed by X.
func (mem *Memory) ReadAbsoluteX(operand uint16, x uint8) (bool, uint8) {
	pageCrossed, address := AbsoluteIndexedAddress(operand, x)
	return pageCrossed, mem.data[address]
}

// WriteAbsoluteX writes to the absolute address indexed by X.
func (mem *Memory) WriteAbsoluteX(operand uint16, x uint8, value uint8) bool {
	pageCrossed, address := AbsoluteIndexedAddress(operand, x)
	mem.data[address] = value
	return pageCrossed
}

// ReadAbsoluteY reads from the absolute address indexed by Y.
func (mem *Memory) ReadAbsoluteY(operand uint16, y uint8) (bool, uint8) {
	pageCrossed, address := AbsoluteIndexedAddress(operand, y)
	return pageCrossed, mem.data[address]
}

// WriteAbsoluteY writes to the absolute address indexed by Y.
func (mem *Memory) WriteAbsoluteY(operand uint16, y uint8, value uint8) bool {
	pageCrossed, address := AbsoluteIndexedAddress(operand, y)
	mem.data[address] = value
	return pageCrossed
}

// ReadIndirect returns the 16 bit address stored at the operand address. If
// the low byte of the operand is 0xff the high byte of the result is read
// from the start of the same page.
func (mem *Memory) ReadIndirect(operand uint16) uint16 {
	lo := mem.data[operand]
	hi := mem.data[(operand&0xff00)|uint16(uint8(operand)+1)]
	return uint16(lo) | uint16(hi)<<8
}

// ReadIndexedIndirect reads using the (zp,X) mode.
func (mem *Memory) ReadIndexedIndirect(operand uint16, x uint8) uint8 {
	return mem.data[mem.IndexedIndirectAddress(operand, x)]
}

// WriteIndexedIndirect writes using the (zp,X) mode.
func (mem *Memory) WriteIndexedIndirect(operand uint16, x uint8, value uint8) {
	mem.data[mem.IndexedIndirectAddress(operand, x)] = value
}

// ReadIndirectIndexed reads using the (zp),Y mode.
func (mem *Memory) ReadIndirectIndexed(operand uint16, y uint8) (bool, uint8) {
	pageCrossed, address := mem.IndirectIndexedAddress(operand, y)
	return pageCrossed, mem.data[address]
}

// WriteIndirectIndexed writes using the (zp),Y mode.
func (mem *Memory) WriteIndirectIndexed(operand uint16, y uint8, value uint8) bool {
	pageCrossed, address := mem.IndirectIndexedAddress(operand, y)
	mem.data[address] = value
	return pageCrossed
}
