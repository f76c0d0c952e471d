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

import (
	"github.com/jetsetilly/sim6502/curated"
)

// InvalidLength is returned by Load() when the data is not exactly Size bytes
// long.
const InvalidLength = "memory: invalid length (%d bytes, expecting %d)"

// Memory is the 64KiB memory image.
type Memory struct {
	data []uint8
}

// NewMemory is the preferred method of initialisation for Memory. All
// addresses are zero.
func NewMemory() *Memory {
	return &Memory{
		data: make([]uint8, Size),
	}
}

// Read the value at address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Peek returns the value at address. Peek is for use by collaborators that
// observe memory without being part of the CPU.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Write value to address.
func (mem *Memory) Write(address uint16, value uint8) {
	mem.data[address] = value
}

// Read16 reads a 16 bit value, low byte first. The address of the high byte
// wraps at the top of memory.
func (mem *Memory) Read16(address uint16) uint16 {
	lo := mem.data[address]
	hi := mem.data[address+1]
	return uint16(lo) | uint16(hi)<<8
}

// Copy data into memory starting at origin. Data that would extend past the
// top of memory is discarded. Returns the number of bytes copied.
func (mem *Memory) Copy(origin uint16, data []uint8) int {
	return copy(mem.data[origin:], data)
}

// Save returns a copy of the memory image.
func (mem *Memory) Save() []uint8 {
	d := make([]uint8, Size)
	copy(d, mem.data)
	return d
}

// Load the memory image from data created by Save(). Memory is unchanged if
// data is of the wrong length.
func (mem *Memory) Load(data []uint8) error {
	if len(data) != Size {
		return curated.Errorf(InvalidLength, len(data), Size)
	}
	copy(mem.data, data)
	return nil
}

// Reset all addresses to zero.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
}
