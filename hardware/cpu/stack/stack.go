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

// Package stack implements the hardware stack of the 6502. The stack is
// confined to page one of memory and is addressed by the stack pointer
// register. The stack grows downwards and the stack pointer wraps within the
// page.
package stack

import (
	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/hardware/memory"
)

// Stack operates on memory through the stack pointer.
type Stack struct {
	mem *memory.Memory
	sp  *registers.Register
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack(mem *memory.Memory, sp *registers.Register) *Stack {
	return &Stack{
		mem: mem,
		sp:  sp,
	}
}

// Address returns the address of the next free location on the stack.
func (s *Stack) Address() uint16 {
	return memory.StackPage | s.sp.Address()
}

// Push value onto the stack.
func (s *Stack) Push(value uint8) {
	s.mem.Write(s.Address(), value)
	s.sp.Load(s.sp.Value() - 1)
}

// Pull value from the stack.
func (s *Stack) Pull() uint8 {
	s.sp.Load(s.sp.Value() + 1)
	return s.mem.Read(s.Address())
}

// Push16 pushes a 16 bit value onto the stack. The high byte is pushed first.
func (s *Stack) Push16(value uint16) {
	s.Push(uint8(value >> 8))
	s.Push(uint8(value))
}

// Pull16 pulls a 16 bit value from the stack. The low byte is pulled first.
func (s *Stack) Pull16() uint16 {
	lo := s.Pull()
	hi := s.Pull()
	return uint16(lo) | uint16(hi)<<8
}
