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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction bindings. The definition and
// instruction bound to that opcode are then used to move execution of the
// program forward.
//
// The bread-and-butter of the CPU type is the Cycle() function. Each call to
// Cycle() advances the CPU by exactly one clock cycle. When the CPU is between
// instructions, the next instruction is fetched, decoded and executed in its
// entirety and the remaining cycles of the instruction are consumed by
// subsequent calls to Cycle(). The optional callback function is called once
// for every cycle.
//
//	mc, _ := cpu.NewCPU(nil)
//	_ = mc.LoadProgram(program, 0x0600)
//
//	numCycles := 0
//	for {
//		running, err := mc.Cycle(func() error {
//			numCycles++
//			return nil
//		})
//		if err != nil || !running {
//			break
//		}
//	}
//
// The program counter value of 0xffff is a sentinel value. LoadProgram()
// points the IRQ vector at the sentinel so a BRK instruction ends the
// program. Cycle() returns false when the program counter reaches the
// sentinel at an instruction boundary.
//
// Hardware and software interrupts are requested between calls to Cycle().
// Requests are sampled when the next instruction would be fetched. A hardware
// interrupt request that arrives while the interrupt disable flag is set is
// forgotten.
//
// The State() function returns a read-only view of the CPU. Collaborators,
// such as the audio unit, should only ever be given this view.
package cpu
