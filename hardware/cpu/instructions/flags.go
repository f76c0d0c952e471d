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

package instructions

import (
	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
)

// flag sets or clears a single flag in the status register.
type flag struct {
	instruction
	flag  func(sr *registers.StatusRegister) *bool
	value bool
}

// Execute implements the state.Instruction interface.
func (ins *flag) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != ins.opcodes[0] {
		ins.unknownOpcode(st)
	}
	*ins.flag(&st.Flags) = ins.value
}

func carry(sr *registers.StatusRegister) *bool     { return &sr.Carry }
func decimal(sr *registers.StatusRegister) *bool   { return &sr.DecimalMode }
func interrupt(sr *registers.StatusRegister) *bool { return &sr.InterruptDisable }
func overflow(sr *registers.StatusRegister) *bool  { return &sr.Overflow }

// CLC clears the carry flag.
type CLC struct{ flag }

func newCLC() *CLC {
	return &CLC{flag{instruction{"CLC", []uint8{0x18}}, carry, false}}
}

// CLD clears the decimal mode flag.
type CLD struct{ flag }

func newCLD() *CLD {
	return &CLD{flag{instruction{"CLD", []uint8{0xd8}}, decimal, false}}
}

// CLI clears the interrupt disable flag.
type CLI struct{ flag }

func newCLI() *CLI {
	return &CLI{flag{instruction{"CLI", []uint8{0x58}}, interrupt, false}}
}

// CLV clears the overflow flag.
type CLV struct{ flag }

func newCLV() *CLV {
	return &CLV{flag{instruction{"CLV", []uint8{0xb8}}, overflow, false}}
}

// SEC sets the carry flag.
type SEC struct{ flag }

func newSEC() *SEC {
	return &SEC{flag{instruction{"SEC", []uint8{0x38}}, carry, true}}
}

// SED sets the decimal mode flag.
type SED struct{ flag }

func newSED() *SED {
	return &SED{flag{instruction{"SED", []uint8{0xf8}}, decimal, true}}
}

// SEI sets the interrupt disable flag.
type SEI struct{ flag }

func newSEI() *SEI {
	return &SEI{flag{instruction{"SEI", []uint8{0x78}}, interrupt, true}}
}

// NOP does nothing.
type NOP struct{ instruction }

func newNOP() *NOP {
	return &NOP{instruction{"NOP", []uint8{0xea}}}
}

// Execute implements the state.Instruction interface.
func (ins *NOP) Execute(st *state.MachineState, _ uint16) {
	if st.ExecutingOpcode() != 0xea {
		ins.unknownOpcode(st)
	}
}
