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
	"fmt"

	"github.com/jetsetilly/sim6502/hardware/cpu/state"
)

// instruction is embedded in every instruction type.
type instruction struct {
	mnemonic string
	opcodes  []uint8
}

// Mnemonic implements the state.Instruction interface.
func (ins instruction) Mnemonic() string {
	return ins.mnemonic
}

// Opcodes implements the state.Instruction interface.
func (ins instruction) Opcodes() []uint8 {
	return ins.opcodes
}

func (ins instruction) String() string {
	return ins.mnemonic
}

// called in the default case of every opcode switch.
func (ins instruction) unknownOpcode(st *state.MachineState) {
	panic(fmt.Sprintf("instructions: %s cannot execute opcode 0x%02x", ins.mnemonic, st.ExecutingOpcode()))
}

// adds the additional cycle incurred by a page crossing read.
func pageCross(st *state.MachineState, pageCrossed bool) {
	if pageCrossed {
		st.AddCycles(1)
	}
}
