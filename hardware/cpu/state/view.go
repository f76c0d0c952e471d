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

package state

import (
	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
)

// View is a read-only view of the MachineState.
type View interface {
	// the number of cycles remaining of the current instruction
	CyclesLeft() int

	// the number of cycles that have elapsed since the machine state was
	// created or loaded
	Ticks() uint64

	ExecutingOpcode() uint8
	LastDecoded() *DecodedInstruction
	Registers() registers.Registers
	Status() registers.StatusRegister
	Peek(address uint16) uint8
}
