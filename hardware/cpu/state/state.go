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
	"fmt"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/registers"
	"github.com/jetsetilly/sim6502/hardware/cpu/stack"
	"github.com/jetsetilly/sim6502/hardware/memory"
	"github.com/jetsetilly/sim6502/logger"
)

// HeaderLength is the number of bytes in the serialised form that precede the
// memory image.
const HeaderLength = 3 + registers.Length

// Length is the length of the serialised machine state.
const Length = HeaderLength + memory.Size

// StateLength is returned by Load() when the data is not exactly Length bytes
// long.
const StateLength = "state: invalid length (%d bytes, expecting %d)"

// MachineState is the mutable state of the 6502.
type MachineState struct {
	Regs  registers.Registers
	Flags registers.StatusRegister
	Mem   *memory.Memory
	Stack *stack.Stack

	// remaining cycles of the instruction being executed. zero when the next
	// call to Cycle() should fetch a new instruction
	cyclesLeft int

	// total number of cycles since creation or the last call to Load()
	ticks uint64

	executingOpcode uint8
	lastDecoded     *DecodedInstruction

	hardwareInterrupt bool
	softwareInterrupt bool
}

// NewMachineState is the preferred method of initialisation for the
// MachineState type.
func NewMachineState() *MachineState {
	st := &MachineState{
		Regs:  registers.NewRegisters(),
		Flags: registers.NewStatusRegister(),
		Mem:   memory.NewMemory(),
	}
	st.Stack = stack.NewStack(st.Mem, &st.Regs.SP)
	return st
}

func (st *MachineState) String() string {
	return fmt.Sprintf("%s %s=%s", st.Regs, st.Flags.Label(), st.Flags)
}

// CyclesLeft implements the View interface.
func (st *MachineState) CyclesLeft() int {
	return st.cyclesLeft
}

// Ticks implements the View interface.
func (st *MachineState) Ticks() uint64 {
	return st.ticks
}

// ExecutingOpcode implements the View interface.
func (st *MachineState) ExecutingOpcode() uint8 {
	return st.executingOpcode
}

// LastDecoded implements the View interface. Returns nil if no instruction
// has been decoded since creation or the last call to Load().
func (st *MachineState) LastDecoded() *DecodedInstruction {
	return st.lastDecoded
}

// Registers implements the View interface.
func (st *MachineState) Registers() registers.Registers {
	return st.Regs
}

// Status implements the View interface.
func (st *MachineState) Status() registers.StatusRegister {
	return st.Flags
}

// Peek implements the View interface.
func (st *MachineState) Peek(address uint16) uint8 {
	return st.Mem.Peek(address)
}

// AddCycles adds to the cycle budget of the current instruction. Panics if n
// is negative.
func (st *MachineState) AddCycles(n int) {
	if n < 0 {
		panic(fmt.Sprintf("state: negative cycle increment (%d)", n))
	}
	st.cyclesLeft += n
}

// Tick consumes one cycle of the current instruction.
func (st *MachineState) Tick() {
	st.cyclesLeft--
	st.ticks++
}

// Decoded records the instruction that has just been fetched.
func (st *MachineState) Decoded(d *DecodedInstruction) {
	st.executingOpcode = d.Definition.Opcode
	st.lastDecoded = d
}

// RequestHardwareInterrupt signals an interrupt request. The request is
// sampled at the next instruction boundary.
func (st *MachineState) RequestHardwareInterrupt() {
	st.hardwareInterrupt = true
}

// RequestSoftwareInterrupt signals a software interrupt. The request is
// sampled at the next instruction boundary.
func (st *MachineState) RequestSoftwareInterrupt() {
	st.softwareInterrupt = true
}

// InterruptRequests returns the pending interrupt requests.
func (st *MachineState) InterruptRequests() (hardware bool, software bool) {
	return st.hardwareInterrupt, st.softwareInterrupt
}

// ClearHardwareInterrupt forgets a pending hardware interrupt request.
func (st *MachineState) ClearHardwareInterrupt() {
	st.hardwareInterrupt = false
}

// ClearSoftwareInterrupt forgets a pending software interrupt request.
func (st *MachineState) ClearSoftwareInterrupt() {
	st.softwareInterrupt = false
}

// Save the machine state. The saved state is only meaningful at an
// instruction boundary.
func (st *MachineState) Save() []byte {
	data := make([]byte, 0, Length)
	data = append(data, uint8(int8(st.cyclesLeft)))
	data = append(data, st.executingOpcode)
	data = append(data, st.Flags.Pack())
	data = append(data, st.Regs.Save()...)
	data = append(data, st.Mem.Save()...)
	return data
}

// Load the machine state from data created by Save(). The length of the data
// is checked before anything is changed. Pending interrupt requests and the
// last decoded instruction are forgotten.
func (st *MachineState) Load(data []byte) error {
	if len(data) != Length {
		return curated.Errorf(StateLength, len(data), Length)
	}

	if err := st.Regs.Load(data[3:HeaderLength]); err != nil {
		return curated.Errorf("state: %v", err)
	}
	if err := st.Mem.Load(data[HeaderLength:]); err != nil {
		return curated.Errorf("state: %v", err)
	}

	st.cyclesLeft = int(int8(data[0]))
	st.executingOpcode = data[1]
	st.Flags.Unpack(data[2])

	st.ticks = 0
	st.lastDecoded = nil
	st.hardwareInterrupt = false
	st.softwareInterrupt = false

	logger.Logf(logger.Allow, "state", "loaded (%s)", st)

	return nil
}

// SetZeroSign sets the zero and sign flags according to the value.
func (st *MachineState) SetZeroSign(v uint8) {
	st.Flags.Zero = v == 0
	st.Flags.Sign = v&0x80 == 0x80
}
