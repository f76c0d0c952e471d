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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/sim6502/assert"
	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/instructions"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
	"github.com/jetsetilly/sim6502/hardware/memory"
	"github.com/jetsetilly/sim6502/hardware/preferences"
	"github.com/jetsetilly/sim6502/logger"
)

// error patterns returned by the CPU.
const (
	ProgramTooLarge = "cpu: program too large (%d bytes at origin 0x%04x)"

	// the instruction has already been executed when this error is detected
	// so the state of the CPU is undefined. the CPU refuses to cycle until a
	// new state is loaded with Load()
	CycleOverrun = "cpu: %s added %d cycles (maximum %d)"
)

// the number of cycles taken to service an interrupt request.
const interruptCycles = 7

// CPU implements the 6502. The mutable state of the CPU is kept in a
// MachineState instance.
type CPU struct {
	prefs   *preferences.Preferences
	st      *state.MachineState
	decoder *Decoder

	// if not nil, the goroutine that is allowed to call Cycle()
	owner *assert.Owner

	// the error that stopped the CPU. returned by every call to Cycle() until
	// the next call to Load()
	halted error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// preferences argument can be nil, in which case no goroutine assertions are
// made.
func NewCPU(prefs *preferences.Preferences) (*CPU, error) {
	bindings, err := instructions.Default()
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}
	return NewCPUWithBindings(prefs, bindings)
}

// NewCPUWithBindings creates a CPU that decodes instructions with the
// specified bindings rather than the default bindings.
func NewCPUWithBindings(prefs *preferences.Preferences, bindings *instructions.Bindings) (*CPU, error) {
	mc := &CPU{
		prefs:   prefs,
		st:      state.NewMachineState(),
		decoder: NewDecoder(bindings),
	}

	if prefs != nil && prefs.AssertOwner.Get().(bool) {
		o := assert.NewOwner()
		mc.owner = &o
	}

	mc.st.Regs.SP.Load(0xff)

	return mc, nil
}

func (mc *CPU) String() string {
	return mc.st.String()
}

// State returns a read-only view of the CPU.
func (mc *CPU) State() state.View {
	return mc.st
}

// Decoder returns the decoder used by the CPU.
func (mc *CPU) Decoder() *Decoder {
	return mc.decoder
}

// Load the CPU from data created by Save().
func (mc *CPU) Load(data []byte) error {
	if err := mc.st.Load(data); err != nil {
		return err
	}
	mc.halted = nil
	return nil
}

// Save the state of the CPU.
func (mc *CPU) Save() []byte {
	return mc.st.Save()
}

// LoadProgram copies the program into memory at the origin address and
// prepares the CPU to execute it. The IRQ vector is pointed at the sentinel
// address.
func (mc *CPU) LoadProgram(data []byte, origin uint16) error {
	if int(origin)+len(data) > memory.Size {
		return curated.Errorf(ProgramTooLarge, len(data), origin)
	}

	mc.st.Mem.Copy(origin, data)
	mc.st.Mem.Write(memory.IRQ, 0xff)
	mc.st.Mem.Write(memory.IRQ+1, 0xff)
	mc.st.Regs.PC.Load(origin)
	mc.st.Regs.SP.Load(0xff)

	logger.Logf(logger.Allow, "cpu", "loaded %d bytes at 0x%04x", len(data), origin)

	return nil
}

// RequestHardwareInterrupt raises the IRQ line. The request is sampled before
// the next instruction is fetched.
func (mc *CPU) RequestHardwareInterrupt() {
	mc.st.RequestHardwareInterrupt()
}

// RequestSoftwareInterrupt asks for a BRK to be performed before the next
// instruction is fetched.
func (mc *CPU) RequestSoftwareInterrupt() {
	mc.st.RequestSoftwareInterrupt()
}

// IsRunning returns false if the CPU is between instructions and the program
// counter is at the sentinel address.
func (mc *CPU) IsRunning() bool {
	return !(mc.st.CyclesLeft() == 0 && mc.st.Regs.PC.Address() == memory.Sentinel)
}

// Cycle advances the CPU by one clock cycle. The callback function, which may
// be nil, is called after the cycle has been consumed.
//
// Returns false once the program has finished.
func (mc *CPU) Cycle(callback func() error) (bool, error) {
	if mc.owner != nil {
		mc.owner.Check()
	}

	if mc.halted != nil {
		return false, mc.halted
	}

	if !mc.IsRunning() {
		return false, nil
	}

	if mc.st.CyclesLeft() <= 0 {
		if err := mc.fetch(); err != nil {
			return false, err
		}
	}

	mc.st.Tick()

	if callback != nil {
		if err := callback(); err != nil {
			return false, err
		}
	}

	return mc.IsRunning(), nil
}

// fetch and execute the next instruction or service a pending interrupt
// request.
func (mc *CPU) fetch() error {
	hardware, software := mc.st.InterruptRequests()

	if software {
		mc.st.ClearSoftwareInterrupt()
		logger.Log(logger.Allow, "cpu", "software interrupt serviced")
		instructions.Interrupt(mc.st, true)
		mc.st.AddCycles(interruptCycles)
		return nil
	}

	if hardware {
		mc.st.ClearHardwareInterrupt()
		if !mc.st.Flags.InterruptDisable {
			logger.Log(logger.Allow, "cpu", "hardware interrupt serviced")
			instructions.Interrupt(mc.st, false)
			mc.st.AddCycles(interruptCycles)
			return nil
		}
		logger.Log(logger.Allow, "cpu", "hardware interrupt masked")
	}

	d, err := mc.decoder.Decode(mc.st.Mem, mc.st.Regs.PC.Address())
	if err != nil {
		return err
	}

	mc.st.Decoded(d)
	mc.st.Regs.PC.Add(d.Length())
	d.Instruction.Execute(mc.st, d.Operand)

	// any cycles at this point have been added by the instruction
	if extra := mc.st.CyclesLeft(); extra > d.Definition.ExtraCycles() {
		mc.halted = curated.Errorf(CycleOverrun, d.Definition.Mnemonic, extra, d.Definition.ExtraCycles())
		return mc.halted
	}

	mc.st.AddCycles(d.Definition.MinCycles)

	return nil
}

// Disassemble the instruction at the address without affecting the state of
// the CPU.
func (mc *CPU) Disassemble(address uint16) string {
	d, err := mc.decoder.Decode(mc.st.Mem, address)
	if err != nil {
		return fmt.Sprintf("0x%04x ???", address)
	}
	return d.String()
}
