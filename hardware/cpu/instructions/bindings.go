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
	"sync"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/definitions"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
)

// Sentinal error patterns.
const (
	UndefinedOpcode  = "instructions: %s bound to undefined opcode (0x%02x)"
	DuplicateBinding = "instructions: opcode 0x%02x bound to both %s and %s"
	MissingBinding   = "instructions: no instruction bound to opcode 0x%02x (%s)"
	MnemonicMismatch = "instructions: %s bound to opcode 0x%02x defined as %s"
)

// InstructionSet returns a new instance of every instruction of the 6502.
func InstructionSet() []state.Instruction {
	return []state.Instruction{
		newADC(), newAND(), newASL(), newBCC(), newBCS(), newBEQ(), newBIT(),
		newBMI(), newBNE(), newBPL(), newBRK(), newBVC(), newBVS(), newCLC(),
		newCLD(), newCLI(), newCLV(), newCMP(), newCPX(), newCPY(), newDEC(),
		newDEX(), newDEY(), newEOR(), newINC(), newINX(), newINY(), newJMP(),
		newJSR(), newLDA(), newLDX(), newLDY(), newLSR(), newNOP(), newORA(),
		newPHA(), newPHP(), newPLA(), newPLP(), newROL(), newROR(), newRTI(),
		newRTS(), newSBC(), newSEC(), newSED(), newSEI(), newSTA(), newSTX(),
		newSTY(), newTAX(), newTAY(), newTSX(), newTXA(), newTXS(), newTYA(),
	}
}

// Bindings pair every opcode in a definitions table with an instruction.
type Bindings struct {
	tab          *definitions.Table
	instructions [256]state.Instruction
}

// NewBindings is the preferred method of initialisation for the Bindings
// type. Every opcode in the table must be claimed by exactly one instruction
// and every opcode claimed by an instruction must be in the table.
func NewBindings(tab *definitions.Table, instructions ...state.Instruction) (*Bindings, error) {
	b := &Bindings{tab: tab}

	for _, ins := range instructions {
		for _, opcode := range ins.Opcodes() {
			defn, ok := tab.Lookup(opcode)
			if !ok {
				return nil, curated.Errorf(UndefinedOpcode, ins.Mnemonic(), opcode)
			}
			if defn.Mnemonic != ins.Mnemonic() {
				return nil, curated.Errorf(MnemonicMismatch, ins.Mnemonic(), opcode, defn.Mnemonic)
			}
			if b.instructions[opcode] != nil {
				return nil, curated.Errorf(DuplicateBinding, opcode, b.instructions[opcode].Mnemonic(), ins.Mnemonic())
			}
			b.instructions[opcode] = ins
		}
	}

	for _, defn := range tab.Definitions() {
		if b.instructions[defn.Opcode] == nil {
			return nil, curated.Errorf(MissingBinding, defn.Opcode, defn.Mnemonic)
		}
	}

	return b, nil
}

// Lookup returns the definition and instruction for an opcode. The boolean
// result is false if the opcode is not defined.
func (b *Bindings) Lookup(opcode uint8) (definitions.Definition, state.Instruction, bool) {
	ins := b.instructions[opcode]
	if ins == nil {
		return definitions.Definition{}, nil, false
	}
	defn, _ := b.tab.Lookup(opcode)
	return defn, ins, true
}

// Table returns the definitions table used to create the bindings.
func (b *Bindings) Table() *definitions.Table {
	return b.tab
}

var defaultBindings struct {
	once sync.Once
	b    *Bindings
	err  error
}

// Default returns bindings of the full instruction set to the default
// definitions table. The bindings are created once, on the first call to
// Default().
func Default() (*Bindings, error) {
	defaultBindings.once.Do(func() {
		tab, err := definitions.Default()
		if err != nil {
			defaultBindings.err = err
			return
		}
		defaultBindings.b, defaultBindings.err = NewBindings(tab, InstructionSet()...)
	})
	return defaultBindings.b, defaultBindings.err
}
