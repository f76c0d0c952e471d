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

// Package audio implements a simple tone generator that is driven by the CPU
// clock. The Unit reads a frequency register and a volume register from
// memory every cycle and produces a square wave at the sample rate of the
// Mixer it is attached to.
//
// The Unit only ever reads from the CPU through the state.View interface. It
// never changes the state of the CPU.
//
// The tone frequency in Hz is the value of the frequency register multiplied
// by 16. A value of zero in either register produces silence.
package audio
