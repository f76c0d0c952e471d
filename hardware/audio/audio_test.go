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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/audio"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
	"github.com/jetsetilly/sim6502/test"
)

type mockMixer struct {
	samples []int16
	ended   bool
}

func (m *mockMixer) SetAudio(sample int16) error {
	m.samples = append(m.samples, sample)
	return nil
}

func (m *mockMixer) EndMixing() error {
	m.ended = true
	return nil
}

type failingMixer struct{}

func (m failingMixer) SetAudio(sample int16) error {
	return curated.Errorf("mixer: full")
}

func (m failingMixer) EndMixing() error {
	return nil
}

// runs the machine state for the number of ticks calling Cycle() for every
// tick.
func run(t *testing.T, au *audio.Unit, st *state.MachineState, ticks int) {
	t.Helper()
	for i := 0; i < ticks; i++ {
		st.Tick()
		test.DemandSuccess(t, au.Cycle(st))
	}
}

func TestSampleCount(t *testing.T) {
	m := &mockMixer{}
	au, err := audio.NewUnit(nil, m)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, au.SampleRate(), audio.DefaultSampleRate)

	st := state.NewMachineState()

	// one second of CPU time produces one second of audio
	run(t, au, st, audio.ClockFrequency)
	test.ExpectEquality(t, len(m.samples), audio.DefaultSampleRate)

	test.ExpectSuccess(t, au.EndMixing())
	test.ExpectSuccess(t, m.ended)
}

func TestSilence(t *testing.T) {
	m := &mockMixer{}
	au, err := audio.NewUnit(nil, m)
	test.DemandSuccess(t, err)

	st := state.NewMachineState()
	st.Mem.Write(audio.DefaultRegister, 0x10)
	run(t, au, st, 10000)

	test.ExpectInequality(t, len(m.samples), 0)
	for _, s := range m.samples {
		test.ExpectEquality(t, s, int16(0))
	}
}

func TestSquareWave(t *testing.T) {
	m := &mockMixer{}
	au, err := audio.NewUnit(nil, m)
	test.DemandSuccess(t, err)

	st := state.NewMachineState()
	st.Mem.Write(audio.DefaultRegister, 0x40)
	st.Mem.Write(audio.DefaultRegister+1, 0x10)
	run(t, au, st, 100000)

	var high, low int
	for _, s := range m.samples {
		switch s {
		case 0x10 * 128:
			high++
		case -0x10 * 128:
			low++
		default:
			t.Fatalf("unexpected sample value (%d)", s)
		}
	}
	test.ExpectInequality(t, high, 0)
	test.ExpectInequality(t, low, 0)

	// the CPU state is not changed by the audio unit
	test.ExpectEquality(t, st.Peek(audio.DefaultRegister), uint8(0x40))
	test.ExpectEquality(t, st.Regs.PC.Address(), uint16(0x0000))
}

func TestSkippedTicks(t *testing.T) {
	m := &mockMixer{}
	au, err := audio.NewUnit(nil, m)
	test.DemandSuccess(t, err)

	st := state.NewMachineState()
	for i := 0; i < audio.ClockFrequency; i++ {
		st.Tick()
	}
	test.DemandSuccess(t, au.Cycle(st))
	test.ExpectEquality(t, len(m.samples), audio.DefaultSampleRate)
}

func TestMixerError(t *testing.T) {
	au, err := audio.NewUnit(nil, failingMixer{})
	test.DemandSuccess(t, err)

	st := state.NewMachineState()
	for i := 0; i < 100; i++ {
		st.Tick()
	}
	test.ExpectFailure(t, au.Cycle(st))
}
