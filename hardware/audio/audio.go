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

package audio

import (
	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/hardware/cpu/state"
	"github.com/jetsetilly/sim6502/hardware/preferences"
	"github.com/jetsetilly/sim6502/logger"
)

// ClockFrequency is the frequency of the CPU clock in Hz.
const ClockFrequency = 1789773

// Default values used when the Unit is created without preferences.
const (
	DefaultSampleRate = 44100
	DefaultRegister   = 0x4000
)

// the tone frequency is the value of the frequency register multiplied by
// frequencyScale.
const frequencyScale = 16

// the amplitude of the square wave is the value of the volume register
// multiplied by volumeScale.
const volumeScale = 128

// InvalidSampleRate is returned by NewUnit() if the sample rate is not usable.
const InvalidSampleRate = "audio: invalid sample rate (%d)"

// Mixer implementations receive samples from the Unit.
type Mixer interface {
	SetAudio(sample int16) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the Mixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// Unit is the audio unit.
type Unit struct {
	mixer Mixer

	// address of the frequency register. the volume register is at the
	// following address
	register uint16

	sampleRate int

	// the number of ticks seen on the previous call to Cycle()
	lastTicks uint64

	// accumulates the sample rate for every tick. a sample is produced when
	// the accumulator reaches the clock frequency
	clock int

	// phase of the square wave. accumulates the tone frequency for every
	// sample and wraps at the sample rate
	phase int
}

// NewUnit is the preferred method of initialisation for the Unit type. The
// prefs argument can be nil, in which case the default sample rate and
// register are used.
func NewUnit(prefs *preferences.Preferences, mixer Mixer) (*Unit, error) {
	au := &Unit{
		mixer:      mixer,
		register:   DefaultRegister,
		sampleRate: DefaultSampleRate,
	}

	if prefs != nil {
		au.register = uint16(prefs.AudioRegister.Get().(int))
		au.sampleRate = prefs.SampleRate.Get().(int)
	}

	if au.sampleRate <= 0 || au.sampleRate > ClockFrequency {
		return nil, curated.Errorf(InvalidSampleRate, au.sampleRate)
	}

	logger.Logf(logger.Allow, "audio", "%dHz with registers at 0x%04x", au.sampleRate, au.register)

	return au, nil
}

// SampleRate returns the number of samples produced for every second of CPU
// time.
func (au *Unit) SampleRate() int {
	return au.sampleRate
}

// Cycle should be called once for every CPU cycle. Any ticks that have
// happened since the previous call are also accounted for.
func (au *Unit) Cycle(v state.View) error {
	ticks := v.Ticks()

	// the tick counter resets when the CPU state is loaded
	if ticks < au.lastTicks {
		au.lastTicks = 0
	}
	delta := ticks - au.lastTicks
	au.lastTicks = ticks

	for ; delta > 0; delta-- {
		au.clock += au.sampleRate
		if au.clock < ClockFrequency {
			continue
		}
		au.clock -= ClockFrequency

		if err := au.mixer.SetAudio(au.sample(v)); err != nil {
			return curated.Errorf("audio: %v", err)
		}
	}

	return nil
}

// produce the next sample of the square wave.
func (au *Unit) sample(v state.View) int16 {
	freq := int(v.Peek(au.register)) * frequencyScale
	vol := int(v.Peek(au.register+1)) * volumeScale

	if freq == 0 || vol == 0 {
		au.phase = 0
		return 0
	}

	au.phase += freq
	for au.phase >= au.sampleRate {
		au.phase -= au.sampleRate
	}

	if au.phase < au.sampleRate/2 {
		return int16(vol)
	}
	return int16(-vol)
}

// EndMixing concludes the Mixer attached to the Unit.
func (au *Unit) EndMixing() error {
	return au.mixer.EndMixing()
}
