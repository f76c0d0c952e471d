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

package preferences

import (
	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/paths"
	"github.com/jetsetilly/sim6502/prefs"
)

// InvalidPreference is returned when a preference value is out of range.
const InvalidPreference = "preferences: %s out of range (%d)"

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// default address at which programs are loaded
	Origin prefs.Int

	// panic if the CPU is cycled from a goroutine other than the one that
	// created it
	AssertOwner prefs.Bool

	// sample rate of the audio unit in Hz
	SampleRate prefs.Int

	// address of the audio unit's frequency register. the volume register
	// immediately follows
	AudioRegister prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Origin.SetHookPre(inRange("cpu.origin", 0x0000, 0xffff))
	p.SampleRate.SetHookPre(inRange("audio.samplerate", 1, 192000))

	// the volume register follows the frequency register so the last address
	// in memory cannot be used
	p.AudioRegister.SetHookPre(inRange("audio.register", 0x0000, 0xfffe))

	p.SetDefaults()

	// setup preferences and load from disk
	pth := paths.ResourcePath(prefs.DefaultPrefsFile)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.origin", &p.Origin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.assertowner", &p.AssertOwner)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.samplerate", &p.SampleRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.register", &p.AudioRegister)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func inRange(key string, min int, max int) prefs.Hook {
	return func(value prefs.Value) error {
		if v := value.(int); v < min || v > max {
			return curated.Errorf(InvalidPreference, key, v)
		}
		return nil
	}
}

// SetDefaults reverts all settings to default values. Values set from the
// command line are also reverted.
func (p *Preferences) SetDefaults() {
	_ = p.Origin.Set(0x0000)
	_ = p.AssertOwner.Set(false)
	_ = p.SampleRate.Set(44100)
	_ = p.AudioRegister.Set(0x4000)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
