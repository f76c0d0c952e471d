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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/sim6502/hardware/audio"
	"github.com/jetsetilly/sim6502/test"
	"github.com/jetsetilly/sim6502/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.DemandSuccess(t, err)

	var mixer audio.Mixer = aw

	samples := []int16{0, 2048, -2048, 32767, -32768}
	for _, s := range samples {
		test.ExpectSuccess(t, mixer.SetAudio(s))
	}
	test.DemandSuccess(t, mixer.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dec.SampleRate, uint32(22050))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.DemandEquality(t, len(buf.Data), len(samples))
	for i, s := range samples {
		test.ExpectEquality(t, buf.Data[i], int(s), i)
	}
}

func TestReset(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, aw.SetAudio(100))
	aw.Reset()
	test.ExpectSuccess(t, aw.SetAudio(200))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 1)
	test.ExpectEquality(t, buf.Data[0], 200)
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("unused.wav", 0)
	test.ExpectFailure(t, err)
}
