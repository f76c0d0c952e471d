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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sim6502/test"
	"github.com/jetsetilly/sim6502/wavwriter"
	ywav "github.com/youpy/go-wav"
)

// the output of the WavWriter must be readable by a decoder other than the
// one used to encode it.
func TestCompatibility(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "compat.wav")

	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)

	samples := []int16{1, -1, 1000, -1000}
	for _, s := range samples {
		test.ExpectSuccess(t, aw.SetAudio(s))
	}
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	r := ywav.NewReader(f)

	format, err := r.Format()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, format.SampleRate, uint32(44100))
	test.ExpectEquality(t, format.NumChannels, uint16(1))
	test.ExpectEquality(t, format.BitsPerSample, uint16(16))

	var got []int16
	for {
		s, err := r.ReadSamples()
		for _, v := range s {
			got = append(got, int16(r.IntValue(v, 0)))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		test.DemandSuccess(t, err)
	}

	test.DemandEquality(t, len(got), len(samples))
	for i, s := range samples {
		test.ExpectEquality(t, got[i], s, i)
	}
}
