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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/logger"
)

// the format of the WAV file.
const (
	bitDepth    = 16
	numChannels = 1

	// PCM format as defined by the WAV specification
	pcmFormat = 1
)

// WavWriter implements the audio.Mixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the audio.Mixer interface.
func (aw *WavWriter) SetAudio(sample int16) error {
	aw.buffer = append(aw.buffer, int(sample))
	return nil
}

// EndMixing implements the audio.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           aw.buffer,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
