// This file is part of GameAudio.
//
// GameAudio is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameAudio is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameAudio.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package wavwriter allows writing of the emulated speaker output to disk as
// a WAV file. Audio data is buffered in memory in its entirety and written to
// disk when mixing ends.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/logger"
	"github.com/youpy/go-wav"
)

const logTag = "wavwriter"

// WavWriter implements the speaker.Mixer interface.
type WavWriter struct {
	perm       logger.Permission
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate should be the same as the sample rate of the speaker that the
// WavWriter is attached to.
func New(perm logger.Permission, filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: bad sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		perm:       perm,
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0, sampleRate),
	}

	return aw, nil
}

// SetAudio implements the speaker.Mixer interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		aw.buffer = append(aw.buffer, w)
	}
	return nil
}

// EndMixing implements the speaker.Mixer interface.
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

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(aw.perm, logTag, "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset implements the speaker.Mixer interface.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}

// Len returns the number of samples buffered so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}
