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

package analysis

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/logger"
)

const logTag = "analysis"

// PCM is mono audio data in the range -1.0 to 1.0.
type PCM struct {
	SampleRate int
	Data       []float32
}

// Duration returns the length of the recording in seconds.
func (p PCM) Duration() float64 {
	if p.SampleRate == 0 {
		return 0
	}
	return float64(len(p.Data)) / float64(p.SampleRate)
}

// FromSamples converts samples produced by the emulated speaker to PCM.
func FromSamples(samples []int16, sampleRate int) PCM {
	p := PCM{
		SampleRate: sampleRate,
		Data:       make([]float32, len(samples)),
	}
	for i, s := range samples {
		p.Data[i] = float32(s) / 32768.0
	}
	return p
}

// Error patterns returned by Load().
const (
	LoadFailed      = "analysis: %v"
	UnsupportedType = "analysis: unsupported file type (%s)"
	InvalidWAV      = "wav: not a valid wav file"
)

// Load a recording from a WAV or MP3 file. Only the first channel of a stereo
// recording is used.
func Load(perm logger.Permission, filename string) (PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, curated.Errorf(LoadFailed, err)
	}
	defer f.Close()

	var p PCM

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		logger.Logf(perm, logTag, "loading from wav file: %s", filename)
		p, err = loadWAV(f)
	case ".mp3":
		logger.Logf(perm, logTag, "loading from mp3 file: %s", filename)
		p, err = loadMP3(f)
	default:
		return PCM{}, curated.Errorf(UnsupportedType, filepath.Ext(filename))
	}
	if err != nil {
		return PCM{}, curated.Errorf(LoadFailed, err)
	}

	logger.Logf(perm, logTag, "%.2fs of audio at %dHz", p.Duration(), p.SampleRate)

	return p, nil
}

func loadWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return PCM{}, curated.Errorf(InvalidWAV)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return PCM{}, curated.Errorf("wav: no channels")
	}
	if dec.BitDepth == 0 {
		return PCM{}, curated.Errorf("wav: no bit depth")
	}
	scale := float32(int(1) << (dec.BitDepth - 1))

	p := PCM{
		SampleRate: int(dec.SampleRate),
	}

	buf := &audio.IntBuffer{
		Format: dec.Format(),
		Data:   make([]int, 4096*chans),
	}

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return PCM{}, curated.Errorf("wav: %v", err)
		}
		if n == 0 {
			break // for loop
		}

		// first channel only
		for i := 0; i < n; i += chans {
			p.Data = append(p.Data, float32(buf.Data[i])/scale)
		}

		if err == io.EOF {
			break // for loop
		}
	}

	return p, nil
}

func loadMP3(r io.Reader) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, curated.Errorf("mp3: %v", err)
	}

	// the decoded stream is always 16bit little endian with two channels
	data, err := io.ReadAll(dec)
	if err != nil {
		return PCM{}, curated.Errorf("mp3: %v", err)
	}

	p := PCM{
		SampleRate: dec.SampleRate(),
		Data:       make([]float32, 0, len(data)/4),
	}

	// left channel only
	for i := 0; i+1 < len(data); i += 4 {
		v := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		p.Data = append(p.Data, float32(v)/32768.0)
	}

	return p, nil
}
