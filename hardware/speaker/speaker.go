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

// Package speaker converts the level of the speaker pin into audio samples.
//
// The level of the pin is recorded once per emulated tick and the levels are
// averaged over each sample period. The resulting signal is optionally passed
// through a one-pole high pass filter, which models the coupling capacitor
// between the pin and the speaker: a pin held at a constant level produces no
// sound, whatever that level is.
package speaker

import (
	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/hardware/clocks"
)

// the pole of the DC blocking filter.
const dcBlockPole = 0.995

// Speaker converts pin levels to samples. It is not safe for concurrent use.
type Speaker struct {
	sampleRate int

	// accumulates sampleRate every tick. a sample is produced when it
	// reaches the tick rate
	phase int

	// number of high levels and total levels in the current sample period
	highs int
	ticks int

	dcBlock   bool
	prevIn    float64
	prevOut   float64
	amplitude float64

	buffer []int16
	size   int

	mixers []Mixer
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
// The size argument is the number of samples collected before they are sent
// to the mixers. The volume is a fraction of full scale.
func NewSpeaker(sampleRate int, size int, dcBlock bool, volume float64) (*Speaker, error) {
	if sampleRate <= 0 || sampleRate > clocks.TickRate {
		return nil, curated.Errorf("speaker: unsupported sample rate (%d)", sampleRate)
	}
	if size < 1 {
		return nil, curated.Errorf("speaker: unsupported buffer size (%d)", size)
	}
	return &Speaker{
		sampleRate: sampleRate,
		dcBlock:    dcBlock,
		amplitude:  volume * 32767,
		buffer:     make([]int16, 0, size),
		size:       size,
	}, nil
}

// SampleRate returns the number of samples produced per second of emulated
// time.
func (spk *Speaker) SampleRate() int {
	return spk.sampleRate
}

// AddMixer adds a mixer to the list of mixers that receive samples.
func (spk *Speaker) AddMixer(m Mixer) {
	spk.mixers = append(spk.mixers, m)
}

// Tick records the level of the pin for one tick. Returns true if a sample
// was completed by the tick.
func (spk *Speaker) Tick(level bool) bool {
	spk.ticks++
	if level {
		spk.highs++
	}

	spk.phase += spk.sampleRate
	if spk.phase < clocks.TickRate {
		return false
	}
	spk.phase -= clocks.TickRate

	// average level over the sample period in the range -1.0 to 1.0
	v := float64(spk.highs)/float64(spk.ticks)*2.0 - 1.0
	spk.highs = 0
	spk.ticks = 0

	if spk.dcBlock {
		out := v - spk.prevIn + dcBlockPole*spk.prevOut
		spk.prevIn = v
		spk.prevOut = out
		v = out
	}

	v = min(max(v, -1.0), 1.0)
	spk.buffer = append(spk.buffer, int16(v*spk.amplitude))

	return true
}

// Full returns true if the buffer of samples should be sent to the mixers.
func (spk *Speaker) Full() bool {
	return len(spk.buffer) >= spk.size
}

// Flush sends the buffered samples to the mixers.
func (spk *Speaker) Flush() error {
	if len(spk.buffer) == 0 {
		return nil
	}
	for _, m := range spk.mixers {
		if err := m.SetAudio(spk.buffer); err != nil {
			return curated.Errorf("speaker: %v", err)
		}
	}
	spk.buffer = spk.buffer[:0]
	return nil
}

// End flushes any remaining samples and tells the mixers that mixing has
// ended.
func (spk *Speaker) End() error {
	if err := spk.Flush(); err != nil {
		return err
	}
	for _, m := range spk.mixers {
		if err := m.EndMixing(); err != nil {
			return curated.Errorf("speaker: %v", err)
		}
	}
	return nil
}

// Reset discards buffered samples and the state of the filter. Mixers are also
// reset.
func (spk *Speaker) Reset() {
	spk.buffer = spk.buffer[:0]
	spk.phase = 0
	spk.highs = 0
	spk.ticks = 0
	spk.prevIn = 0
	spk.prevOut = 0
	for _, m := range spk.mixers {
		m.Reset()
	}
}
