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
	"fmt"
	"math"
	"time"

	"github.com/jetsetilly/gameaudio/tuning"
)

// Window is the length of audio examined for each pitch measurement.
const Window = 20 * time.Millisecond

// windows with an RMS level lower than this are silent.
const silenceLevel = 0.01

// Segment is a period of constant pitch or silence.
type Segment struct {
	Start    time.Duration
	Duration time.Duration

	// Rest is true for silence. Key and Frequency are not used
	Rest bool
	Key  uint8

	// the mean measured frequency over the segment
	Frequency float64
}

func (s Segment) String() string {
	if s.Rest {
		return fmt.Sprintf("%-10s %-10s rest", s.Start, s.Duration)
	}
	return fmt.Sprintf("%-10s %-10s %-4s %.1fHz", s.Start, s.Duration, tuning.Name(s.Key), s.Frequency)
}

// Frequency measures the frequency of the signal. Returns zero if the signal
// is silent or if less than two complete cycles are present.
func Frequency(data []float32, sampleRate int) float64 {
	if len(data) < 2 || sampleRate <= 0 {
		return 0
	}

	var mean float64
	for _, v := range data {
		mean += float64(v)
	}
	mean /= float64(len(data))

	var rms float64
	for _, v := range data {
		d := float64(v) - mean
		rms += d * d
	}
	rms = math.Sqrt(rms / float64(len(data)))
	if rms < silenceLevel {
		return 0
	}

	// positive going zero crossings with hysteresis. the position of the
	// crossing is interpolated between samples
	hyst := rms * 0.1

	var armed bool
	var lastZero float64
	var first, last float64
	var crossings int

	prev := float64(data[0]) - mean
	for i := 1; i < len(data); i++ {
		v := float64(data[i]) - mean

		if prev < 0 && v >= 0 {
			lastZero = float64(i-1) + (-prev)/(v-prev)
		}

		if v < -hyst {
			armed = true
		} else if armed && v >= hyst {
			armed = false
			if crossings == 0 {
				first = lastZero
			}
			last = lastZero
			crossings++
		}

		prev = v
	}

	if crossings < 3 || last <= first {
		return 0
	}

	return float64(crossings-1) * float64(sampleRate) / (last - first)
}

// Notes divides the recording into segments of constant pitch. Segments
// shorter than the minimum duration are merged with the preceding segment.
func Notes(p PCM, minimum time.Duration) []Segment {
	size := int(int64(p.SampleRate) * int64(Window) / int64(time.Second))
	if size < 2 {
		return nil
	}

	var segs []Segment

	// frequency total and count for the mean of the current segment
	var sum float64
	var count int

	for i := 0; i+size <= len(p.Data); i += size {
		at := time.Duration(int64(i) * int64(time.Second) / int64(p.SampleRate))

		hz := Frequency(p.Data[i:i+size], p.SampleRate)
		rest := hz == 0
		var key uint8
		if !rest {
			key = tuning.Nearest(uint32(math.Round(hz)))
		}

		if len(segs) > 0 {
			cur := &segs[len(segs)-1]
			if cur.Rest == rest && cur.Key == key {
				cur.Duration += Window
				if !rest {
					sum += hz
					count++
					cur.Frequency = sum / float64(count)
				}
				continue // for loop
			}
		}

		segs = append(segs, Segment{
			Start:     at,
			Duration:  Window,
			Rest:      rest,
			Key:       key,
			Frequency: hz,
		})
		sum = hz
		count = 1
	}

	return merge(segs, minimum)
}

// merge segments shorter than the minimum into the preceding segment. if the
// segment either side of a short segment are the same then all three are
// joined.
func merge(segs []Segment, minimum time.Duration) []Segment {
	if len(segs) == 0 {
		return segs
	}

	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if len(out) == 0 {
			out = append(out, s)
			continue // for loop
		}

		prev := &out[len(out)-1]
		if s.Duration < minimum {
			prev.Duration += s.Duration
			continue // for loop
		}

		if prev.Rest == s.Rest && prev.Key == s.Key {
			prev.Duration += s.Duration
			continue // for loop
		}

		out = append(out, s)
	}

	// the first segment might itself be short
	if len(out) > 1 && out[0].Duration < minimum {
		out[1].Start = out[0].Start
		out[1].Duration += out[0].Duration
		out = out[1:]
	}

	return out
}
