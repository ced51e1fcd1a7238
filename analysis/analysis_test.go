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

package analysis_test

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gameaudio/analysis"
	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/environment"
	"github.com/jetsetilly/gameaudio/gameaudio"
	"github.com/jetsetilly/gameaudio/hardware"
	"github.com/jetsetilly/gameaudio/hardware/preferences"
	"github.com/jetsetilly/gameaudio/hardware/speaker"
	"github.com/jetsetilly/gameaudio/logger"
	"github.com/jetsetilly/gameaudio/song"
	"github.com/jetsetilly/gameaudio/test"
	"github.com/jetsetilly/gameaudio/tuning"
	"github.com/jetsetilly/gameaudio/wavwriter"
)

const sampleRate = 44100

// square wave of the frequency and duty
func square(hz float64, duty float64, d time.Duration) []float32 {
	n := int(d.Seconds() * sampleRate)
	data := make([]float32, n)
	for i := range data {
		phase := math.Mod(float64(i)*hz/sampleRate, 1.0)
		if phase < duty {
			data[i] = 0.5
		} else {
			data[i] = -0.5
		}
	}
	return data
}

func TestFrequency(t *testing.T) {
	f := analysis.Frequency(square(440, 0.5, analysis.Window), sampleRate)
	test.ExpectApproximate(t, f, 440, 0.01)

	// narrow pulses of the quietest volume level
	f = analysis.Frequency(square(415, 4.0/132.0, analysis.Window), sampleRate)
	test.ExpectApproximate(t, f, 415, 0.01)

	// silence
	f = analysis.Frequency(make([]float32, 882), sampleRate)
	test.ExpectEquality(t, f, 0.0)
}

type mixer struct {
	samples []int16
}

func (m *mixer) SetAudio(samples []int16) error {
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *mixer) EndMixing() error { return nil }
func (m *mixer) Reset()           {}

// render the scenario song for two seconds
func render(t *testing.T, mixers ...speaker.Mixer) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	b, err := hardware.NewBoard(env)
	test.DemandSuccess(t, err)
	for _, m := range mixers {
		b.AddAudioMixer(m)
	}

	audio := gameaudio.NewLockMut(&sync.Mutex{})
	e := gameaudio.New(b.Timer, b.PWM, b.SpeakerPin)
	e.SetLogPermission(env)
	audio.Init(e)
	b.AttachInterrupt(audio.Interrupt)

	audio.WithLock(func(e *gameaudio.Engine) {
		e.Play(song.NewSong(song.Library["scenario"]()))
	})

	test.DemandSuccess(t, b.RunFor(2*time.Second))
	test.DemandSuccess(t, b.End())
}

type expected struct {
	start    time.Duration
	duration time.Duration
	rest     bool
	note     string
}

var scenario = []expected{
	{start: 0, duration: 500 * time.Millisecond, rest: true},
	{start: 500 * time.Millisecond, duration: 250 * time.Millisecond, note: "G#4"},
	{start: 750 * time.Millisecond, duration: 250 * time.Millisecond, note: "A4"},
	{start: 1000 * time.Millisecond, duration: 250 * time.Millisecond, note: "G#4"},
	{start: 1250 * time.Millisecond, duration: 500 * time.Millisecond, note: "F#4"},
	{start: 1750 * time.Millisecond, duration: 250 * time.Millisecond, rest: true},
}

func compare(t *testing.T, segs []analysis.Segment) {
	t.Helper()

	test.DemandEquality(t, len(segs), len(scenario))
	for i, e := range scenario {
		s := segs[i]
		test.ExpectEquality(t, s.Rest, e.rest, i)
		if !e.rest {
			test.ExpectEquality(t, tuning.Name(s.Key), e.note, i)
		}
		test.ExpectSuccess(t, (s.Start-e.start).Abs() <= analysis.Window, i, " start ", s.Start)
		test.ExpectSuccess(t, (s.Duration-e.duration).Abs() <= 2*analysis.Window, i, " duration ", s.Duration)
	}
}

func TestNotes(t *testing.T) {
	m := &mixer{}
	render(t, m)
	segs := analysis.Notes(analysis.FromSamples(m.samples, sampleRate), 3*analysis.Window)
	compare(t, segs)
}

func TestLoadWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scenario.wav")

	ww, err := wavwriter.New(logger.Allow, fn, sampleRate)
	test.DemandSuccess(t, err)
	render(t, ww)

	p, err := analysis.Load(logger.Allow, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, sampleRate)
	test.ExpectEquality(t, len(p.Data), 2*sampleRate)

	compare(t, analysis.Notes(p, 3*analysis.Window))
}

func TestLoadUnsupported(t *testing.T) {
	_, err := analysis.Load(logger.Allow, filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, analysis.LoadFailed))

	_, err = analysis.Load(logger.Allow, "analysis_test.go")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, analysis.UnsupportedType))

	// a file with the right extension but the wrong content
	junk := filepath.Join(t.TempDir(), "junk.wav")
	test.DemandSuccess(t, os.WriteFile(junk, []byte("not a riff file at all"), 0600))
	_, err = analysis.Load(logger.Allow, junk)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, analysis.LoadFailed))
	test.ExpectSuccess(t, curated.Has(err, analysis.InvalidWAV))
}
