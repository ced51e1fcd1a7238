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

package hardware_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/gameaudio/analysis"
	"github.com/jetsetilly/gameaudio/digest"
	"github.com/jetsetilly/gameaudio/environment"
	"github.com/jetsetilly/gameaudio/gameaudio"
	"github.com/jetsetilly/gameaudio/hardware"
	"github.com/jetsetilly/gameaudio/hardware/preferences"
	"github.com/jetsetilly/gameaudio/song"
	"github.com/jetsetilly/gameaudio/test"
	"github.com/jetsetilly/gameaudio/tracker"
	"github.com/jetsetilly/gameaudio/tuning"
)

// mixer collects all samples it receives
type mixer struct {
	samples []int16
	ended   bool
}

func (m *mixer) SetAudio(samples []int16) error {
	m.samples = append(m.samples, samples...)
	return nil
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

func (m *mixer) Reset() {
	m.samples = m.samples[:0]
}

const sampleRate = 4000

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.SampleRate.Set(sampleRate))
	test.DemandSuccess(t, p.Buffer.Set(256))

	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	b, err := hardware.NewBoard(env)
	test.DemandSuccess(t, err)

	return b
}

// returns the index of the sample at the time
func sampleAt(d time.Duration) int {
	return int(d * sampleRate / time.Second)
}

// returns the largest magnitude of the samples
func peak(samples []int16) int {
	var p int
	for _, s := range samples {
		p = max(p, abs(int(s)))
	}
	return p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNoEnvironment(t *testing.T) {
	_, err := hardware.NewBoard(nil)
	test.ExpectFailure(t, err)
}

func TestScenario(t *testing.T) {
	b := newBoard(t)

	m := &mixer{}
	b.AddAudioMixer(m)

	audio := gameaudio.NewLockMut(&sync.Mutex{})
	audio.Init(gameaudio.New(b.Timer, b.PWM, b.SpeakerPin))
	b.AttachInterrupt(audio.Interrupt)

	tr := tracker.NewTracker(100)
	b.SetTracker(tr)

	audio.WithLock(func(e *gameaudio.Engine) {
		e.Play(song.NewSong(song.Library["scenario"]()))
	})

	test.ExpectSuccess(t, b.RunFor(2*time.Second))
	test.ExpectSuccess(t, b.End())
	test.ExpectSuccess(t, m.ended)
	test.ExpectEquality(t, b.Elapsed(), 2*time.Second)
	test.ExpectEquality(t, b.Interrupts(), uint64(5))

	type expected struct {
		at   time.Duration
		note string
		hz   uint32
		high uint32
	}

	exp := []expected{
		{at: 0, note: "-"},
		{at: 500 * time.Millisecond, note: "G#4", hz: 415, high: 4},
		{at: 750 * time.Millisecond, note: "A4", hz: 440, high: 6},
		{at: 1000 * time.Millisecond, note: "G#4", hz: 415, high: 10},
		{at: 1250 * time.Millisecond, note: "F#4", hz: 370, high: 4},
		{at: 1750 * time.Millisecond, note: "-"},
	}

	entries := tr.Copy()
	test.DemandEquality(t, len(entries), len(exp))

	for i, e := range exp {
		test.ExpectEquality(t, entries[i].At, e.at, i)
		test.ExpectEquality(t, entries[i].Note, e.note, i)

		if e.note == "-" {
			// capacitor safe silence
			test.ExpectFailure(t, entries[i].State.PWM.Attached, i)
			test.ExpectFailure(t, entries[i].State.PWM.Enabled, i)
			test.ExpectSuccess(t, entries[i].State.Pin, i)
		} else {
			test.ExpectSuccess(t, entries[i].State.PWM.Attached, i)
			test.ExpectSuccess(t, entries[i].State.PWM.Enabled, i)
			test.ExpectEquality(t, entries[i].State.PWM.Frequency, e.hz, i)
			test.ExpectEquality(t, entries[i].State.PWM.High, e.high, i)
			test.ExpectEquality(t, entries[i].State.PWM.Total, uint32(132), i)
		}
	}

	// the speaker is quiet by the end of the opening rest and loud while a
	// note is playing
	test.DemandEquality(t, len(m.samples), sampleAt(2*time.Second))
	test.ExpectSuccess(t, peak(m.samples[sampleAt(400*time.Millisecond):sampleAt(500*time.Millisecond)]) < 100)
	test.ExpectSuccess(t, peak(m.samples[sampleAt(500*time.Millisecond):sampleAt(750*time.Millisecond)]) > 1000)
}

func TestStopSilences(t *testing.T) {
	b := newBoard(t)

	audio := gameaudio.NewLockMut(&sync.Mutex{})
	audio.Init(gameaudio.New(b.Timer, b.PWM, b.SpeakerPin))
	b.AttachInterrupt(audio.Interrupt)

	audio.WithLock(func(e *gameaudio.Engine) {
		e.Play(song.NewSong(song.Library["scenario"]()))
	})
	test.ExpectSuccess(t, b.RunFor(600*time.Millisecond))
	test.ExpectSuccess(t, b.State().PWM.Enabled)

	audio.WithLock(func(e *gameaudio.Engine) {
		test.ExpectInequality(t, e.Stop(), nil)
	})

	st := b.State()
	test.ExpectFailure(t, st.PWM.Enabled)
	test.ExpectFailure(t, st.PWM.Attached)
	test.ExpectSuccess(t, st.Pin)

	// no more interrupts once stopped
	n := b.Interrupts()
	test.ExpectSuccess(t, b.RunFor(2*time.Second))
	test.ExpectEquality(t, b.Interrupts(), n)
}

func TestConcurrentForeground(t *testing.T) {
	b := newBoard(t)

	audio := gameaudio.NewLockMut(&sync.Mutex{})
	audio.Init(gameaudio.New(b.Timer, b.PWM, b.SpeakerPin))
	b.AttachInterrupt(audio.Interrupt)

	s := song.NewSong(song.ScaleNotes(60, 1))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		test.ExpectSuccess(t, b.RunFor(5*time.Second))
	}()

	for i := range 1000 {
		audio.WithLock(func(e *gameaudio.Engine) {
			if i%2 == 0 {
				e.Play(s)
			} else {
				e.Stop()
			}
		})
	}

	wg.Wait()

	audio.WithLock(func(e *gameaudio.Engine) {
		e.Stop()
		test.ExpectEquality(t, e.State(), gameaudio.Idle)
	})

	st := b.State()
	test.ExpectFailure(t, st.PWM.Enabled)
	test.ExpectFailure(t, st.PWM.Attached)
	test.ExpectSuccess(t, st.Pin)
}

func TestLowKeys(t *testing.T) {
	// lowest octave of the piano is below what the PWM can reach without a
	// prescaler
	for _, key := range []uint8{12, 21, 24, 33} {
		b := newBoard(t)

		m := &mixer{}
		b.AddAudioMixer(m)

		audio := gameaudio.NewLockMut(&sync.Mutex{})
		audio.Init(gameaudio.New(b.Timer, b.PWM, b.SpeakerPin))
		b.AttachInterrupt(audio.Interrupt)

		audio.WithLock(func(e *gameaudio.Engine) {
			e.Play(song.NewSong([]song.Note{song.NewNote(key, 2000, 6)}))
		})
		test.DemandSuccess(t, b.RunFor(2*time.Second))

		pcm := analysis.FromSamples(m.samples, sampleRate)
		f := analysis.Frequency(pcm.Data[sampleAt(200*time.Millisecond):sampleAt(1900*time.Millisecond)], sampleRate)
		test.ExpectApproximate(t, f, float64(tuning.Frequency(key)), 0.03, tuning.Name(key))
	}
}

// render the song for the duration and return the digest of the audio
func render(t *testing.T, notes []song.Note, d time.Duration) string {
	t.Helper()

	b := newBoard(t)
	dig := digest.NewAudio()
	b.AddAudioMixer(dig)

	audio := gameaudio.NewLockMut(&sync.Mutex{})
	audio.Init(gameaudio.New(b.Timer, b.PWM, b.SpeakerPin))
	b.AttachInterrupt(audio.Interrupt)

	audio.WithLock(func(e *gameaudio.Engine) {
		e.Play(song.NewSong(notes))
	})
	test.DemandSuccess(t, b.RunFor(d))
	test.DemandSuccess(t, b.End())

	return dig.Hash()
}

func TestDeterministic(t *testing.T) {
	scenario := render(t, song.Library["scenario"](), 2*time.Second)
	test.ExpectEquality(t, render(t, song.Library["scenario"](), 2*time.Second), scenario)
	test.ExpectInequality(t, render(t, song.Library["scale"](), 2*time.Second), scenario)
}
