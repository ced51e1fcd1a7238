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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gameaudio/hardware/preferences"
	"github.com/jetsetilly/gameaudio/prefs"
	"github.com/jetsetilly/gameaudio/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.SampleRate.Get().(int), 44100)
	test.ExpectEquality(t, p.DCBlock.Get().(bool), true)
	test.ExpectEquality(t, p.Buffer.Get().(int), 1024)
	test.ExpectEquality(t, p.Volume.Get().(float64), 0.8)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.SampleRate.Set(100))
	test.ExpectFailure(t, p.SampleRate.Set(preferences.MaxSampleRate+1))
	test.ExpectSuccess(t, p.SampleRate.Set(22050))
	test.ExpectFailure(t, p.Buffer.Set(0))
	test.ExpectFailure(t, p.Volume.Set(1.5))
	test.ExpectEquality(t, p.SampleRate.Get().(int), 22050)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.SampleRate.Set(8000))
	test.ExpectSuccess(t, p.DCBlock.Set(false))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SampleRate.Get().(int), 8000)
	test.ExpectEquality(t, q.DCBlock.Get().(bool), false)

	q.SetDefaults()
	test.ExpectEquality(t, q.SampleRate.Get().(int), 44100)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.SampleRate.Get().(int), 8000)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.sampleRate::11025")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate.Get().(int), 11025)
}
