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

package preferences

import (
	"github.com/jetsetilly/gameaudio/curated"
	"github.com/jetsetilly/gameaudio/paths"
	"github.com/jetsetilly/gameaudio/prefs"
)

// limits of the hardware.sampleRate preference.
const (
	MinSampleRate = 4000
	MaxSampleRate = 192000
)

// Preferences defines and collates all the preference values used by the
// emulated board and the audio outputs.
type Preferences struct {
	dsk *prefs.Disk

	// the rate at which the speaker is sampled
	SampleRate prefs.Int

	// model the coupling capacitor between the speaker pin and the speaker.
	// without it the output of the speaker is the raw level of the pin
	DCBlock prefs.Bool

	// number of samples collected before they are sent to the audio mixers
	Buffer prefs.Int

	// output amplitude as a fraction of full scale
	Volume prefs.Float

	// echo log entries to the terminal as they are created
	Echo prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences except that the values are
// loaded from the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.SampleRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < MinSampleRate || r > MaxSampleRate {
			return curated.Errorf("preferences: sample rate must be between %d and %d", MinSampleRate, MaxSampleRate)
		}
		return nil
	})
	p.Buffer.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: audio buffer must be at least one sample")
		}
		return nil
	})
	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return curated.Errorf("preferences: volume must be between 0.0 and 1.0")
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.sampleRate", &p.SampleRate); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.dcblock", &p.DCBlock); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.buffer", &p.Buffer); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.volume", &p.Volume); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("log.echo", &p.Echo); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the default values always pass validation
	_ = p.SampleRate.Set(44100)
	_ = p.DCBlock.Set(true)
	_ = p.Buffer.Set(1024)
	_ = p.Volume.Set(0.8)
	_ = p.Echo.Set(false)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
