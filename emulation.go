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

package main

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gameaudio/environment"
	"github.com/jetsetilly/gameaudio/gameaudio"
	"github.com/jetsetilly/gameaudio/hardware"
	"github.com/jetsetilly/gameaudio/prefs"
	"github.com/jetsetilly/gameaudio/song"
)

// emulation is an emulated board with an audio engine installed in the timer
// interrupt vector.
type emulation struct {
	env   *environment.Environment
	board *hardware.Board
	audio *gameaudio.LockMut
}

// newEnvironment creates the environment for the main emulation. The prefs
// argument is pushed onto the command line preferences stack before the
// preferences are loaded.
func newEnvironment(prefsArg string) (*environment.Environment, error) {
	if prefsArg != "" {
		prefs.PushCommandLineStack(prefsArg)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	if prefsArg != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}

	return env, nil
}

// newEmulation creates the main emulation.
func newEmulation(prefsArg string) (*emulation, error) {
	env, err := newEnvironment(prefsArg)
	if err != nil {
		return nil, err
	}

	board, err := hardware.NewBoard(env)
	if err != nil {
		return nil, err
	}

	emu := &emulation{
		env:   env,
		board: board,
		audio: gameaudio.NewLockMut(&sync.Mutex{}),
	}

	e := gameaudio.New(board.Timer, board.PWM, board.SpeakerPin)
	e.SetLogPermission(env)
	emu.audio.Init(e)
	board.AttachInterrupt(emu.audio.Interrupt)

	return emu, nil
}

// play the song, returning the song that was playing before.
func (emu *emulation) play(s *song.Song) *song.Song {
	var prev *song.Song
	emu.audio.WithLock(func(e *gameaudio.Engine) {
		prev = e.Play(s)
	})
	return prev
}

// stop the current song and return it.
func (emu *emulation) stop() *song.Song {
	var prev *song.Song
	emu.audio.WithLock(func(e *gameaudio.Engine) {
		prev = e.Stop()
	})
	return prev
}

// the engine state and the position of the current song.
func (emu *emulation) state() (gameaudio.State, *song.Song, int) {
	var st gameaudio.State
	var s *song.Song
	var pos int
	emu.audio.WithLock(func(e *gameaudio.Engine) {
		st = e.State()
		s = e.Current()
		if s != nil {
			pos = s.Position()
		}
	})
	return st, s, pos
}

// restart the current song from the first note.
func (emu *emulation) restart() {
	emu.audio.WithLock(func(e *gameaudio.Engine) {
		if s := e.Current(); s != nil {
			s.Restart()
			e.Play(s)
		}
	})
}

// songNames returns the names of the melodies in the song library in
// alphabetical order.
func songNames() []string {
	names := make([]string, 0, len(song.Library))
	for n := range song.Library {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// lookupSong returns the notes of the named melody. Name matching is case
// insensitive.
func lookupSong(name string) ([]song.Note, error) {
	if f, ok := song.Library[strings.ToLower(name)]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown song (%s). available songs: %s", name, strings.Join(songNames(), ", "))
}
