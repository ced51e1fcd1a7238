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

// Package gameaudio plays a looping background melody on a single-channel
// square-wave speaker using nothing more than a hardware timer and a PWM
// channel. There is no audio buffer and no software mixing.
//
// The Engine type owns the timer, the PWM channel and the speaker pin. It
// holds an optional Song. Every time the timer expires the engine's
// HandleInterrupt() function reads the next note from the song, programs the
// PWM for that note and re-arms the timer for the note's duration.
//
// The Engine is either Idle (no song, speaker silent, timer disabled) or
// Playing (song installed, timer armed for the current note). Play() and
// Stop() move between the two states and immediately run the same advance
// step that the timer interrupt runs, so that the speaker reflects the new
// state without waiting for a stale timer.
//
// The hardware is accessed through the Timer, PWM and Pin interfaces. The
// hardware package provides an emulation of these for the host. The
// platform/microbit package provides the real thing for TinyGo.
//
// The Engine is not safe for concurrent use. The interrupt handler and the
// foreground program must share it through a LockMut:
//
//	audio := gameaudio.NewLockMut(&sync.Mutex{})
//	audio.Init(gameaudio.New(timer, pwm, speaker))
//
//	// the timer interrupt vector
//	board.AttachInterrupt(audio.Interrupt)
//
//	audio.WithLock(func(e *gameaudio.Engine) {
//		e.Play(song.NewSong(notes))
//	})
package gameaudio
