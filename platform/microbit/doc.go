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

// Package microbit runs the audio engine on the BBC micro:bit v2. It is only
// compiled by TinyGo for the nrf52833 target.
//
// TIMER0 measures the duration of each note and PWM0 drives the speaker on
// pin P0.00. The engine is shared between the program and the TIMER0
// interrupt with a LockMut whose locker masks interrupts:
//
//	audio := microbit.NewAudio()
//	audio.WithLock(func(e *gameaudio.Engine) {
//		e.Play(song.NewSong(notes))
//	})
package microbit
