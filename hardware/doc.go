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

// Package hardware is the base package for the emulation of the micro:bit
// v2 peripherals that are used to play a melody: the compare timer, one
// channel of the PWM peripheral, the speaker pin and the speaker itself.
//
// The Board type collects the peripherals together and advances emulated time.
// The peripherals satisfy the capability interfaces of the gameaudio package
// and so an Engine can be created directly from them:
//
//	board, _ := hardware.NewBoard(env)
//	engine := gameaudio.New(board.Timer, board.PWM, board.SpeakerPin)
//
// The Board delivers the timer interrupt to the function given to
// AttachInterrupt(). The interrupt is delivered between ticks of emulated time
// and the handler runs to completion before time advances further, which is
// how an interrupt preempts the main program on the real device.
//
// Registers of the peripherals can be changed by the main program while the
// board is running in another goroutine. Access is serialised by the board's
// bus. The interrupt handler is never called with the bus locked.
package hardware
