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

// Package analysis recovers the melody from a recording of a speaker. It is
// used to check the output of the emulated board and to compare it with a
// recording of a real micro:bit.
//
// Recordings are loaded from WAV or MP3 files with Load(). The Notes()
// function divides a recording into segments of constant pitch, or silence,
// by measuring the period of the signal in short windows.
//
// The pitch detector is intended for the square and pulse waves produced by a
// PWM output. It will not work well for recordings of other instruments.
package analysis
