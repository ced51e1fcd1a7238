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

// Package song defines the data model for a background melody: the Note, a
// single musical event, and the Song, a looping sequence of notes with a
// playback cursor.
//
// Notes are validated when they are constructed. A note with an impossible
// pitch or volume is a mistake in the composed song data and not a condition
// that can be recovered from, so the constructors panic.
//
// A Song does not own any hardware. It is handed to the audio engine by the
// gameaudio.Engine.Play() function and handed back by Stop(). Only the engine
// advances the playback cursor.
package song
