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

package gameaudio

import "github.com/jetsetilly/gameaudio/song"

// The duty fraction for a volume level is ((1 << volume) + DutyOffset) /
// DutyScale. Each volume step roughly doubles the duty, which sounds like
// an even step in loudness for a square wave. The loudest level is a duty of
// one half.
const (
	DutyOffset = 2
	DutyScale  = 2 * ((1 << song.MaxVolume) + DutyOffset)
)

// Duty returns the duty fraction for the volume level as a high/total pair.
// Volume zero is silence and is not a duty. Levels above song.MaxVolume are
// treated as song.MaxVolume.
func Duty(volume uint8) (high uint32, total uint32) {
	volume = min(volume, song.MaxVolume)
	return (1 << volume) + DutyOffset, DutyScale
}
