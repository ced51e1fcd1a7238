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

package speaker

// Mixer implementations receive the samples produced by the speaker. Samples
// are signed 16 bit mono at the sample rate of the speaker.
type Mixer interface {
	// SetAudio is called whenever the speaker has a buffer of samples ready.
	// The slice should not be retained after the function returns.
	SetAudio(samples []int16) error

	// EndMixing is called when no more samples will be produced.
	EndMixing() error

	// Reset is called when the emulation has been reset and any buffered
	// samples should be discarded.
	Reset()
}
