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

// Package curated is a helper package for the plain Go error type. Curated
// errors are the errors that the host side of GameAudio expects to happen:
// a WAV file that cannot be created, an audio device that cannot be opened,
// a preferences file that is malformed. Anything else is a bug.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is remembered and is used to identify the error later:
//
//	e := curated.Errorf("wavwriter: %v", err)
//
//	if curated.Is(e, "wavwriter: %v") {
//		...
//	}
//
// The Has() function checks whether a pattern occurs anywhere in the chain of
// curated errors.
//
// The Error() implementation normalises the chain so that adjacent duplicate
// parts are removed. This means that a package can prefix its errors with its
// own name without worrying whether a caller has done the same:
//
//	board: board: timer not running
//
// is printed as
//
//	board: timer not running
package curated
