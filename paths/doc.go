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

// Package paths contains functions to prepare paths for GameAudio resources.
//
// The ResourcePath() function returns the correct path to a resource
// directory/file. If the resource directory ".gameaudio" exists in the current
// working directory then that is used. Otherwise the directory is placed in the
// user's configuration directory, as defined by os.UserConfigDir(). For
// example, on a modern Linux system the preferences file would be:
//
//	/home/user/.config/gameaudio/preferences
//
// The resource directory is created if it does not exist.
package paths
