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

// Package modalflag handles command lines made up of modes and flags. Each
// mode has its own set of flags and can have sub-modes of its own.
//
// A mode is a single word, written in capitals by convention. Modes are
// case-insensitive. The first sub-mode given to AddSubModes() is the default
// mode and is selected if the next argument is not a recognised mode.
//
// A typical session looks like this (error handling not shown):
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RENDER")
//	md.Parse()
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		wav := md.AddString("wav", "", "also write output to WAV file")
//		md.Parse()
//		...
//	}
//
// A "-help" flag is always available and prints the flags and sub-modes of
// the current mode.
package modalflag
