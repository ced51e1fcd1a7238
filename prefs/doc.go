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

// Package prefs facilitates the storage of preferential values in the
// GameAudio system. It is intended to be used for user preferences that
// survive between invocations of the program: the sample rate of the emulated
// speaker, whether the coupling capacitor is modelled, and so on.
//
// Preference values are declared with one of the types in this package (Bool,
// Int, Float or String) and then added to a Disk instance, under a key. A Disk
// can be loaded and saved as required. More than one Disk instance can share
// the same file on disk; keys not known to a Disk are preserved when it saves.
//
// The file format is very simple. One key/value pair per line, separated by
// " :: ". The file begins with the WarningBoilerPlate line.
//
// Preference values can also be specified on the command line, with the
// PushCommandLineStack() function. Values on the stack are consumed by the
// next call to Disk.Load() that knows about the key.
package prefs
