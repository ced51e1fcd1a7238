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

// Package performance contains helper functions relating to performance.
//
// Check() runs an emulated board as fast as possible for a fixed amount of
// real time and reports how much emulated time passed. It will optionally
// generate profiling information.
//
// RunProfiler() can be used to generate the various profile types around any
// function.
//
// CalcSpeed() calculates the speed of the emulation as a multiple of real
// time.
package performance
