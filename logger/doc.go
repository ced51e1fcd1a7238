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

// Package logger is the central log for GameAudio. There is only ever one
// log for the entire application and it is bounded in size; older entries
// are forgotten as new entries are added.
//
// Every log request is made with a Permission. The Allow value can be used
// when an entry should always be made. The environment.Environment type
// implements Permission so that a test harness can silence the log for an
// emulated board.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// Note that logging should never happen in the interrupt service path of the
// audio engine. Log entries allocate.
package logger
