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

// Package test bundles a number of helper functions that remove common
// boilerplate from the package tests. They are used in conjunction with the
// standard go test harness.
//
// The Expect*() functions report a failure and let the test continue. The
// Demand*() functions stop the test immediately.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the
// nil type because it is not obvious. A nil value is considered a success.
// That is how errors usually work (nil to indicate no error) and we need to
// interpret nil in the same way.
//
// The CompareWriter type implements the io.Writer interface and is useful
// for capturing log output.
package test
