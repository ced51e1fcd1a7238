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

package test

import "strings"

// CompareWriter captures text output, such as modalflag help or echoed log
// entries, for comparison in a test. The zero value is ready to use.
type CompareWriter struct {
	buffer []byte
}

// Write never fails.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear discards the captured output.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare returns true if the captured output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

// Lines splits the captured output on newlines. A final newline does not
// produce an empty line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(string(w.buffer), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}
