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

package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// logColorizer is used as the echo writer of the central logger. The tag of
// each entry is emphasised.
type logColorizer struct {
	out io.Writer
	tag lipgloss.Style
}

func newLogColorizer(out io.Writer) logColorizer {
	return logColorizer{
		out: out,
		tag: newStyles().logTag,
	}
}

// Write implements the io.Writer interface.
func (c logColorizer) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if tag, detail, ok := strings.Cut(l, ": "); ok {
			l = c.tag.Render(tag) + ": " + detail
		}
		if _, err := io.WriteString(c.out, l+"\n"); err != nil {
			return 0, err
		}
	}

	// the length of the input. the output is longer once styled
	return len(p), nil
}
