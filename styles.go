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

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	note    lipgloss.Style
	rest    lipgloss.Style
	value   lipgloss.Style
	playing lipgloss.Style
	idle    lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	logTag  lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)).Padding(0, 1),
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
		note:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		rest:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		value:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		playing: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(2)).Padding(0, 1),
		idle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(8)).Padding(0, 1),
		help:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		logTag:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
	}
}

// column renders s left aligned in a cell of the given width.
func column(st lipgloss.Style, s string, width int) string {
	return st.Width(width).Render(s)
}
