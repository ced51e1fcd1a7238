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
	"sort"
	"strings"
	"testing"

	"github.com/jetsetilly/gameaudio/logger"
	"github.com/jetsetilly/gameaudio/song"
	"github.com/jetsetilly/gameaudio/test"
)

func TestSongNames(t *testing.T) {
	names := songNames()
	test.ExpectEquality(t, len(names), len(song.Library))
	test.ExpectSuccess(t, sort.StringsAreSorted(names))
}

func TestLookupSong(t *testing.T) {
	notes, err := lookupSong("DEMO")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(notes), 5)
	test.ExpectSuccess(t, notes[0].IsRest())

	_, err = lookupSong("no such song")
	test.ExpectFailure(t, err)
}

// run launch() and return the exit value requested of the main thread.
func launchExit(t *testing.T, args ...string) int {
	t.Helper()

	sync := &mainSync{
		state: make(chan stateRequest),
	}
	go launch(sync, args)

	state := <-sync.state
	test.DemandEquality(t, state.req, reqQuit)
	if state.args == nil {
		return 0
	}
	return state.args.(int)
}

func TestLaunch(t *testing.T) {
	test.ExpectEquality(t, launchExit(t, "NOTES", "-song", "scale"), 0)
	test.ExpectEquality(t, launchExit(t, "NOTES", "-song", "nothing"), 20)
	test.ExpectEquality(t, launchExit(t, "NOTES", "extra"), 20)
	test.ExpectEquality(t, launchExit(t, "VERSION"), 0)
	test.ExpectEquality(t, launchExit(t, "ANALYSE"), 20)
	test.ExpectEquality(t, launchExit(t, "PERFORMANCE", "-profile", "bogus"), 20)
}

func TestLogColorizer(t *testing.T) {
	w := &test.CompareWriter{}
	c := newLogColorizer(w)

	entries := "gameaudio: play: demo\nboard: 10 samples\nno tag here\n"
	n, err := c.Write([]byte(entries))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(entries))

	// styling is terminal dependent so only the content is checked
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.Contains(lines[0], "gameaudio"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], ": play: demo"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], ": 10 samples"))
	test.ExpectEquality(t, lines[2], "no tag here")

	// echoed log entries pass through the colorizer
	w.Clear()
	logger.SetEcho(c, false)
	defer logger.SetEcho(nil, false)
	logger.Log(logger.Allow, "tag", "detail")
	test.ExpectSuccess(t, strings.Contains(w.String(), "tag"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), ": detail\n"))
}
