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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gameaudio/paths"
	"github.com/jetsetilly/gameaudio/test"
)

// change working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestResourcePathWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := os.Mkdir(".gameaudio", 0o700)
	test.DemandSuccess(t, err)

	pth, err := paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gameaudio", "preferences"))

	pth, err = paths.ResourcePath("renders", "demo.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gameaudio", "renders", "demo.wav"))

	// sub-directory has been created
	info, err := os.Stat(filepath.Join(".gameaudio", "renders"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestResourcePathConfigDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)

	pth, err := paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)

	cnf, err := os.UserConfigDir()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(cnf, "gameaudio", "preferences"))
}
