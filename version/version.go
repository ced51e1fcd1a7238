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

// Package version reports the version of the GameAudio program. The version
// number is set by the linker (-ldflags "-X") for release builds. Otherwise
// the version is derived from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GameAudio"

// set by the linker for release builds
var number string

// the values returned by Version(). prepared by init()
var (
	version  string
	revision string
	deps     []string
)

// Version returns the version string, the revision string and whether this is
// a numbered release version.
//
// The version string is "unreleased" if the program was built from a
// repository without a version number, and "local" if there is no version
// control information at all (as is the case with "go run").
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Dependencies returns the module path and version of every dependency
// compiled into the program.
func Dependencies() []string {
	return deps
}

func init() {
	var vcs bool
	var modified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = strings.EqualFold(s.Value, "true")
			}
		}
		for _, d := range info.Deps {
			deps = append(deps, fmt.Sprintf("%s %s", d.Path, d.Version))
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
