// This file is part of Simonvid.
//
// Simonvid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Simonvid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Simonvid.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the name and build of the program.
//
// A release build sets the version number at link time:
//
//	go build -ldflags "-X github.com/simonvid/simonvid/version.number=v1.0.0"
//
// Other builds describe themselves with the VCS information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Simonvid"

// set by the linker for release builds
var number string

// Info describes the running build.
type Info struct {
	// release number. "unreleased" if the program was built from a VCS
	// checkout, "local" if there is no VCS information at all
	Number string

	// VCS revision. empty if there is no VCS information
	Revision string

	// the source had uncommitted changes when it was built
	Modified bool

	// Release is true if Number was set by the linker
	Release bool
}

func (inf Info) String() string {
	if inf.Release || inf.Revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Number)
	}
	rev := inf.Revision
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if inf.Modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, rev)
}

var current Info

func init() {
	var settings []debug.BuildSetting
	if bi, ok := debug.ReadBuildInfo(); ok {
		settings = bi.Settings
	}
	current = fromSettings(number, settings)
}

func fromSettings(number string, settings []debug.BuildSetting) Info {
	var inf Info
	var vcs bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			inf.Modified = s.Value == "true"
		}
	}

	switch {
	case number != "":
		inf.Number = number
		inf.Release = true
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}

// Current returns the Info for the running program.
func Current() Info {
	return current
}
