// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. The version
// number is set by the build process with the linker flag:
//
//	-ldflags "-X github.com/jetsetilly/gophersap/version.number=v0.1.0"
//
// If the number is not set then the version is derived from the VCS
// information in the build info.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// The name to use when referring to the application
const ApplicationName = "GopherSAP"

// set by the linker
var number string

var revision string
var version string

// the version of Go used to compile the application
var goVersion string

// Version returns the version string, the revision string and whether this is
// a numbered release. If the version string is "unreleased" then the
// application has been built from a repository without a version number. If
// it is "local" then there is no VCS information at all.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns a single line describing the application version, suitable
// for the -version flag.
func String() string {
	s := strings.Builder{}
	s.WriteString(ApplicationName)
	s.WriteString(" ")
	s.WriteString(version)
	if version != number {
		s.WriteString(fmt.Sprintf(" (%s)", revision))
	}
	if goVersion != "" {
		s.WriteString(fmt.Sprintf(" [%s]", goVersion))
	}
	return s.String()
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
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
