// This file is part of sim6502.
//
// sim6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sim6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sim6502.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. The version number
// is set at link time with the -ldflags "-X" option. When it is not set the
// version is derived from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application in messages.
const ApplicationName = "sim6502"

// set with -ldflags "-X github.com/jetsetilly/sim6502/version.number=v0.1.0"
var number string

// Info describes the build of the application.
type Info struct {
	// the version number. "unreleased" if built from a VCS checkout without a
	// version number and "local" if there is no VCS information at all
	Version string

	// the VCS revision, suffixed with "+dirty" if the working tree had
	// uncommitted changes
	Revision string

	// Release is true if Version is a version number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns the version information for the running binary.
func Version() Info {
	info, _ := debug.ReadBuildInfo()
	return fromBuildInfo(number, info)
}

func fromBuildInfo(number string, info *debug.BuildInfo) Info {
	var vcs, modified bool
	var revision string

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := Info{Revision: revision}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
