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

// Package paths contains functions to prepare paths for sim6502 resources.
//
// The ResourcePath() function returns the path to a resource. If a directory
// named ".sim6502" exists in the current working directory then that
// directory is used as the base. Otherwise the user's configuration directory
// is used:
//
//	pth := paths.ResourcePath("preferences")
//
// On a Linux system, pth would be:
//
//	/home/user/.config/sim6502/preferences
//
// ResourcePath() does not create any directories or check for the existence
// of the resource. The prefs package creates the directory when the
// preferences file is saved.
package paths
