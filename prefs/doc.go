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

// Package prefs facilitates the storage of preferential values in the
// simulator. Values are bound to a key in a Disk instance:
//
//	var origin prefs.Int
//	dsk, err := prefs.NewDisk(paths.ResourcePath(prefs.DefaultPrefsFile))
//	err = dsk.Add("cpu.origin", &origin)
//	err = dsk.Load(true)
//
// The preferences file is a plain text file with one "key :: value" entry per
// line. Entries in the file that are not bound to any value in a Disk
// instance are preserved when the Disk is saved. This means that more than
// one Disk instance can share the same file.
//
// Values can be overridden for the duration of a program run with the
// command line stack. Values on the top of the stack are used in preference
// to values in the file when a key is added to a Disk:
//
//	prefs.PushCommandLineStack("cpu.origin::0x0600; cpu.assertowner::true")
//
// Preference types are safe to read and write from different goroutines.
package prefs
