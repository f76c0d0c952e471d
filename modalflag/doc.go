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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are first given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM", "STATE")
//	p, err := md.Parse()
//
// A mode is a special command line argument that, when specified, puts the
// program into a different mode of operation. After the call to Parse() the
// selected mode is returned by Mode(). The first sub-mode in the list is the
// default and is selected if the first non-flag argument is not a sub-mode.
// Sub-mode comparisons are case insensitive.
//
// Once a mode has been selected, NewMode() prepares the Modes instance for
// the flags of that mode. The flags of the new mode are parsed from the
// arguments following the mode selector:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		maxCycles := md.AddUint64("maxcycles", 0, "stop after number of cycles")
//		origin := md.AddAddress("origin", 0x0000, "load address of program")
//		p, err := md.Parse()
//		...
//	}
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg(). Help
// messages are printed to the Output writer when the -help flag is given. The
// Parse() function returns ParseHelp in that case.
package modalflag
