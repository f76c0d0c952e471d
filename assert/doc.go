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

// Package assert is used to check that the simulator is being used correctly.
// Checks are for debugging and testing purposes only. They should never be
// relied upon for correct operation.
//
// An Owner records the goroutine that created it. Later calls to Check() will
// panic if they are made from a different goroutine:
//
//	o := assert.NewOwner()
//	...
//	o.Check()
package assert
