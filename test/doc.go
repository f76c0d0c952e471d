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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions test for simple
// equality of comparable types. ExpectSuccess() and ExpectFailure() test for
// "success" values of bool and error types:
//
//	test.ExpectEquality(t, mc.PC.Address(), 0x0100)
//	test.ExpectSuccess(t, err)
//	test.ExpectFailure(t, mc.Status.Carry)
//
// The Demand*() variants are the same except that the test is stopped
// immediately on failure. They are useful when the remainder of the test
// cannot be meaningful after a failure.
//
// All functions take an optional list of tags. The tags are printed as part
// of the failure message and are useful for identifying an iteration of a
// loop.
//
// The package also contains some io.Writer implementations useful for
// testing output: CompareWriter and RingWriter.
package test
