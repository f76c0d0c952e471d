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

// Package curated is a helper package for the plain Go language error type.
// Every error returned by the simulator packages is a curated error.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern and the remaining arguments are the values for the
// placeholders in the pattern. Packages export their patterns as constants so
// that callers can distinguish errors without comparing message strings:
//
//	const DecodeError = "cpu: decode: %v"
//
//	err := curated.Errorf(DecodeError, "no definition for opcode 0x02")
//
//	if curated.Is(err, DecodeError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks the whole error chain.
// Curated errors wrapped as placeholder values are part of the chain:
//
//	e := curated.Errorf(state.StateLength, 100, 65545)
//	f := curated.Errorf("run: %v", e)
//
//	if curated.Has(f, state.StateLength) {
//		fmt.Println("true")
//	}
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts are only printed once. For example, "cpu: cpu: decode error" is
// printed as "cpu: decode error".
//
// Curated errors also support the Unwrap() interface of the errors package,
// returning the first error value in the placeholder list. This means that
// errors.Is() and errors.As() continue to work when a curated error wraps a
// non-curated error (from the os package for example).
package curated
