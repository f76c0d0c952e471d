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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/sim6502/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint8(0xff), uint8(255))
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectPanic(t *testing.T) {
	test.ExpectPanic(t, func() { panic("test") })
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	fmt.Fprintf(tw, "hello %s", "world")
	test.ExpectSuccess(t, tw.Compare("hello world"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abcde")
	test.ExpectEquality(t, r.String(), "abcde")

	fmt.Fprint(r, "fghij")
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// wraps
	fmt.Fprint(r, "klm")
	test.ExpectEquality(t, r.String(), "defghijklm")

	// bigger than the ring
	fmt.Fprint(r, "0123456789ABC")
	test.ExpectEquality(t, r.String(), "3456789ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}
