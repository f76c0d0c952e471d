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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/prefs"
	"github.com/jetsetilly/sim6502/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sim6502_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	err = v.Set(10)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	var x prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, dsk.Add("numberC", &x))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	// hexadecimal strings are accepted
	test.ExpectSuccess(t, x.Set("0x4000"))
	test.ExpectEquality(t, x.Get().(int), 0x4000)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\nnumberC :: 16384\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// value is unchanged after failure
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var pre, post int
	v.SetHookPre(func(value prefs.Value) error {
		pre = value.(int)
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, pre, 5)
	test.ExpectEquality(t, post, 5)

	// a failing pre hook prevents the value from changing
	v.SetHookPre(func(value prefs.Value) error {
		return fmt.Errorf("refused")
	})
	test.ExpectFailure(t, v.Set(6))
	test.ExpectEquality(t, v.Get().(int), 5)
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var origin prefs.Int
	var assert prefs.Bool
	test.ExpectSuccess(t, dsk.Add("cpu.origin", &origin))
	test.ExpectSuccess(t, dsk.Add("cpu.assertowner", &assert))

	// file does not exist yet. Load(true) creates it
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	cmpTmpFile(t, fn, "cpu.assertowner :: false\ncpu.origin :: 0\n")

	test.ExpectSuccess(t, origin.Set(0x0600))
	test.ExpectSuccess(t, assert.Set(true))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, origin.Get().(int), 0)
	test.ExpectEquality(t, assert.Get().(bool), false)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, origin.Get().(int), 0x0600)
	test.ExpectEquality(t, assert.Get().(bool), true)

	v, err := dsk.Get("cpu.origin")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.(int), 0x0600)

	_, err = dsk.Get("cpu.unknown")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("test", &w), prefs.DuplicateKey))
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var origin prefs.Int
	test.ExpectSuccess(t, dsk.Add("cpu.origin", &origin))
	test.ExpectSuccess(t, origin.Set(0x0200))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("cpu.origin::0x0600")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var override prefs.Int
	test.ExpectSuccess(t, dsk.Add("cpu.origin", &override))
	test.ExpectEquality(t, override.Get().(int), 0x0600)

	// loading from disk does not replace the command line value
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, override.Get().(int), 0x0600)

	// and saving does not write the command line value to disk
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "cpu.origin :: 512\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped information
	// reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
