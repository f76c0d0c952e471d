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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/sim6502/hardware/cpu/state"
	"github.com/jetsetilly/sim6502/test"
)

// changes to a temporary directory with a local resource directory so that
// the preferences file is not written to the user's configuration directory.
func tmpWorkingDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	test.DemandSuccess(t, os.Mkdir(".sim6502", 0o700))
	return dir
}

func writeProgram(t *testing.T, dir string, name string, program ...uint8) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))
	return fn
}

func TestRun(t *testing.T) {
	dir := tmpWorkingDir(t)

	// LDX #$ff; INX; BRK
	fn := writeProgram(t, dir, "inx.bin", 0xa2, 0xff, 0xe8, 0x00, 0x00)
	saveFn := filepath.Join(dir, "inx.state")

	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"RUN", "-origin", "0x0600", "-save", saveFn, fn}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "11 cycles"))

	data, err := os.ReadFile(saveFn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), state.Length)

	// the saved state can be shown
	w.Reset()
	test.ExpectEquality(t, launch(w, []string{"STATE", saveFn}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "PC=0xffff"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "X=0x00"))
}

func TestRunMaxCycles(t *testing.T) {
	dir := tmpWorkingDir(t)

	// JMP $0000
	fn := writeProgram(t, dir, "loop.bin", 0x4c, 0x00, 0x00)

	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"RUN", "-maxcycles", "30", fn}), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "30 cycles"))
}

func TestRunWav(t *testing.T) {
	dir := tmpWorkingDir(t)

	// LDA #$20; STA $4000; STA $4001; JMP $0005
	fn := writeProgram(t, dir, "tone.bin", 0xa9, 0x20, 0x8d, 0x00, 0x40, 0x8d, 0x01, 0x40, 0x4c, 0x08, 0x00)
	wavFn := filepath.Join(dir, "tone.wav")

	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"RUN", "-maxcycles", "100000", "-wav", wavFn, fn}), 0)

	fi, err := os.Stat(wavFn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 44)
}

func TestDisasm(t *testing.T) {
	dir := tmpWorkingDir(t)
	fn := writeProgram(t, dir, "inx.bin", 0xa2, 0xff, 0xe8, 0x00, 0x00)

	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"DISASM", "-origin", "0x0600", fn}), 0)
	test.ExpectEquality(t, w.String(), "0600 LDX   #$ff\n0602 INX\n0603 BRK\n")
}

func TestMissingArgument(t *testing.T) {
	tmpWorkingDir(t)

	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"RUN"}), 20)
	test.ExpectEquality(t, launch(w, []string{"DISASM"}), 20)
}

func TestVersion(t *testing.T) {
	w := &strings.Builder{}
	test.ExpectEquality(t, launch(w, []string{"VERSION"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "sim6502 "))
}
