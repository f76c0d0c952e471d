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

package programloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/programloader"
	"github.com/jetsetilly/sim6502/test"
)

// sha1 hash of the bytes 0xe8 0x00.
const testHash = "193a07eba051b8b0bbf27137703aad64a76b8691"

func writeTmpFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestNewLoader(t *testing.T) {
	pl := programloader.NewLoader("/tmp/program.bin")
	test.ExpectFailure(t, pl.IsState)
	test.ExpectEquality(t, pl.ShortName(), "program")

	pl = programloader.NewLoader("saved.State")
	test.ExpectSuccess(t, pl.IsState)
	test.ExpectEquality(t, pl.ShortName(), "saved")
}

func TestLoad(t *testing.T) {
	fn := writeTmpFile(t, "test.bin", []byte{0xe8, 0x00})

	pl := programloader.NewLoader(fn)
	test.ExpectFailure(t, pl.HasLoaded())
	test.DemandSuccess(t, pl.Load())
	test.ExpectSuccess(t, pl.HasLoaded())
	test.ExpectEquality(t, len(pl.Data), 2)
	test.ExpectEquality(t, pl.Hash, testHash)

	// a second loader with the correct hash
	ql := programloader.NewLoader(fn)
	ql.Hash = pl.Hash
	test.ExpectSuccess(t, ql.Load())

	// and with an incorrect hash
	ql = programloader.NewLoader(fn)
	ql.Hash = "0000"
	err := ql.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.UnexpectedHash))
	test.ExpectFailure(t, ql.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	pl := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, pl.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	pl := programloader.NewLoader("ftp://example.com/program.bin")
	test.ExpectFailure(t, pl.Load())
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0xa9, 0x01, 0x00})
	}))
	defer srv.Close()

	pl := programloader.NewLoader(srv.URL + "/program.bin")
	test.DemandSuccess(t, pl.Load())
	test.ExpectEquality(t, len(pl.Data), 3)
	test.ExpectEquality(t, pl.Data[0], uint8(0xa9))
}
