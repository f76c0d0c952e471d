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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/logger"
)

// UnexpectedHash is returned by Load() when the Hash field was set before
// loading and does not match the loaded data.
const UnexpectedHash = "programloader: unexpected hash value (%s)"

// Loader specifies the program or saved state to load.
type Loader struct {
	// filename of the program to load
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte

	// the data is a saved CPU state rather than a program binary
	IsState bool
}

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".BIN", ".PRG", ".ROM", ".STATE"}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file extension is used to decide whether the file is a saved state.
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string) Loader {
	pl := Loader{
		Filename: filename,
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".STATE":
		pl.IsState = true
	}

	return pl
}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	shortName := path.Base(pl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(pl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the data. Loader filenames with a valid scheme will use that method
// to load the data. Currently supported schemes are HTTP and local files.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
		defer resp.Body.Close()

		pl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		pl.Data, err = os.ReadFile(pl.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	default:
		return curated.Errorf("programloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(pl.Data))

	// check for hash consistency
	if pl.Hash != "" && pl.Hash != hash {
		pl.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	pl.Hash = hash

	logger.Logf(logger.Allow, "programloader", "loaded %s (%d bytes)", pl.ShortName(), len(pl.Data))

	return nil
}
