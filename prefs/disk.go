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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/sim6502/curated"
	"github.com/jetsetilly/sim6502/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while sim6502 is running ***"

// error patterns returned by the prefs package.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	PrefsFileError = "prefs: %v"
	DuplicateKey   = "prefs: duplicate key (%s)"
	InvalidValue   = "prefs: cannot convert %s to %s"
	UnknownKey     = "prefs: unknown key (%s)"
)

// the separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that have been set from the command line stack. these keys are not
	// loaded from or saved to disk.
	overridden map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:       path,
		entries:    make(map[string]pref),
		overridden: make(map[string]bool),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k].String()))
	}
	return s.String()
}

// sorted list of keys added to the Disk.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. If the key
// is present in the top group of the command line stack, the command line
// value is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
		dsk.overridden[key] = true
		logger.Logf(logger.Allow, "prefs", "%s set from command line (%s)", key, v)
	}

	return nil
}

// Get the pref bound to the key.
func (dsk *Disk) Get(key string) (Value, error) {
	p, ok := dsk.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Reset all values in the Disk to their zero value. Values set from the
// command line are not affected.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if dsk.overridden[k] {
			continue
		}
		if err := p.Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the existing file that
// are not known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := readEntries(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if dsk.overridden[k] {
			continue
		}
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0700); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString(WarningBoilerPlate)
	w.WriteString("\n")
	for _, k := range keys {
		w.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the file does
// not exist, the current values are saved to create the file. The NoPrefsFile
// error is still returned in that case.
func (dsk *Disk) Load(saveOnFail bool) error {
	entries, err := readEntries(dsk.path)
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		return err
	}

	for k, v := range entries {
		if dsk.overridden[k] {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	return nil
}

// reads every key/value pair in the preferences file.
func readEntries(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, path)
		}
		return nil, curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	return parseEntries(f)
}

func parseEntries(r io.Reader) (map[string]string, error) {
	entries := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line == WarningBoilerPlate {
			continue
		}

		kv := strings.SplitN(line, separator, 2)
		if len(kv) != 2 {
			// a key with an empty value
			kv = strings.SplitN(strings.TrimRight(line, " "), strings.TrimRight(separator, " "), 2)
			if len(kv) != 2 {
				continue
			}
		}

		entries[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileError, err)
	}

	return entries, nil
}
