// This file is part of Gophercube.
//
// Gophercube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercube.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is the first line in a prefs file. Files without this
// line will not be parsed.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value on a single line.
const keySep = " :: "

// sentinel error returned when the prefs file is not recognised.
var NotAPrefsFile = errors.New("not a valid prefs file")

// Disk represents preference values as stored on disk. Save() and Load()
// operate only on the preference values that have been added to the
// instance. Keys in the file belonging to other Disk instances are
// preserved on Save().
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to save/load from disk. The key
// must be unique to this Disk instance and must not contain the key
// separator sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already in use (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the entire prefs file, returning a map of all key/value pairs. keys
// not known to this Disk instance are included - they're needed for a
// non-clobbering save.
func (dsk *Disk) readFile() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vals, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: %w: %s", NotAPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			return nil, fmt.Errorf("prefs: %w: %s", NotAPrefsFile, dsk.path)
		}
		vals[s[0]] = s[1]
	}

	return vals, scanner.Err()
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	// load the file before opening it for writing. without this, keys
	// belonging to other Disk instances would be lost
	vals, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	// sorted keys mean the file is stable between saves
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(f, "%s%s%s\n", k, keySep, vals[k])
	}

	return nil
}

// Load preference values from disk. A missing prefs file is not an error -
// the registered values are left untouched.
//
// If mustExist is true then a missing file does cause an error.
func (dsk *Disk) Load(mustExist bool) error {
	if _, err := os.Stat(dsk.path); err != nil {
		if mustExist {
			return fmt.Errorf("prefs: %w", err)
		}
		return nil
	}

	vals, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := vals[k]; ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}
