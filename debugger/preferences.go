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

package debugger

import (
	"fmt"

	"github.com/gophercube/gophercube/prefs"
	"github.com/gophercube/gophercube/resources"
)

// the name of the prefs file in the resources directory.
const prefsFile = "gophercube.prefs"

// default length of the watch table's string column.
const defaultStringColLength = 32

// Preferences for the debugger.
type Preferences struct {
	dsk *prefs.Disk

	// load watches from the game's settings file on insert
	autoLoadWatches prefs.Bool

	// reload watches when the settings file changes on disk
	liveWatchReload prefs.Bool

	// number of bytes shown in the watch table's string column
	stringColLength prefs.Int
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from disk when a prefs file exists.
func newPreferences() (*Preferences, error) {
	p := &Preferences{}

	if err := p.autoLoadWatches.Set(true); err != nil {
		return nil, err
	}
	if err := p.liveWatchReload.Set(true); err != nil {
		return nil, err
	}
	if err := p.stringColLength.Set(defaultStringColLength); err != nil {
		return nil, err
	}

	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("debugger.watches.autoload", &p.autoLoadWatches); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("debugger.watches.livereload", &p.liveWatchReload); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("debugger.watches.stringlength", &p.stringColLength); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(false); err != nil {
		return nil, err
	}

	return p, nil
}

// stringLen is the function behind the watch panel's StringLen hook.
func (p *Preferences) stringLen() int {
	n := p.stringColLength.Get().(int)
	if n < 1 {
		return defaultStringColLength
	}
	return n
}

// save preference values to disk.
func (p *Preferences) save() error {
	return p.dsk.Save()
}
