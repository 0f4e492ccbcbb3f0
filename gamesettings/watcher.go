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

package gamesettings

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gophercube/gophercube/logger"
)

// Watcher monitors a settings file for changes made outside of the
// emulator. The onChange function is called from the watcher goroutine -
// callers that care about which goroutine they run on should forward the
// notification to their own event channel.
type Watcher struct {
	fsn      *fsnotify.Watcher
	path     string
	onChange func()
}

// NewWatcher is the preferred method of initialisation for the Watcher
// type. The file at path does not need to exist yet - the containing
// directory is watched, which also means notifications survive editors that
// save through a rename.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsn, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("gamesettings: %w", err)
	}

	if err := fsn.Add(filepath.Dir(path)); err != nil {
		fsn.Close()
		return nil, fmt.Errorf("gamesettings: %w", err)
	}

	wtc := &Watcher{
		fsn:      fsn,
		path:     path,
		onChange: onChange,
	}

	go wtc.watch()

	return wtc, nil
}

func (wtc *Watcher) watch() {
	for {
		select {
		case event, ok := <-wtc.fsn.Events:
			if !ok {
				return
			}
			if event.Name != wtc.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Logf("gamesettings", "%s changed on disk", wtc.path)
				wtc.onChange()
			}
		case err, ok := <-wtc.fsn.Errors:
			if !ok {
				return
			}
			logger.Log("gamesettings", err.Error())
		}
	}
}

// Close stops the watcher. The onChange function will not be called again
// once Close returns.
func (wtc *Watcher) Close() error {
	return wtc.fsn.Close()
}
