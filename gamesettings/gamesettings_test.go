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

package gamesettings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/gamesettings"
	"github.com/gophercube/gophercube/test"
)

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "GPHE01.ini")

	set, err := gamesettings.LoadPath(fn)
	test.ExpectedSuccess(t, err)

	_, ok := set.Lines("Watches")
	test.ExpectedFailure(t, ok)
}

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "GPHE01.ini")

	set, err := gamesettings.LoadPath(fn)
	test.ExpectedSuccess(t, err)

	set.SetLines("Watches", []string{"80001234 player health", "80005678 rupees"})
	err = set.Save()
	test.ExpectedSuccess(t, err)

	set, err = gamesettings.LoadPath(fn)
	test.ExpectedSuccess(t, err)

	lines, ok := set.Lines("Watches")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, lines, []string{"80001234 player health", "80005678 rupees"})
}

func TestForeignSectionsPreserved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "GPHE01.ini")

	// file with a section written by another tool, comments included
	err := os.WriteFile(fn, []byte("; hand written\n[Gecko]\n$some cheat code\n\n[Watches]\n80001234 old watch\n"), 0644)
	test.ExpectedSuccess(t, err)

	set, err := gamesettings.LoadPath(fn)
	test.ExpectedSuccess(t, err)

	// comments and blanks are filtered from Lines() ...
	lines, ok := set.Lines("Watches")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, lines, []string{"80001234 old watch"})

	// ... but survive a save that replaces the Watches section
	set.SetLines("Watches", []string{"80009999 new watch"})
	err = set.Save()
	test.ExpectedSuccess(t, err)

	data, err := os.ReadFile(fn)
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(data), "; hand written\n[Gecko]\n$some cheat code\n\n[Watches]\n80009999 new watch\n")
}
