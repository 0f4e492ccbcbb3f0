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

// Package gamesettings loads and saves per-game debugger settings.
//
// Settings live in one INI style file per game ID. Each named section holds
// an ordered list of opaque lines - the meaning of the lines is owned by
// whatever subsystem reads the section. Sections this package doesn't know
// about are preserved across a save, meaning files can be shared with hand
// written settings or with other tools.
//
// A missing file is not an error. It is indistinguishable from a file with
// no sections.
package gamesettings

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gophercube/gophercube/resources"
)

// the directory, relative to the resources base path, where settings files
// are stored.
const settingsDir = "gamesettings"

// section is a named, ordered group of raw lines. the lines are kept
// verbatim so comments and spacing survive a load/save cycle.
type section struct {
	name  string
	lines []string
}

// Settings represents the contents of a single per-game settings file.
type Settings struct {
	path string

	// sections in file order. the anonymous preamble, if any, is stored
	// with the empty name
	sections []*section
}

// Load settings for the specified game ID. A missing settings file results
// in an empty Settings instance and no error.
func Load(gameID string) (*Settings, error) {
	p, err := resources.JoinPath(settingsDir, fmt.Sprintf("%s.ini", gameID))
	if err != nil {
		return nil, fmt.Errorf("gamesettings: %w", err)
	}
	return LoadPath(p)
}

// LoadPath is like Load but with an explicit file path.
func LoadPath(path string) (*Settings, error) {
	set := &Settings{path: path}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return set, nil
		}
		return nil, fmt.Errorf("gamesettings: %w", err)
	}
	defer f.Close()

	curr := (*section)(nil)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := scanner.Text()

		t := strings.TrimSpace(l)
		if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
			curr = &section{name: t[1 : len(t)-1]}
			set.sections = append(set.sections, curr)
			continue
		}

		if curr == nil {
			curr = &section{name: ""}
			set.sections = append(set.sections, curr)
		}
		curr.lines = append(curr.lines, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gamesettings: %w", err)
	}

	return set, nil
}

// Path returns the file path backing this Settings instance.
func (set *Settings) Path() string {
	return set.path
}

func (set *Settings) section(name string) *section {
	for _, s := range set.sections {
		if s.name == name {
			return s
		}
	}
	return nil
}

// Lines returns the meaningful lines of the named section, in order. Blank
// lines and comments are filtered out. The second return value is false if
// the section is not present at all.
func (set *Settings) Lines(name string) ([]string, bool) {
	s := set.section(name)
	if s == nil {
		return nil, false
	}

	lines := make([]string, 0, len(s.lines))
	for _, l := range s.lines {
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, ";") || strings.HasPrefix(t, "#") {
			continue
		}
		lines = append(lines, t)
	}

	return lines, true
}

// SetLines replaces the contents of the named section, creating the section
// if necessary. Other sections are unaffected.
func (set *Settings) SetLines(name string, lines []string) {
	s := set.section(name)
	if s == nil {
		s = &section{name: name}
		set.sections = append(set.sections, s)
	}
	s.lines = make([]string, len(lines))
	copy(s.lines, lines)
}

// Save writes the settings back to the file they were loaded from, creating
// the file if necessary.
func (set *Settings) Save() error {
	f, err := os.Create(set.path)
	if err != nil {
		return fmt.Errorf("gamesettings: %w", err)
	}
	defer f.Close()

	for _, s := range set.sections {
		if s.name != "" {
			fmt.Fprintf(f, "[%s]\n", s.name)
		}
		for _, l := range s.lines {
			fmt.Fprintln(f, l)
		}
	}

	return nil
}
