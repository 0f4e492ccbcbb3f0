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

// Package script allows a file of debugger commands to be played back as
// though they were typed at the terminal.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gophercube/gophercube/debugger/terminal"
)

// ScriptEnd is returned by TermRead() when the end of the script has been
// reached. It is not an error condition as such.
var ScriptEnd = errors.New("end of script")

const commentLine = "#"

// check if line is prepended with commentLine (ignoring leading spaces).
func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents a previously written script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptFile string) (*Rescribe, error) {
	data, err := os.ReadFile(scriptFile)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	scr := &Rescribe{
		scriptFile: scriptFile,
		lines:      strings.Split(string(data), "\n"),
	}
	scr.skipComments()

	return scr, nil
}

func (scr *Rescribe) skipComments() {
	for scr.lineCt < len(scr.lines) && isCommentLine(scr.lines[scr.lineCt]) {
		scr.lineCt++
	}
}

// TermRead implements the terminal.Input interface.
func (scr *Rescribe) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if scr.lineCt > len(scr.lines)-1 {
		return "", fmt.Errorf("%w: %s", ScriptEnd, scr.scriptFile)
	}

	command := scr.lines[scr.lineCt]
	scr.lineCt++
	scr.skipComments()

	return command, nil
}

// TermReadCheck implements the terminal.Input interface.
func (scr *Rescribe) TermReadCheck() bool {
	return false
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}
