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
	"errors"
	"io"
	"strings"

	"github.com/gophercube/gophercube/debugger/script"
	"github.com/gophercube/gophercube/debugger/terminal"
	"github.com/gophercube/gophercube/debugger/terminal/commandline"
)

// inputLoop reads and acts upon commands from the inputter until the
// debugger stops running or the inputter is exhausted. It is called
// recursively for script playback.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		// raw events pushed while no read was pending. terminals that can't
		// service the event channels during TermRead() rely on this
		dbg.serviceRawEvents()

		input, err := inputter.TermRead(dbg.prompt(), dbg.events)

		// errors returned by TermRead() are rich. interpret them carefully
		if err != nil {
			if errors.Is(err, script.ScriptEnd) {
				// a script ending is not an error. say so with a feedback
				// style and return to the calling input loop
				dbg.printLine(terminal.StyleFeedback, err.Error())
				return nil
			}

			if errors.Is(err, io.EOF) {
				// treat EOF the same as a quit request
				dbg.running = false
				return nil
			}

			if errors.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt(inputter)
				continue
			}

			if errors.Is(err, terminal.UserQuit) {
				dbg.running = false
				return nil
			}

			// the error is probably serious. exit the input loop with it
			return err
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// serviceRawEvents runs any queued raw event functions without blocking.
func (dbg *Debugger) serviceRawEvents() {
	for {
		select {
		case f := <-dbg.events.RawEvents:
			f()
		default:
			return
		}
	}
}

// parseInput tokenises a line of user input and dispatches the command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Remaining() == 0 {
		return nil
	}

	// echo the normalised input. terminals that show input as it is typed
	// discard this
	dbg.printLine(terminal.StyleEcho, tokens.String())

	return dbg.parseCommand(tokens)
}

// handleInterrupt is called when TermRead() returns a UserInterrupt. For
// non-interactive input the debugger simply stops. Interactive users are
// asked for confirmation.
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if !inputter.IsInteractive() {
		dbg.running = false
		return
	}

	confirm, err := inputter.TermRead(terminal.Prompt{
		Content: "really quit (y/n) ",
		Type:    terminal.PromptTypeConfirm,
	}, dbg.events)

	if err != nil {
		// another interrupt while we were asking. treat it as a yes
		if errors.Is(err, terminal.UserInterrupt) {
			dbg.running = false
			return
		}
		dbg.printLine(terminal.StyleError, "%s", err)
		return
	}

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(confirm)), "y") {
		dbg.running = false
	}
}
