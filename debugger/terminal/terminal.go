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

// Package terminal defines the operations required for command line
// interaction with the debugger. Implementations are found in the
// sub-packages plainterm and colorterm.
package terminal

import (
	"errors"
	"os"
)

// sentinel errors returned by TermRead().
var (
	// UserInterrupt is returned when the user presses ctrl-c or when the
	// process receives an interrupt signal while a read is pending.
	UserInterrupt = errors.New("user interrupt")

	// UserQuit is returned when the terminal is sure the user wants to end
	// the debugging session.
	UserQuit = errors.New("user quit")
)

// ReadEvents should be monitored during a TermRead(). Not all terminal
// implementations are able to service the channels while waiting for input
// and those implementations will limit the functionality of the debugger.
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal        chan os.Signal
	SignalHandler func(os.Signal) error

	// RawEvents allows functions to be pushed into the debugger goroutine.
	// errors are not returned so handlers should log failures themselves
	RawEvents chan func()
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input.
	//
	// If possible the implementation should regularly check the ReadEvents
	// channels for activity while waiting.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// TermReadCheck returns true if there is input waiting to be read. Not
	// all implementations can know this, in which case returning false is
	// fine.
	TermReadCheck() bool

	// IsInteractive returns true for implementations that expect a user at
	// the other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible. for
	// example, returning the terminal to canonical mode
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// not all implementations will respond meaningfully to this
	RegisterTabCompletion(TabCompletion)

	// Silence all input and output except error messages. TermPrintLine()
	// still displays errors while silenced
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. An
// implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
