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

package terminal

// Style is used by the Output interface to decorate lines of text. How the
// styles are realised depends on the terminal implementation.
type Style int

// List of styles.
const (
	// input normalised by the tokeniser, echoed back to the user. terminals
	// that already display input as it is typed should discard these lines
	StyleEcho Style = iota

	// help text
	StyleHelp

	// information in response to a command
	StyleFeedback

	// a row of the watch table whose value columns are live
	StyleWatch

	// a row of the watch table whose address can't currently be read. the
	// alternate style tells the user the row is present but not live
	StyleWatchInvalid

	// an entry from the central log
	StyleLog

	// an error message. always displayed, even when the terminal is silenced
	StyleError
)
