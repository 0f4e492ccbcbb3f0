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

package commandline

import (
	"sort"
	"strings"
)

// TabCompletion expands the last word of an input string to the closest
// match in a list of keywords. Repeated calls with the same effective input
// cycle through the matching options.
type TabCompletion struct {
	keywords []string

	options    []string
	lastOption int

	// lastGuess is the last string returned by Complete(). it is how we
	// decide whether a call is cycling through options or starting a new
	// completion session
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type. The keyword list is sorted so that cycling order is
// predictable.
func NewTabCompletion(keywords []string) *TabCompletion {
	tc := &TabCompletion{
		keywords: make([]string, len(keywords)),
	}
	copy(tc.keywords, keywords)
	sort.Strings(tc.keywords)
	return tc
}

// Complete transforms the input such that the last word is expanded to the
// closest matching keyword.
func (tc *TabCompletion) Complete(input string) string {
	p := tokeniseInput(input)
	if len(p) == 0 {
		return input
	}

	if input == tc.lastGuess {
		// cycling. shorten the input by one word, getting rid of the last
		// completion effort, and step to the next option
		if len(tc.options) <= 1 {
			return input
		}

		p = p[:len(p)-1]
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		// a trailing space means the user has accepted the last completion.
		// there is nothing to complete on
		if strings.HasSuffix(input, " ") {
			return input
		}

		// new completion session
		tc.options = tc.options[:0]
		tc.lastOption = 0

		trigger := strings.ToUpper(p[len(p)-1])
		p = p[:len(p)-1]

		for _, k := range tc.keywords {
			if strings.HasPrefix(k, trigger) {
				tc.options = append(tc.options, k)
			}
		}

		if len(tc.options) == 0 {
			return input
		}
	}

	// add guessed word to end of input-list and rejoin to form the output
	p = append(p, tc.options[tc.lastOption])
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset forgets the current completion session.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.lastOption = 0
	tc.lastGuess = ""
}
