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

package colorterm

import (
	"bufio"
	"io"
)

type readRune struct {
	r   rune
	err error
}

// runeReader delivers runes from the input file over a channel, allowing
// TermRead() to select between user input and the debugger's event channels.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	br := bufio.NewReader(input)
	ch := make(runeReader)

	go func() {
		for {
			r, _, err := br.ReadRune()
			ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}
