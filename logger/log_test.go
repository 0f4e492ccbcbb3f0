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

package logger

import (
	"strings"
	"sync"
	"testing"

	"github.com/gophercube/gophercube/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(10)

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test\n")

	// repeated entries are compressed
	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\n")

	l.log("test2", "this is another test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\ntest2: this is another test\n")

	// tail returns only the most recent entries
	b.Reset()
	l.tail(b, 1)
	test.Equate(t, b.String(), "test2: this is another test\n")

	l.clear()
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "")
}

// the logger is written to from more than one goroutine. the test is most
// useful when run with the race detector.
func TestLoggerConcurrentUse(t *testing.T) {
	l := newLogger(100)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.log("concurrent", "entry")
			}
		}()
	}

	b := &strings.Builder{}
	for i := 0; i < 50; i++ {
		l.write(b)
		l.tail(b, 1)
	}

	wg.Wait()

	// every entry is identical so the whole log compresses to one entry
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "concurrent: entry (repeat x200)\n")
}

func TestLoggerMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("a", "1")
	l.log("b", "2")
	l.log("c", "3")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "b: 2\nc: 3\n")
}
