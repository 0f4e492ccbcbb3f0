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
	"fmt"

	"github.com/gophercube/gophercube/debugger/terminal"
	"github.com/gophercube/gophercube/logger"
)

// breakpoints is the list of requested memory breakpoints. The list is the
// consumer of the watch panel's breakpoint request signal - an attached CPU
// core would drain it, for now the debugger only maintains it.
type breakpoints struct {
	dbg    *Debugger
	breaks []uint32
}

func newBreakpoints(dbg *Debugger) *breakpoints {
	return &breakpoints{
		dbg:    dbg,
		breaks: make([]uint32, 0, 10),
	}
}

// add a memory breakpoint request. duplicate addresses are ignored.
func (bp *breakpoints) add(address uint32) {
	for _, b := range bp.breaks {
		if b == address {
			bp.dbg.printLine(terminal.StyleFeedback, "breakpoint at %08x already exists", address)
			return
		}
	}

	bp.breaks = append(bp.breaks, address)
	logger.Logf("breakpoints", "added %08x", address)
	bp.dbg.printLine(terminal.StyleFeedback, "memory breakpoint requested at %08x", address)
}

// list prints every breakpoint to the terminal.
func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	for i, b := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, "%3d %08x", i, b)
	}
}

// drop the breakpoint at position num. Later entries shift down by one.
func (bp *breakpoints) drop(num int) error {
	if num < 0 || num >= len(bp.breaks) {
		return fmt.Errorf("breakpoint #%d is not defined", num)
	}

	h := bp.breaks[:num]
	t := bp.breaks[num+1:]
	bp.breaks = make([]uint32, len(h)+len(t), cap(bp.breaks))
	copy(bp.breaks, h)
	copy(bp.breaks[len(h):], t)

	return nil
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}
