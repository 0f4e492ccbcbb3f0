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

// Package watchpanel projects the watch store into rows of display strings
// and interprets edits made against those rows. It knows nothing about how
// the rows are drawn - a Renderer implementation (a terminal table, a GUI
// grid) is given the rows after every refresh and decides for itself.
//
// Refresh() is a destructive rebuild: the previous projection is thrown
// away and every row is recomputed from the live watch store and the live
// machine memory. Nothing is cached between refreshes. Renderers are
// notified inside a suppress scope, so any edit event a renderer emits
// while it is repopulating itself is discarded rather than fed back into
// the store.
//
// Rows are identified by the pair of list index and store generation. An
// edit that arrives with a stale generation refers to rows that no longer
// exist and is discarded.
package watchpanel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/debugger/dbgmem"
	"github.com/gophercube/gophercube/debugger/govern"
	"github.com/gophercube/gophercube/debugger/watches"
	"github.com/gophercube/gophercube/gamesettings"
	"github.com/gophercube/gophercube/logger"
)

// Column identifies the columns of the watch table.
type Column int

// The five columns of the watch table. The String column is display-only.
const (
	ColLabel Column = iota
	ColAddress
	ColHex
	ColDec
	ColString
	NumColumns
)

func (col Column) String() string {
	switch col {
	case ColLabel:
		return "Label"
	case ColAddress:
		return "Address"
	case ColHex:
		return "Hexadecimal"
	case ColDec:
		return "Decimal"
	case ColString:
		return "String"
	}
	return ""
}

// AddRowID is the ID of the trailing blank row. Entering a label against
// this row creates a new watch.
const AddRowID = -1

// the name of the game settings section holding serialised watches.
const settingsSection = "Watches"

// default number of bytes shown in the String column.
const defaultStringLen = 32

// Row is the projection of one watch entry. All fields are ready for
// display; renderers should not need to format anything further.
type Row struct {
	// ID is the entry's position in the watch store, or AddRowID for the
	// trailing blank row. Valid only for the Generation it was built from.
	ID         int
	Generation int

	Label   string
	Address string
	Hex     string
	Dec     string
	String  string

	// AddressValid is false when the machine is inactive or the address
	// doesn't map to RAM. Renderers show the address in an alternate style
	// in that case. The value columns are empty whenever this is false.
	AddressValid bool
}

// Renderer implementations display the projected rows.
type Renderer interface {
	RenderWatchRows([]Row)
}

// sentinel errors returned by the panel.
var (
	InvalidInput   = errors.New("invalid input provided")
	NoGameAttached = errors.New("no game attached")
)

// Panel ties the watch store to machine memory and to a renderer.
type Panel struct {
	wtc   *watches.Watches
	mem   dbgmem.DbgMem
	state func() govern.State

	// Renderer to notify after each refresh. may be nil
	Renderer Renderer

	// RequestMemoryBreakpoint is the cross-component signal emitted by
	// AddBreakpoint(). the panel does not set breakpoints itself
	RequestMemoryBreakpoint func(address uint32)

	// Settings returns the settings for the attached game. left nil, or
	// returning an error, Load() and Save() are unavailable
	Settings func() (*gamesettings.Settings, error)

	// StringLen returns the maximum number of bytes shown in the String
	// column. left nil, defaultStringLen is used
	StringLen func() int

	// edits are discarded while a refresh is in flight
	updating bool

	rows []Row
}

// NewPanel is the preferred method of initialisation for the Panel type.
// The state function is consulted on every refresh.
func NewPanel(wtc *watches.Watches, mem dbgmem.DbgMem, state func() govern.State) *Panel {
	return &Panel{
		wtc:   wtc,
		mem:   mem,
		state: state,
	}
}

// suppress marks the panel as updating until the returned function is
// called. the caller should defer the release so that it happens even on an
// early exit.
func (pnl *Panel) suppress() func() {
	pnl.updating = true
	return func() {
		pnl.updating = false
	}
}

func (pnl *Panel) stringLen() int {
	if pnl.StringLen == nil {
		return defaultStringLen
	}
	return pnl.StringLen()
}

// Refresh rebuilds every row from the live watch store and live machine
// memory. It is idempotent - repeated calls with no intervening change
// produce the same rows.
func (pnl *Panel) Refresh() {
	defer pnl.suppress()()

	active := pnl.state().Active()
	gen := pnl.wtc.Generation()

	rows := make([]Row, 0, pnl.wtc.Len()+1)

	for i := 0; i < pnl.wtc.Len(); i++ {
		wch, _ := pnl.wtc.Watch(i)

		row := Row{
			ID:         i,
			Generation: gen,
			Label:      wch.Label,
			Address:    fmt.Sprintf("%08x", wch.Address),
		}

		// value columns are populated only when the machine is active and
		// the address maps to RAM. in every other case the address is
		// flagged for the alternate display style
		if active && pnl.mem.Mem.IsRAMAddress(wch.Address) {
			row.AddressValid = true
			if ai, err := pnl.mem.Peek(wch.Address); err == nil {
				row.Hex = fmt.Sprintf("%08x", ai.Data)
				row.Dec = fmt.Sprintf("%d", ai.Data)
			}
			if s, err := pnl.mem.PeekString(wch.Address, pnl.stringLen()); err == nil {
				row.String = s
			}
		}

		rows = append(rows, row)
	}

	// the trailing blank row is the "add new watch" affordance
	rows = append(rows, Row{ID: AddRowID, Generation: gen})

	pnl.rows = rows

	if pnl.Renderer != nil {
		pnl.Renderer.RenderWatchRows(pnl.rows)
	}
}

// Rows returns the projection built by the most recent Refresh().
func (pnl *Panel) Rows() []Row {
	return pnl.rows
}

// CellEdit interprets user input against the identified row and column.
//
// Edits arriving while a refresh is in flight, or carrying a stale
// generation, are discarded without error. Unparseable numeric input
// returns an error wrapping InvalidInput and mutates nothing.
func (pnl *Panel) CellEdit(id int, generation int, col Column, text string) error {
	if pnl.updating {
		return nil
	}

	if generation != pnl.wtc.Generation() {
		logger.Logf("watchpanel", "discarding edit against stale generation %d", generation)
		return nil
	}

	text = strings.TrimSpace(text)

	if id == AddRowID {
		if col == ColLabel && text != "" {
			pnl.wtc.Add(text, 0)
			pnl.Refresh()
		}
		return nil
	}

	wch, ok := pnl.wtc.Watch(id)
	if !ok {
		return nil
	}

	switch col {
	case ColLabel:
		if text == "" {
			if err := pnl.wtc.Drop(id); err != nil {
				return err
			}
		} else {
			if err := pnl.wtc.SetLabel(id, text); err != nil {
				return err
			}
		}

	case ColAddress:
		v, err := parseValue(text, 16)
		if err != nil {
			return err
		}
		if err := pnl.wtc.SetAddress(id, v); err != nil {
			return err
		}

	case ColHex, ColDec:
		base := 16
		if col == ColDec {
			base = 10
		}
		v, err := parseValue(text, base)
		if err != nil {
			return err
		}

		// the value is written through to memory at the entry's current
		// address. the entry itself is untouched - editing a value column
		// never moves the watch
		if _, err := pnl.mem.Poke(wch.Address, v); err != nil {
			return err
		}

	case ColString:
		// display-only column
		return nil
	}

	pnl.Refresh()

	return nil
}

func parseValue(text string, base int) (uint32, error) {
	if base == 16 {
		text = strings.TrimPrefix(strings.TrimPrefix(text, "$"), "0x")
	}
	v, err := strconv.ParseUint(text, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", InvalidInput, text)
	}
	return uint32(v), nil
}

// AddWatch appends a new entry to the watch store. Unlike an edit against
// the add row, no refresh is triggered - callers decide when to refresh.
func (pnl *Panel) AddWatch(label string, address uint32) {
	pnl.wtc.Add(label, address)
}

// DeleteWatch removes the identified entry and refreshes.
func (pnl *Panel) DeleteWatch(id int) error {
	if err := pnl.wtc.Drop(id); err != nil {
		return err
	}
	pnl.Refresh()
	return nil
}

// AddBreakpoint emits the request-memory-breakpoint signal for the
// identified entry's current address. The panel does not set the
// breakpoint itself.
func (pnl *Panel) AddBreakpoint(id int) error {
	wch, ok := pnl.wtc.Watch(id)
	if !ok {
		return fmt.Errorf("watch #%d is not defined", id)
	}
	if pnl.RequestMemoryBreakpoint != nil {
		pnl.RequestMemoryBreakpoint(wch.Address)
	}
	return nil
}

func (pnl *Panel) settings() (*gamesettings.Settings, error) {
	if pnl.Settings == nil {
		return nil, fmt.Errorf("watchpanel: %w", NoGameAttached)
	}
	return pnl.Settings()
}

// Load replaces the watch list with the entries stored in the attached
// game's settings file. A missing file or a missing Watches section leaves
// the current list untouched. A refresh happens in either case.
func (pnl *Panel) Load() error {
	set, err := pnl.settings()
	if err != nil {
		return err
	}

	if lines, ok := set.Lines(settingsSection); ok {
		pnl.wtc.FromStrings(lines)
	}

	pnl.Refresh()

	return nil
}

// Save writes the current watch list to the attached game's settings file,
// creating the file if necessary. Only the Watches section is replaced.
func (pnl *Panel) Save() error {
	set, err := pnl.settings()
	if err != nil {
		return err
	}

	set.SetLines(settingsSection, pnl.wtc.ToStrings())

	return set.Save()
}
