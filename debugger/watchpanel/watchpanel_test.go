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

package watchpanel_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gophercube/gophercube/debugger/dbgmem"
	"github.com/gophercube/gophercube/debugger/govern"
	"github.com/gophercube/gophercube/debugger/watchpanel"
	"github.com/gophercube/gophercube/debugger/watches"
	"github.com/gophercube/gophercube/gamesettings"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/test"
)

type harness struct {
	wtc   *watches.Watches
	mem   dbgmem.DbgMem
	state govern.State
	pnl   *watchpanel.Panel
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		wtc:   watches.NewWatches(),
		mem:   dbgmem.DbgMem{Mem: memory.NewMemory()},
		state: govern.Paused,
	}
	h.pnl = watchpanel.NewPanel(h.wtc, h.mem, func() govern.State { return h.state })
	return h
}

func TestRefreshGating(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("health", 0x80001000)
	_, err := h.mem.Poke(uint32(0x80001000), 100)
	test.ExpectedSuccess(t, err)

	// machine not yet started. the address formats but no values appear
	h.state = govern.EmulatorStart
	h.pnl.Refresh()

	rows := h.pnl.Rows()
	test.Equate(t, len(rows), 2)
	test.Equate(t, rows[0].Label, "health")
	test.Equate(t, rows[0].Address, "80001000")
	test.Equate(t, rows[0].AddressValid, false)
	test.Equate(t, rows[0].Hex, "")
	test.Equate(t, rows[0].Dec, "")

	// paused machine is active
	h.state = govern.Paused
	h.pnl.Refresh()

	rows = h.pnl.Rows()
	test.Equate(t, rows[0].AddressValid, true)
	test.Equate(t, rows[0].Hex, "00000064")
	test.Equate(t, rows[0].Dec, "100")

	// last row is always the add row
	test.Equate(t, rows[1].ID, watchpanel.AddRowID)
}

func TestRefreshNonRAMAddress(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("bogus", 0x12345678)
	h.pnl.Refresh()

	rows := h.pnl.Rows()
	test.Equate(t, rows[0].Address, "12345678")
	test.Equate(t, rows[0].AddressValid, false)
	test.Equate(t, rows[0].Hex, "")
}

func TestRefreshIdempotent(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("health", 0x80001000)
	h.wtc.Add("bogus", 0x12345678)
	_, err := h.mem.Poke(uint32(0x80001000), 100)
	test.ExpectedSuccess(t, err)

	h.pnl.Refresh()
	first := h.pnl.Rows()

	// nothing has changed between refreshes so the projections must be
	// identical, RAM-resident and unmappable entries alike
	h.pnl.Refresh()
	second := h.pnl.Rows()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated refresh produced different rows: %v / %v", first, second)
	}
}

func TestRefreshStringColumn(t *testing.T) {
	h := newHarness(t)

	err := h.mem.Mem.LoadImage([]byte("LINK\x00ZELDA"), 0x80002000)
	test.ExpectedSuccess(t, err)

	h.wtc.Add("name", 0x80002000)
	h.pnl.Refresh()

	test.Equate(t, h.pnl.Rows()[0].String, "LINK")
}

func TestAddRow(t *testing.T) {
	h := newHarness(t)
	h.pnl.Refresh()

	gen := h.pnl.Rows()[0].Generation

	// text in a value column of the add row does nothing
	err := h.pnl.CellEdit(watchpanel.AddRowID, gen, watchpanel.ColHex, "1234")
	test.ExpectedSuccess(t, err)
	test.Equate(t, h.wtc.Len(), 0)

	// a label creates a new watch at address zero
	err = h.pnl.CellEdit(watchpanel.AddRowID, gen, watchpanel.ColLabel, "lives")
	test.ExpectedSuccess(t, err)
	test.Equate(t, h.wtc.Len(), 1)

	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Label, "lives")
	test.Equate(t, wch.Address, uint32(0))

	// the refresh that followed shows the new entry
	test.Equate(t, len(h.pnl.Rows()), 2)
}

func TestLabelEdit(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("old", 0x80001000)
	h.pnl.Refresh()
	gen := h.pnl.Rows()[0].Generation

	err := h.pnl.CellEdit(0, gen, watchpanel.ColLabel, "new")
	test.ExpectedSuccess(t, err)

	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Label, "new")

	// an empty label deletes the entry
	gen = h.pnl.Rows()[0].Generation
	err = h.pnl.CellEdit(0, gen, watchpanel.ColLabel, "")
	test.ExpectedSuccess(t, err)
	test.Equate(t, h.wtc.Len(), 0)
}

func TestAddressEdit(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("w", 0x80001000)
	h.pnl.Refresh()
	gen := h.pnl.Rows()[0].Generation

	err := h.pnl.CellEdit(0, gen, watchpanel.ColAddress, "0x80002000")
	test.ExpectedSuccess(t, err)

	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Address, uint32(0x80002000))

	// garbage input errors and leaves the entry alone
	err = h.pnl.CellEdit(0, gen, watchpanel.ColAddress, "not an address")
	test.ExpectedFailure(t, err)
	if !errors.Is(err, watchpanel.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}

	wch, _ = h.wtc.Watch(0)
	test.Equate(t, wch.Address, uint32(0x80002000))
}

func TestValueEditWritesThrough(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("w", 0x80001000)
	h.pnl.Refresh()
	gen := h.pnl.Rows()[0].Generation

	// hex column writes the parsed value to memory. the entry's address is
	// not changed, even though the text would parse as an address
	err := h.pnl.CellEdit(0, gen, watchpanel.ColHex, "deadbeef")
	test.ExpectedSuccess(t, err)

	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Address, uint32(0x80001000))

	ai, err := h.mem.Peek(uint32(0x80001000))
	test.ExpectedSuccess(t, err)
	test.Equate(t, ai.Data, uint32(0xdeadbeef))

	// dec column parses base 10
	err = h.pnl.CellEdit(0, gen, watchpanel.ColDec, "255")
	test.ExpectedSuccess(t, err)

	ai, err = h.mem.Peek(uint32(0x80001000))
	test.ExpectedSuccess(t, err)
	test.Equate(t, ai.Data, uint32(255))

	// garbage in either column errors without writing
	err = h.pnl.CellEdit(0, gen, watchpanel.ColDec, "ff")
	test.ExpectedFailure(t, err)

	ai, _ = h.mem.Peek(uint32(0x80001000))
	test.Equate(t, ai.Data, uint32(255))
}

func TestStringColumnReadOnly(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("w", 0x80001000)
	h.pnl.Refresh()
	gen := h.pnl.Rows()[0].Generation

	err := h.pnl.CellEdit(0, gen, watchpanel.ColString, "HELLO")
	test.ExpectedSuccess(t, err)

	ai, _ := h.mem.Peek(uint32(0x80001000))
	test.Equate(t, ai.Data, uint32(0))
}

func TestStaleGeneration(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("a", 0x80001000)
	h.wtc.Add("b", 0x80002000)
	h.pnl.Refresh()
	gen := h.pnl.Rows()[0].Generation

	// structural change invalidates the held generation
	test.ExpectedSuccess(t, h.wtc.Drop(0))

	err := h.pnl.CellEdit(1, gen, watchpanel.ColLabel, "renamed")
	test.ExpectedSuccess(t, err)

	// the edit was discarded. entry 0 (formerly entry 1) is untouched
	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Label, "b")
}

// a renderer that tries to edit the panel from inside the refresh
// notification. the suppress scope must discard the edit.
type feedbackRenderer struct {
	pnl *watchpanel.Panel
}

func (r *feedbackRenderer) RenderWatchRows(rows []watchpanel.Row) {
	_ = r.pnl.CellEdit(0, rows[0].Generation, watchpanel.ColLabel, "feedback")
}

func TestSuppressDuringRefresh(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("original", 0x80001000)
	h.pnl.Renderer = &feedbackRenderer{pnl: h.pnl}
	h.pnl.Refresh()

	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Label, "original")
}

func TestBreakpointRequest(t *testing.T) {
	h := newHarness(t)

	h.wtc.Add("w", 0x80001000)
	h.pnl.Refresh()

	var requested uint32
	h.pnl.RequestMemoryBreakpoint = func(address uint32) {
		requested = address
	}

	test.ExpectedSuccess(t, h.pnl.AddBreakpoint(0))
	test.Equate(t, requested, uint32(0x80001000))

	test.ExpectedFailure(t, h.pnl.AddBreakpoint(99))
}

func TestLoadSave(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "GALE01.ini")
	h.pnl.Settings = func() (*gamesettings.Settings, error) {
		return gamesettings.LoadPath(path)
	}

	// loading with no file on disk leaves the list alone
	h.wtc.Add("health", 0x80001000)
	test.ExpectedSuccess(t, h.pnl.Load())
	test.Equate(t, h.wtc.Len(), 1)

	h.wtc.Add("lives", 0x80002000)
	test.ExpectedSuccess(t, h.pnl.Save())

	// replace-on-load semantics
	h.wtc.Clear()
	h.wtc.Add("scratch", 0x80003000)
	test.ExpectedSuccess(t, h.pnl.Load())

	test.Equate(t, h.wtc.Len(), 2)
	wch, _ := h.wtc.Watch(0)
	test.Equate(t, wch.Label, "health")
	test.Equate(t, wch.Address, uint32(0x80001000))
	wch, _ = h.wtc.Watch(1)
	test.Equate(t, wch.Label, "lives")
}
