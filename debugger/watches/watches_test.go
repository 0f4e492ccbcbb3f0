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

package watches_test

import (
	"testing"

	"github.com/gophercube/gophercube/debugger/watches"
	"github.com/gophercube/gophercube/test"
)

func TestAddAndEnumerate(t *testing.T) {
	wtc := watches.NewWatches()
	test.Equate(t, wtc.Len(), 0)

	wtc.Add("player health", 0x80001234)
	wtc.Add("rupees", 0x80005678)
	test.Equate(t, wtc.Len(), 2)

	wch, ok := wtc.Watch(0)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, wch.Label, "player health")
	test.Equate(t, wch.Address, uint32(0x80001234))

	wch, ok = wtc.Watch(1)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, wch.Label, "rupees")

	_, ok = wtc.Watch(2)
	test.ExpectedFailure(t, ok)
	_, ok = wtc.Watch(-1)
	test.ExpectedFailure(t, ok)
}

func TestDropShiftsIndices(t *testing.T) {
	wtc := watches.NewWatches()
	wtc.Add("a", 0x80000000)
	wtc.Add("b", 0x80000004)
	wtc.Add("c", 0x80000008)

	err := wtc.Drop(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, wtc.Len(), 2)

	wch, _ := wtc.Watch(0)
	test.Equate(t, wch.Label, "a")
	wch, _ = wtc.Watch(1)
	test.Equate(t, wch.Label, "c")

	err = wtc.Drop(2)
	test.ExpectedFailure(t, err)
}

func TestGeneration(t *testing.T) {
	wtc := watches.NewWatches()
	g := wtc.Generation()

	// renames and re-addressing don't move entries so the generation is
	// unchanged
	wtc.Add("a", 0x80000000)
	test.ExpectedSuccess(t, wtc.Generation() != g)
	g = wtc.Generation()

	err := wtc.SetLabel(0, "b")
	test.ExpectedSuccess(t, err)
	err = wtc.SetAddress(0, 0x80000004)
	test.ExpectedSuccess(t, err)
	test.Equate(t, wtc.Generation(), g)

	err = wtc.Drop(0)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, wtc.Generation() != g)
}

func TestSerialisation(t *testing.T) {
	wtc := watches.NewWatches()
	wtc.Add("player health", 0x80001234)
	wtc.Add("", 0x80005678)

	s := wtc.ToStrings()
	test.Equate(t, s, []string{"80001234 player health", "80005678"})

	// round-trip through a fresh instance
	wtc2 := watches.NewWatches()
	wtc2.FromStrings(s)
	test.Equate(t, wtc2.ToStrings(), s)

	// unparseable lines are skipped, not fatal
	wtc2.FromStrings([]string{"zzzz nope", "80000010 ok"})
	test.Equate(t, wtc2.Len(), 1)
	wch, _ := wtc2.Watch(0)
	test.Equate(t, wch.Address, uint32(0x80000010))
	test.Equate(t, wch.Label, "ok")
}
