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

package dbgmem_test

import (
	"testing"

	"github.com/gophercube/gophercube/debugger/dbgmem"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/test"
)

func TestGetAddressInfo(t *testing.T) {
	dm := dbgmem.DbgMem{Mem: memory.NewMemory()}

	// all these notations resolve to the same address
	for _, a := range []string{"80001000", "0x80001000", "$80001000"} {
		ai := dm.GetAddressInfo(a)
		if ai == nil {
			t.Fatalf("address %s did not resolve", a)
		}
		test.Equate(t, ai.Address, uint32(0x80001000))
	}

	// unparseable address
	test.ExpectedSuccess(t, dm.GetAddressInfo("zzzz") == nil)
}

func TestPeekPoke(t *testing.T) {
	dm := dbgmem.DbgMem{Mem: memory.NewMemory()}

	ai, err := dm.Poke("80001000", 0x00c0ffee)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ai.Data, uint32(0x00c0ffee))

	ai, err = dm.Peek(uint32(0x80001000))
	test.ExpectedSuccess(t, err)
	test.Equate(t, ai.Data, uint32(0x00c0ffee))
	test.Equate(t, ai.String(), "80001000 (MEM1) -> 00c0ffee")

	// non-RAM addresses produce the sentinel errors
	_, err = dm.Peek(uint32(0x00001000))
	test.ExpectedFailure(t, err)
	_, err = dm.Poke("zzzz", 0)
	test.ExpectedFailure(t, err)
}

func TestPeekString(t *testing.T) {
	dm := dbgmem.DbgMem{Mem: memory.NewMemory()}

	err := dm.Mem.LoadImage([]byte("LINK\x00"), 0x80002000)
	test.ExpectedSuccess(t, err)

	s, err := dm.PeekString("0x80002000", 32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "LINK")
}
