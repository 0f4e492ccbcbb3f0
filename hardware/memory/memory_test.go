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

package memory_test

import (
	"testing"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/hardware/memory/memorymap"
	"github.com/gophercube/gophercube/test"
)

func TestMapAddress(t *testing.T) {
	o, a := memorymap.MapAddress(0x80000000)
	test.Equate(t, a, memorymap.MEM1)
	test.Equate(t, o, uint32(0))

	// uncached mirror maps to the same offset
	o, a = memorymap.MapAddress(0xc0001234)
	test.Equate(t, a, memorymap.MEM1)
	test.Equate(t, o, uint32(0x1234))

	_, a = memorymap.MapAddress(0x00000000)
	test.Equate(t, a, memorymap.Undefined)
	_, a = memorymap.MapAddress(0x81800000)
	test.Equate(t, a, memorymap.Undefined)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Write32(0x80001000, 0xdeadbeef)
	test.ExpectedSuccess(t, err)

	v, err := mem.Read32(0x80001000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xdeadbeef))

	// same value through the uncached mirror
	v, err = mem.Read32(0xc0001000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xdeadbeef))

	// unmapped addresses error
	_, err = mem.Read32(0x00001000)
	test.ExpectedFailure(t, err)
	err = mem.Write32(0x90000000, 0)
	test.ExpectedFailure(t, err)

	// a 32bit access cannot start in the last three bytes of RAM
	test.ExpectedSuccess(t, mem.IsRAMAddress(0x817ffffc))
	test.ExpectedFailure(t, mem.IsRAMAddress(0x817ffffd))
}

func TestReadString(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.LoadImage([]byte("hello\x00world"), 0x80002000)
	test.ExpectedSuccess(t, err)

	// terminates at NUL
	s, err := mem.ReadString(0x80002000, 32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "hello")

	// capped at maxLen
	s, err = mem.ReadString(0x80002006, 3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "wor")

	// unprintable bytes are dotted out
	err = mem.LoadImage([]byte{'o', 'k', 0x01, 'o', 'k'}, 0x80003000)
	test.ExpectedSuccess(t, err)
	s, err = mem.ReadString(0x80003000, 32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "ok.ok")

	// a read that starts near the end of RAM stops at the end of RAM, even
	// with no NUL in sight and maxLen not yet reached
	end := uint32(0x80000000 + memorymap.MEM1Size)
	err = mem.LoadImage([]byte("abc"), end-3)
	test.ExpectedSuccess(t, err)
	s, err = mem.ReadString(end-3, 32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "abc")
}
