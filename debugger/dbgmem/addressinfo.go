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

package dbgmem

import (
	"fmt"
	"strings"

	"github.com/gophercube/gophercube/hardware/memory/memorymap"
)

// AddressInfo is the result of resolving an address through the DbgMem
// type. It ties the effective address to the memory area it maps to and,
// after a Peek() or Poke(), to the data at that address.
type AddressInfo struct {
	Address       uint32
	MappedAddress uint32
	Area          memorymap.Area

	// the data at the address. valid only if Peeked is true
	Data   uint32
	Peeked bool
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08x (%s)", ai.Address, ai.Area))
	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %08x", ai.Data))
	}
	return s.String()
}
