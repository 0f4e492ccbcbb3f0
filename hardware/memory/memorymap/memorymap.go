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

// Package memorymap understands the address layout of the console. Its
// MapAddress() function converts an effective address, as seen by the
// emulated CPU, into an offset inside a named memory area.
//
// Main memory (MEM1) is visible through two mirrors: the cached window at
// 0x80000000 and the uncached window at 0xc0000000. Both map to the same
// 24MB of physical RAM.
package memorymap

// Area represents the different areas of the address space.
type Area int

// The different memory areas. Undefined addresses are those that map to no
// emulated hardware at all.
const (
	Undefined Area = iota
	MEM1
)

func (a Area) String() string {
	switch a {
	case MEM1:
		return "MEM1"
	}
	return "undefined"
}

// The size of physical main memory.
const MEM1Size = 0x01800000 // 24MB

// The two effective-address windows onto MEM1.
const (
	OriginCached   = 0x80000000
	MemtopCached   = OriginCached + MEM1Size - 1
	OriginUncached = 0xc0000000
	MemtopUncached = OriginUncached + MEM1Size - 1
)

// MapAddress translates an effective address to an offset inside the
// returned Area. Addresses that map to no emulated memory return the
// Undefined area; the offset is meaningless in that case.
func MapAddress(address uint32) (uint32, Area) {
	switch {
	case address >= OriginCached && address <= MemtopCached:
		return address - OriginCached, MEM1
	case address >= OriginUncached && address <= MemtopUncached:
		return address - OriginUncached, MEM1
	}
	return address, Undefined
}
