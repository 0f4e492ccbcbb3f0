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

// Package memory implements the console's main memory. For the time being
// that means MEM1 only - the other pieces of hardware visible in the
// address space (embedded framebuffer, hardware registers, ARAM) are not
// yet emulated.
//
// All multi-byte access is big-endian, as seen by the emulated PowerPC.
package memory

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gophercube/gophercube/hardware/memory/memorymap"
)

// sentinel error returned when an address does not map to emulated RAM.
var AddressError = errors.New("address not mapped to RAM")

// Memory is the console's memory subsystem.
type Memory struct {
	mem1 []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		mem1: make([]byte, memorymap.MEM1Size),
	}
}

// Reset the contents of memory.
func (mem *Memory) Reset() {
	for i := range mem.mem1 {
		mem.mem1[i] = 0
	}
}

// IsRAMAddress returns true if the effective address maps to main memory.
// The last three bytes of RAM cannot start a 32bit access and are reported
// as not being RAM addresses.
func (mem *Memory) IsRAMAddress(address uint32) bool {
	offset, area := memorymap.MapAddress(address)
	return area == memorymap.MEM1 && int(offset)+4 <= len(mem.mem1)
}

// Read32 returns the 32bit value at the effective address.
func (mem *Memory) Read32(address uint32) (uint32, error) {
	if !mem.IsRAMAddress(address) {
		return 0, fmt.Errorf("%w: %08x", AddressError, address)
	}
	offset, _ := memorymap.MapAddress(address)
	return binary.BigEndian.Uint32(mem.mem1[offset:]), nil
}

// Write32 writes a 32bit value to the effective address.
func (mem *Memory) Write32(address uint32, value uint32) error {
	if !mem.IsRAMAddress(address) {
		return fmt.Errorf("%w: %08x", AddressError, address)
	}
	offset, _ := memorymap.MapAddress(address)
	binary.BigEndian.PutUint32(mem.mem1[offset:], value)
	return nil
}

// ReadString reads up to maxLen bytes starting at the effective address,
// stopping at the first NUL byte or at the end of RAM, whichever comes
// first. Bytes that aren't printable ASCII are replaced with a dot, which
// keeps the result safe for display.
func (mem *Memory) ReadString(address uint32, maxLen int) (string, error) {
	offset, area := memorymap.MapAddress(address)
	if area != memorymap.MEM1 {
		return "", fmt.Errorf("%w: %08x", AddressError, address)
	}

	s := make([]byte, 0, maxLen)
	for i := 0; i < maxLen && int(offset)+i < len(mem.mem1); i++ {
		b := mem.mem1[offset+uint32(i)]
		if b == 0x00 {
			break
		}
		if b < 0x20 || b > 0x7e {
			b = '.'
		}
		s = append(s, b)
	}

	return string(s), nil
}

// LoadImage copies data into memory at the effective address. Data that
// would extend past the end of RAM is an error and nothing is copied.
func (mem *Memory) LoadImage(data []byte, address uint32) error {
	offset, area := memorymap.MapAddress(address)
	if area != memorymap.MEM1 {
		return fmt.Errorf("%w: %08x", AddressError, address)
	}
	if int(offset)+len(data) > len(mem.mem1) {
		return fmt.Errorf("image too large for RAM (%d bytes at %08x)", len(data), address)
	}
	copy(mem.mem1[offset:], data)
	return nil
}
