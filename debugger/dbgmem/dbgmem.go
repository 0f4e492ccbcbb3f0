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

// Package dbgmem is a front-end to the real machine memory. It accepts
// addresses in the forms a user might type them and uses the AddressInfo
// type for easier presentation.
package dbgmem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/hardware/memory/memorymap"
)

// DbgMem is how the debugger accesses the machine's memory.
type DbgMem struct {
	Mem *memory.Memory
}

// sentinel errors returned by Peek() and Poke().
var (
	PeekError = errors.New("cannot peek address")
	PokeError = errors.New("cannot poke address")
)

// GetAddressInfo resolves an address supplied as a uint32 or as a string.
// String addresses are hexadecimal with an optional 0x or $ prefix. A nil
// return means the address could not be resolved.
func (dbgmem DbgMem) GetAddressInfo(address any) *AddressInfo {
	ai := &AddressInfo{}

	switch address := address.(type) {
	case uint32:
		ai.Address = address
	case string:
		s := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(address), "$"), "0x")
		a, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return nil
		}
		ai.Address = uint32(a)
	default:
		panic(fmt.Sprintf("unsupported address type (%T)", address))
	}

	ai.MappedAddress, ai.Area = memorymap.MapAddress(ai.Address)

	return ai
}

// Peek returns the contents of the memory address, without triggering any
// side effects. The supplied address can be numeric or a string.
func (dbgmem DbgMem) Peek(address any) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PeekError, address)
	}

	var err error
	ai.Data, err = dbgmem.Mem.Read32(ai.Address)
	if err != nil {
		if errors.Is(err, memory.AddressError) {
			return nil, fmt.Errorf("%w: %v", PeekError, address)
		}
		return nil, err
	}

	ai.Peeked = true

	return ai, nil
}

// Poke writes a value to the specified address. The supplied address can be
// numeric or a string.
func (dbgmem DbgMem) Poke(address any, data uint32) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PokeError, address)
	}

	err := dbgmem.Mem.Write32(ai.Address, data)
	if err != nil {
		if errors.Is(err, memory.AddressError) {
			return nil, fmt.Errorf("%w: %v", PokeError, address)
		}
		return nil, err
	}

	ai.Data = data
	ai.Peeked = true

	return ai, nil
}

// PeekString reads a NUL terminated string of up to maxLen bytes from the
// specified address.
func (dbgmem DbgMem) PeekString(address any, maxLen int) (string, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil {
		return "", fmt.Errorf("%w: %v", PeekError, address)
	}

	s, err := dbgmem.Mem.ReadString(ai.Address, maxLen)
	if err != nil {
		return "", fmt.Errorf("%w: %v", PeekError, address)
	}

	return s, nil
}
