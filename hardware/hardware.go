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

// Package hardware is the container package for the emulated console. The
// memory subsystem is the only piece of hardware emulated so far - enough
// for the debugger to be useful against loaded memory images.
package hardware

import (
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/hardware/memory/memorymap"
	"github.com/gophercube/gophercube/imagefile"
)

// Machine is the collection of the emulated console's hardware.
type Machine struct {
	Mem *memory.Memory

	// the most recently attached image. nil if no image is attached
	img *imagefile.Image
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	return &Machine{
		Mem: memory.NewMemory(),
	}
}

// Reset the machine. If an image is attached it is reloaded into memory.
func (mch *Machine) Reset() error {
	mch.Mem.Reset()
	if mch.img != nil {
		return mch.Mem.LoadImage(mch.img.Data, memorymap.OriginCached)
	}
	return nil
}

// Attach an image to the machine, loading it into the base of main memory.
func (mch *Machine) Attach(img *imagefile.Image) error {
	mch.img = img
	return mch.Reset()
}

// Detach the current image, if any, and clear memory.
func (mch *Machine) Detach() {
	mch.img = nil
	mch.Mem.Reset()
}

// Image returns the currently attached image. nil if there is none.
func (mch *Machine) Image() *imagefile.Image {
	return mch.img
}
