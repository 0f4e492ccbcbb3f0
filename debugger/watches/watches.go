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

// Package watches is the store for user defined memory watches. A watch is
// nothing more than a label and an address - the current value of a watch
// is never kept here, it is read from the machine at display time.
//
// Watches are identified by their position in the list. Insertion order is
// display order and deleting an entry shifts later entries down. The
// generation counter increases on every structural change, allowing
// downstream projections to detect that an index they are holding may have
// gone stale.
package watches

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/logger"
)

// Watch is a single watch entry.
type Watch struct {
	Label   string
	Address uint32
}

func (wch Watch) String() string {
	if wch.Label == "" {
		return fmt.Sprintf("%08x", wch.Address)
	}
	return fmt.Sprintf("%08x %s", wch.Address, wch.Label)
}

// Watches is the ordered list of watch entries.
type Watches struct {
	watches    []Watch
	generation int
}

// NewWatches is the preferred method of initialisation for the Watches type.
func NewWatches() *Watches {
	wtc := &Watches{}
	wtc.clear()
	return wtc
}

func (wtc *Watches) clear() {
	wtc.watches = make([]Watch, 0, 10)
	wtc.generation++
}

// Clear all watches.
func (wtc *Watches) Clear() {
	wtc.clear()
}

// Len returns the number of watches in the list.
func (wtc *Watches) Len() int {
	return len(wtc.watches)
}

// Generation returns the current generation of the list. The value
// increases whenever entries are added, dropped or replaced wholesale.
func (wtc *Watches) Generation() int {
	return wtc.generation
}

// Watch returns the entry at position num. The second return value is false
// if no such entry exists.
func (wtc *Watches) Watch(num int) (Watch, bool) {
	if num < 0 || num >= len(wtc.watches) {
		return Watch{}, false
	}
	return wtc.watches[num], true
}

// Add a new watch to the end of the list.
func (wtc *Watches) Add(label string, address uint32) {
	wtc.watches = append(wtc.watches, Watch{Label: label, Address: address})
	wtc.generation++
}

// Drop the watch at position num. Later entries shift down by one.
func (wtc *Watches) Drop(num int) error {
	if num < 0 || num >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", num)
	}

	h := wtc.watches[:num]
	t := wtc.watches[num+1:]
	wtc.watches = make([]Watch, len(h)+len(t), cap(wtc.watches))
	copy(wtc.watches, h)
	copy(wtc.watches[len(h):], t)

	wtc.generation++

	return nil
}

// SetLabel changes the label of the watch at position num. The entry's
// position is unaffected.
func (wtc *Watches) SetLabel(num int, label string) error {
	if num < 0 || num >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", num)
	}
	wtc.watches[num].Label = label
	return nil
}

// SetAddress changes the address of the watch at position num. The entry's
// position is unaffected.
func (wtc *Watches) SetAddress(num int, address uint32) error {
	if num < 0 || num >= len(wtc.watches) {
		return fmt.Errorf("watch #%d is not defined", num)
	}
	wtc.watches[num].Address = address
	return nil
}

// ToStrings serialises every watch to one string per entry, in list order.
// The format is owned by this package; the only promise made about it is
// that FromStrings() understands it.
func (wtc *Watches) ToStrings() []string {
	s := make([]string, 0, len(wtc.watches))
	for _, wch := range wtc.watches {
		s = append(s, wch.String())
	}
	return s
}

// FromStrings replaces the entire list with entries deserialised from the
// supplied strings. Lines that can't be parsed are skipped with a log
// entry rather than abandoning the load.
func (wtc *Watches) FromStrings(lines []string) {
	wtc.clear()
	for _, l := range lines {
		p := strings.SplitN(strings.TrimSpace(l), " ", 2)
		address, err := strconv.ParseUint(p[0], 16, 32)
		if err != nil {
			logger.Logf("watches", "skipping unparseable watch entry (%s)", l)
			continue
		}

		label := ""
		if len(p) > 1 {
			label = strings.TrimSpace(p[1])
		}

		wtc.watches = append(wtc.watches, Watch{Label: label, Address: uint32(address)})
	}
}
