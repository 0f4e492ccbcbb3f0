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

// Package govern defines the types that define the state of the emulation.
package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and is only ever seen before the first
// image has been attached.
//
// Starting is the transitional state during image attachment. Debugger
// surfaces should not react to it - the machine is not yet in a consistent
// state.
const (
	EmulatorStart State = iota
	Starting
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Starting:
		return "Starting"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}
	return ""
}

// Active is true when a machine is attached and in a consistent state,
// whether or not it is currently executing. Live memory inspection and
// per-game settings are only meaningful when the state is active.
func (s State) Active() bool {
	return s == Paused || s == Running
}
