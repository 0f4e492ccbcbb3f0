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

// Package prefs facilitates the storage of preference values alongside the
// live representation of those values.
//
// Preference values are declared as one of the exported types, Bool, String
// or Int, and registered with a Disk instance against a unique key. The
// Disk instance can then save and load all registered values to and from a
// single file.
//
// Many Disk instances can use the same file. Saving through one instance
// will not clobber the keys registered with another.
package prefs
