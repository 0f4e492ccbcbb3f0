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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// A mode is a special command line argument that when specified, puts the
// program into a different mode of operation. The go command is a good
// example: build, doc, get, test, etc. each require a different set of flags
// and expected arguments. Sub-modes are declared with the AddSubModes()
// function and comparisons are case insensitive:
//
//	md.AddSubModes("debug", "version")
//
// Subsequent calls to Parse() will process flags in the normal way but will
// also check to see if the first argument after the flags is one of these
// modes. The selected mode is returned by the Mode() function. After a mode
// has been selected, NewMode() prepares the Modes struct for another call to
// Parse(), which will consume the flags for that mode. Modes can be chained
// together as deep as required.
package modalflag
