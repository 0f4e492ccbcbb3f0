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

// Package resources contains functions to prepare paths for gophercube
// resources: preferences, game settings, etc.
//
// The base path is the user's configuration directory as reported by the
// operating system. When a directory named "gophercube_userfiles" exists in
// the current working directory it is used instead - the portable option is
// useful during development and when running from removable media.
package resources
