// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package resources locates the files used by the application. Resources are
// stored in a portable directory named ".gophersap" in the current working
// directory, if one exists. Otherwise, resources are stored in the user's
// configuration directory, as reported by os.UserConfigDir().
//
// The JoinPath() function should be used whenever a path to a resource is
// required. It creates any intermediate directories as necessary.
package resources
