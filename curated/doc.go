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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. Errorf() takes a pattern and placeholder values. The
// pattern is remembered and can be tested for later:
//
//	e := curated.Errorf("songloader: bad address (%s)", v)
//
//	if curated.Is(e, "songloader: bad address (%s)") {
//		...
//	}
//
// The Has() function checks whether a pattern occurs anywhere in a chain of
// curated errors. IsAny() returns true if the error was created by Errorf() at
// all. Errors from outside the project can be told apart from expected errors
// in this way.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. A function can therefore wrap an error from a sub-package
// with its own prefix without worrying whether the sub-package has already
// used the same prefix:
//
//	session: session: no song loaded
//
// is printed as
//
//	session: no song loaded
//
// Curated errors also work with errors.Is() and errors.As() from the standard
// library through the Unwrap() function, which returns the first wrapped error
// value, if there is one.
package curated
