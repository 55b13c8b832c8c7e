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

// Package test bundles helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions fail with t.Fatalf() and should be used when
// the value being tested is required for the remainder of the test. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// Success and failure are judged according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// Note that nil is considered a success. This is because of how errors usually
// work in Go (nil to indicate no error).
//
// Every function accepts an optional list of tags which are prepended to any
// failure message. Tags are useful in table driven tests to identify the
// failing entry.
//
// The RingWriter type implements io.Writer and keeps only the most recent
// output. Useful for capturing log output.
package test
