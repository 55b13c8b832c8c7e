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

package songloader

// Sentinal error patterns. All errors returned by the songloader package are
// curated errors with one of these patterns.
const (
	LoadError       = "songloader: %v"
	NotSAP          = "songloader: not a SAP file"
	NoHeaderEnd     = "songloader: header is not terminated"
	NoType          = "songloader: TYPE directive is missing"
	UnsupportedType = "songloader: unsupported player type (%s)"
	BadDirective    = "songloader: bad %s directive: %v"
	MissingAddress  = "songloader: type %s requires a %s address"
	NoBlocks        = "songloader: no binary blocks"
	BadBlock        = "songloader: block %#04x-%#04x: end address is before start address"
	TruncatedBlock  = "songloader: truncated block at offset %d"
)
