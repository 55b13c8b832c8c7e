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

// Package songloader is used to load SAP files ready for playback.
//
// A SAP file is a text header followed by one or more binary blocks. The
// header is a series of CR/LF terminated lines, the first of which must be
// "SAP". The header ends at the first 0xFF byte, which is also the beginning
// of the optional FF FF marker of the first binary block.
//
// Each binary block is a four byte little-endian header giving the first and
// last address of the block (inclusive), followed by the data.
//
// The Parse() function interprets SAP data that has already been read. The
// Loader type reads the data from a file or a URL. The simplest use of the
// Loader type:
//
//	ld := songloader.NewLoader("songs/Lasermania.sap")
//	err := ld.Load()
//
// The Session type in the hardware package accepts the Loader and calls
// Parse() on the data.
package songloader
