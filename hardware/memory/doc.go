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

// Package memory implements the memory map seen by the CPU during SAP
// playback. The map is a flat 64k of RAM (the Image type) with two windows of
// memory mapped I/O.
//
// The POKEY window occupies $D200 to $D2FF. The sixteen POKEY registers are
// mirrored throughout the window. For stereo songs, addresses with bit 4 set
// are routed to the second POKEY.
//
// Only the VCOUNT and WSYNC registers of the ANTIC are emulated. All other
// addresses in the ANTIC window behave like RAM.
//
// The Peek() and Poke() functions access the Image directly without routing
// to the memory mapped registers.
package memory
