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

// Package driver implements the calling conventions of the SAP player types.
//
// A Driver is created for the selected song by NewDriver(). The frame
// scheduler calls Init() once, Player() once per frame and Line() at the start
// of every scanline. For player types where the CPU runs continuously between
// calls to the player routine, FreeRunning() returns true and the scheduler
// executes instructions for the remainder of every scanline.
//
// Summary of the player types:
//
//	b	INIT with the song number in A. PLAYER every frame
//	c	PLAYER+3 with $70 in A and the MUSIC address in X/Y, then PLAYER+3
//		with the song number in X. PLAYER+6 every frame
//	d	INIT with the song number in A. the CPU then runs freely and PLAYER
//		is called every frame on top of the running program
//	m	as type b
//	s	INIT with the song number in A. the CPU then runs freely and the
//		byte at $45 is decremented every 78 scanlines if it is not zero
package driver
