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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the playback engine. The only consumer
// inside the engine is the RANDOM register of the POKEY.
//
// There are two functions that return random numbers:
//
// Rewindable() returns numbers based on the current position of the playback
// clock (frame, scanline and cycle). The number will always be the same for
// the same position and seed. Restarting a song therefore reproduces the same
// sequence of numbers.
//
// NoRewind() returns random numbers regardless of the playback position.
//
// If the same random numbers are required every single time the program is
// run then set ZeroSeed to true. This is useful for testing purposes.
package random
