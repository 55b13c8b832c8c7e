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

// Package comparison renders a song and compares the output with a reference
// recording of the same song. The reference can be a WAV or an MP3 file.
//
// The comparison session runs with its own environment, labelled
// "comparison", and renders at the sample rate of the reference recording.
// Both signals are reduced to mono and the DC offset is removed before the
// comparison is made. The result is the RMS of the difference between the two
// signals and the correlation coefficient.
//
// A correlation close to one means the emulation is faithful to the
// reference. Note that recordings made with a different emulator may have a
// different filtering and will never be a perfect match.
package comparison
