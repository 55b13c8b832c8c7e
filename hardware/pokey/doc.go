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

// Package pokey implements the audio generation of the POKEY. Two instances
// are used by a session when the song is in stereo.
//
// The chip is stepped once per CPU cycle. Tick() is a convenience function
// that steps the chip for a whole number of scanlines, which is how the frame
// scheduler drives the chip.
//
// Each channel's divider is modelled as a counter of CPU cycles. The counter
// is reloaded with the channel's period on underflow and the period depends
// on the frequency register, the clock selection and the linking of channels
// in AUDCTL. There are four ways of linking each pair of channels and so
// sixteen variants in total. The variants are decoded once, in init().
//
// Information about POKEY is taken from chapter 5 of the Altirra Hardware
// Reference Manual:
//
// https://www.virtualdub.org/downloads/Altirra%20Hardware%20Reference%20Manual.pdf
//
// References to this document in comments will be abbreviated to 'Altirra Reference'
//
// The output of the chip is a stream of signed 16 bit samples at the sample
// rate given to NewPokey(). Samples are collected in a ring buffer of 16384
// entries and are removed with the Drain() function. The oldest samples are
// dropped if the ring is not drained quickly enough.
package pokey
