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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Coords identifies a position in the playback. The number of cycles in a
// scanline and scanlines in a frame are fixed so the three values can be
// combined into a single value.
type Coords struct {
	Frame    int
	Scanline int
	Cycle    int
}

// Clock implementations report the current playback position.
type Clock interface {
	GetCoords() Coords
}

// Random is a random number generator that is sensitive to time within the
// playback.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// generator for NoRewind(). created on first use
	norewind *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case Rewindable() behaves as though the
// playback is always at the very beginning.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) seed() uint64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

// translate playback coordinates into a single value
func (rnd *Random) coordsSum() uint64 {
	if rnd.clock == nil {
		return 0
	}
	c := rnd.clock.GetCoords()
	return uint64(c.Frame)<<24 | uint64(c.Scanline)<<12 | uint64(c.Cycle)
}

// Rewindable returns a number in the range [0, n) that is determined by the
// current playback position and the seed.
func (rnd *Random) Rewindable(n int) int {
	r := rand.New(rand.NewPCG(rnd.seed(), rnd.coordsSum()))
	return r.IntN(n)
}

// NoRewind returns a number in the range [0, n) without regard for the
// playback position.
func (rnd *Random) NoRewind(n int) int {
	if rnd.norewind == nil {
		rnd.norewind = rand.New(rand.NewPCG(rnd.seed(), 0x5eed))
	}
	return rnd.norewind.IntN(n)
}

// Uint8 returns a random byte for the current playback position. It satisfies
// the random source interface required by the POKEY.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.Rewindable(256))
}
