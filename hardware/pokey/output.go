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

package pokey

// RingSize is the number of samples the output ring can hold before the
// oldest samples are dropped.
const RingSize = 1 << 14

const ringMask = RingSize - 1

// the sum of the four channel levels is in the range 0 to 60. multiplying by
// 512 keeps the loudest sample within the range of an int16
const levelScale = 512

// coefficient of the one-pole low-pass filter, out of 256
const lowPassAlpha = 160

// output accumulates the level of the chip every cycle and produces a sample
// at the host sample rate
type output struct {
	// cycles per sample in 16.16 fixed point
	step uint64

	// progress towards the next sample in 16.16 fixed point
	phase uint64

	// levels summed since the last sample and the number of cycles summed
	acc    int
	accCt  int
	filter int32

	lowPass bool

	ring  [RingSize]int16
	head  int
	count int
}

func (o *output) setRate(clock int, sampleRate int) {
	o.step = (uint64(clock) << 16) / uint64(sampleRate)
}

func (o *output) reset() {
	o.phase = 0
	o.acc = 0
	o.accCt = 0
	o.filter = 0
	o.head = 0
	o.count = 0
}

// accumulate the level for one cycle
func (o *output) accumulate(level int) {
	o.acc += level
	o.accCt++
	o.phase += 1 << 16
	if o.phase >= o.step {
		o.phase -= o.step
		o.sample()
	}
}

func (o *output) sample() {
	v := int32(o.acc * levelScale / o.accCt)
	o.acc = 0
	o.accCt = 0

	if o.lowPass {
		o.filter += ((v - o.filter) * lowPassAlpha) >> 8
		v = o.filter
	}

	o.push(int16(v))
}

func (o *output) push(s int16) {
	o.ring[(o.head+o.count)&ringMask] = s
	if o.count == RingSize {
		o.head = (o.head + 1) & ringMask
		return
	}
	o.count++
}

func (o *output) drain(buf []int16) int {
	n := min(len(buf), o.count)
	for i := range n {
		buf[i] = o.ring[(o.head+i)&ringMask]
	}
	o.head = (o.head + n) & ringMask
	o.count -= n
	return n
}
