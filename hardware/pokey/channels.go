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

import "fmt"

type channel struct {
	Registers Registers

	// the channel number
	num int

	// decoded from the noise value in the AUDC register
	dist distortion

	// number of cycles until the next underflow. the counter never falls below
	// one because it is reloaded with the period on reaching zero
	counter int

	// the number of cycles between underflows. depends on AUDF, AUDCTL and
	// for linked channels on the AUDF of the other channel in the pair
	period int

	// output of the waveform before the volume is applied
	output uint8

	// two channels can be linked to create a high-pass filter. the filtered
	// field is true for channels 0 and 1 when the filter is enabled in AUDCTL
	// and the filter value is latched from the output when the filtering
	// channel underflows
	//
	// from 'Altirra Reference', page 107:
	//
	// "None of the AUDC3/4 bits on the high channel affect high-pass operation"
	filtered bool
	filter   uint8
}

func (ch *channel) String() string {
	return fmt.Sprintf("Ch%d: %s", ch.num, ch.Registers.String())
}

func (ch *channel) reset() {
	ch.Registers = Registers{}
	ch.dist = distortions[0]
	ch.output = 0
	ch.filtered = false
	ch.filter = 0
}

func (ch *channel) loadAUDF(data uint8) {
	// the counter continues as normal even though the frequency has changed.
	// the new period takes effect on the next reload
	ch.Registers.Freq = data
}

func (ch *channel) loadAUDC(data uint8) {
	ch.Registers.Noise = (data & 0xf0) >> 4
	ch.Registers.Volume = data & 0x0f
	ch.dist = distortions[ch.Registers.Noise]
}

// reload the counter with the current period
func (ch *channel) reload() {
	ch.counter = ch.period
}

// step the channel counter by one cycle. returns true if the counter
// underflowed
func (ch *channel) step() bool {
	ch.counter--
	if ch.counter > 0 {
		return false
	}
	ch.counter = ch.period
	return true
}

// clock the waveform generator. called whenever the channel's counter
// underflows
func (ch *channel) clock(poly *polynomials) {
	if ch.dist.poly5Gate && poly.bit5() != 0x01 {
		return
	}

	switch ch.dist.source {
	case sourceSquare:
		ch.output ^= 0x01
	case sourcePoly4:
		ch.output = poly.bit4()
	default:
		ch.output = poly.noise()
	}
}

// level is the volume contribution of the channel to the output of the chip.
// in the range 0 to 15
func (ch *channel) level() uint8 {
	// from 'Altirra Reference', page 105
	//
	// "Bit 4 enables volume-only mode. When set, the waveform output is
	// overridden and hardwired on at the output."
	if ch.dist.volumeOnly {
		return ch.Registers.Volume
	}
	if ch.filtered {
		return ((ch.output ^ ch.filter) & 0x01) * ch.Registers.Volume
	}
	return (ch.output & 0x01) * ch.Registers.Volume
}
