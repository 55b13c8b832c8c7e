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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersap/hardware/spec"
)

// RandomSource is the source of values read from the RANDOM register.
type RandomSource interface {
	Uint8() uint8
}

// Pokey represents a single POKEY chip.
type Pokey struct {
	channels [4]channel
	poly     polynomials

	// the last value written to AUDCTL and the values decoded from it
	audctl  uint8
	variant variant
	base    int

	// IRQ status bits are stored active high. the IRQST register is the
	// inverse of this value
	irqen uint8
	irqst uint8

	// the chip is in the initialisation state when both of the two low bits
	// of SKCTL are zero
	initState bool

	rnd RandomSource

	out output
}

// NewPokey is the preferred method of initialisation for the Pokey type. The
// clock is the speed of the CPU in Hz. The RandomSource can be nil, in which
// case RANDOM is read from the chip's own polynomial counters.
func NewPokey(clock int, sampleRate int, rnd RandomSource) *Pokey {
	pk := &Pokey{
		rnd: rnd,
	}
	for i := range pk.channels {
		pk.channels[i].num = i
	}
	pk.out.setRate(clock, sampleRate)
	pk.out.lowPass = true
	pk.Reset()
	return pk
}

// SetLowPass enables or disables the low-pass filter applied to the output.
func (pk *Pokey) SetLowPass(set bool) {
	pk.out.lowPass = set
}

// Reset chip to its power-on state. Any samples in the output ring are
// discarded.
func (pk *Pokey) Reset() {
	for i := range pk.channels {
		pk.channels[i].reset()
	}
	pk.poly.reset()
	pk.irqen = 0
	pk.irqst = 0
	pk.initState = false
	pk.loadAUDCTL(0)
	for i := range pk.channels {
		pk.channels[i].reload()
	}
	pk.out.reset()
}

func (pk *Pokey) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "AUDCTL: %08b [%s]", pk.audctl, pk.variant)
	for i := range pk.channels {
		s.WriteString("\n")
		s.WriteString(pk.channels[i].String())
	}
	return s.String()
}

// Step the chip by one CPU cycle.
func (pk *Pokey) Step() {
	if !pk.initState {
		pk.poly.step()
	}

	var level int
	for i := range pk.channels {
		if pk.channels[i].step() {
			pk.underflow(i)
		}
		level += int(pk.channels[i].level())
	}

	pk.out.accumulate(level)
}

// Tick the chip for a number of scanlines.
func (pk *Pokey) Tick(lines int) {
	for range lines * spec.ClksScanline {
		pk.Step()
	}
}

func (pk *Pokey) underflow(i int) {
	pk.channels[i].clock(&pk.poly)

	switch i {
	case 0:
		if !pk.variant.isLinked(1) {
			pk.timerIRQ()
		}
	case 1:
		// the pair acts as one timer when linked and the interrupt is raised
		// when the whole 16bit timer expires
		if pk.variant.isLinked(1) {
			pk.timerIRQ()
		}
	case 2:
		if pk.channels[0].filtered {
			pk.channels[0].filter = pk.channels[0].output
		}
	case 3:
		if pk.channels[1].filtered {
			pk.channels[1].filter = pk.channels[1].output
		}
	}
}

func (pk *Pokey) timerIRQ() {
	if pk.irqen&0x01 == 0x01 {
		pk.irqst |= 0x01
	}
}

// IRQ returns true if the chip is asserting the IRQ line.
func (pk *Pokey) IRQ() bool {
	return pk.irqst&pk.irqen != 0
}

// Available returns the number of samples waiting in the output ring.
func (pk *Pokey) Available() int {
	return pk.out.count
}

// Drain copies as many samples as possible from the output ring into the
// buffer. Returns the number of samples copied.
func (pk *Pokey) Drain(buf []int16) int {
	return pk.out.drain(buf)
}
