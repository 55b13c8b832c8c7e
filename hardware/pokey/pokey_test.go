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
	"slices"
	"testing"

	"github.com/jetsetilly/gophersap/hardware/memory/addresses"
	"github.com/jetsetilly/gophersap/hardware/spec"
	"github.com/jetsetilly/gophersap/test"
)

type fixedRandom uint8

func (r fixedRandom) Uint8() uint8 {
	return uint8(r)
}

func newPokey(lowPass bool) *Pokey {
	pk := NewPokey(spec.PAL.CPUClock, 44100, nil)
	pk.SetLowPass(lowPass)
	return pk
}

func drainAll(pk *Pokey) []int16 {
	buf := make([]int16, RingSize)
	n := pk.Drain(buf)
	return buf[:n]
}

func TestDistortionTable(t *testing.T) {
	test.ExpectEquality(t, distortions[0x0], distortion{poly5Gate: true, source: sourceNoise})
	test.ExpectEquality(t, distortions[0x8], distortion{source: sourceNoise})
	test.ExpectEquality(t, distortions[0xa], distortion{source: sourceSquare})
	test.ExpectEquality(t, distortions[0xe], distortion{source: sourceSquare})
	test.ExpectEquality(t, distortions[0xc], distortion{source: sourcePoly4})
	test.ExpectEquality(t, distortions[0x4], distortion{poly5Gate: true, source: sourcePoly4})
	test.ExpectEquality(t, distortions[0x2], distortion{poly5Gate: true, source: sourceSquare})
	test.ExpectEquality(t, distortions[0x1].volumeOnly, true)
	test.ExpectEquality(t, distortions[0xb].volumeOnly, true)
}

func TestLinkVariants(t *testing.T) {
	test.ExpectEquality(t, variantIndex(0x00), 0)
	test.ExpectEquality(t, variantIndex(0x50), 0x03)
	test.ExpectEquality(t, variantIndex(0x28), 0x0c)
	test.ExpectEquality(t, variantIndex(0xff), 0x0f)

	test.ExpectEquality(t, variants[0x00].pairs, [2]linkMode{linkNone, linkNone})
	test.ExpectEquality(t, variants[0x01].pairs, [2]linkMode{linkFast, linkNone})
	test.ExpectEquality(t, variants[0x02].pairs, [2]linkMode{link16, linkNone})
	test.ExpectEquality(t, variants[0x0f].pairs, [2]linkMode{link16Fast, link16Fast})
	test.ExpectEquality(t, variants[0x06].pairs, [2]linkMode{link16, linkFast})

	audf := [4]uint8{0x10, 0x02, 0x20, 0x03}

	p := variants[0x00].periods(audf, base64Khz)
	test.ExpectEquality(t, p, [4]int{17 * 28, 3 * 28, 33 * 28, 4 * 28})

	p = variants[0x00].periods(audf, base15Khz)
	test.ExpectEquality(t, p, [4]int{17 * 114, 3 * 114, 33 * 114, 4 * 114})

	p = variants[variantIndex(0x40|0x20)].periods(audf, base64Khz)
	test.ExpectEquality(t, p, [4]int{0x10 + 4, 3 * 28, 0x20 + 4, 4 * 28})

	p = variants[variantIndex(0x10|0x08)].periods(audf, base64Khz)
	test.ExpectEquality(t, p, [4]int{256 * 28, 0x0211 * 28, 256 * 28, 0x0321 * 28})

	p = variants[variantIndex(0x50|0x28)].periods(audf, base64Khz)
	test.ExpectEquality(t, p, [4]int{256, 0x0210 + 7, 256, 0x0320 + 7})

	test.ExpectSuccess(t, variants[0x02].isLinked(1))
	test.ExpectFailure(t, variants[0x02].isLinked(0))
	test.ExpectFailure(t, variants[0x02].isLinked(3))
	test.ExpectSuccess(t, variants[0x08].isLinked(3))
}

func TestRegisterDecode(t *testing.T) {
	pk := newPokey(false)
	pk.Write(addresses.AUDF2, 0x34)
	pk.Write(addresses.AUDC2, 0xa7)
	test.ExpectEquality(t, pk.channels[1].Registers, Registers{Noise: 0x0a, Volume: 0x07, Freq: 0x34})
	test.ExpectEquality(t, pk.channels[1].period, 0x35*base64Khz)

	pk.Write(addresses.AUDCTL, audctl15Khz|audctlPoly9bit|audctlFilter0)
	test.ExpectEquality(t, pk.base, base15Khz)
	test.ExpectSuccess(t, pk.poly.prefer9bit)
	test.ExpectSuccess(t, pk.channels[0].filtered)
	test.ExpectFailure(t, pk.channels[1].filtered)
	test.ExpectEquality(t, pk.channels[1].period, 0x35*base15Khz)

	// the register is taken from the low nibble only
	pk.Write(0x12, 0x99)
	test.ExpectEquality(t, pk.channels[1].Registers.Freq, 0x99)

	// registers that are not emulated read as 0xff
	test.ExpectEquality(t, pk.Read(addresses.AUDF1), 0xff)
	test.ExpectEquality(t, pk.Read(addresses.SKCTL), 0xff)
}

func TestSilence(t *testing.T) {
	pk := newPokey(true)
	pk.Tick(spec.PAL.Scanlines)

	s := drainAll(pk)
	test.ExpectApproximate(t, float64(len(s)), 884.4, 0.01)
	for i, v := range s {
		if v != 0 {
			t.Fatalf("sample %d is not silent: %d", i, v)
		}
	}
}

func TestVolumeOnly(t *testing.T) {
	pk := newPokey(false)
	pk.Write(addresses.AUDC1, 0x1f)
	pk.Write(addresses.AUDC3, 0x1f)
	pk.Tick(10)

	s := drainAll(pk)
	test.ExpectInequality(t, len(s), 0)
	for i, v := range s {
		if v != 30*levelScale {
			t.Fatalf("sample %d is not at full volume: %d", i, v)
		}
	}
}

func TestSquareWave(t *testing.T) {
	pk := newPokey(false)

	// a slow square wave. a period of 256 * 114 cycles is longer than a
	// sample so there will be samples at both extremes
	pk.Write(addresses.AUDCTL, audctl15Khz)
	pk.Write(addresses.AUDF1, 0xff)
	pk.Write(addresses.AUDC1, 0xa8)
	pk.Write(addresses.STIMER, 0x00)
	pk.Tick(spec.PAL.Scanlines)

	var low, high int
	for _, v := range drainAll(pk) {
		switch v {
		case 0:
			low++
		case 8 * levelScale:
			high++
		}
	}
	test.ExpectInequality(t, low, 0)
	test.ExpectInequality(t, high, 0)
}

func TestLowPass(t *testing.T) {
	pk := newPokey(true)
	pk.Write(addresses.AUDC1, 0x1f)
	pk.Tick(1)
	s := drainAll(pk)

	// output rises towards the level without overshooting
	test.ExpectInequality(t, s[0], 15*levelScale)
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] || s[i] > 15*levelScale {
			t.Fatalf("low-pass output is not rising smoothly at sample %d", i)
		}
	}

	// and back down to exact silence
	pk.Write(addresses.AUDC1, 0x00)
	pk.Tick(spec.PAL.Scanlines)
	s = drainAll(pk)
	test.ExpectEquality(t, s[len(s)-1], 0)
}

func TestTimerIRQ(t *testing.T) {
	pk := newPokey(false)
	test.ExpectFailure(t, pk.IRQ())
	test.ExpectEquality(t, pk.Read(addresses.IRQST), 0xff)

	pk.Write(addresses.IRQEN, 0x01)
	pk.Write(addresses.AUDF1, 0x00)
	pk.Write(addresses.STIMER, 0x00)

	for range base64Khz - 1 {
		pk.Step()
	}
	test.ExpectFailure(t, pk.IRQ())
	pk.Step()
	test.ExpectSuccess(t, pk.IRQ())
	test.ExpectEquality(t, pk.Read(addresses.IRQST), 0xfe)

	// acknowledge by disabling the interrupt
	pk.Write(addresses.IRQEN, 0x00)
	test.ExpectFailure(t, pk.IRQ())
	test.ExpectEquality(t, pk.Read(addresses.IRQST), 0xff)

	// interrupt is not raised when not enabled
	for range base64Khz * 4 {
		pk.Step()
	}
	test.ExpectFailure(t, pk.IRQ())
}

func TestLinkedTimerIRQ(t *testing.T) {
	pk := newPokey(false)
	pk.Write(addresses.AUDCTL, audctlFast0|audctlLink01)
	pk.Write(addresses.AUDF1, 0x00)
	pk.Write(addresses.AUDF2, 0x01)
	pk.Write(addresses.IRQEN, 0x01)
	pk.Write(addresses.STIMER, 0x00)

	// the low channel underflows after 256 cycles but it is the expiry of the
	// 16bit timer that raises the interrupt
	for range 256 {
		pk.Step()
	}
	test.ExpectFailure(t, pk.IRQ())
	for range 7 {
		pk.Step()
	}
	test.ExpectSuccess(t, pk.IRQ())
}

func TestSTIMER(t *testing.T) {
	pk := newPokey(false)
	pk.Write(addresses.AUDF1, 0x09)
	pk.Write(addresses.STIMER, 0x00)
	test.ExpectEquality(t, pk.channels[0].counter, 10*base64Khz)
	for range 5 {
		pk.Step()
	}
	test.ExpectEquality(t, pk.channels[0].counter, 10*base64Khz-5)
	pk.Write(addresses.STIMER, 0x00)
	test.ExpectEquality(t, pk.channels[0].counter, 10*base64Khz)
}

func TestRandom(t *testing.T) {
	pk := NewPokey(spec.PAL.CPUClock, 44100, fixedRandom(0x42))
	test.ExpectEquality(t, pk.Read(addresses.RANDOM), 0x42)

	// initialisation state
	pk.Write(addresses.SKCTL, 0x00)
	test.ExpectEquality(t, pk.Read(addresses.RANDOM), 0xff)
	pk.Write(addresses.SKCTL, 0x03)
	test.ExpectEquality(t, pk.Read(addresses.RANDOM), 0x42)

	// without a random source the value comes from the polynomial counters
	// and is the same for identical chips
	a := newPokey(false)
	b := newPokey(false)
	a.Tick(3)
	b.Tick(3)
	test.ExpectEquality(t, a.Read(addresses.RANDOM), b.Read(addresses.RANDOM))
}

func TestHighPass(t *testing.T) {
	pk := newPokey(false)

	// channel 0 outputs a constant high with the square wave held by a
	// long period. channel 2 clocks the filter quickly
	pk.Write(addresses.AUDC1, 0xaf)
	pk.channels[0].output = 0x01
	pk.Write(addresses.AUDCTL, audctlFilter0)
	pk.Write(addresses.AUDF1, 0xff)
	pk.Write(addresses.AUDF3, 0x00)
	pk.Write(addresses.STIMER, 0x00)

	test.ExpectEquality(t, pk.channels[0].level(), 15)
	for range base64Khz {
		pk.Step()
	}

	// the filter has latched the output and the channel is silenced
	test.ExpectEquality(t, pk.channels[0].filter, 0x01)
	test.ExpectEquality(t, pk.channels[0].level(), 0)

	// disabling the filter restores the output
	pk.Write(addresses.AUDCTL, 0x00)
	test.ExpectEquality(t, pk.channels[0].level(), 15)
}

func TestRing(t *testing.T) {
	var o output
	for i := range RingSize + 10 {
		o.push(int16(i))
	}
	test.ExpectEquality(t, o.count, RingSize)

	buf := make([]int16, 4)
	test.ExpectEquality(t, o.drain(buf), 4)
	test.ExpectSuccess(t, slices.Equal(buf, []int16{10, 11, 12, 13}))
	test.ExpectEquality(t, o.count, RingSize-4)

	// wrap around
	for i := range 4 {
		o.push(int16(-i))
	}
	buf = make([]int16, RingSize)
	n := o.drain(buf)
	test.ExpectEquality(t, n, RingSize)
	test.ExpectEquality(t, buf[n-1], -3)
	test.ExpectEquality(t, buf[0], 14)
	test.ExpectEquality(t, o.count, 0)
}

func TestReset(t *testing.T) {
	pk := newPokey(false)
	pk.Write(addresses.AUDC1, 0x1f)
	pk.Write(addresses.AUDCTL, 0xff)
	pk.Write(addresses.IRQEN, 0x01)
	pk.Tick(1)
	pk.Reset()
	test.ExpectEquality(t, pk.Available(), 0)
	test.ExpectEquality(t, pk.audctl, 0)
	test.ExpectEquality(t, pk.channels[0].Registers, Registers{})
	test.ExpectFailure(t, pk.IRQ())
}
