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

	"github.com/jetsetilly/gophersap/hardware/memory/addresses"
)

// Registers of a single channel.
type Registers struct {
	// noise and volume come from the AUDCx registers. noise is the upper
	// 4-bits and the volume is the lower 4-bits
	Noise  uint8
	Volume uint8

	// frequency value comes from the AUDFx registers
	Freq uint8
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %02x ^ %04b", reg.Noise, reg.Freq, reg.Volume)
}

// Write implements the memory.Chip interface. The register is the low four
// bits of the address.
func (pk *Pokey) Write(reg uint8, data uint8) {
	switch reg & 0x0f {
	case addresses.AUDF1:
		pk.channels[0].loadAUDF(data)
		pk.updatePeriods()
	case addresses.AUDC1:
		pk.channels[0].loadAUDC(data)
	case addresses.AUDF2:
		pk.channels[1].loadAUDF(data)
		pk.updatePeriods()
	case addresses.AUDC2:
		pk.channels[1].loadAUDC(data)
	case addresses.AUDF3:
		pk.channels[2].loadAUDF(data)
		pk.updatePeriods()
	case addresses.AUDC3:
		pk.channels[2].loadAUDC(data)
	case addresses.AUDF4:
		pk.channels[3].loadAUDF(data)
		pk.updatePeriods()
	case addresses.AUDC4:
		pk.channels[3].loadAUDC(data)

	case addresses.AUDCTL:
		pk.loadAUDCTL(data)

	case addresses.STIMER:
		// from 'Altirra Reference', page 104
		//
		// "Writing any value to STIMER resets all four audio timers to their
		// AUDFx values"
		for i := range pk.channels {
			pk.channels[i].reload()
		}

	case addresses.IRQEN:
		// interrupts that are not enabled are acknowledged immediately
		pk.irqen = data
		pk.irqst &= data

	case addresses.SKCTL:
		// we're only interested in the reset bits of SKCTL
		pk.initState = data&0x03 == 0x00
		if pk.initState {
			pk.poly.ct = 0
		}
	}
}

// Read implements the memory.Chip interface. Registers not emulated read as
// 0xff.
func (pk *Pokey) Read(reg uint8) uint8 {
	switch reg & 0x0f {
	case addresses.RANDOM:
		if pk.initState {
			return 0xff
		}
		if pk.rnd != nil {
			return pk.rnd.Uint8()
		}
		return pk.poly.random()
	case addresses.IRQST:
		// bits are active low
		return ^pk.irqst
	}
	return 0xff
}

func (pk *Pokey) loadAUDCTL(data uint8) {
	pk.audctl = data
	pk.poly.prefer9bit = data&audctlPoly9bit == audctlPoly9bit

	pk.variant = variants[variantIndex(data)]
	if data&audctl15Khz == audctl15Khz {
		pk.base = base15Khz
	} else {
		pk.base = base64Khz
	}

	// the filter value is cleared when the high-pass is disabled so the output
	// of the channel is not inverted
	pk.channels[0].filtered = data&audctlFilter0 == audctlFilter0
	if !pk.channels[0].filtered {
		pk.channels[0].filter = 0
	}
	pk.channels[1].filtered = data&audctlFilter1 == audctlFilter1
	if !pk.channels[1].filtered {
		pk.channels[1].filter = 0
	}

	pk.updatePeriods()
}

func (pk *Pokey) updatePeriods() {
	var audf [4]uint8
	for i := range pk.channels {
		audf[i] = pk.channels[i].Registers.Freq
	}
	p := pk.variant.periods(audf, pk.base)
	for i := range pk.channels {
		pk.channels[i].period = p[i]
	}
}
