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

// Package addresses contains the addresses of the memory mapped registers in
// the SAP memory map. The canonical symbol maps are used by the disassembly
// package to annotate disassembled player routines.
package addresses

// the base address of the POKEY registers. the second POKEY in a stereo
// configuration is found at StereoPokey
const (
	Pokey       = uint16(0xd200)
	StereoPokey = uint16(0xd210)
	PokeyTop    = uint16(0xd2ff)
)

// the ANTIC registers used by player routines
const (
	WSYNC  = uint16(0xd40a)
	VCOUNT = uint16(0xd40b)
)

// POKEY register offsets
const (
	AUDF1  = 0x00
	AUDC1  = 0x01
	AUDF2  = 0x02
	AUDC2  = 0x03
	AUDF3  = 0x04
	AUDC3  = 0x05
	AUDF4  = 0x06
	AUDC4  = 0x07
	AUDCTL = 0x08
	STIMER = 0x09
	RANDOM = 0x0a
	IRQEN  = 0x0e
	IRQST  = 0x0e
	SKCTL  = 0x0f
)

// CanonicalReadSymbols lists the readable registers along with the canonical
// names for those addresses.
var CanonicalReadSymbols = map[uint16]string{
	Pokey | RANDOM:       "RANDOM",
	Pokey | IRQST:        "IRQST",
	StereoPokey | RANDOM: "RANDOM2",
	StereoPokey | IRQST:  "IRQST2",
	VCOUNT:               "VCOUNT",
}

// CanonicalWriteSymbols lists the writable registers along with the
// canonical names for those addresses.
var CanonicalWriteSymbols = map[uint16]string{
	Pokey | AUDF1:  "AUDF1",
	Pokey | AUDC1:  "AUDC1",
	Pokey | AUDF2:  "AUDF2",
	Pokey | AUDC2:  "AUDC2",
	Pokey | AUDF3:  "AUDF3",
	Pokey | AUDC3:  "AUDC3",
	Pokey | AUDF4:  "AUDF4",
	Pokey | AUDC4:  "AUDC4",
	Pokey | AUDCTL: "AUDCTL",
	Pokey | STIMER: "STIMER",
	Pokey | IRQEN:  "IRQEN",
	Pokey | SKCTL:  "SKCTL",

	StereoPokey | AUDF1:  "AUDF1_2",
	StereoPokey | AUDC1:  "AUDC1_2",
	StereoPokey | AUDF2:  "AUDF2_2",
	StereoPokey | AUDC2:  "AUDC2_2",
	StereoPokey | AUDF3:  "AUDF3_2",
	StereoPokey | AUDC3:  "AUDC3_2",
	StereoPokey | AUDF4:  "AUDF4_2",
	StereoPokey | AUDC4:  "AUDC4_2",
	StereoPokey | AUDCTL: "AUDCTL_2",
	StereoPokey | STIMER: "STIMER_2",
	StereoPokey | IRQEN:  "IRQEN_2",
	StereoPokey | SKCTL:  "SKCTL_2",

	WSYNC: "WSYNC",
}

// Symbol returns the canonical name for the address, if there is one. The
// write argument selects between the read and write symbol maps.
func Symbol(address uint16, write bool) (string, bool) {
	if write {
		s, ok := CanonicalWriteSymbols[address]
		return s, ok
	}
	s, ok := CanonicalReadSymbols[address]
	return s, ok
}
