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

package memory

import (
	"github.com/jetsetilly/gophersap/hardware/memory/addresses"
)

// Chip is a device with registers addressed by a four bit value.
type Chip interface {
	Read(reg uint8) uint8
	Write(reg uint8, data uint8)
}

// Antic implementations provide the raster information required by the VCOUNT
// and WSYNC registers.
type Antic interface {
	// the current scanline divided by two
	VCount() uint8

	// a write to WSYNC stalls the CPU until the end of the scanline
	WSync()
}

// Memory implements the cpubus.Memory interface for SAP playback.
type Memory struct {
	Image *Image

	pokey  [2]Chip
	stereo bool
	antic  Antic
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		Image: &Image{},
	}
}

// Plumb the memory mapped devices into the memory. The right chip is only
// used if stereo is true. Any of the devices can be nil, in which case the
// corresponding addresses will behave like RAM.
func (mem *Memory) Plumb(left Chip, right Chip, stereo bool, antic Antic) {
	mem.pokey[0] = left
	mem.pokey[1] = right
	mem.stereo = stereo
	mem.antic = antic
}

// Load copies the contents of the image into memory. The existing image is
// replaced entirely.
func (mem *Memory) Load(img *Image) {
	*mem.Image = *img
}

// chip returns the POKEY and register for the address. the chip will be nil
// if the address is not in the POKEY window
func (mem *Memory) chip(address uint16) (Chip, uint8) {
	if address < addresses.Pokey || address > addresses.PokeyTop {
		return nil, 0
	}
	if mem.stereo && address&0x10 == 0x10 {
		return mem.pokey[1], uint8(address & 0x0f)
	}
	return mem.pokey[0], uint8(address & 0x0f)
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if c, reg := mem.chip(address); c != nil {
		return c.Read(reg), nil
	}

	if address == addresses.VCOUNT && mem.antic != nil {
		return mem.antic.VCount(), nil
	}

	return mem.Image[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if c, reg := mem.chip(address); c != nil {
		c.Write(reg, data)
		return nil
	}

	if address == addresses.WSYNC && mem.antic != nil {
		mem.antic.WSync()
		return nil
	}

	mem.Image[address] = data
	return nil
}

// Peek returns the value in the image at the address. Memory mapped
// registers are not consulted.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Image[address]
}

// Poke sets the value in the image at the address. Memory mapped registers
// are not affected.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.Image[address] = data
}
