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

// Package cpubus defines how the CPU sees memory. Any type that implements
// the Memory interface can be attached to the CPU.
package cpubus

import "github.com/jetsetilly/gophersap/curated"

// Memory defines the operations for the memory system when accessed from the
// CPU. The SAP memory map is implemented by the memory.Memory type but tests
// are free to supply simpler implementations.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Addresses of the interrupt vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// AddressError is the pattern used for errors caused by accessing an address
// that the memory implementation can not service.
const AddressError = "cpubus: address error (%#04x)"

// NewAddressError is a convenience function for implementations of the
// Memory interface.
func NewAddressError(address uint16) error {
	return curated.Errorf(AddressError, address)
}
