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

// ImageSize is the number of bytes in a memory image.
const ImageSize = 0x10000

// Image is the entire addressable memory of the 6502.
type Image [ImageSize]uint8

// Clear sets every byte in the image to zero.
func (img *Image) Clear() {
	*img = Image{}
}

// Copy data to the image at the origin address. Data that would extend beyond
// the end of the image is not copied. Returns the number of bytes copied.
func (img *Image) Copy(origin uint16, data []uint8) int {
	return copy(img[origin:], data)
}
