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

// Package disassembly produces a listing of the 6502 code in a loaded SAP
// file.
//
// The FromSession() function follows the flow of the program from the entry
// points of the player type (the INIT and PLAYER addresses, or the PLAYER+3
// and PLAYER+6 addresses for type c). Entries reached this way are "blessed".
// The Linear() function meanwhile decodes every byte in a range as though it
// were the start of an instruction.
//
// Operands that refer to the POKEY or ANTIC registers are annotated with the
// canonical name of the register.
package disassembly
