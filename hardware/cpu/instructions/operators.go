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

package instructions

// Operator identifies the operation performed by an instruction. Many opcodes
// share the same operator and differ only in addressing mode.
type Operator int

// List of valid Operator values. Undocumented operators are in upper case and
// are all ordered after NOP.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	NOP
	LAX
	SAX
	DCP
	ISC
	SLO
	RLA
	SRE
	RRA
	ANC
	ASR
	ARR
	AXS
	SBC
	XAA
	LXA
	AHX
	SHX
	SHY
	TAS
	LAS
	KIL
)

var operatorNames = [...]string{
	"nop", "adc", "and", "asl", "bcc", "bcs", "beq", "bit", "bmi", "bne",
	"bpl", "brk", "bvc", "bvs", "clc", "cld", "cli", "clv", "cmp", "cpx",
	"cpy", "dec", "dex", "dey", "eor", "inc", "inx", "iny", "jmp", "jsr",
	"lda", "ldx", "ldy", "lsr", "ora", "pha", "php", "pla", "plp", "rol",
	"ror", "rti", "rts", "sbc", "sec", "sed", "sei", "sta", "stx", "sty",
	"tax", "tay", "tsx", "txa", "txs", "tya",
	"NOP", "LAX", "SAX", "DCP", "ISC", "SLO", "RLA", "SRE", "RRA", "ANC",
	"ASR", "ARR", "AXS", "SBC", "XAA", "LXA", "AHX", "SHX", "SHY", "TAS",
	"LAS", "KIL",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "unknown operator"
}
