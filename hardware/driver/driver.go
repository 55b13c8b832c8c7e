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

package driver

import (
	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/hardware/cpu"
	"github.com/jetsetilly/gophersap/hardware/memory/cpubus"
	"github.com/jetsetilly/gophersap/songloader"
)

// Driver is the calling convention of a player type.
type Driver interface {
	// Init is called when a song is selected. the song number is zero
	// indexed
	Init(song int) error

	// Player is called once per frame
	Player() error

	// Line is called at the start of every scanline
	Line() error

	// FreeRunning returns true if the CPU should run between calls to the
	// player routine
	FreeRunning() bool
}

// UnsupportedType is the error pattern returned by NewDriver() for player
// types without a driver.
const UnsupportedType = "driver: unsupported player type (%s)"

// NewDriver returns the Driver for the player type in the metadata.
func NewDriver(md songloader.Metadata, mc *cpu.CPU, mem cpubus.Memory) (Driver, error) {
	switch md.Type {
	case songloader.TypeB, songloader.TypeM:
		return &typeB{md: md, mc: mc}, nil
	case songloader.TypeC:
		return &typeC{md: md, mc: mc}, nil
	case songloader.TypeD:
		return &typeD{md: md, mc: mc}, nil
	case songloader.TypeS:
		return &typeS{md: md, mc: mc, mem: mem}, nil
	}
	return nil, curated.Errorf(UnsupportedType, md.Type)
}

// call the routine at the address. OpcodeFault and Exhausted terminations are
// logged by the CPU and are not errors
func call(mc *cpu.CPU, address uint16, regs cpu.Regs) error {
	_, err := mc.RunSubroutine(address, regs)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

type typeB struct {
	md songloader.Metadata
	mc *cpu.CPU
}

func (d *typeB) Init(song int) error {
	if d.md.Init == 0 {
		return nil
	}
	return call(d.mc, d.md.Init, cpu.Regs{A: uint8(song)})
}

func (d *typeB) Player() error {
	return call(d.mc, d.md.Player, cpu.Regs{})
}

func (d *typeB) Line() error {
	return nil
}

func (d *typeB) FreeRunning() bool {
	return false
}

type typeC struct {
	md songloader.Metadata
	mc *cpu.CPU
}

func (d *typeC) Init(song int) error {
	err := call(d.mc, d.md.Player+3, cpu.Regs{
		A: 0x70,
		X: uint8(d.md.Music),
		Y: uint8(d.md.Music >> 8),
	})
	if err != nil {
		return err
	}
	return call(d.mc, d.md.Player+3, cpu.Regs{A: 0x00, X: uint8(song)})
}

func (d *typeC) Player() error {
	return call(d.mc, d.md.Player+6, cpu.Regs{})
}

func (d *typeC) Line() error {
	return nil
}

func (d *typeC) FreeRunning() bool {
	return false
}

type typeD struct {
	md songloader.Metadata
	mc *cpu.CPU
}

func (d *typeD) Init(song int) error {
	return call(d.mc, d.md.Init, cpu.Regs{A: uint8(song)})
}

// the player routine is entered as an interrupt on top of the running
// program, which resumes where it was interrupted. the routine ends with RTI
func (d *typeD) Player() error {
	if d.md.Player == 0 {
		return nil
	}
	ctx := d.mc.Save()
	_, err := d.mc.RunInterrupt(d.md.Player, cpu.Regs{A: ctx.A, X: ctx.X, Y: ctx.Y})
	d.mc.Restore(ctx)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

func (d *typeD) Line() error {
	return nil
}

func (d *typeD) FreeRunning() bool {
	return true
}

// address of the counter decremented by the type s driver
const typeSTimer = uint16(0x45)

// number of scanlines between decrements of the type s timer
const typeSInterval = 78

type typeS struct {
	md  songloader.Metadata
	mc  *cpu.CPU
	mem cpubus.Memory

	lines int
}

func (d *typeS) Init(song int) error {
	d.lines = 0
	return call(d.mc, d.md.Init, cpu.Regs{A: uint8(song)})
}

func (d *typeS) Player() error {
	return nil
}

func (d *typeS) Line() error {
	d.lines++
	if d.lines < typeSInterval {
		return nil
	}
	d.lines = 0

	v, err := d.mem.Read(typeSTimer)
	if err != nil {
		return curated.Errorf("driver: %v", err)
	}
	if v == 0 {
		return nil
	}
	if err := d.mem.Write(typeSTimer, v-1); err != nil {
		return curated.Errorf("driver: %v", err)
	}
	return nil
}

func (d *typeS) FreeRunning() bool {
	return true
}
