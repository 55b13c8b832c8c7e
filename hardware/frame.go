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

package hardware

import (
	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/hardware/cpu"
	"github.com/jetsetilly/gophersap/hardware/pokey"
	"github.com/jetsetilly/gophersap/hardware/spec"
)

// runFrame runs the scanlines between calls to the player routine. with
// standard timing the player routine is called on the first scanline of the
// vertical blank. with the FASTPLAY directive it is called on the first
// scanline.
//
// the period can be longer than the output ring can hold so runFrame returns
// early once the ring is half full. the next call resumes the period where it
// left off
func (ses *Session) runFrame() error {
	period := ses.spec.Scanlines
	playerLine := spec.ActiveScanlines
	if ses.md.FastPlay > 0 {
		period = ses.md.FastPlay
		playerLine = 0
	}

	for ses.periodLine < period {
		if err := ses.runLine(ses.periodLine == playerLine); err != nil {
			return err
		}
		ses.periodLine++

		if ses.Pokey[0].Available() >= pokey.RingSize/2 {
			break
		}
	}

	if ses.periodLine >= period {
		ses.periodLine = 0
	}

	return nil
}

// runLine runs a single scanline. the CPU runs first (if the player type
// requires it) and then the chips are ticked
func (ses *Session) runLine(player bool) error {
	ses.wsync = false

	if player {
		if err := ses.driver.Player(); err != nil {
			return curated.Errorf("session: %v", err)
		}
	}

	if err := ses.driver.Line(); err != nil {
		return curated.Errorf("session: %v", err)
	}

	if ses.driver.FreeRunning() {
		if err := ses.runCPU(); err != nil {
			return curated.Errorf("session: %v", err)
		}
	}

	ses.Pokey[0].Tick(1)
	if ses.md.Stereo {
		ses.Pokey[1].Tick(1)
	}

	// cycles executed beyond the end of the scanline are carried into the
	// next scanline
	ses.cycle -= spec.ClksScanline
	if ses.cycle < 0 || ses.wsync || ses.CPU.Parked() || ses.CPU.Killed {
		ses.cycle = 0
	}

	ses.lines++
	ses.scanline = ses.lines % ses.spec.Scanlines
	ses.frame = ses.lines / ses.spec.Scanlines

	return nil
}

// runCPU executes instructions until the end of the scanline. a parked or
// killed CPU executes nothing but a parked CPU can still service an interrupt
func (ses *Session) runCPU() error {
	if ses.Pokey[0].IRQ() || (ses.md.Stereo && ses.Pokey[1].IRQ()) {
		taken, err := ses.CPU.IRQ()
		if err != nil {
			return err
		}
		if taken {
			ses.cycle += cpu.InterruptCycles
		}
	}

	for ses.cycle < spec.ClksScanline && !ses.wsync {
		if ses.CPU.Parked() || ses.CPU.Killed {
			return nil
		}
		n, err := ses.CPU.Step()
		if err != nil {
			return err
		}
		ses.cycle += n
	}

	return nil
}
