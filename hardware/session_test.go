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

package hardware_test

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/environment"
	"github.com/jetsetilly/gophersap/hardware"
	"github.com/jetsetilly/gophersap/hardware/memory/addresses"
	"github.com/jetsetilly/gophersap/songloader"
	"github.com/jetsetilly/gophersap/test"
)

// newSession creates a session with a normalised environment. preferences
// are kept in a temporary directory
func newSession(t *testing.T) *hardware.Session {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gophersap", 0700))

	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true

	ses, err := hardware.NewSession(env)
	test.DemandSuccess(t, err)
	return ses
}

// sap creates a loader for a SAP file with a single binary block
func sap(header string, origin uint16, data ...uint8) songloader.Loader {
	end := origin + uint16(len(data)) - 1
	d := []byte("SAP\r\n" + header)
	d = append(d, 0xff, 0xff, uint8(origin), uint8(origin>>8), uint8(end), uint8(end>>8))
	d = append(d, data...)
	return songloader.NewLoaderFromData("test", d)
}

// code places the program fragments at their addresses in a single block
// starting at 0x2000
func code(fragments map[uint16][]uint8) []uint8 {
	b := make([]uint8, 0x1100)
	for a, f := range fragments {
		copy(b[a-0x2000:], f)
	}
	return b
}

func render(t *testing.T, ses *hardware.Session, n int) []int16 {
	t.Helper()
	buf := make([]int16, n*2)
	test.DemandSuccess(t, ses.RenderBuffer(buf, n))
	return buf
}

func silent(buf []int16) bool {
	for _, v := range buf {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestMinimalSong(t *testing.T) {
	ses := newSession(t)

	md, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nMUSIC 3000\r\n", 0x2000, 0x60))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Songs, 1)

	test.DemandSuccess(t, ses.SelectSong(md.DefSong))
	buf := render(t, ses, 256)
	test.ExpectSuccess(t, silent(buf))
	test.ExpectEquality(t, ses.State(), hardware.SongSelected)
}

func TestStateMachine(t *testing.T) {
	ses := newSession(t)
	test.ExpectEquality(t, ses.State(), hardware.Idle)

	buf := make([]int16, 32)
	err := ses.RenderBuffer(buf, 16)
	test.ExpectSuccess(t, curated.Is(err, hardware.NotLoaded))
	err = ses.SelectSong(0)
	test.ExpectSuccess(t, curated.Is(err, hardware.NotLoaded))

	// a failed load leaves the session as it was
	_, err = ses.Load(songloader.NewLoaderFromData("bad", []byte("NOT A SAP FILE")))
	test.ExpectSuccess(t, curated.Is(err, songloader.NotSAP))
	test.ExpectEquality(t, ses.State(), hardware.Idle)

	_, err = ses.Load(sap("TYPE B\r\nPLAYER 2000\r\n", 0x2000, 0x60))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ses.State(), hardware.Loaded)

	err = ses.RenderBuffer(buf, 16)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoSong))

	test.DemandSuccess(t, ses.SelectSong(0))
	test.ExpectEquality(t, ses.State(), hardware.SongSelected)

	err = ses.RenderBuffer(buf, 17)
	test.ExpectSuccess(t, curated.Is(err, hardware.ShortBuffer))

	test.DemandSuccess(t, ses.RenderBuffer(buf, 16))
	test.ExpectEquality(t, ses.State(), hardware.SongSelected)
}

func TestSongSelection(t *testing.T) {
	ses := newSession(t)

	// INIT stores the song number at $80
	prg := code(map[uint16][]uint8{
		0x2000: {0x60},
		0x2100: {0x85, 0x80, 0x60},
	})
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nINIT 2100\r\nSONGS 3\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, ses.SelectSong(4))
	test.ExpectEquality(t, ses.Song(), 1)
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x01)

	test.DemandSuccess(t, ses.SelectSong(-1))
	test.ExpectEquality(t, ses.Song(), 2)
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x02)
}

func TestToneMono(t *testing.T) {
	ses := newSession(t)

	// INIT sets up a square wave on channel 1 of the second chip's address
	// range. in mono the address is mirrored to the first chip
	prg := code(map[uint16][]uint8{
		0x2000: {0x60},
		0x2100: {
			0xa9, 0x10, 0x8d, 0x10, 0xd2, // LDA #$10; STA $D210
			0xa9, 0xaf, 0x8d, 0x11, 0xd2, // LDA #$AF; STA $D211
			0x60,
		},
	})
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nINIT 2100\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	buf := render(t, ses, 2048)
	test.ExpectFailure(t, silent(buf))
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("mono output differs between channels at frame %d", i/2)
		}
	}
}

func TestStereo(t *testing.T) {
	ses := newSession(t)

	// volume-only output on the first chip. the second chip is silent
	prg := code(map[uint16][]uint8{
		0x2000: {0x60},
		0x2100: {0xa9, 0x1f, 0x8d, 0x01, 0xd2, 0x60}, // LDA #$1F; STA $D201
	})
	md, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nINIT 2100\r\nSTEREO\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, md.Stereo)
	test.DemandSuccess(t, ses.SelectSong(0))

	buf := render(t, ses, 1024)
	for i := 0; i < len(buf); i += 2 {
		if buf[i+1] != 0 {
			t.Fatalf("right channel is not silent at frame %d", i/2)
		}
	}
	test.ExpectInequality(t, buf[len(buf)-2], 0)
}

func TestDeterminism(t *testing.T) {
	// the player reads RANDOM and uses it as the frequency of a noise channel
	prg := code(map[uint16][]uint8{
		0x2000: {
			0xad, 0x0a, 0xd2, // LDA $D20A
			0x8d, 0x00, 0xd2, // STA $D200
			0x60,
		},
		0x2100: {0xa9, 0x8f, 0x8d, 0x01, 0xd2, 0x60}, // LDA #$8F; STA $D201
	})

	run := func() []int16 {
		ses := newSession(t)
		_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nINIT 2100\r\n", 0x2000, prg...))
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, ses.SelectSong(0))
		return render(t, ses, 4096)
	}

	a := run()
	b := run()
	test.ExpectFailure(t, silent(a))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("output is not deterministic at sample %d", i)
		}
	}
}

func TestTypeC(t *testing.T) {
	ses := newSession(t)

	prg := code(map[uint16][]uint8{
		0x2000: {0x60, 0x60, 0x60},
		0x2003: {0x4c, 0x10, 0x20}, // JMP $2010
		0x2006: {0x4c, 0x20, 0x20}, // JMP $2020
		0x2010: {0xa9, 0x1f, 0x8d, 0x01, 0xd2, 0x60},
		0x2020: {0xe6, 0x80, 0x60}, // INC $80
	})
	_, err := ses.Load(sap("TYPE C\r\nPLAYER 2000\r\nMUSIC 2800\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	buf := render(t, ses, 100)
	test.ExpectFailure(t, silent(buf))
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x01)
}

func TestTypeD(t *testing.T) {
	ses := newSession(t)

	prg := code(map[uint16][]uint8{
		0x2000: {0xe6, 0x80, 0x40},                   // INC $80; RTI
		0x2100: {0xa9, 0x1f, 0x8d, 0x01, 0xd2, 0x60}, // LDA #$1F; STA $D201
	})
	_, err := ses.Load(sap("TYPE D\r\nPLAYER 2000\r\nINIT 2100\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	buf := render(t, ses, 100)
	test.ExpectFailure(t, silent(buf))
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x01)
	test.ExpectSuccess(t, ses.CPU.Parked())
}

func TestTypeS(t *testing.T) {
	ses := newSession(t)

	// INIT never returns. the loop increments $81 continuously
	prg := code(map[uint16][]uint8{
		0x2000: {
			0xa9, 0x1f, 0x8d, 0x01, 0xd2, // LDA #$1F; STA $D201
			0xa9, 0x03, 0x85, 0x45, // LDA #$03; STA $45
			0xe6, 0x81, // INC $81
			0x4c, 0x09, 0x20, // JMP $2009
		},
	})
	_, err := ses.Load(sap("TYPE S\r\nINIT 2000\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))
	test.ExpectEquality(t, ses.Mem.Peek(0x45), 0x03)

	// one frame is more than enough for three decrements
	buf := render(t, ses, 100)
	test.ExpectFailure(t, silent(buf))
	test.ExpectEquality(t, ses.Mem.Peek(0x45), 0x00)

	v := ses.Mem.Peek(0x81)
	render(t, ses, 1000)
	test.ExpectInequality(t, ses.Mem.Peek(0x81), v)
}

func TestFastPlay(t *testing.T) {
	prg := code(map[uint16][]uint8{
		0x2000: {0xe6, 0x80, 0x60}, // INC $80
	})

	ses := newSession(t)
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nFASTPLAY 156\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	// 156 scanlines produce approximately 442 samples
	render(t, ses, 1000)
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x03)

	ses = newSession(t)
	_, err = ses.Load(sap("TYPE B\r\nPLAYER 2000\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))
	render(t, ses, 100)
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x01)
}

func TestLongFastPlay(t *testing.T) {
	prg := code(map[uint16][]uint8{
		0x2000: {0xe6, 0x80, 0x60}, // INC $80
	})

	ses := newSession(t)
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nFASTPLAY 20000\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	// the period produces more samples than the output ring can hold.
	// 20000 scanlines is approximately 56700 samples so rendering 60000
	// samples calls the player routine twice
	render(t, ses, 60000)
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x02)

	// rendering in small pieces gives the same result
	ses = newSession(t)
	_, err = ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nFASTPLAY 20000\r\n", 0x2000, prg...))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))
	for range 60 {
		render(t, ses, 1000)
	}
	test.ExpectEquality(t, ses.Mem.Peek(0x80), 0x02)
}

func TestOpcodeFault(t *testing.T) {
	ses := newSession(t)

	// the player routine executes a KIL instruction
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\n", 0x2000, 0x02))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	buf := render(t, ses, 2000)
	test.ExpectSuccess(t, silent(buf))
	test.ExpectEquality(t, ses.State(), hardware.SongSelected)
}

func TestElapsed(t *testing.T) {
	ses := newSession(t)
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\n", 0x2000, 0x60))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))
	test.ExpectEquality(t, ses.ElapsedTicks(), 0)

	render(t, ses, 100)
	test.ExpectEquality(t, ses.ElapsedTicks(), 1)
	test.ExpectApproximate(t, float64(ses.Elapsed()), float64(20*time.Millisecond), 0.01)

	// selecting a song resets the counter
	test.DemandSuccess(t, ses.SelectSong(0))
	test.ExpectEquality(t, ses.Elapsed(), 0)
}

func TestNTSC(t *testing.T) {
	ses := newSession(t)
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\nNTSC\r\n", 0x2000, 0x60))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ses.Spec().ID, "NTSC")
	test.DemandSuccess(t, ses.SelectSong(0))
	render(t, ses, 100)
	test.ExpectEquality(t, ses.ElapsedTicks(), 1)
}

func TestVCount(t *testing.T) {
	ses := newSession(t)
	_, err := ses.Load(sap("TYPE B\r\nPLAYER 2000\r\n", 0x2000, 0x60))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))
	render(t, ses, 100)

	c := ses.GetCoords()
	v, err := ses.Mem.Read(addresses.VCOUNT)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(c.Scanline>>1))
}
