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

package comparison_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophersap/comparison"
	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/environment"
	"github.com/jetsetilly/gophersap/hardware"
	"github.com/jetsetilly/gophersap/logger"
	"github.com/jetsetilly/gophersap/songloader"
	"github.com/jetsetilly/gophersap/test"
	"github.com/jetsetilly/gophersap/wavwriter"
)

// prepare a temporary directory for the preferences file
func prepare(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gophersap", 0700))
}

// tone is a song that plays a square wave on the first channel
func tone(audf uint8) songloader.Loader {
	prg := make([]uint8, 0x200)
	prg[0] = 0x60
	copy(prg[0x100:], []uint8{
		0xa9, audf, 0x8d, 0x00, 0xd2, // LDA #audf; STA $D200
		0xa9, 0xaf, 0x8d, 0x01, 0xd2, // LDA #$AF; STA $D201
		0x60,
	})

	d := []byte("SAP\r\nTYPE B\r\nPLAYER 2000\r\nINIT 2100\r\n")
	d = append(d, 0xff, 0xff, 0x00, 0x20, 0xff, 0x21)
	d = append(d, prg...)
	return songloader.NewLoaderFromData("tone", d)
}

// record the song to a WAV file in the current directory
func record(t *testing.T, ld songloader.Loader, frames int) string {
	t.Helper()

	env, err := environment.NewEnvironment(nil, nil)
	test.DemandSuccess(t, err)
	env.Quiet = true

	ses, err := hardware.NewSession(env)
	test.DemandSuccess(t, err)
	_, err = ses.Load(ld)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ses.SelectSong(0))

	buf := make([]int16, frames*2)
	test.DemandSuccess(t, ses.RenderBuffer(buf, frames))

	fn := filepath.Join(".", "reference.wav")
	aw, err := wavwriter.New(env, fn, env.Prefs.SampleRate.Get().(int))
	test.DemandSuccess(t, err)
	aw.Write(buf)
	test.DemandSuccess(t, aw.Close())

	return fn
}

func TestIdenticalRecording(t *testing.T) {
	prepare(t)

	fn := record(t, tone(0x10), 8000)
	ref, err := comparison.LoadReference(logger.Allow, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ref.SampleRate, 44100)
	test.ExpectEquality(t, len(ref.Data), 8000)

	res, err := comparison.Compare(nil, tone(0x10), 0, ref)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Samples, 8000)
	test.ExpectApproximate(t, res.Correlation, 1.0, 0.001)
	test.ExpectSuccess(t, res.RMS < 0.001)
}

func TestDifferentRecording(t *testing.T) {
	prepare(t)

	fn := record(t, tone(0x10), 8000)
	ref, err := comparison.LoadReference(logger.Allow, fn)
	test.DemandSuccess(t, err)

	// a different pitch will not correlate well
	res, err := comparison.Compare(nil, tone(0x47), 0, ref)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Correlation < 0.9)
	test.ExpectSuccess(t, res.RMS > 0.001)
}

func TestBadReference(t *testing.T) {
	prepare(t)

	test.DemandSuccess(t, os.WriteFile("reference.ogg", []byte{0, 1, 2, 3}, 0600))
	_, err := comparison.LoadReference(logger.Allow, "reference.ogg")
	test.ExpectSuccess(t, curated.Is(err, comparison.UnsupportedReference))

	_, err = comparison.LoadReference(logger.Allow, "missing.wav")
	test.ExpectFailure(t, err)

	_, err = comparison.Compare(nil, tone(0x10), 0, comparison.Reference{SampleRate: 44100})
	test.ExpectSuccess(t, curated.Is(err, comparison.EmptyReference))
}
