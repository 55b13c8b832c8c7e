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

package modalflag_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/jetsetilly/gophersap/modalflag"
	"github.com/jetsetilly/gophersap/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, md.Parsed())
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-loop", "song.sap", "2"})
	loop := md.AddBool("loop", false, "loop song")
	test.ExpectFailure(t, *loop)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *loop)
	test.ExpectSuccess(t, slices.Equal(md.RemainingArgs(), []string{"song.sap", "2"}))
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-v", "render", "-song", "3", "-out", "x.wav", "song.sap"})
	verbose := md.AddBool("v", false, "verbose")
	md.AddSubModes("play", "render", "info")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RENDER")
	test.ExpectSuccess(t, *verbose)

	md.NewMode()
	test.ExpectFailure(t, md.Parsed())
	song := md.AddInt("song", 0, "song index")
	out := md.AddString("out", "", "wav file")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *song, 3)
	test.ExpectEquality(t, *out, "x.wav")
	test.ExpectEquality(t, md.GetArg(0), "song.sap")
	test.ExpectEquality(t, md.Path(), "RENDER")

	var set []string
	md.Visit(func(f string) { set = append(set, f) })
	test.ExpectSuccess(t, slices.Equal(set, []string{"out", "song"}))
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"song.sap"})
	md.AddSubModes("PLAY", "RENDER")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PLAY")
	test.ExpectEquality(t, md.GetArg(0), "song.sap")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nonexistent"})
	md.AddSubModes("PLAY", "RENDER")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	var w strings.Builder
	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "No help available\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	var w strings.Builder
	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"-help"})
	md.AddBool("loop", true, "loop song")
	md.AddSubModes("PLAY", "RENDER")
	md.AdditionalHelp("songs are in SAP format")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -loop\n" +
		"    \tloop song (default true)\n" +
		"\n" +
		"  available sub-modes: PLAY, RENDER\n" +
		"    default: PLAY\n" +
		"\n" +
		"songs are in SAP format\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}
