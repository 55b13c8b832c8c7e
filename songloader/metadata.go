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

package songloader

import (
	"fmt"
	"strings"
	"time"
)

// PlayerType indicates the calling convention of the player routine.
type PlayerType rune

// List of valid PlayerType values.
const (
	TypeB PlayerType = 'b'
	TypeC PlayerType = 'c'
	TypeD PlayerType = 'd'
	TypeM PlayerType = 'm'
	TypeS PlayerType = 's'
)

func (t PlayerType) String() string {
	return string(t)
}

// Duration of a song as given by a TIME directive.
type Duration struct {
	Length time.Duration
	Loop   bool
}

func (d Duration) String() string {
	m := int(d.Length / time.Minute)
	s := d.Length - time.Duration(m)*time.Minute
	if d.Loop {
		return fmt.Sprintf("%02d:%06.3f LOOP", m, s.Seconds())
	}
	return fmt.Sprintf("%02d:%06.3f", m, s.Seconds())
}

// Metadata is the information in the header of a SAP file.
type Metadata struct {
	Type PlayerType

	// entry points. an address of zero means the directive was not present
	Player uint16
	Music  uint16
	Init   uint16

	// number of songs in the file is never less than one. DefSong is
	// always less than Songs
	Songs   int
	DefSong int

	// number of scanlines between calls to the player routine. zero if the
	// standard frame timing is to be used
	FastPlay int

	Stereo bool
	NTSC   bool

	Author string
	Name   string
	Date   string

	// the AUTHOR, NAME and DATE lines along with any unrecognised lines in
	// the header, in the order they appear
	Comment string

	// durations as given by TIME directives. there may be fewer entries than
	// there are songs. an entry with a zero length is a TIME directive that
	// could not be parsed
	Durations []Duration
}

// Duration returns the duration of a song. Returns false if the header did
// not give a usable duration for the song.
func (md Metadata) Duration(song int) (Duration, bool) {
	if song < 0 || song >= len(md.Durations) {
		return Duration{}, false
	}
	if md.Durations[song].Length == 0 {
		return Duration{}, false
	}
	return md.Durations[song], true
}

func (md Metadata) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "type %s", md.Type)
	if md.Player != 0 {
		fmt.Fprintf(&s, " player=%04x", md.Player)
	}
	if md.Music != 0 {
		fmt.Fprintf(&s, " music=%04x", md.Music)
	}
	if md.Init != 0 {
		fmt.Fprintf(&s, " init=%04x", md.Init)
	}
	fmt.Fprintf(&s, " songs=%d defsong=%d", md.Songs, md.DefSong)
	if md.FastPlay != 0 {
		fmt.Fprintf(&s, " fastplay=%d", md.FastPlay)
	}
	if md.Stereo {
		s.WriteString(" stereo")
	}
	if md.NTSC {
		s.WriteString(" ntsc")
	}
	return s.String()
}
