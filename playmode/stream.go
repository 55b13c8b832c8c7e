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

package playmode

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/jetsetilly/gophersap/hardware"
)

// the maximum number of stereo frames rendered in one call to Read()
const streamChunk = 2048

// stream implements the io.Reader interface for the audio backends. each
// sample frame is four bytes, a signed 16 bit little endian value for the
// left channel followed by the value for the right channel.
//
// Read() is called from the goroutine of the audio backend. all access to the
// session goes through the stream so that the critical section protects it.
type stream struct {
	crit sync.Mutex
	ses  *hardware.Session

	paused bool

	// the first error encountered by the render loop. playback is silent
	// once an error has been found
	err error

	// notified when an error has been found
	errored chan bool

	buf []int16
}

func newStream(ses *hardware.Session) *stream {
	return &stream{
		ses:     ses,
		errored: make(chan bool, 1),
		buf:     make([]int16, streamChunk*2),
	}
}

// Read implements the io.Reader interface.
func (st *stream) Read(p []byte) (int, error) {
	st.crit.Lock()
	defer st.crit.Unlock()

	// only complete frames are written
	n := len(p) &^ 3

	if st.paused || st.err != nil {
		clear(p[:n])
		return n, nil
	}

	for i := 0; i < n; {
		frames := min(streamChunk, (n-i)/4)

		err := st.ses.RenderBuffer(st.buf, frames)
		if err != nil {
			st.err = err
			select {
			case st.errored <- true:
			default:
			}
			clear(p[i:n])
			return n, nil
		}

		for _, s := range st.buf[:frames*2] {
			binary.LittleEndian.PutUint16(p[i:], uint16(s))
			i += 2
		}
	}

	return n, nil
}

// selectSong changes the song being played. the index is taken modulo the
// number of songs in the file
func (st *stream) selectSong(index int) error {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.err = nil
	return st.ses.SelectSong(index)
}

// togglePause stops and starts rendering. the stream outputs silence while
// paused
func (st *stream) togglePause() bool {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.paused = !st.paused
	return st.paused
}

// status of the session as a song index and the elapsed playback time
type status struct {
	song    int
	songs   int
	elapsed time.Duration
	paused  bool
	err     error
}

func (st *stream) status() status {
	st.crit.Lock()
	defer st.crit.Unlock()
	return status{
		song:    st.ses.Song(),
		songs:   st.ses.Metadata().Songs,
		elapsed: st.ses.Elapsed(),
		paused:  st.paused,
		err:     st.err,
	}
}
