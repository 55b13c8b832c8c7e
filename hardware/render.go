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
)

// RenderBuffer fills the buffer with sampleCount stereo frames. The samples
// are interleaved, left channel first. Frames are run as required to produce
// the samples.
//
// Mono songs have the output of the first chip in both channels. Stereo songs
// have the first chip on the left and the second chip on the right, mixed
// according to the stereo separation preference.
func (ses *Session) RenderBuffer(buffer []int16, sampleCount int) error {
	switch ses.state {
	case Idle:
		return curated.Errorf(NotLoaded)
	case Loaded:
		return curated.Errorf(NoSong)
	}

	if len(buffer) < sampleCount*2 {
		return curated.Errorf(ShortBuffer, len(buffer), sampleCount)
	}

	ses.state = Rendering
	defer func() {
		ses.state = SongSelected
	}()

	sep := 1.0
	if ses.md.Stereo {
		sep = ses.env.Prefs.StereoSeparation.Get().(float64)
	}

	var filled int
	for filled < sampleCount {
		avail := ses.Pokey[0].Available()
		if avail == 0 {
			if err := ses.runFrame(); err != nil {
				return err
			}
			continue
		}

		n := min(avail, sampleCount-filled)

		left := ses.drain[0][:n]
		ses.Pokey[0].Drain(left)

		right := left
		if ses.md.Stereo {
			right = ses.drain[1][:n]
			ses.Pokey[1].Drain(right)
		}

		out := buffer[filled*2:]
		for i := range n {
			out[i*2], out[i*2+1] = mix(left[i], right[i], sep)
		}

		filled += n
	}

	return nil
}

// mix the left and right channels. a separation of 1.0 leaves the channels
// unchanged and a separation of 0.0 is mono
func mix(l, r int16, sep float64) (int16, int16) {
	if sep >= 1.0 || l == r {
		return l, r
	}
	a := (1.0 + sep) / 2
	b := (1.0 - sep) / 2
	return int16(float64(l)*a + float64(r)*b), int16(float64(r)*a + float64(l)*b)
}
