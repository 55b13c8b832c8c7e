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

// Package otoaudio plays audio through the oto library. No external libraries
// are required on most platforms, which makes this the default audio output.
package otoaudio

import (
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gophersap/curated"
)

// the size of the buffer held by the oto player. a larger buffer means more
// latency between a key press and a change in the sound
const bufferDuration = 100 * time.Millisecond

// only one oto context can be created per process
var context struct {
	crit       sync.Mutex
	ctx        *oto.Context
	sampleRate int
}

// Audio outputs sound using oto.
type Audio struct {
	player *oto.Player
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Samples are read from the io.Reader as interleaved stereo frames of signed
// 16 bit little endian values.
func NewAudio(sampleRate int, src io.Reader) (*Audio, error) {
	context.crit.Lock()
	defer context.crit.Unlock()

	if context.ctx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   bufferDuration,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			return nil, curated.Errorf("otoaudio: %v", err)
		}
		<-ready

		context.ctx = ctx
		context.sampleRate = sampleRate
	} else if context.sampleRate != sampleRate {
		return nil, curated.Errorf("otoaudio: sample rate cannot be changed once set (%d)", context.sampleRate)
	}

	aud := &Audio{
		player: context.ctx.NewPlayer(src),
	}
	aud.player.Play()

	return aud, nil
}

// Close implements the playmode.Output interface.
func (aud *Audio) Close() error {
	aud.player.Pause()
	if err := aud.player.Close(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
