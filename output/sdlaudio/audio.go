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

// Package sdlaudio plays audio through SDL. The SDL2 library must be installed
// on the host.
package sdlaudio

import (
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/gophersap/curated"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of stereo frames requested by the device in one go. the buffer
// length is a balance between latency and the risk of the queue running dry.
// the precise value is not critical
const bufferLength = 1024

// the queue is topped up whenever it holds less than this many bytes. each
// stereo frame is four bytes
const queueThreshold = bufferLength * 4 * 3

// the queue is checked at this interval
const queueFrequency = 5 * time.Millisecond

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	src    io.Reader
	buffer []uint8

	done chan bool
	wg   sync.WaitGroup
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Samples are read from the io.Reader as interleaved stereo frames of signed
// 16 bit little endian values.
func NewAudio(sampleRate int, src io.Reader) (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		src:    src,
		buffer: make([]uint8, bufferLength*4),
		done:   make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	// fill the queue before unpausing the device
	if err := aud.queue(); err != nil {
		sdl.CloseAudioDevice(aud.id)
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}

	aud.wg.Add(1)
	go func() {
		defer aud.wg.Done()
		tck := time.NewTicker(queueFrequency)
		defer tck.Stop()
		for {
			select {
			case <-aud.done:
				return
			case <-tck.C:
				_ = aud.queue()
			}
		}
	}()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// queue audio until the queue reaches the threshold
func (aud *Audio) queue() error {
	for sdl.GetQueuedAudioSize(aud.id) < queueThreshold {
		n, err := io.ReadFull(aud.src, aud.buffer)
		if n > 0 {
			if err := sdl.QueueAudio(aud.id, aud.buffer[:n]); err != nil {
				return curated.Errorf("sdlaudio: %v", err)
			}
		}
		if err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
	}
	return nil
}

// Close implements the playmode.Output interface.
func (aud *Audio) Close() error {
	close(aud.done)
	aud.wg.Wait()
	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
