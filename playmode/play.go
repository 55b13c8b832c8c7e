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
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/hardware"
	"github.com/jetsetilly/gophersap/logger"
)

// Output is an audio device that has been opened by an Opener.
type Output interface {
	Close() error
}

// Opener opens an audio device. The device plays stereo frames read from the
// io.Reader. The format of the frames is two signed 16 bit little endian
// values, left channel first.
type Opener func(sampleRate int, src io.Reader) (Output, error)

// the frequency of status line updates
const statusFrequency = 100 * time.Millisecond

// Play the song in the session. The session must have been loaded before
// calling Play(). The status line is written to the io.Writer. Play() returns
// when the user quits, when the process is interrupted, or when the last song
// with a known duration has finished.
func Play(ses *hardware.Session, song int, open Opener, output io.Writer, colour bool) error {
	st := newStream(ses)
	err := st.selectSong(song)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	env := ses.Environment()
	md := ses.Metadata()
	sty := newStyles(colour)

	dev, err := open(env.Prefs.SampleRate.Get().(int), st)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer dev.Close()

	// playback can continue without a keyboard. the keys channel will be nil
	// and will never be selected
	var keys chan byte
	kb, err := newKeyboard()
	if err != nil {
		logger.Log(env, "playmode", err)
	} else {
		keys = kb.keys
		defer kb.restore()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(intChan)

	fmt.Fprintln(output, sty.title.Render(title(md.Name, md.Author)))

	tck := time.NewTicker(statusFrequency)
	defer tck.Stop()
	defer fmt.Fprintln(output)

	for {
		select {
		case <-intChan:
			return nil

		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			quit, err := handleKey(st, k)
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
			if quit {
				return nil
			}

		case <-st.errored:
			return curated.Errorf("playmode: %v", st.status().err)

		case <-tck.C:
			s := st.status()
			fmt.Fprintf(output, "\r%s", statusLine(sty, s))

			// move to the next song if the current song has finished. songs
			// that loop are played until the user intervenes
			if d, ok := md.Duration(s.song); ok && !d.Loop && d.Length > 0 && s.elapsed >= d.Length {
				if s.song+1 >= s.songs {
					return nil
				}
				err := st.selectSong(s.song + 1)
				if err != nil {
					return curated.Errorf("playmode: %v", err)
				}
			}
		}
	}
}

func title(name string, author string) string {
	if name == "" {
		name = "unknown"
	}
	if author == "" {
		return name
	}
	return fmt.Sprintf("%s by %s", name, author)
}

func statusLine(sty styles, s status) string {
	el := s.elapsed.Truncate(time.Millisecond * 100)
	line := fmt.Sprintf("%s  %s",
		sty.song.Render(fmt.Sprintf("song %d/%d", s.song+1, s.songs)),
		sty.time.Render(fmt.Sprintf("%02d:%04.1f", int(el.Minutes()), el.Seconds()-float64(int(el.Minutes())*60))),
	)
	if s.paused {
		line = fmt.Sprintf("%s  %s", line, sty.paused.Render("paused"))
	}
	if s.err != nil {
		line = fmt.Sprintf("%s  %s", line, sty.err.Render(s.err.Error()))
	}
	return line
}
