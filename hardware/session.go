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
	"fmt"
	"time"

	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/environment"
	"github.com/jetsetilly/gophersap/hardware/cpu"
	"github.com/jetsetilly/gophersap/hardware/driver"
	"github.com/jetsetilly/gophersap/hardware/memory"
	"github.com/jetsetilly/gophersap/hardware/pokey"
	"github.com/jetsetilly/gophersap/hardware/spec"
	"github.com/jetsetilly/gophersap/logger"
	"github.com/jetsetilly/gophersap/random"
	"github.com/jetsetilly/gophersap/songloader"
)

// State of the Session.
type State int

// List of valid State values.
const (
	Idle State = iota
	Loaded
	SongSelected
	Rendering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	case SongSelected:
		return "song selected"
	case Rendering:
		return "rendering"
	}
	return "unknown state"
}

// Sentinal error patterns returned by the Session.
const (
	NotLoaded   = "session: no song loaded"
	NoSong      = "session: no song selected"
	ShortBuffer = "session: buffer too short (%d values for %d stereo frames)"
)

// Session is the main container for the emulated components.
type Session struct {
	env *environment.Environment

	Mem   *memory.Memory
	CPU   *cpu.CPU
	Pokey [2]*pokey.Pokey

	driver driver.Driver

	// the metadata and the original memory image of the loaded song. the
	// image is copied to memory on every song selection
	md  songloader.Metadata
	img *memory.Image

	spec  spec.Spec
	state State
	song  int

	// playback position. the cycle is the number of cycles the CPU has
	// executed in the current scanline
	frame    int
	scanline int
	cycle    int

	// the total number of scanlines run since the song was selected
	lines int

	// the scanline within the period between calls to the player routine
	periodLine int

	// a write to WSYNC stops the CPU for the remainder of the scanline
	wsync bool

	// drained samples from each chip before they are interleaved
	drain [2][]int16
}

// NewSession is the preferred method of initialisation for the Session type.
// The random number generator in the environment is plumbed into the session
// so that random numbers depend on the playback position.
func NewSession(env *environment.Environment) (*Session, error) {
	if env == nil {
		return nil, curated.Errorf("session: %v", "environment is required")
	}

	ses := &Session{
		env:  env,
		Mem:  memory.NewMemory(),
		spec: spec.PAL,
	}
	ses.CPU = cpu.NewCPU(env, ses.Mem)
	env.Random.Plumb(ses)

	return ses, nil
}

func (ses *Session) String() string {
	return fmt.Sprintf("%s: song %d/%d [%s] frame=%d scanline=%d", ses.state, ses.song, ses.md.Songs, ses.spec, ses.frame, ses.scanline)
}

// State returns the current state of the Session.
func (ses *Session) State() State {
	return ses.state
}

// Environment returns the environment the session was created with.
func (ses *Session) Environment() *environment.Environment {
	return ses.env
}

// Metadata returns the metadata of the loaded song.
func (ses *Session) Metadata() songloader.Metadata {
	return ses.md
}

// Song returns the index of the selected song.
func (ses *Session) Song() int {
	return ses.song
}

// Spec returns the television specification of the loaded song.
func (ses *Session) Spec() spec.Spec {
	return ses.spec
}

// GetCoords implements the random.Clock interface.
func (ses *Session) GetCoords() random.Coords {
	return random.Coords{
		Frame:    ses.frame,
		Scanline: ses.scanline,
		Cycle:    ses.cycle,
	}
}

// VCount implements the memory.Antic interface.
func (ses *Session) VCount() uint8 {
	return uint8(ses.scanline >> 1)
}

// WSync implements the memory.Antic interface.
func (ses *Session) WSync() {
	ses.wsync = true
}

// Load the song given by the Loader. On error the Session is unchanged.
func (ses *Session) Load(ld songloader.Loader) (songloader.Metadata, error) {
	if err := ld.Load(); err != nil {
		return songloader.Metadata{}, err
	}

	md, img, err := songloader.Parse(ld.Data)
	if err != nil {
		return songloader.Metadata{}, err
	}

	sp := spec.PAL
	if md.NTSC {
		sp = spec.NTSC
	}

	sampleRate := ses.env.Prefs.SampleRate.Get().(int)
	lowPass := ses.env.Prefs.LowPass.Get().(bool)

	for i := range ses.Pokey {
		ses.Pokey[i] = pokey.NewPokey(sp.CPUClock, sampleRate, ses.env.Random)
		ses.Pokey[i].SetLowPass(lowPass)
		ses.drain[i] = make([]int16, pokey.RingSize)
	}
	ses.Mem.Plumb(ses.Pokey[0], ses.Pokey[1], md.Stereo, ses)

	// memory holds the unmodified image until a song is selected
	ses.Mem.Load(img)

	ses.md = md
	ses.img = img
	ses.spec = sp
	ses.driver = nil
	ses.state = Loaded

	logger.Logf(ses.env, "session", "loaded %s: %s", ld.ShortName(), md)

	return md, nil
}

// SelectSong resets the CPU, the memory and the chips and calls the
// initialisation routine for the song. The index is taken modulo the number of
// songs in the file.
func (ses *Session) SelectSong(index int) error {
	if ses.state == Idle {
		return curated.Errorf(NotLoaded)
	}

	n := ses.md.Songs
	ses.song = ((index % n) + n) % n

	ses.Mem.Load(ses.img)
	ses.CPU.Reset()
	for _, pk := range ses.Pokey {
		pk.Reset()
	}
	ses.frame = 0
	ses.scanline = 0
	ses.cycle = 0
	ses.lines = 0
	ses.periodLine = 0
	ses.wsync = false

	var err error
	ses.driver, err = driver.NewDriver(ses.md, ses.CPU, ses.Mem)
	if err != nil {
		ses.state = Loaded
		return err
	}

	if err := ses.driver.Init(ses.song); err != nil {
		ses.state = Loaded
		return curated.Errorf("session: %v", err)
	}

	ses.state = SongSelected

	return nil
}

// Elapsed returns the amount of playback time since the song was selected.
func (ses *Session) Elapsed() time.Duration {
	cycles := int64(ses.lines) * spec.ClksScanline
	return time.Duration(cycles * int64(time.Second) / int64(ses.spec.CPUClock))
}

// ElapsedTicks returns the elapsed time in units of a standard frame. One
// fiftieth of a second for PAL and one sixtieth for NTSC.
func (ses *Session) ElapsedTicks() int {
	return ses.lines / ses.spec.Scanlines
}
