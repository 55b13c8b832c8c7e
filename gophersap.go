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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gophersap/comparison"
	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/disassembly"
	"github.com/jetsetilly/gophersap/environment"
	"github.com/jetsetilly/gophersap/hardware"
	"github.com/jetsetilly/gophersap/logger"
	"github.com/jetsetilly/gophersap/modalflag"
	"github.com/jetsetilly/gophersap/output/otoaudio"
	"github.com/jetsetilly/gophersap/output/sdlaudio"
	"github.com/jetsetilly/gophersap/playmode"
	"github.com/jetsetilly/gophersap/prefs"
	"github.com/jetsetilly/gophersap/resources"
	"github.com/jetsetilly/gophersap/songloader"
	"github.com/jetsetilly/gophersap/statsview"
	"github.com/jetsetilly/gophersap/version"
	"github.com/jetsetilly/gophersap/wavwriter"
	"golang.org/x/term"
)

// exit values
const (
	exitParse = 10
	exitMode  = 20
)

// the length of a render when the song has no duration in the header
const defaultRenderLength = 3 * time.Minute

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// isTerminal returns true if the writer is a terminal. colour output is only
// used for terminals
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// launch runs the program with the command line arguments. returns the value
// for os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "RENDER", "INFO", "DISASM", "COMPARE")
	md.AdditionalHelp("songs must be in the SAP format. a song may be a local file or a http:// or https:// URL")

	showVersion := md.AddBool("version", false, "print version and exit")
	echoLog := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *echoLog {
		if isTerminal(output) {
			logger.SetEcho(logger.NewColorizer(output), true)
		} else {
			logger.SetEcho(output, true)
		}
	}

	if *stats {
		statsview.Launch(logger.Allow)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, output)
	case "RENDER":
		err = render(md, output)
	case "INFO":
		err = info(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "COMPARE":
		err = compare(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return 0
}

// newSession creates a new session and loads the song. the prefs string is
// applied to the preferences of the session
func newSession(filename string, prefsString string) (*hardware.Session, error) {
	prefs.PushCommandLineStack(prefsString)
	env, err := environment.NewEnvironment(nil, nil)
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		logger.Logf(env, "prefs", "unused command line preferences: %s", unused)
	}

	ses, err := hardware.NewSession(env)
	if err != nil {
		return nil, err
	}

	_, err = ses.Load(songloader.NewLoader(filename))
	if err != nil {
		return nil, err
	}

	return ses, nil
}

// songIndex returns the song to use. a negative song index means that the
// default song should be used
func songIndex(ses *hardware.Session, song int) int {
	if song < 0 {
		return ses.Metadata().DefSong
	}
	return song
}

// oneArg checks that there is exactly one argument remaining
func oneArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf("SAP file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	song := md.AddInt("song", -1, "song index (default song if negative)")
	backend := md.AddString("backend", "OTO", "audio backend: OTO, SDL")
	prefsString := md.AddString("prefs", "", "preferences for the session (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	var open playmode.Opener
	switch strings.ToUpper(*backend) {
	case "OTO":
		open = func(sampleRate int, src io.Reader) (playmode.Output, error) {
			return otoaudio.NewAudio(sampleRate, src)
		}
	case "SDL":
		open = func(sampleRate int, src io.Reader) (playmode.Output, error) {
			return sdlaudio.NewAudio(sampleRate, src)
		}
	default:
		return curated.Errorf("unknown audio backend (%s)", *backend)
	}

	ses, err := newSession(filename, *prefsString)
	if err != nil {
		return err
	}

	return playmode.Play(ses, songIndex(ses, *song), open, output, isTerminal(output))
}

func render(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	song := md.AddInt("song", -1, "song index (default song if negative)")
	seconds := md.AddFloat64("seconds", 0, "length of render in seconds (song duration if zero)")
	out := md.AddString("o", "", "name of WAV file (generated if empty)")
	prefsString := md.AddString("prefs", "", "preferences for the session (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	ses, err := newSession(filename, *prefsString)
	if err != nil {
		return err
	}

	idx := songIndex(ses, *song)
	err = ses.SelectSong(idx)
	if err != nil {
		return err
	}

	dur := time.Duration(*seconds * float64(time.Second))
	if dur <= 0 {
		dur = defaultRenderLength
		if d, ok := ses.Metadata().Duration(ses.Song()); ok && d.Length > 0 {
			dur = d.Length
		}
	}

	fn := *out
	if fn == "" {
		fn = fmt.Sprintf("%s.wav", resources.UniqueFilename("render", filename))
	}

	env := ses.Environment()
	sampleRate := env.Prefs.SampleRate.Get().(int)

	aw, err := wavwriter.New(env, fn, sampleRate)
	if err != nil {
		return err
	}

	frames := int(dur.Seconds() * float64(sampleRate))
	buf := make([]int16, sampleRate*2)
	for frames > 0 {
		n := min(frames, sampleRate)
		err = ses.RenderBuffer(buf, n)
		if err != nil {
			return err
		}
		aw.Write(buf[:n*2])
		frames -= n
	}

	err = aw.Close()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "rendered song %d to %s (%s)\n", ses.Song(), fn, dur)
	return nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	viz := md.AddString("memviz", "", "write graphviz dot file of the song metadata")
	dsm := md.AddBool("disasm", false, "disassemble the player routines")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	ses, err := newSession(filename, "")
	if err != nil {
		return err
	}
	meta := ses.Metadata()

	key := lipgloss.NewStyle()
	if isTerminal(output) {
		key = key.Bold(true).Foreground(lipgloss.ANSIColor(3))
	}

	field := func(k string, v any) {
		fmt.Fprintf(output, "%s %v\n", key.Render(fmt.Sprintf("%-9s", k)), v)
	}

	field("name", meta.Name)
	field("author", meta.Author)
	field("date", meta.Date)
	field("type", meta.Type)
	field("songs", meta.Songs)
	field("default", meta.DefSong)
	field("stereo", meta.Stereo)
	field("tv", ses.Spec())
	if meta.Player != 0 {
		field("player", fmt.Sprintf("$%04x", meta.Player))
	}
	if meta.Music != 0 {
		field("music", fmt.Sprintf("$%04x", meta.Music))
	}
	if meta.Init != 0 {
		field("init", fmt.Sprintf("$%04x", meta.Init))
	}
	field("fastplay", meta.FastPlay)
	for i := range meta.Durations {
		if d, ok := meta.Duration(i); ok {
			field(fmt.Sprintf("time %d", i), d)
		} else {
			field(fmt.Sprintf("time %d", i), "unknown")
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, &meta)
	}

	if *dsm {
		fmt.Fprintln(output)
		return writeDisasm(ses, output)
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the program is disassembled from the entry points given in the SAP header")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md)
	if err != nil {
		return err
	}

	ses, err := newSession(filename, "")
	if err != nil {
		return err
	}

	return writeDisasm(ses, output)
}

func writeDisasm(ses *hardware.Session, output io.Writer) error {
	dsm := disassembly.FromSession(ses)
	err := dsm.Write(output)
	if err != nil {
		return err
	}

	if dsm.Incomplete {
		fmt.Fprintln(output, "* disassembly is incomplete")
	}

	return nil
}

func compare(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	song := md.AddInt("song", -1, "song index (default song if negative)")
	md.AdditionalHelp("the reference recording can be a WAV or an MP3 file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf("SAP file and reference file required for %s mode", md)
	}

	// the session is only used to find the default song
	ses, err := newSession(md.GetArg(0), "")
	if err != nil {
		return err
	}
	env := ses.Environment()

	ref, err := comparison.LoadReference(env, md.GetArg(1))
	if err != nil {
		return err
	}

	res, err := comparison.Compare(env, songloader.NewLoader(md.GetArg(0)), songIndex(ses, *song), ref)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, res)
	return nil
}
