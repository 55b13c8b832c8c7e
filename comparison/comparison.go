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

package comparison

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/environment"
	"github.com/jetsetilly/gophersap/hardware"
	"github.com/jetsetilly/gophersap/logger"
	"github.com/jetsetilly/gophersap/songloader"
)

// the label of the environment used by the comparison session
const comparisonLabel = environment.Label("comparison")

// EmptyReference is the error pattern returned when there is no data to
// compare against.
const EmptyReference = "comparison: reference contains no audio"

// Result of a comparison.
type Result struct {
	// number of mono samples compared
	Samples int

	// root mean square of the difference between the rendered output and
	// the reference. both signals are normalised to the range -1.0 to 1.0
	RMS float64

	// pearson correlation coefficient of the two signals. a value of one is
	// a perfect match
	Correlation float64
}

func (r Result) String() string {
	return fmt.Sprintf("%d samples: rms difference %.5f, correlation %.5f", r.Samples, r.RMS, r.Correlation)
}

// Compare renders the song and compares it with the reference recording. The
// song is rendered for as long as the reference recording.
func Compare(perm logger.Permission, ld songloader.Loader, song int, ref Reference) (Result, error) {
	if len(ref.Data) == 0 {
		return Result{}, curated.Errorf(EmptyReference)
	}

	env, err := environment.NewEnvironment(nil, nil)
	if err != nil {
		return Result{}, curated.Errorf("comparison: %v", err)
	}
	env.Label = comparisonLabel
	env.Quiet = perm == nil || !perm.AllowLogging()

	err = env.Prefs.SampleRate.Set(ref.SampleRate)
	if err != nil {
		return Result{}, curated.Errorf("comparison: %v", err)
	}

	ses, err := hardware.NewSession(env)
	if err != nil {
		return Result{}, curated.Errorf("comparison: %v", err)
	}

	_, err = ses.Load(ld)
	if err != nil {
		return Result{}, curated.Errorf("comparison: %v", err)
	}

	err = ses.SelectSong(song)
	if err != nil {
		return Result{}, curated.Errorf("comparison: %v", err)
	}

	rendered, err := render(ses, len(ref.Data))
	if err != nil {
		return Result{}, curated.Errorf("comparison: %v", err)
	}

	res := compare(rendered, ref.Data)
	logger.Logf(env, "comparison", "%s", res)

	return res, nil
}

// the number of stereo frames rendered in one call to RenderBuffer()
const renderChunk = 4096

// render the required number of samples and reduce to mono
func render(ses *hardware.Session, count int) ([]float32, error) {
	data := make([]float32, 0, count)
	buf := make([]int16, renderChunk*2)

	for len(data) < count {
		n := min(renderChunk, count-len(data))
		err := ses.RenderBuffer(buf, n)
		if err != nil {
			return nil, err
		}
		for i := range n {
			v := (float32(buf[i*2]) + float32(buf[i*2+1])) / 2
			data = append(data, v/32768)
		}
	}

	return data, nil
}

// compare two mono signals. the signals are compared over the length of the
// shortest signal
func compare(a []float32, b []float32) Result {
	n := min(len(a), len(b))
	if n == 0 {
		return Result{}
	}
	a = a[:n]
	b = b[:n]

	ma := mean(a)
	mb := mean(b)

	var diff, cov, va, vb float64
	for i := range n {
		x := float64(a[i]) - ma
		y := float64(b[i]) - mb
		d := x - y
		diff += d * d
		cov += x * y
		va += x * x
		vb += y * y
	}

	res := Result{
		Samples: n,
		RMS:     math.Sqrt(diff / float64(n)),
	}

	// correlation is undefined if either signal is flat. two flat signals
	// are considered to be identical
	if va == 0 || vb == 0 {
		if va == vb {
			res.Correlation = 1.0
		}
		return res
	}
	res.Correlation = cov / math.Sqrt(va*vb)

	return res
}

// mean value is used to remove the DC offset from a signal
func mean(s []float32) float64 {
	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	return sum / float64(len(s))
}
