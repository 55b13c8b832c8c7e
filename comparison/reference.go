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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/logger"
)

// Reference is a decoded reference recording. The data is mono and
// normalised to the range -1.0 to 1.0.
type Reference struct {
	SampleRate int
	Data       []float32
}

// UnsupportedReference is the error pattern for reference files of an unknown
// type.
const UnsupportedReference = "comparison: unsupported reference file (%s)"

// LoadReference decodes the reference recording. The type of the file is
// decided by the file extension.
func LoadReference(perm logger.Permission, filename string) (Reference, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Reference{}, curated.Errorf("comparison: %v", err)
	}
	defer f.Close()

	var ref Reference

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		ref, err = decodeWAV(f)
	case ".mp3":
		ref, err = decodeMP3(f)
	default:
		return Reference{}, curated.Errorf(UnsupportedReference, filename)
	}
	if err != nil {
		return Reference{}, err
	}

	logger.Logf(perm, "comparison", "reference sample rate: %dHz", ref.SampleRate)
	logger.Logf(perm, "comparison", "reference length: %d samples", len(ref.Data))

	return ref, nil
}

func decodeWAV(r io.ReadSeeker) (Reference, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return Reference{}, curated.Errorf("comparison: wav: %v", "error decoding")
	}

	if !dec.IsValidFile() {
		return Reference{}, curated.Errorf("comparison: wav: %v", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Reference{}, curated.Errorf("comparison: wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// mix all channels into one
	chans := int(dec.NumChans)
	scale := float32(int(1) << (dec.BitDepth - 1))

	ref := Reference{
		SampleRate: int(dec.SampleRate),
		Data:       make([]float32, 0, len(floatBuf.Data)/chans),
	}
	for i := 0; i+chans <= len(floatBuf.Data); i += chans {
		var v float32
		for c := range chans {
			v += floatBuf.Data[i+c]
		}
		ref.Data = append(ref.Data, v/float32(chans)/scale)
	}

	return ref, nil
}

func decodeMP3(r io.Reader) (Reference, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Reference{}, curated.Errorf("comparison: mp3: %v", err)
	}

	ref := Reference{
		SampleRate: dec.SampleRate(),
	}

	// according to the go-mp3 docs:
	//
	// "The stream is always formatted as 16bit (little endian) 2 channels even if
	// the source is single channel MP3. Thus, a sample always consists of 4
	// bytes."
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+3 < n; i += 4 {
			l := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			r := int16(uint16(chunk[i+2]) | uint16(chunk[i+3])<<8)
			ref.Data = append(ref.Data, (float32(l)+float32(r))/2/32768)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return Reference{}, curated.Errorf("comparison: mp3: %v", err)
		}
	}

	return ref, nil
}
