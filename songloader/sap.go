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
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/gophersap/curated"
	"github.com/jetsetilly/gophersap/hardware/memory"
)

// the largest value permitted for address and integer directives
const maxDirectiveValue = 0xffff

// Parse SAP data. The returned image contains the binary blocks of the file.
// On error the Metadata is the zero value and the image is nil.
func Parse(data []byte) (Metadata, *memory.Image, error) {
	end := bytes.IndexByte(data, 0xff)
	if end == -1 {
		if !isSAP(data) {
			return Metadata{}, nil, curated.Errorf(NotSAP)
		}
		return Metadata{}, nil, curated.Errorf(NoHeaderEnd)
	}

	header := data[:end]
	if !isSAP(header) {
		return Metadata{}, nil, curated.Errorf(NotSAP)
	}

	md, err := parseHeader(header)
	if err != nil {
		return Metadata{}, nil, err
	}

	img := &memory.Image{}
	err = parseBlocks(data[end:], end, img)
	if err != nil {
		return Metadata{}, nil, err
	}

	return md, img, nil
}

// isSAP returns true if the first line of the data is the SAP signature
func isSAP(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte{'\n'})
	return string(bytes.TrimSpace(line)) == "SAP"
}

func parseHeader(header []byte) (Metadata, error) {
	md := Metadata{
		Songs: 1,
	}

	var comment []string

	lines := strings.Split(string(header), "\n")

	// the first line is the signature
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		directive, value, _ := strings.Cut(strings.TrimSpace(line), " ")
		value = strings.TrimSpace(value)

		var err error

		switch strings.ToUpper(directive) {
		case "AUTHOR":
			md.Author = unquote(value)
			comment = append(comment, line)
		case "NAME":
			md.Name = unquote(value)
			comment = append(comment, line)
		case "DATE":
			md.Date = unquote(value)
			comment = append(comment, line)
		case "TYPE":
			if value == "" {
				return Metadata{}, curated.Errorf(BadDirective, "TYPE", "no value")
			}
			md.Type = PlayerType(strings.ToLower(value)[0])
			switch md.Type {
			case TypeB, TypeC, TypeD, TypeM, TypeS:
			default:
				return Metadata{}, curated.Errorf(UnsupportedType, value)
			}
		case "PLAYER":
			md.Player, err = parseAddress(value)
		case "MUSIC":
			md.Music, err = parseAddress(value)
		case "INIT":
			md.Init, err = parseAddress(value)
		case "FASTPLAY":
			md.FastPlay, err = parseInt(value, false)
		case "SONGS":
			md.Songs, err = parseInt(value, true)
			if md.Songs == 0 {
				md.Songs = 1
			}
		case "DEFSONG":
			md.DefSong, err = parseInt(value, true)
		case "STEREO":
			md.Stereo = true
		case "NTSC":
			md.NTSC = true
		case "TIME":
			// a malformed TIME keeps its position in the list of durations
			// but records no length. the line is kept as a comment
			d, terr := parseTime(value)
			if terr != nil {
				d = Duration{}
				comment = append(comment, line)
			}
			md.Durations = append(md.Durations, d)
		default:
			comment = append(comment, line)
		}

		if err != nil {
			return Metadata{}, curated.Errorf(BadDirective, strings.ToUpper(directive), err)
		}
	}

	md.Comment = strings.Join(comment, "\n")

	if md.Type == 0 {
		return Metadata{}, curated.Errorf(NoType)
	}

	switch md.Type {
	case TypeB, TypeM:
		if md.Player == 0 {
			return Metadata{}, curated.Errorf(MissingAddress, md.Type, "PLAYER")
		}
	case TypeC:
		if md.Player == 0 {
			return Metadata{}, curated.Errorf(MissingAddress, md.Type, "PLAYER")
		}
		if md.Music == 0 {
			return Metadata{}, curated.Errorf(MissingAddress, md.Type, "MUSIC")
		}
	case TypeD, TypeS:
		if md.Init == 0 {
			return Metadata{}, curated.Errorf(MissingAddress, md.Type, "INIT")
		}
	}

	if md.DefSong >= md.Songs {
		md.DefSong = 0
	}

	return md, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func parseAddress(value string) (uint16, error) {
	v, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 || v > maxDirectiveValue {
		return 0, curated.Errorf("value out of range (%s)", value)
	}
	return uint16(v), nil
}

func parseInt(value string, allowZero bool) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > maxDirectiveValue || (v == 0 && !allowZero) {
		return 0, curated.Errorf("value out of range (%s)", value)
	}
	return v, nil
}

// parseTime parses a value in the form mm:ss.xxx with an optional LOOP suffix
func parseTime(value string) (Duration, error) {
	var d Duration

	fields := strings.Fields(value)
	if len(fields) == 0 {
		return d, curated.Errorf("no value")
	}
	if len(fields) > 1 {
		if len(fields) > 2 || !strings.EqualFold(fields[1], "LOOP") {
			return d, curated.Errorf("unexpected value (%s)", value)
		}
		d.Loop = true
	}

	mins, secs, ok := strings.Cut(fields[0], ":")
	if !ok {
		return d, curated.Errorf("missing minutes (%s)", value)
	}

	m, err := strconv.Atoi(mins)
	if err != nil {
		return d, err
	}

	s, err := strconv.ParseFloat(secs, 64)
	if err != nil {
		return d, err
	}
	if m < 0 || s < 0 || s >= 60 {
		return d, curated.Errorf("value out of range (%s)", value)
	}

	d.Length = time.Duration(m)*time.Minute + time.Duration(s*float64(time.Second))
	d.Length = d.Length.Round(time.Millisecond)

	return d, nil
}

// parseBlocks copies the binary blocks into the image. offset is the position
// of the blocks in the original data and is used for error messages
func parseBlocks(data []byte, offset int, img *memory.Image) error {
	var ct int

	pos := 0
	for pos < len(data) {
		if pos+2 <= len(data) && data[pos] == 0xff && data[pos+1] == 0xff {
			pos += 2
			continue
		}

		if pos+4 > len(data) {
			return curated.Errorf(TruncatedBlock, offset+pos)
		}

		start := uint16(data[pos]) | uint16(data[pos+1])<<8
		end := uint16(data[pos+2]) | uint16(data[pos+3])<<8
		if end < start {
			return curated.Errorf(BadBlock, start, end)
		}

		l := int(end-start) + 1
		if pos+4+l > len(data) {
			return curated.Errorf(TruncatedBlock, offset+pos)
		}

		img.Copy(start, data[pos+4:pos+4+l])
		pos += 4 + l
		ct++
	}

	if ct == 0 {
		return curated.Errorf(NoBlocks)
	}

	return nil
}
