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

package resources

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that is unlikely to clash with an existing
// file. The filename is made up of the prepend string, the base name of the
// song file (without the extension) and a timestamp.
func UniqueFilename(prepend string, songFilename string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	s := strings.TrimSpace(strings.TrimSuffix(filepath.Base(songFilename), filepath.Ext(songFilename)))
	if s == "" || s == "." {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	return fmt.Sprintf("%s_%s_%s", prepend, s, timestamp)
}
