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

package resources_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophersap/resources"
	"github.com/jetsetilly/gophersap/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".gophersap", 0700))

	pth, err := resources.JoinPath("foo", "bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gophersap", "foo", "bar", "baz"))

	// intermediate directories have been created but not the file
	_, err = os.Stat(filepath.Join(".gophersap", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// the base path is not prepended twice
	pth2, err := resources.JoinPath(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth2, pth)
}

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("render", "/music/Jet_Set_Willy.sap")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "render_Jet_Set_Willy_"))

	fn = resources.UniqueFilename("render", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "render_"))
}
