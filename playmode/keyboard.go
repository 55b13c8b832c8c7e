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
	"github.com/jetsetilly/gophersap/curated"
	"github.com/pkg/term"
)

// the terminal device used for keyboard input
const ttyDevice = "/dev/tty"

// keyboard reads single key presses from the terminal. the terminal is put
// into cbreak mode so that key presses are available without the return key
// being pressed. output processing is unaffected.
type keyboard struct {
	tty  *term.Term
	keys chan byte
}

func newKeyboard() (*keyboard, error) {
	tty, err := term.Open(ttyDevice, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("playmode: keyboard: %v", err)
	}

	kb := &keyboard{
		tty:  tty,
		keys: make(chan byte, 16),
	}

	go func() {
		b := make([]byte, 1)
		for {
			n, err := kb.tty.Read(b)
			if err != nil {
				close(kb.keys)
				return
			}
			if n == 1 {
				kb.keys <- b[0]
			}
		}
	}()

	return kb, nil
}

// restore the terminal to the mode it was in before newKeyboard()
func (kb *keyboard) restore() error {
	if err := kb.tty.Restore(); err != nil {
		return curated.Errorf("playmode: keyboard: %v", err)
	}
	return kb.tty.Close()
}
