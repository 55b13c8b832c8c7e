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

// handleKey performs the action for the key. returns true if playback should
// end.
func handleKey(st *stream, key byte) (bool, error) {
	switch key {
	case 'q', 'Q', 0x1b:
		return true, nil
	case 'n', 'N':
		s := st.status()
		return false, st.selectSong(s.song + 1)
	case 'p', 'P':
		s := st.status()
		return false, st.selectSong(s.song - 1)
	case ' ':
		st.togglePause()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		idx := int(key - '0')
		if idx < st.status().songs {
			return false, st.selectSong(idx)
		}
	}
	return false, nil
}
