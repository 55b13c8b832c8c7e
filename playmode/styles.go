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

import "github.com/charmbracelet/lipgloss"

// styles used by the status line
type styles struct {
	title  lipgloss.Style
	song   lipgloss.Style
	time   lipgloss.Style
	paused lipgloss.Style
	err    lipgloss.Style
}

// newStyles returns the styles for the status line. if colour is false the
// styles add no formatting
func newStyles(colour bool) styles {
	if !colour {
		return styles{}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		song:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		time:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		paused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
