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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which has its own set of flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Modes are
// added to the parser with AddSubModes(), the first mode in the list being
// the default mode. After parsing the selected mode is returned by Mode().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RENDER", "INFO", "COMPARE")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		out := md.AddString("out", "", "name of WAV file")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return
//		case modalflag.ParseError:
//			fmt.Println(err)
//			return
//		}
//		render(md.GetArg(0), *out)
//	}
//
// Mode comparisons are case insensitive. The path of modes selected during
// successive calls to Parse() is returned by Path().
//
// The -help flag is handled automatically. The help message lists the flags
// for the current mode and the available sub-modes.
package modalflag
