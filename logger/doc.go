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

// Package logger is the central log for the application. Entries are
// identified by a tag and consecutive identical entries are collapsed into a
// single entry with a repeat count. This is important for the playback engine
// because a faulty music driver can trigger the same condition every frame.
//
// Log requests must be accompanied by a Permission. The Allow value can be
// used when an entry should always be made; otherwise the Environment of the
// playback session is used, which allows test sessions to be kept quiet.
//
// The package level functions log to the central logger. Additional loggers
// can be created with NewLogger() if required.
package logger
