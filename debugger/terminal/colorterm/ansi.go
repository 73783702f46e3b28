// This file is part of FP32Add.
//
// FP32Add is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FP32Add is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FP32Add.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

// the ansi sequences used by the colorterm implementation. nothing here is
// exotic: bright pens for the different output styles and a clear-line
// sequence for redrawing the input line.
const (
	ansiOff       = "\033[0m"
	ansiBold      = "\033[1m"
	ansiPenRed    = "\033[31;1m"
	ansiPenGreen  = "\033[32;1m"
	ansiPenYellow = "\033[33;1m"
	ansiPenCyan   = "\033[36;1m"
	ansiClearLine = "\033[2K"
)
