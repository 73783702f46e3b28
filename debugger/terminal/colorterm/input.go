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

import (
	"io"

	"github.com/thamada/fp32add/curated"
	"github.com/thamada/fp32add/debugger/terminal"
	"github.com/thamada/fp32add/debugger/terminal/colorterm/easyterm"
)

// TermRead implements the terminal.Input interface. The terminal is kept in
// raw mode for the duration of the read, giving us single-keystroke editing,
// and returned to canonical mode before the function returns.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 0, 255)
	history := len(ct.commandHistory)

	// redraw clears the current line and prints the prompt and the input
	// buffer as it stands
	redraw := func() {
		ct.Print("\r")
		ct.Print(ansiClearLine)
		ct.Print(ansiBold)
		ct.Print(prompt)
		ct.Print(ansiOff)
		ct.Print(string(input))
	}

	redraw()

	b := make([]byte, 1)

	for {
		if _, err := ct.Input().Read(b); err != nil {
			return "", err
		}

		switch b[0] {
		case easyterm.KeyCtrlC:
			ct.Print("\n\r")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCtrlD:
			ct.Print("\n\r")
			return "", io.EOF

		case easyterm.KeyCarriageReturn:
			ct.Print("\n\r")

			if len(input) > 0 {
				h := make([]byte, len(input))
				copy(h, input)
				ct.commandHistory = append(ct.commandHistory, h)
			}

			return string(input), nil

		case easyterm.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
				redraw()
			}

		case easyterm.KeyEsc:
			// swallow the escape sequence up to the final byte. only the
			// cursor sequences are acted upon
			if _, err := ct.Input().Read(b); err != nil {
				return "", err
			}
			if b[0] != easyterm.EscCursor {
				continue
			}
			if _, err := ct.Input().Read(b); err != nil {
				return "", err
			}

			switch b[0] {
			case easyterm.CursorUp:
				if history > 0 {
					history--
					input = append(input[:0], ct.commandHistory[history]...)
					redraw()
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = append(input[:0], ct.commandHistory[history]...)
					redraw()
				} else if history < len(ct.commandHistory) {
					history++
					input = input[:0]
					redraw()
				}
			}

		default:
			// printable characters are appended to the input buffer and
			// echoed. anything else is ignored
			if b[0] >= 32 && b[0] < 127 {
				input = append(input, b[0])
				ct.Print(string(b))
			}
		}
	}
}
