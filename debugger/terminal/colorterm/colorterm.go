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

// Package colorterm implements the Terminal interface for the debugger with
// a basic ANSI terminal. It provides single-keystroke line editing and a
// command history, keeping the terminal in raw mode while reading.
package colorterm

import (
	"fmt"
	"os"

	"github.com/thamada/fp32add/debugger/terminal"
	"github.com/thamada/fp32add/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal

	commandHistory [][]byte
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.commandHistory = make([][]byte, 0)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r")
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleFeedback:
		ct.Print(ansiPenCyan)
	case terminal.StyleError:
		ct.Print(ansiPenRed)
		s = fmt.Sprintf("* %s", s)
	}

	ct.Print(s)
	ct.Print(ansiOff)
	ct.Print("\n")
}
