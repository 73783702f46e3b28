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

// Package terminal defines the operations required by the debugger's command
// line interface. The colorterm and plainterm sub-packages provide the two
// implementations.
package terminal

// UserInterrupt is returned by TermRead() when the user has aborted the read,
// with ctrl-c for example.
const UserInterrupt = "user interrupt"

// Style is used by the Output interface to indicate the type of text being
// printed. Implementations are free to ignore styles entirely.
type Style int

// Valid Style values.
const (
	// the main echo of the debugger: command results, stage contents
	StyleOutput Style = iota

	// the terminal's own feedback: help text, confirmations
	StyleFeedback

	// error messages. implementations should display these even when every
	// other style is suppressed
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input, without the line
	// terminator.
	TermRead(prompt string) (string, error)

	// IsInteractive returns true for implementations that expect a user at
	// the other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// returning the terminal to canonical mode.
	CleanUp()
}
