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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios methods in functions with friendlier names and keeps copies of
// the terminal attributes for the modes the debugger switches between.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr attributes
	rawAttr attributes
}

// aliasing the unix.Termios type. the termios package expects this type and
// the rest of this package has no interest in its internals.
type attributes = unix.Termios

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the terminal modes we'll be switching
	// between
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return err
	}

	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
}

// Input returns the file being used for input.
func (pt *Terminal) Input() *os.File {
	return pt.input
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string) {
	pt.output.WriteString(s)
	pt.output.Sync()
}
