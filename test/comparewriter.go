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

package test

import "strings"

// CompareWriter captures everything written to it so a test can check the
// accumulated output against an expected string. Pass a pointer to any
// function wanting an io.Writer and call Compare() when the writing is done.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface. It never errors.
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	return cw.b.Write(p)
}

// Clear forgets everything written so far. Useful when one writer is passed
// through several phases of a test.
func (cw *CompareWriter) Clear() {
	cw.b.Reset()
}

// Compare the captured output against the expected string. The comparison is
// exact; no trimming or case folding is applied.
func (cw *CompareWriter) Compare(expected string) bool {
	return cw.b.String() == expected
}

// String implements the Stringer interface, returning the captured output.
// Mostly useful in a failure message after Compare() has returned false.
func (cw *CompareWriter) String() string {
	return cw.b.String()
}
