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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It looks like the
// Errorf() function in the fmt package but the formatting string also acts as
// the identity of the error. The Is() function checks an error against a
// pattern:
//
//	e := curated.Errorf("bits: width mismatch (%d and %d)", 8, 24)
//
//	if curated.Is(e, "bits: width mismatch (%d and %d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, which is useful when a curated error has been wrapped by
// another curated error.
//
// The IsAny() function says whether the error was created by this package at
// all. An uncurated error is one the program did not expect; how severely to
// treat it is left to the caller.
//
// The Error() function normalises the message chain so that adjacent
// duplicate parts are not repeated. This means functions can wrap errors
// freely without worrying about stuttering messages. Parts of a chain are
// separated by the sub-string ": " as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Error patterns used across package boundaries should be stored as exported
// const strings in the package that raises them, suitably named and
// commented.
package curated
