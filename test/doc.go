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

// Package test contains helper functions that remove common testing
// boilerplate.
//
// The ExpectEquality() function compares like-typed values for equality and
// fails the test with a descriptive message if they differ.
//
// The ExpectFailure() and ExpectSuccess() functions test for failure and
// success under generic conditions. How the nil type is handled is not
// obvious: nil is considered a success, because of how Go errors work (nil
// indicating no error), and so ExpectFailure fails on nil and ExpectSuccess
// succeeds on it.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test
// the captured output for equality with an expected string.
package test
