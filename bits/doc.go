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

// Package bits implements fixed-width bit vectors and the four arithmetic
// primitives that the adder datapath is built on: Compare(), Add(),
// Subtract() and ShiftRight().
//
// The point of this package is to model what the gates do, not what the
// numbers mean. Add() and Subtract() ripple a carry or borrow from bit to
// bit exactly as a chain of full adders would; Compare() scans from the most
// significant bit down; ShiftRight() zero-fills from the top and saturates
// to zero for oversized shift amounts. Native integer arithmetic appears
// only in the conversion functions, which exist for the word boundary of
// the system and for display.
//
// All four primitives are pure functions. They never modify their operands
// and they keep no state between calls, so they are safe to use from
// concurrent goroutines.
package bits
