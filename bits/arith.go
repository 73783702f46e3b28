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

package bits

import "github.com/thamada/fp32add/curated"

// WidthMismatch is returned when the operands to a two-vector function are
// not the same width. It indicates a programming error in the caller: vectors
// are never silently padded to fit.
const WidthMismatch = "bits: width mismatch (%d and %d)"

// Comparison is the result of the Compare() function.
type Comparison int

// Valid Comparison values.
const (
	Less Comparison = iota - 1
	Equal
	Greater
)

func (c Comparison) String() string {
	switch c {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "unknown"
}

// Compare two vectors of the same width. The scan runs from the most
// significant bit to the least significant; the first differing bit decides
// the result.
func Compare(a, b Vector) (Comparison, error) {
	if len(a) != len(b) {
		return Equal, curated.Errorf(WidthMismatch, len(a), len(b))
	}

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] {
				return Greater, nil
			}
			return Less, nil
		}
	}

	return Equal, nil
}

// majority of three bits. this is the carry/borrow function of a full adder:
// the carry-out is set whenever two or more of the inputs are set.
func majority(a, b, c Bit) Bit {
	return (a && b) || (a && c) || (b && c)
}

// Add two vectors of the same width. The sum is built one bit at a time from
// the least significant bit upwards, with a carry rippling into each
// position. Carry-in to bit 0 is zero. The sum has the same width as the
// operands; the final carry is returned separately.
func Add(a, b Vector) (Vector, Bit, error) {
	if len(a) != len(b) {
		return nil, false, curated.Errorf(WidthMismatch, len(a), len(b))
	}

	sum := make(Vector, len(a))
	var carry Bit

	for i := 0; i < len(a); i++ {
		sum[i] = Bit((a[i] != b[i]) != bool(carry))
		carry = majority(a[i], b[i], carry)
	}

	return sum, carry, nil
}

// Subtract vector b from vector a. The difference is built one bit at a time
// from the least significant bit upwards, with a borrow rippling into each
// position.
//
// The caller must ensure a >= b, with a prior call to Compare() if necessary.
// When a < b the final borrow is discarded and the result is the
// two's-complement wraparound of the difference. That behaviour is defined
// and relied upon; it is not corrected here.
func Subtract(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, curated.Errorf(WidthMismatch, len(a), len(b))
	}

	diff := make(Vector, len(a))
	var borrow Bit

	for i := 0; i < len(a); i++ {
		diff[i] = Bit((a[i] != b[i]) != bool(borrow))
		borrow = majority(!a[i], b[i], borrow)
	}

	return diff, nil
}

// ShiftRight returns a copy of the vector shifted n places toward the least
// significant end, filling from the top with zeros.
//
// A shift of n >= width saturates to the all-zero vector. This is a policy,
// not an error: a significand shifted entirely past its own width has simply
// lost all its precision.
func ShiftRight(v Vector, n int) Vector {
	shifted := make(Vector, len(v))

	if n < 0 {
		n = 0
	}
	if n >= len(v) {
		return shifted
	}

	copy(shifted, v[n:])
	return shifted
}
