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

package fpu

import (
	"github.com/thamada/fp32add/bits"
)

// combined is the signed-magnitude sum of an aligned operand pair. The
// magnitude is 26 bits: the 25 aligned bits with the adder's carry-out
// prefixed above them.
type combined struct {
	magnitude bits.Vector // 26 bits
	sign      bool
	exponent  bits.Vector // 8 bits, unchanged from alignment
}

// combine adds or subtracts the aligned significands according to the sign
// bits of the pair.
//
// Equal signs add. Opposite signs subtract the smaller magnitude from the
// larger, with the result taking the sign of the larger magnitude; on equal
// magnitudes the subtraction order and the sign both fall to the "large"
// operand, so an exact cancellation keeps the sign chosen by the alignment
// tie-break.
func combine(al aligned) combined {
	var sum bits.Vector
	var carry bits.Bit
	var sign bool

	if al.signLarge == al.signSmall {
		sum, carry = mustAdd(al.large, al.small)
		sign = al.signLarge
	} else {
		if mustCompare(al.large, al.small) == bits.Less {
			sum = mustSubtract(al.small, al.large)
			sign = al.signSmall
		} else {
			sum = mustSubtract(al.large, al.small)
			sign = al.signLarge
		}
	}

	magnitude := bits.Zero(magnitudeWidth)
	copy(magnitude, sum)
	magnitude[carryBit] = carry

	return combined{
		magnitude: magnitude,
		sign:      sign,
		exponent:  al.exponent.Copy(),
	}
}

// zeroCombined returns a combined value with correctly shaped all-zero
// vectors, for the same reason as zeroAligned().
func zeroCombined() combined {
	return combined{
		magnitude: bits.Zero(magnitudeWidth),
		exponent:  bits.Zero(exponentWidth),
	}
}
