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

// aligned is a pair of operands brought to a common exponent: the larger
// operand's significand unshifted and the smaller operand's significand
// shifted right by the exponent difference. Both significands carry a guard
// bit below the fraction, widening them to 25 bits.
type aligned struct {
	large     bits.Vector // 25 bits
	small     bits.Vector // 25 bits
	signLarge bool
	signSmall bool
	exponent  bits.Vector // 8 bits, the larger operand's exponent
}

// withGuard appends a zero guard bit below the 24-bit significand. The guard
// bit preserves the one bit of precision that the alignment shift would
// otherwise discard.
func withGuard(significand bits.Vector) bits.Vector {
	g := bits.Zero(alignedWidth)
	copy(g[1:], significand)
	return g
}

// align finds the operand with the larger exponent and shifts the other
// operand's significand into agreement with it.
//
// When the exponents are equal, operand a is taken to be the "larger" of the
// pair. The tie-break is fixed and it decides the sign of an exact
// cancellation further down the datapath.
func align(a, b operand) aligned {
	larger, smaller := a, b
	if mustCompare(a.exponent, b.exponent) == bits.Less {
		larger, smaller = b, a
	}

	// the shift distance is the bit-weighted value of the exponent
	// difference. an 8-bit difference cannot exceed 255, which is also the
	// cap the circuit applies; shifts past the significand width saturate to
	// zero in ShiftRight() anyway.
	diff := mustSubtract(larger.exponent, smaller.exponent)
	shift := int(diff.ToUint())

	return aligned{
		large:     withGuard(larger.significand),
		small:     bits.ShiftRight(withGuard(smaller.significand), shift),
		signLarge: larger.sign,
		signSmall: smaller.sign,
		exponent:  larger.exponent.Copy(),
	}
}

// zeroAligned returns an aligned value with correctly shaped all-zero
// vectors. Pipeline latches must never hold nil vectors, so this is the
// zeroed stage-register content rather than the natural zero value of the
// type.
func zeroAligned() aligned {
	return aligned{
		large:    bits.Zero(alignedWidth),
		small:    bits.Zero(alignedWidth),
		exponent: bits.Zero(exponentWidth),
	}
}
