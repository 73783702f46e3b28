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

// Widths of the vectors flowing through the datapath. The IEEE-754 single
// precision layout fixes the first three; the aligned and magnitude widths
// add a guard bit below the significand and a carry bit above it.
const (
	exponentWidth    = 8
	fractionWidth    = 23
	significandWidth = 24
	alignedWidth     = 25
	magnitudeWidth   = 26
)

// Bit positions within the 26-bit magnitude.
const (
	guardBit  = 0
	hiddenBit = 24
	carryBit  = 25
)

// operand is an unpacked floating point word: the three fields of the 32-bit
// layout with the hidden bit made explicit.
type operand struct {
	sign     bool
	exponent bits.Vector // 8 bits, biased by 127

	// the 24-bit significand. bit 23 is the hidden bit and is always forced
	// to one; the exponent field is never consulted. an all-zero exponent
	// therefore does not produce a subnormal significand, which is a
	// documented deviation from IEEE-754.
	significand bits.Vector
}

// unpack splits a raw 32-bit word into its sign, exponent and significand.
// Every input pattern is treated uniformly; there is no detection of special
// exponent or fraction values.
func unpack(w uint32) operand {
	significand := bits.FromUint(uint(w), significandWidth)
	significand[significandWidth-1] = true

	return operand{
		sign:        w&0x80000000 != 0,
		exponent:    bits.FromUint(uint(w>>fractionWidth), exponentWidth),
		significand: significand,
	}
}

// pack assembles the final 32-bit word from its three fields.
func pack(sign bool, exponent bits.Vector, fraction bits.Vector) uint32 {
	var w uint32
	if sign {
		w |= 0x80000000
	}
	w |= uint32(exponent.ToUint()) << fractionWidth
	w |= uint32(fraction.ToUint())
	return w
}

// The vector widths in the datapath are fixed by the constants above, so the
// width-checked primitives of the bits package cannot fail between the word
// boundaries. An error from any of them is a programming error in this
// package.

func mustCompare(a, b bits.Vector) bits.Comparison {
	cmp, err := bits.Compare(a, b)
	if err != nil {
		panic(err)
	}
	return cmp
}

func mustAdd(a, b bits.Vector) (bits.Vector, bits.Bit) {
	sum, carry, err := bits.Add(a, b)
	if err != nil {
		panic(err)
	}
	return sum, carry
}

func mustSubtract(a, b bits.Vector) bits.Vector {
	diff, err := bits.Subtract(a, b)
	if err != nil {
		panic(err)
	}
	return diff
}
