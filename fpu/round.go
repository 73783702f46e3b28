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

// fraction extracts the 23 stored fraction bits from the normalized
// magnitude. The guard bit below them and the hidden bit above them are
// dropped.
func fraction(magnitude bits.Vector) bits.Vector {
	f := bits.Zero(fractionWidth)
	copy(f, magnitude[guardBit+1:hiddenBit])
	return f
}

// roundFraction extracts the fraction and rounds it up if the guard bit of
// the magnitude is set.
//
// This is not IEEE-754 round to nearest, even. It is an unconditional
// round-up whenever the discarded bit is set: no tie detection, no even
// test. The carry out of the 23-bit increment is discarded rather than
// propagated into the exponent. Both behaviours are intentional; they model
// the circuit as built.
func roundFraction(magnitude bits.Vector) bits.Vector {
	f := fraction(magnitude)

	if magnitude[guardBit] {
		one := bits.FromUint(1, fractionWidth)
		f, _ = mustAdd(f, one)
	}

	return f
}
