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

// shiftLeftOne shifts the vector one place toward the most significant end,
// zero-filling the least significant bit. The top bit falls off.
func shiftLeftOne(v bits.Vector) bits.Vector {
	shifted := bits.Zero(v.Width())
	copy(shifted[1:], v)
	return shifted
}

// normalize adjusts magnitude and exponent until the leading one sits at the
// hidden bit position. Exactly one of two branches runs, checked in this
// order:
//
// Carry-out: the addition overflowed into bit 25. Shift the magnitude right
// one place and bump the exponent. The guard-bit arithmetic guarantees the
// adder can overflow by at most one bit, so a single step always suffices.
//
// Leading-zero: shift the magnitude left one place at a time until the
// hidden bit is set, dropping the exponent with each step. The loop also
// stops when the exponent bottoms out at zero: the result is then flushed
// toward zero rather than represented as a subnormal, which is a documented
// limitation of the circuit.
func normalize(c combined) combined {
	magnitude := c.magnitude.Copy()
	exponent := c.exponent.Copy()

	one := bits.FromUint(1, exponentWidth)

	if magnitude[carryBit] {
		magnitude = bits.ShiftRight(magnitude, 1)
		exponent, _ = mustAdd(exponent, one)
	} else {
		for !bool(magnitude[hiddenBit]) && !exponent.IsZero() {
			magnitude = shiftLeftOne(magnitude)
			exponent = mustSubtract(exponent, one)
		}
	}

	return combined{
		magnitude: magnitude,
		sign:      c.sign,
		exponent:  exponent,
	}
}
