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

// Compute runs an operand pair through the complete datapath in one logical
// step: unpack, align, combine, normalize, pack. No rounding is applied.
//
// This is the unregistered reference path. The pipelined adder produces
// exactly these words once it reaches steady state, so Compute() serves as
// the oracle when validating pipeline output against its three-cycle
// latency.
//
// Compute is a pure function and safe to call concurrently.
func Compute(a, b uint32) uint32 {
	result := normalize(combine(align(unpack(a), unpack(b))))
	return pack(result.sign, result.exponent, fraction(result.magnitude))
}
