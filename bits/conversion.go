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

// The conversion functions are the only place where vectors meet native
// integers. They exist for the 32-bit word boundary of the system and for
// display; the arithmetic between those boundaries is the ripple logic in
// arith.go.

// FromUint returns a vector of the specified width initialised from the
// low-order bits of val. Bits of val above the width are ignored.
func FromUint(val uint, width int) Vector {
	v := make(Vector, width)
	for i := 0; i < width; i++ {
		v[i] = Bit(val&(1<<uint(i)) != 0)
	}
	return v
}

// ToUint returns the value of the vector as a bit-weighted sum: bit i
// contributes 2^i.
func (v Vector) ToUint() uint {
	var val uint
	for i := range v {
		if v[i] {
			val += 1 << uint(i)
		}
	}
	return val
}
