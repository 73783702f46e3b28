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

import "strings"

// Bit is a single binary digit, implemented as a simple boolean.
type Bit bool

// Vector is a fixed-width ordered sequence of bits. Index 0 is the least
// significant bit. The width of a vector is fixed at construction; none of
// the functions in this package ever grow or shrink a vector.
type Vector []Bit

// Zero returns a vector of the specified width with every bit unset.
func Zero(width int) Vector {
	return make(Vector, width)
}

// Width returns the number of bits in the vector.
func (v Vector) Width() int {
	return len(v)
}

// IsZero returns true if no bit in the vector is set.
func (v Vector) IsZero() bool {
	for i := range v {
		if v[i] {
			return false
		}
	}
	return true
}

// Copy returns a new vector with the same width and bit values.
func (v Vector) Copy() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// String returns the vector as a bit pattern of '0' and '1', most significant
// bit first. The display order is the opposite of the indexing order.
func (v Vector) String() string {
	s := strings.Builder{}
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	return s.String()
}
