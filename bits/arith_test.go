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

package bits_test

import (
	"testing"

	"github.com/thamada/fp32add/bits"
	"github.com/thamada/fp32add/curated"
	"github.com/thamada/fp32add/test"
)

// the widths that appear in the adder datapath
var datapathWidths = []int{8, 24, 25, 26}

func TestCompare(t *testing.T) {
	var cmp bits.Comparison
	var err error

	// a vector always compares equal to itself, at every width the datapath
	// uses
	for _, w := range datapathWidths {
		v := bits.FromUint(0xa5, w)
		cmp, err = bits.Compare(v, v)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, cmp, bits.Equal)
	}

	a := bits.FromUint(0x80, 8)
	b := bits.FromUint(0x7f, 8)

	cmp, err = bits.Compare(a, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp, bits.Greater)

	cmp, err = bits.Compare(b, a)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp, bits.Less)

	// the most significant differing bit decides, whatever the bits below
	// it say
	a = bits.FromUint(0x40, 8)
	b = bits.FromUint(0x3f, 8)
	cmp, err = bits.Compare(a, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp, bits.Greater)

	// operands of different widths are never compared
	_, err = bits.Compare(bits.Zero(8), bits.Zero(24))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bits.WidthMismatch))
}

func TestAdd(t *testing.T) {
	// adding zero is the identity at every datapath width
	for _, w := range datapathWidths {
		v := bits.FromUint(0x55, w)
		sum, carry, err := bits.Add(v, bits.Zero(w))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, carry, bits.Bit(false))
		test.ExpectEquality(t, sum.String(), v.String())
	}

	// carry ripples the full length of the vector
	sum, carry, err := bits.Add(bits.FromUint(0xff, 8), bits.FromUint(0x01, 8))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, carry, bits.Bit(true))
	test.ExpectEquality(t, sum.ToUint(), uint(0))

	sum, carry, err = bits.Add(bits.FromUint(0x7f, 8), bits.FromUint(0x01, 8))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, carry, bits.Bit(false))
	test.ExpectEquality(t, sum.ToUint(), uint(0x80))

	_, _, err = bits.Add(bits.Zero(25), bits.Zero(26))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bits.WidthMismatch))
}

func TestSubtract(t *testing.T) {
	// subtracting a vector from itself gives zero at every datapath width
	for _, w := range datapathWidths {
		v := bits.FromUint(0x5a, w)
		diff, err := bits.Subtract(v, v)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, diff.IsZero())
	}

	diff, err := bits.Subtract(bits.FromUint(0x80, 8), bits.FromUint(0x01, 8))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, diff.ToUint(), uint(0x7f))

	// violating the a >= b precondition wraps around rather than erroring
	diff, err = bits.Subtract(bits.FromUint(0x01, 8), bits.FromUint(0x06, 8))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, diff.ToUint(), uint(0xfb))

	_, err = bits.Subtract(bits.Zero(8), bits.Zero(25))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bits.WidthMismatch))
}

func TestShiftRight(t *testing.T) {
	v := bits.FromUint(0xb4, 8)

	test.ExpectEquality(t, bits.ShiftRight(v, 0).ToUint(), uint(0xb4))
	test.ExpectEquality(t, bits.ShiftRight(v, 1).ToUint(), uint(0x5a))
	test.ExpectEquality(t, bits.ShiftRight(v, 2).ToUint(), uint(0x2d))
	test.ExpectEquality(t, bits.ShiftRight(v, 7).ToUint(), uint(0x01))

	// shifting by the width or more saturates to zero, for every datapath
	// width
	for _, w := range datapathWidths {
		u := bits.FromUint(0xffffff, w)
		for n := w; n < w+3; n++ {
			test.ExpectSuccess(t, bits.ShiftRight(u, n).IsZero())
		}
	}

	// shifting never modifies the operand
	test.ExpectEquality(t, v.ToUint(), uint(0xb4))
}

func TestConversion(t *testing.T) {
	for _, w := range datapathWidths {
		test.ExpectSuccess(t, bits.Zero(w).IsZero())
		test.ExpectEquality(t, bits.Zero(w).Width(), w)
	}

	v := bits.FromUint(0x96, 8)
	test.ExpectEquality(t, v.ToUint(), uint(0x96))
	test.ExpectEquality(t, v.String(), "10010110")

	// bits above the requested width are discarded
	v = bits.FromUint(0x1ff, 8)
	test.ExpectEquality(t, v.ToUint(), uint(0xff))
}
