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

package main

import (
	"strings"
	"testing"

	"github.com/thamada/fp32add/fpu"
	"github.com/thamada/fp32add/test"
)

func TestStream(t *testing.T) {
	input := strings.NewReader(`# comment lines and blank lines are skipped

3f800000 3f800000
40000000 bf800000
0x3f800000 0xbf800000
`)

	output := &strings.Builder{}
	err := stream(output, input, false, true)
	test.ExpectSuccess(t, err)

	expected := "3f800000 + 3f800000 = 40000000\n" +
		"40000000 + bf800000 = 3f800000\n" +
		"3f800000 + bf800000 = 00000000\n"
	test.ExpectEquality(t, output.String(), expected)
}

func TestStreamBadOperand(t *testing.T) {
	input := strings.NewReader("3f800000 xyz\n")
	err := stream(&strings.Builder{}, input, false, false)
	test.ExpectFailure(t, err)
}

func BenchmarkPipeline(b *testing.B) {
	pipe := fpu.NewPipeline(false)
	for i := 0; i < b.N; i++ {
		pipe.Tick(0x3f800000, 0x40490fdb)
	}
}
