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

package fpu_test

import (
	"testing"

	"github.com/thamada/fp32add/fpu"
	"github.com/thamada/fp32add/test"
)

func TestPipelineLatency(t *testing.T) {
	p := fpu.NewPipeline(false)

	// after a reset the first two ticks are not ready; the third and every
	// tick after that is
	var ready bool
	_, ready = p.Tick(0x3f800000, 0x3f800000)
	test.ExpectEquality(t, ready, false)
	_, ready = p.Tick(0x3f800000, 0x3f800000)
	test.ExpectEquality(t, ready, false)

	var result uint32
	for i := 0; i < 10; i++ {
		result, ready = p.Tick(0x3f800000, 0x3f800000)
		test.ExpectEquality(t, ready, true)
		test.ExpectEquality(t, result, uint32(0x40000000))
	}

	// a reset empties the pipe and restarts the latency count
	p.Reset()
	test.ExpectEquality(t, p.State(), fpu.StateReset)

	_, ready = p.Tick(0x40000000, 0xbf800000)
	test.ExpectEquality(t, ready, false)
	_, ready = p.Tick(0x40000000, 0xbf800000)
	test.ExpectEquality(t, ready, false)
	result, ready = p.Tick(0x40000000, 0xbf800000)
	test.ExpectEquality(t, ready, true)
	test.ExpectEquality(t, result, uint32(0x3f800000))
}

func TestPipelineThroughput(t *testing.T) {
	// one new operand pair enters on every tick and, once the pipe is full,
	// one result leaves on every tick, delayed by exactly two ticks from its
	// injection
	pairs := [][2]uint32{
		{0x3f800000, 0x3f800000}, // 1.0 + 1.0
		{0x40000000, 0xbf800000}, // 2.0 + (-1.0)
		{0x3f800000, 0xbf800000}, // 1.0 + (-1.0)
		{0x40a00000, 0xc0400000}, // 5.0 + (-3.0)
		{0x3fc00000, 0x40100000}, // 1.5 + 2.25
		{0x42c80000, 0x3f000000}, // 100.0 + 0.5
	}

	p := fpu.NewPipeline(false)

	for i, pair := range pairs {
		result, ready := p.Tick(pair[0], pair[1])

		if i < 2 {
			test.ExpectEquality(t, ready, false)
			continue
		}

		test.ExpectEquality(t, ready, true)

		// the result surfacing now was injected two ticks ago
		injected := pairs[i-2]
		test.ExpectEquality(t, result, fpu.Compute(injected[0], injected[1]))
	}
}

// the no-round pipeline at steady state must agree with the Compute()
// reference path for every operand pair
func TestPipelineAgainstCompute(t *testing.T) {
	words := []uint32{
		0x3f800000, 0xbf800000,
		0x40490fdb, 0x3dcccccd,
		0x7f000000, 0x00800000,
		0x42f60000, 0xc2c80000,
		0x00000000, 0xffffffff,
	}

	p := fpu.NewPipeline(false)

	type pending struct {
		a, b uint32
	}
	var queue []pending

	for _, a := range words {
		for _, b := range words {
			result, ready := p.Tick(a, b)
			queue = append(queue, pending{a: a, b: b})

			if !ready {
				continue
			}

			// pop the pair injected two ticks ago
			injected := queue[len(queue)-3]
			test.ExpectEquality(t, result, fpu.Compute(injected.a, injected.b))
		}
	}
}

func TestPipelineRoundingVariant(t *testing.T) {
	p := fpu.NewPipeline(true)
	test.ExpectEquality(t, p.Rounding(), true)

	// 1.0 + 1.0 leaves no residual bit in the guard position so the rounding
	// step has nothing to do: the word surfacing two ticks after injection
	// is exactly 2.0
	p.Tick(0x3f800000, 0x3f800000)
	p.Tick(0x3f800000, 0x3f800000)
	result, ready := p.Tick(0x3f800000, 0x3f800000)
	test.ExpectEquality(t, ready, true)
	test.ExpectEquality(t, result, uint32(0x40000000))

	// 1.0 + 2^-24 (0x33800000) aligns the small significand 24 places to the
	// right, leaving only the guard bit set. the rounding variant bumps the
	// fraction by one in response
	p.Reset()
	p.Tick(0x3f800000, 0x33800000)
	p.Tick(0x3f800000, 0x33800000)
	result, ready = p.Tick(0x3f800000, 0x33800000)
	test.ExpectEquality(t, ready, true)
	test.ExpectEquality(t, result, uint32(0x3f800001))

	// the no-round variant truncates the same pair back to 1.0
	test.ExpectEquality(t, fpu.Compute(0x3f800000, 0x33800000), uint32(0x3f800000))
}
