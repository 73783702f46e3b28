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
	"fmt"
	"strings"

	"github.com/thamada/fp32add/bits"
)

// State records how far the pipeline has filled since the last reset.
type State int

// Valid State values. The pipeline advances one state per tick until it
// reaches Steady, where it remains until the next reset.
const (
	StateReset State = iota
	StateFilling1
	StateFilling2
	StateSteady
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateFilling1:
		return "filling (1)"
	case StateFilling2:
		return "filling (2)"
	case StateSteady:
		return "steady"
	}
	return "unknown"
}

// latch is a single pipeline stage register: a payload and a flag saying
// whether the payload derives from a real operand pair or from the zeroed
// reset state.
type latch[T any] struct {
	payload T
	valid   bool
}

// Pipeline is the clocked three-stage realization of the adder.
//
//	stage 1: unpack + align
//	stage 2: combine + normalize
//	stage 3: round (optional) + pack
//
// The Pipeline owns the three stage registers exclusively. Nothing else in
// the program holds state across ticks; every combinational value is
// recomputed from the registers on each call to Tick().
type Pipeline struct {
	// whether stage 3 applies the rounding heuristic before packing
	rounding bool

	state  State
	stage1 latch[aligned]
	stage2 latch[combined]
	stage3 latch[uint32]
}

// NewPipeline is the preferred method of initialisation of the Pipeline
// type. The rounding flag selects the variant of the circuit being modelled:
// with or without the round step in the final stage.
func NewPipeline(rounding bool) *Pipeline {
	p := &Pipeline{rounding: rounding}
	p.Reset()
	return p
}

// Reset synchronously clears every stage register and returns the state
// machine to its initial state. The next three ticks refill the pipe.
func (p *Pipeline) Reset() {
	p.state = StateReset
	p.stage1 = latch[aligned]{payload: zeroAligned()}
	p.stage2 = latch[combined]{payload: zeroCombined()}
	p.stage3 = latch[uint32]{}
}

// Tick advances the pipeline by one clock cycle, injecting the operand pair
// into stage 1. The returned word is the current stage 3 output; the ready
// flag says whether that word is meaningful yet. After a reset the first two
// ticks report ready=false and the third and all subsequent ticks report
// ready=true, giving the pipe its fixed three-cycle latency and a throughput
// of one result per tick.
//
// Tick is not reentrant. Callers must serialize calls; the function itself
// never blocks.
func (p *Pipeline) Tick(a, b uint32) (uint32, bool) {
	// each assignment latches a value computed from the stage below as it
	// stood at the end of the previous tick. the order of the three
	// assignments is what makes this true without double-buffering.
	p.stage3 = latch[uint32]{
		payload: p.packStage(p.stage2.payload),
		valid:   p.stage2.valid,
	}
	p.stage2 = latch[combined]{
		payload: normalize(combine(p.stage1.payload)),
		valid:   p.stage1.valid,
	}
	p.stage1 = latch[aligned]{
		payload: align(unpack(a), unpack(b)),
		valid:   true,
	}

	switch p.state {
	case StateReset:
		p.state = StateFilling1
	case StateFilling1:
		p.state = StateFilling2
	case StateFilling2:
		p.state = StateSteady
	}

	return p.stage3.payload, p.state == StateSteady
}

// packStage is the stage 3 combinational logic: fraction extraction, the
// optional round step and final packing.
func (p *Pipeline) packStage(c combined) uint32 {
	var f bits.Vector
	if p.rounding {
		f = roundFraction(c.magnitude)
	} else {
		f = fraction(c.magnitude)
	}
	return pack(c.sign, c.exponent, f)
}

// State returns the current fill state of the pipeline.
func (p *Pipeline) State() State {
	return p.state
}

// Rounding returns true if the pipeline is modelling the rounding variant of
// the circuit.
func (p *Pipeline) Rounding() bool {
	return p.rounding
}

func (p *Pipeline) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("state: %s\n", p.state))
	s.WriteString(fmt.Sprintf("stage 1: large=%s small=%s exp=%s (valid=%v)\n",
		p.stage1.payload.large, p.stage1.payload.small,
		p.stage1.payload.exponent, p.stage1.valid))
	s.WriteString(fmt.Sprintf("stage 2: mag=%s exp=%s sign=%v (valid=%v)\n",
		p.stage2.payload.magnitude, p.stage2.payload.exponent,
		p.stage2.payload.sign, p.stage2.valid))
	s.WriteString(fmt.Sprintf("stage 3: %#08x (valid=%v)", p.stage3.payload, p.stage3.valid))
	return s.String()
}
