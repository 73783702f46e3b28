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

// Package fpu is a bit-accurate model of a clocked, three-stage pipelined
// IEEE-754 single-precision floating point adder.
//
// The model reproduces the original circuit faithfully, which means it keeps
// the circuit's quirks. There is no handling of NaN, infinity or subnormal
// patterns: every 32-bit word is unpacked as a normalized value with the
// hidden bit forced to one, whatever its exponent field says. Results that
// would be subnormal flush toward zero when normalization runs out of
// exponent. The optional rounding step is the circuit's own heuristic of
// rounding up whenever the discarded bit is set; it is not round-to-nearest
// even and the increment's carry never reaches the exponent. Layering IEEE
// special-value semantics on top is a job for the caller.
//
// The Pipeline type is the clocked realization. One call to Tick() is one
// clock cycle: a fresh operand pair enters stage 1, every stage latches the
// work of the stage before it, and a packed word leaves stage 3. Results are
// meaningful from the third tick after a reset, and one result leaves the
// pipe on every tick after that.
//
// The Compute() function is the same datapath run end to end in a single
// step. It is the reference oracle for the pipeline's steady-state output.
//
// Internally all significand and exponent arithmetic goes through the ripple
// primitives of the bits package. Nothing in the datapath ever computes with
// native integers; the contract of the model is the bit-serial behaviour,
// including its saturation and wraparound corners.
package fpu
