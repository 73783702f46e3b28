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

package regression

import (
	"fmt"
	"strconv"

	"github.com/thamada/fp32add/curated"
	"github.com/thamada/fp32add/database"
	"github.com/thamada/fp32add/fpu"
)

const vectorEntryID = "vector"

const (
	vectorFieldA int = iota
	vectorFieldB
	vectorFieldRounding
	vectorFieldExpected
	numVectorFields
)

// VectorEntry is a single stored test vector: an operand pair, the pipeline
// variant it runs on, and the 32-bit word the pipeline is expected to emit
// at steady state.
type VectorEntry struct {
	A        uint32
	B        uint32
	Rounding bool
	Expected uint32
}

func deserialiseVectorEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numVectorFields {
		return nil, curated.Errorf("regression: wrong number of vector fields (%d)", len(fields))
	}

	ent := &VectorEntry{}

	words := []struct {
		field int
		word  *uint32
	}{
		{vectorFieldA, &ent.A},
		{vectorFieldB, &ent.B},
		{vectorFieldExpected, &ent.Expected},
	}

	for _, w := range words {
		v, err := strconv.ParseUint(fields[w.field], 16, 32)
		if err != nil {
			return nil, curated.Errorf("regression: invalid word field (%s)", fields[w.field])
		}
		*w.word = uint32(v)
	}

	rounding, err := strconv.ParseBool(fields[vectorFieldRounding])
	if err != nil {
		return nil, curated.Errorf("regression: invalid rounding field (%s)", fields[vectorFieldRounding])
	}
	ent.Rounding = rounding

	return ent, nil
}

// ID implements the database.Entry interface.
func (ent VectorEntry) ID() string {
	return vectorEntryID
}

// String implements the database.Entry interface.
func (ent VectorEntry) String() string {
	variant := "no-round"
	if ent.Rounding {
		variant = "lsb-round"
	}
	return fmt.Sprintf("[%s] %08x + %08x = %08x (%s)", ent.ID(), ent.A, ent.B, ent.Expected, variant)
}

// Serialise implements the database.Entry interface.
func (ent VectorEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		fmt.Sprintf("%08x", ent.A),
		fmt.Sprintf("%08x", ent.B),
		strconv.FormatBool(ent.Rounding),
		fmt.Sprintf("%08x", ent.Expected),
	}, nil
}

// run the operand pair through a fresh pipeline of the required variant and
// return the first steady-state word. three ticks of the same pair cover the
// fill latency.
func (ent VectorEntry) run() uint32 {
	p := fpu.NewPipeline(ent.Rounding)
	p.Tick(ent.A, ent.B)
	p.Tick(ent.A, ent.B)
	result, _ := p.Tick(ent.A, ent.B)
	return result
}

// regress replays the vector. The pipeline output must match the stored
// expectation and, for the no-round variant, the Compute() reference path
// must agree with it too.
func (ent VectorEntry) regress() (bool, string) {
	result := ent.run()
	if result != ent.Expected {
		return false, fmt.Sprintf("pipeline emitted %08x, expected %08x", result, ent.Expected)
	}

	if !ent.Rounding {
		if oracle := fpu.Compute(ent.A, ent.B); oracle != ent.Expected {
			return false, fmt.Sprintf("reference path emitted %08x, expected %08x", oracle, ent.Expected)
		}
	}

	return true, ""
}
