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

// Package regression keeps a database of test vectors for the pipelined
// adder and replays them on demand. Each stored vector records an operand
// pair, the circuit variant it runs on and the word the pipeline emitted
// when the vector was added. A regression run fails if a replay emits
// anything else, or if the no-round pipeline disagrees with the Compute()
// reference path.
package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/thamada/fp32add/curated"
	"github.com/thamada/fp32add/database"
	"github.com/thamada/fp32add/logger"
)

// when starting a database session we need to register the entry types we
// expect to find.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(vectorEntryID, deserialiseVectorEntry)
}

// List displays every entry in the regression database.
func List(path string, output io.Writer) error {
	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// Add a new vector to the regression database. The vector is run first and
// the observed pipeline output is stored as the expectation for future runs.
func Add(path string, output io.Writer, a, b uint32, rounding bool) error {
	db, err := database.StartSession(path, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent := VectorEntry{A: a, B: b, Rounding: rounding}
	ent.Expected = ent.run()

	if err := db.Add(ent); err != nil {
		return err
	}

	fmt.Fprintf(output, "added: %s\n", ent)

	return nil
}

// Delete the vector with the specified key. The confirmation reader is asked
// before anything is removed; anything other than a leading 'y' aborts.
func Delete(path string, output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	db, err := database.StartSession(path, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return err
		}
		fmt.Fprintf(output, "deleted test #%s from regression database\n", key)
	}

	return nil
}

// Run replays every vector in the regression database. The number of
// failures is returned; details of each failure go to the output writer and
// to the central logger.
func Run(path string, output io.Writer) (int, error) {
	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		return 0, err
	}
	defer db.EndSession(false)

	numFail := 0

	err = db.SelectAll(func(key int, ent database.Entry) error {
		vec, ok := ent.(*VectorEntry)
		if !ok {
			return curated.Errorf("regression: unexpected entry type (%s)", ent.ID())
		}

		ok, detail := vec.regress()
		if ok {
			fmt.Fprintf(output, "ok   %03d %s\n", key, vec)
		} else {
			numFail++
			fmt.Fprintf(output, "FAIL %03d %s: %s\n", key, vec, detail)
			logger.Logf("regression", "#%03d: %s", key, detail)
		}

		return nil
	})
	if err != nil {
		return numFail, err
	}

	fmt.Fprintf(output, "%d entries, %d failures\n", db.NumEntries(), numFail)

	return numFail, nil
}
