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

package logger_test

import (
	"testing"

	"github.com/thamada/fp32add/logger"
	"github.com/thamada/fp32add/test"
)

func TestWriteAndClear(t *testing.T) {
	logger.Clear()
	logger.Log("pipeline", "reset")
	logger.Log("fpu", "exponent underflow")

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare("pipeline: reset\nfpu: exponent underflow\n"))

	logger.Clear()
	w.Clear()
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare(""))
}

func TestRepeatCompression(t *testing.T) {
	logger.Clear()
	logger.Log("fpu", "exponent underflow")
	logger.Log("fpu", "exponent underflow")
	logger.Log("fpu", "exponent underflow")

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare("fpu: exponent underflow (repeat x3)\n"))
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Logf("test", "entry %d", 1)
	logger.Logf("test", "entry %d", 2)
	logger.Logf("test", "entry %d", 3)

	w := &test.CompareWriter{}
	logger.Tail(w, 2)
	test.ExpectSuccess(t, w.Compare("test: entry 2\ntest: entry 3\n"))

	// a tail longer than the log is the whole log
	w.Clear()
	logger.Tail(w, 100)
	test.ExpectSuccess(t, w.Compare("test: entry 1\ntest: entry 2\ntest: entry 3\n"))
}
