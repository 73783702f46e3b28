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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thamada/fp32add/regression"
)

func writeFile(path string, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

func TestAddAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regressionDB")
	output := &strings.Builder{}

	// both variants of the circuit
	require.NoError(t, regression.Add(path, output, 0x3f800000, 0x3f800000, false))
	require.NoError(t, regression.Add(path, output, 0x40000000, 0xbf800000, false))
	require.NoError(t, regression.Add(path, output, 0x3f800000, 0x33800000, true))

	output.Reset()
	numFail, err := regression.Run(path, output)
	require.NoError(t, err)
	assert.Equal(t, 0, numFail)
	assert.Contains(t, output.String(), "3 entries, 0 failures")

	// the observed expectations are the known results
	output.Reset()
	require.NoError(t, regression.List(path, output))
	assert.Contains(t, output.String(), "3f800000 + 3f800000 = 40000000")
	assert.Contains(t, output.String(), "40000000 + bf800000 = 3f800000")
	assert.Contains(t, output.String(), "3f800000 + 33800000 = 3f800001")
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regressionDB")
	output := &strings.Builder{}

	require.NoError(t, regression.Add(path, output, 0x3f800000, 0xbf800000, false))

	// a negative confirmation leaves the entry in place
	require.NoError(t, regression.Delete(path, output, strings.NewReader("n\n"), "0"))

	output.Reset()
	numFail, err := regression.Run(path, output)
	require.NoError(t, err)
	assert.Equal(t, 0, numFail)
	assert.Contains(t, output.String(), "1 entries")

	require.NoError(t, regression.Delete(path, output, strings.NewReader("y\n"), "0"))

	output.Reset()
	numFail, err = regression.Run(path, output)
	require.NoError(t, err)
	assert.Equal(t, 0, numFail)
	assert.Contains(t, output.String(), "0 entries")

	// deleting a key that does not exist is an error
	assert.Error(t, regression.Delete(path, output, strings.NewReader("y\n"), "42"))
	assert.Error(t, regression.Delete(path, output, strings.NewReader("y\n"), "not-a-key"))
}

func TestRunDetectsDivergence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regressionDB")
	output := &strings.Builder{}

	// write an entry with a deliberately wrong expectation by hand
	require.NoError(t, regression.Add(path, output, 0x3f800000, 0x3f800000, false))

	data := "000,vector,3f800000,3f800000,false,deadbeef\n"
	require.NoError(t, writeFile(path, data))

	output.Reset()
	numFail, err := regression.Run(path, output)
	require.NoError(t, err)
	assert.Equal(t, 1, numFail)
	assert.Contains(t, output.String(), "FAIL")
}
