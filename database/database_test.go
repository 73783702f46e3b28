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

package database_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thamada/fp32add/database"
)

type testEntry struct {
	value string
}

func (e testEntry) ID() string {
	return "test"
}

func (e testEntry) String() string {
	return e.value
}

func (e testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{e.value}, nil
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	return testEntry{value: fields[0]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_db")

	// create and populate
	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	require.NoError(t, err)

	require.NoError(t, db.Add(testEntry{value: "first"}))
	require.NoError(t, db.Add(testEntry{value: "second"}))
	assert.Equal(t, 2, db.NumEntries())

	require.NoError(t, db.EndSession(true))

	// read back
	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	require.NoError(t, err)
	assert.Equal(t, 2, db.NumEntries())

	ent, err := db.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "first", ent.String())

	// read-only sessions cannot be modified
	assert.Error(t, db.Add(testEntry{value: "third"}))
	assert.Error(t, db.Delete(0))
	assert.Error(t, db.EndSession(true))
}

func TestSessionDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	require.NoError(t, err)

	require.NoError(t, db.Add(testEntry{value: "first"}))
	require.NoError(t, db.Add(testEntry{value: "second"}))
	require.NoError(t, db.Delete(0))
	require.NoError(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityReading, initTestSession)
	require.NoError(t, err)
	assert.Equal(t, 1, db.NumEntries())

	// the surviving entry keeps its original key
	ent, err := db.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "second", ent.String())

	_, err = db.Get(0)
	assert.Error(t, err)
}

func TestSessionList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	require.NoError(t, err)

	s := &strings.Builder{}
	require.NoError(t, db.List(s))
	assert.Equal(t, "database is empty\n", s.String())

	require.NoError(t, db.Add(testEntry{value: "only"}))

	s.Reset()
	require.NoError(t, db.List(s))
	assert.Equal(t, "000 only\nTotal: 1\n", s.String())

	require.NoError(t, db.EndSession(false))
}

func TestUnrecognisedEntryType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_db")

	db, err := database.StartSession(path, database.ActivityCreating, initTestSession)
	require.NoError(t, err)
	require.NoError(t, db.Add(testEntry{value: "first"}))
	require.NoError(t, db.EndSession(true))

	// open the same file without registering the entry type
	_, err = database.StartSession(path, database.ActivityReading, nil)
	assert.Error(t, err)
}
