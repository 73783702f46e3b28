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

package database

import (
	"os"
	"strconv"
	"strings"

	"github.com/thamada/fp32add/curated"
)

// Activity describes the type of work that will be done during a session.
type Activity int

// Valid Activity values.
const (
	// reading allows existing entries to be read but not added to or deleted.
	ActivityReading Activity = iota

	// modifying allows entries to be added and deleted. the database file
	// must already exist.
	ActivityModifying

	// creating is the same as modifying except that the database file is
	// created if it does not already exist.
	ActivityCreating
)

// Session keeps track of a database open for the duration of some activity.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession opens the database file at path and deserialises every entry
// in it. The init function is called before reading begins and should
// register the entry types the caller expects to find.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}

	for i, record := range strings.Split(string(data), entrySep) {
		if strings.TrimSpace(record) == "" {
			continue
		}

		fields := strings.Split(record, fieldSep)
		if len(fields) < numLeaderFields {
			return nil, curated.Errorf("database: malformed record (line %d)", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return nil, curated.Errorf("database: invalid key (line %d)", i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return nil, curated.Errorf("database: %v", err)
		}

		if _, ok := db.entries[key]; ok {
			return nil, curated.Errorf("database: duplicate key (%03d)", key)
		}
		db.entries[key] = ent
	}

	return db, nil
}

// EndSession closes the database, writing entries back to disk if the
// session activity allows it and the commit flag is set.
func (db *Session) EndSession(commit bool) error {
	if commit {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit a read-only session")
		}

		s := strings.Builder{}
		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s.WriteString(recordHeader(key, ent.ID()))
			for _, f := range ser {
				s.WriteString(fieldSep)
				s.WriteString(f)
			}
			s.WriteString(entrySep)
		}

		if err := os.WriteFile(db.path, []byte(s.String()), 0644); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	db.entries = nil
	db.entryTypes = nil

	return nil
}
