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

// Package database is a very simple way of storing structured entries of
// arbitrary types. It is as simple as simple can be but is still useful in
// helping to organise what is essentially a flat file.
//
// Use of a database requires starting a "session" with the StartSession()
// function, coupled with an EndSession() once we're done. For example (error
// handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on disk. The second is
// a description of the activity that will happen during the session: reading
// only, modifying an existing file, or creating the file if it does not yet
// exist.
//
// The third argument is the initialisation function. It is called before any
// reading takes place and should register the entry types the database file
// may contain:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("vector", deserialiseVectorEntry)
//	}
//
// On reading, each record's type field selects the registered deserialiser,
// which receives the record's remaining fields and returns a value satisfying
// the Entry interface. An error from a deserialiser causes StartSession() to
// fail with that error.
//
// Once a session has initialised, entries can be added, deleted, listed and
// selected; activity type permitting. EndSession() with the commit flag set
// serialises every entry back to the flat file.
package database
