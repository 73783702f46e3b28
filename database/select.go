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

// SelectAll entries in the database, in key order. The onSelect function is
// called once per entry; returning an error from it stops the selection and
// propagates the error outward.
func (db Session) SelectAll(onSelect func(int, Entry) error) error {
	if onSelect == nil {
		return nil
	}

	for _, key := range db.SortedKeyList() {
		if err := onSelect(key, db.entries[key]); err != nil {
			return err
		}
	}

	return nil
}
