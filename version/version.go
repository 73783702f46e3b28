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

// Package version records the version of the application and the vcs
// revision it was built from.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "FP32Add"

// Revision contains the vcs revision. If the source had been modified but
// not committed at build time then the string is suffixed with "+dirty".
//
// A value of "unknown" means the binary was built without vcs information,
// with "go run ." for example.
var Revision = "unknown"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" {
		Revision = revision
		if modified {
			Revision += "+dirty"
		}
	}
}
