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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the stats server. A soak run streaming operand pairs through
// the pipeline can be watched live at this address while it works.
const Address = "localhost:12632"

// the statsview viewer mounts itself at this path.
const page = "/debug/statsview"

// Launch the stats server in its own goroutine and tell the user where to
// find it. The server runs for the remainder of the process; there is no
// shutdown control beyond process exit.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	go statsview.New().Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, page)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
