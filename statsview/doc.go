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

// Package statsview is an optional package built only when the statsview
// build constraint is present.
//
// It provides a HTTP server running locally offering runtime statistics,
// which is useful when soak-testing the pipeline over very long tick
// streams. Underlying functionality provided by
// "github.com/go-echarts/statsview".
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12632/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12632/debug/pprof/
package statsview
