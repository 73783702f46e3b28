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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/thamada/fp32add/modalflag"
	"github.com/thamada/fp32add/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})
	md.AddSubModes("RUN", "DEBUG")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"debug", "operands.txt"})
	md.AddSubModes("RUN", "DEBUG")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)

	// sub-mode matching is case insensitive and the matched argument is
	// consumed
	test.ExpectEquality(t, md.Mode(), "DEBUG")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "operands.txt")
}

func TestUnrecognisedSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"operands.txt"})
	md.AddSubModes("RUN", "DEBUG")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)

	// an unrecognised first argument selects the default sub-mode and is
	// not consumed
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "operands.txt")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"run", "-round", "operands.txt"})
	md.AddSubModes("RUN", "DEBUG")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	round := md.AddBool("round", false, "round results")

	res, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, *round, true)
	test.ExpectEquality(t, md.GetArg(0), "operands.txt")
}

func TestNestedSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"regress", "list"})
	md.AddSubModes("RUN", "DEBUG", "REGRESS")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "REGRESS")

	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")

	res, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "LIST")
	test.ExpectEquality(t, md.Path(), "REGRESS/LIST")
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "DEBUG")

	res, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, modalflag.ParseHelp)
	test.ExpectEquality(t, strings.Contains(output.String(), "sub-modes: RUN, DEBUG (default RUN)"), true)
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-no-such-flag"})

	res, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, res, modalflag.ParseError)
}
