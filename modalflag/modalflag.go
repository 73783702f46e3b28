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

// Package modalflag is a wrapper around the flag package in the Go standard
// library. It provides an easy way of handling command line arguments that
// are divided into sub-modes (RUN, DEBUG, etc.), where each sub-mode has its
// own set of flags.
//
// A Modes value is initialised with NewArgs(). Sub-modes for the next call
// to Parse() are declared with AddSubModes(); the first declared sub-mode is
// the default, selected when the first argument matches no sub-mode. After a
// successful Parse() the selected sub-mode is available through Mode() and a
// new flag set for that mode can be built up after a call to NewMode().
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc). should be specified before
	// Parse() is called
	Output io.Writer

	// the underlying flag set. a new one is created on every call to
	// NewArgs() and NewMode()
	flags *flag.FlagSet

	// the arguments not yet consumed by Parse()
	args []string

	// the list of sub-modes for the next call to Parse()
	subModes []string

	// the series of sub-modes encountered over successive calls to Parse().
	// never reset
	path []string

	// some modes benefit from a verbose explanation in the help output
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last sub-mode encountered by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the sub-modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes value with a string of arguments, from the
// command line for example.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new sub-mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AddSubModes declares the list of sub-modes for the next call to Parse().
// The first sub-mode in the list is the default. Sub-mode comparison is case
// insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp adds explanatory text to be displayed in addition to the
// regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments, consuming a sub-mode name if any have
// been declared. Help messages are printed to the Output field
// automatically; the ParseHelp return value exists so the caller can wind up
// quietly in that event.
func (md *Modes) Parse() (ParseResult, error) {
	// the flag package writes its own messages on error. we quieten it and
	// compose the help output ourselves
	md.flags.SetOutput(io.Discard)

	if err := md.flags.Parse(md.args); err != nil {
		if err == flag.ErrHelp {
			md.printHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		// assume the default sub-mode until the first argument says
		// otherwise
		mode := md.subModes[0]

		arg := strings.ToUpper(md.GetArg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.args = md.args[1:]
				break
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp() {
	if md.Output == nil {
		return
	}

	if md.Path() != "" {
		fmt.Fprintf(md.Output, "Usage of %s mode:\n", md.Path())
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}

	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "  sub-modes: %s (default %s)\n",
			strings.Join(md.subModes, ", "), md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments left after a call to Parse(), not
// including any consumed sub-mode name.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered argument left after a call to Parse().
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}
