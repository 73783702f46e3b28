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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thamada/fp32add/debugger"
	"github.com/thamada/fp32add/debugger/terminal"
	"github.com/thamada/fp32add/debugger/terminal/colorterm"
	"github.com/thamada/fp32add/debugger/terminal/plainterm"
	"github.com/thamada/fp32add/fpu"
	"github.com/thamada/fp32add/logger"
	"github.com/thamada/fp32add/modalflag"
	"github.com/thamada/fp32add/regression"
	"github.com/thamada/fp32add/statsview"
	"github.com/thamada/fp32add/version"
)

const defaultDBFile = "regressionDB"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// parseWord interprets a string as a 32 bit hexadecimal word. a 0x prefix is
// allowed but not required.
func parseWord(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	w, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a 32 bit hexadecimal word: %s", s)
	}
	return uint32(w), nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	rounding := md.AddBool("round", false, "round results to the nearest representable value")
	oracle := md.AddBool("oracle", false, "cross-check every result against the single-cycle adder")
	stats := md.AddBool("stats", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`Operand pairs are read one per line, each line being two 32 bit hexadecimal
words separated by whitespace. Pairs are read from the named file, or from stdin
if no file is given. Pairs are fed to the adder pipeline back to back, one pair
per clock tick.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *oracle && *rounding {
		fmt.Println("! oracle models the unrounded adder. rounded results will disagree")
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var input io.Reader

	switch len(md.RemainingArgs()) {
	case 0:
		input = os.Stdin
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return stream(md.Output, input, *rounding, *oracle)
}

// pair is an operand pair waiting to emerge from the pipeline.
type pair struct {
	a uint32
	b uint32
}

// stream feeds every operand pair in input through a pipeline, one pair per
// tick, and prints each sum as it emerges. the pipeline keeps its three stage
// latency only when fed continuously so pending pairs are queued until their
// results are ready.
func stream(output io.Writer, input io.Reader, rounding bool, oracle bool) error {
	pipe := fpu.NewPipeline(rounding)

	pending := make([]pair, 0, 3)
	numMismatch := 0

	emit := func(result uint32) {
		p := pending[0]
		pending = pending[1:]

		fmt.Fprintf(output, "%08x + %08x = %08x\n", p.a, p.b, result)

		if oracle {
			if e := fpu.Compute(p.a, p.b); e != result {
				fmt.Fprintf(output, "! oracle disagrees: %08x\n", e)
				numMismatch++
			}
		}
	}

	scanner := bufio.NewScanner(input)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		flds := strings.Fields(s)
		if len(flds) != 2 {
			return fmt.Errorf("line %d: expected two operands, found %d", lineNum, len(flds))
		}

		a, err := parseWord(flds[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		b, err := parseWord(flds[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		pending = append(pending, pair{a: a, b: b})
		if result, ok := pipe.Tick(a, b); ok {
			emit(result)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	// drain results still in flight
	for len(pending) > 0 {
		if result, ok := pipe.Tick(0, 0); ok {
			emit(result)
		}
	}

	if numMismatch > 0 {
		return fmt.Errorf("%d results disagree with the single-cycle adder", numMismatch)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	rounding := md.AddBool("round", false, "round results to the nearest representable value")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	return debugger.NewDebugger(term, *rounding).Start()
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		db := md.AddString("db", defaultDBFile, "regression database to use")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		numFail, err := regression.Run(*db, md.Output)
		if err != nil {
			return err
		}
		if numFail > 0 {
			return fmt.Errorf("%d tests failed", numFail)
		}

	case "LIST":
		md.NewMode()

		db := md.AddString("db", defaultDBFile, "regression database to use")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		err = regression.List(*db, md.Output)
		if err != nil {
			return err
		}

	case "ADD":
		md.NewMode()

		db := md.AddString("db", defaultDBFile, "regression database to use")
		rounding := md.AddBool("round", false, "round results to the nearest representable value")

		md.AdditionalHelp(
			`The two operands are given as 32 bit hexadecimal words. The expected sum is
computed by the adder pipeline as it is today and stored alongside the operands,
pinning the current behaviour for future runs.`)

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 2 {
			return fmt.Errorf("two operands required for %s mode", md)
		}

		a, err := parseWord(md.GetArg(0))
		if err != nil {
			return err
		}
		b, err := parseWord(md.GetArg(1))
		if err != nil {
			return err
		}

		err = regression.Add(*db, md.Output, a, b, *rounding)
		if err != nil {
			return err
		}

	case "DELETE":
		md.NewMode()

		db := md.AddString("db", defaultDBFile, "regression database to use")
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("database key required for %s mode", md)
		}

		// use stdin for confirmation unless "yes" flag has been given
		var confirmation io.Reader
		if *answerYes {
			confirmation = &yesReader{}
		} else {
			confirmation = os.Stdin
		}

		err = regression.Delete(*db, md.Output, confirmation, md.GetArg(0))
		if err != nil {
			return err
		}
	}

	return nil
}
