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

// Package debugger is an interactive inspector for the pipelined adder. It
// connects a terminal implementation to a Pipeline instance and lets the
// user clock the pipeline one tick at a time, watching operands move through
// the stage registers.
package debugger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/thamada/fp32add/curated"
	"github.com/thamada/fp32add/debugger/terminal"
	"github.com/thamada/fp32add/fpu"
	"github.com/thamada/fp32add/logger"
)

const prompt = "[fp32add] "

// default file written by the DUMP command.
const dumpFile = "pipeline.dot"

// Debugger is the connection between the terminal and the pipeline being
// inspected.
type Debugger struct {
	term terminal.Terminal
	pipe *fpu.Pipeline

	// the operand pair injected on every STEP. set with the INSERT command
	opA uint32
	opB uint32

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The rounding flag selects the pipeline variant being inspected.
func NewDebugger(term terminal.Terminal, rounding bool) *Debugger {
	return &Debugger{
		term: term,
		pipe: fpu.NewPipeline(rounding),
	}
}

// Start the input loop. The function returns when the user quits or when
// input is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	if dbg.term.IsInteractive() {
		dbg.term.TermPrintLine(terminal.StyleFeedback, "type HELP for the list of commands")
	}

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseCommand(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// parseCommand tokenizes one line of input and dispatches it. Commands are
// case insensitive.
func (dbg *Debugger) parseCommand(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	handler, ok := commands[command]
	if !ok {
		return curated.Errorf("debugger: unrecognised command (%s)", command)
	}

	return handler(dbg, args)
}

// the command dispatch table. the HELP command iterates over this map so
// every command must appear here.
var commands = map[string]func(*Debugger, []string) error{
	"COMPUTE": cmdCompute,
	"DUMP":    cmdDump,
	"HELP":    cmdHelp,
	"INSERT":  cmdInsert,
	"LOG":     cmdLog,
	"PRINT":   cmdPrint,
	"QUIT":    cmdQuit,
	"RESET":   cmdReset,
	"STEP":    cmdStep,
}

var commandsHelp = map[string]string{
	"COMPUTE": "COMPUTE <a> <b> - run the operand pair through the reference path",
	"DUMP":    "DUMP [file] - write a graph of the pipeline structure to a DOT file",
	"HELP":    "HELP - this",
	"INSERT":  "INSERT <a> <b> - set the operand pair injected on every STEP",
	"LOG":     "LOG - show the application log",
	"PRINT":   "PRINT - show the stage registers",
	"QUIT":    "QUIT - leave the debugger",
	"RESET":   "RESET - clear the pipeline and restart the latency count",
	"STEP":    "STEP [n] - clock the pipeline n times (default 1)",
}

// parseWord reads a 32-bit word from a command argument. hexadecimal with or
// without an 0x prefix.
func parseWord(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, curated.Errorf("debugger: not a 32-bit word (%s)", s)
	}
	return uint32(v), nil
}

func cmdCompute(dbg *Debugger, args []string) error {
	if len(args) != 2 {
		return curated.Errorf("debugger: COMPUTE wants two operands")
	}

	a, err := parseWord(args[0])
	if err != nil {
		return err
	}
	b, err := parseWord(args[1])
	if err != nil {
		return err
	}

	dbg.term.TermPrintLine(terminal.StyleOutput, fmt.Sprintf("%08x", fpu.Compute(a, b)))

	return nil
}

func cmdDump(dbg *Debugger, args []string) error {
	path := dumpFile
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.pipe)
	logger.Logf("debugger", "pipeline structure written to %s", path)
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("written %s", path))

	return nil
}

func cmdHelp(dbg *Debugger, _ []string) error {
	keys := make([]string, 0, len(commandsHelp))
	for k := range commandsHelp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dbg.term.TermPrintLine(terminal.StyleFeedback, commandsHelp[k])
	}

	return nil
}

func cmdInsert(dbg *Debugger, args []string) error {
	if len(args) != 2 {
		return curated.Errorf("debugger: INSERT wants two operands")
	}

	a, err := parseWord(args[0])
	if err != nil {
		return err
	}
	b, err := parseWord(args[1])
	if err != nil {
		return err
	}

	dbg.opA = a
	dbg.opB = b
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("operands: %08x %08x", a, b))

	return nil
}

func cmdLog(dbg *Debugger, _ []string) error {
	s := &strings.Builder{}
	logger.Write(s)
	if s.Len() == 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, "log is empty")
		return nil
	}
	dbg.term.TermPrintLine(terminal.StyleOutput, strings.TrimRight(s.String(), "\n"))
	return nil
}

func cmdPrint(dbg *Debugger, _ []string) error {
	dbg.term.TermPrintLine(terminal.StyleOutput, dbg.pipe.String())
	return nil
}

func cmdQuit(dbg *Debugger, _ []string) error {
	dbg.running = false
	return nil
}

func cmdReset(dbg *Debugger, _ []string) error {
	dbg.pipe.Reset()
	dbg.term.TermPrintLine(terminal.StyleFeedback, "pipeline reset")
	return nil
}

func cmdStep(dbg *Debugger, args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return curated.Errorf("debugger: not a step count (%s)", args[0])
		}
	}

	for i := 0; i < n; i++ {
		result, ready := dbg.pipe.Tick(dbg.opA, dbg.opB)
		dbg.term.TermPrintLine(terminal.StyleOutput,
			fmt.Sprintf("%s: %08x (ready=%v)", dbg.pipe.State(), result, ready))
	}

	return nil
}
