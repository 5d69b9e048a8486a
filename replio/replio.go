/*
File    : minipyth/replio/replio.go
*/

// Package replio implements an interactive line-at-a-time front-end for
// Minipyth, adapted from the teacher's repl package: each line the user
// enters is itself a complete program, evaluated once against the value
// carried over from the previous line (0 at start and after ".reset"), rather than
// statements accumulating in a shared environment the way go-mix's REPL
// works — Minipyth has no variables or shared state to accumulate (spec
// §5), so every line is an independent invocation of Lex -> Parse -> Forward.
package replio

import (
	"io"
	"strings"

	"github.com/akashmaji946/minipyth/eval"
	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/parser"
	"github.com/akashmaji946/minipyth/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, mirroring the teacher's palette:
// blue for separators, green for the banner, yellow for results, red for
// errors, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Banner is the ASCII art logo displayed when starting the REPL.
const Banner = `
   __  __ _       _              _   _
  |  \/  (_)_ __ (_)_ __  _   _ | |_| |__
  | |\/| | | '_ \| | '_ \| | | || __| '_ \
  | |  | | | | | | | |_) | |_| || |_| | | |
  |_|  |_|_|_| |_|_| .__/ \__, (_)__|_| |_|
                   |_|    |___/
`

// Line is the separator used around the banner.
const Line = "----------------------------------------------------------------"

// Repl is an interactive Minipyth session: each line of input is itself a
// complete program, lexed, parsed, and evaluated against a running "current
// value" that starts at Integer 0 (spec §4.4's default input) and is
// replaced by each line's output, so sessions can be built up incrementally.
type Repl struct {
	Version string
	Debug   bool
}

// NewRepl builds a Repl with the given version string for the banner.
func NewRepl(version string) *Repl {
	return &Repl{Version: version}
}

// printBanner writes the startup banner and usage instructions to w.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", Line)
	greenColor.Fprintf(w, "%s\n", Banner)
	blueColor.Fprintf(w, "%s\n", Line)
	yellowColor.Fprintln(w, "Minipyth REPL "+r.Version)
	blueColor.Fprintf(w, "%s\n", Line)
	cyanColor.Fprintln(w, "Each line is one program, applied to the running value (starts at 0).")
	cyanColor.Fprintln(w, "Type '.reset' to reset the running value to 0, '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", Line)
}

// Start runs the REPL loop over stdin-style readline input, writing prompts,
// results, and errors to w.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New("minipyth >>> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	current := value.Value(value.NewInt(0))

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return nil
		}
		if line == ".reset" {
			current = value.NewInt(0)
			cyanColor.Fprintln(w, "running value reset to 0")
			continue
		}
		rl.SaveHistory(line)
		current = r.evalLine(w, line, current)
	}
}

// evalLine lexes, parses, and evaluates one program line against current,
// returning the value the next line should start from. Program errors
// (lex/parse) leave current unchanged and are reported in red; a
// Value-level Error becomes the new current value, same as any other result.
func (r *Repl) evalLine(w io.Writer, line string, current value.Value) value.Value {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return current
	}
	tree, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return current
	}
	if r.Debug {
		cyanColor.Fprintf(w, "%s\n", parser.Dump(tree))
	}
	result := eval.Forward(tree, current)
	if value.IsError(result) {
		redColor.Fprintf(w, "%s\n", result.String())
	} else {
		yellowColor.Fprintf(w, "%s\n", result.String())
	}
	return result
}
