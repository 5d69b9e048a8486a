/*
File    : minipyth/cmd/minipyth/main.go
*/

// Command minipyth is the entry point for the Minipyth interpreter. It
// evaluates one program against one input value and prints the result
// (spec §4.4), adapted from the teacher's main package: where go-mix
// dispatches on argv between REPL mode, file mode, and a TCP server mode,
// minipyth's default dispatch is the one-shot "evaluate PROGRAM on INPUT"
// invocation spec.md names explicitly, with REPL and file-source modes kept
// as opt-in flags rather than the default (spec.md's Non-goals exclude
// concurrency, so the teacher's "server" subcommand has no home here).
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/minipyth/eval"
	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/parser"
	"github.com/akashmaji946/minipyth/progfile"
	"github.com/akashmaji946/minipyth/replio"
	"github.com/akashmaji946/minipyth/value"
	"github.com/fatih/color"
)

// VERSION is the current version of the Minipyth interpreter.
var VERSION = "v1.0.0"

// Color definitions, mirroring the teacher's main.go palette: red for
// program errors on stderr, yellow for the evaluated result, cyan for
// informational/help text.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	for _, a := range args {
		switch a {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
	}

	debug := false
	repl := false
	fromFile := false
	var positional []string

	i := 0
	for i < len(args) {
		switch args[i] {
		case "--debug", "-d":
			debug = true
		case "--repl":
			repl = true
		case "--file", "-f":
			fromFile = true
		default:
			positional = append(positional, args[i])
		}
		i++
	}

	if repl {
		r := replio.NewRepl(VERSION)
		r.Debug = debug
		if err := r.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(positional) == 0 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing PROGRAM argument\n")
		showHelp()
		os.Exit(1)
	}

	program := positional[0]
	if fromFile {
		src, err := progfile.Load(program)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
			os.Exit(1)
		}
		program = src
	}

	input := "0"
	if len(positional) > 1 {
		input = positional[1]
	}

	run(program, input, debug)
}

// run implements the single-invocation CLI surface from spec §4.4 and §6.2:
// parse the value string, lex+parse the program string, apply, print the
// result with the §6.3 grammar. A Value-level Error prints (as
// "Error: <reason>") and still exits 0; only a Program error (lex/parse
// failure, malformed input value) aborts with a nonzero exit.
func run(program, inputText string, debug bool) {
	tokens, err := lexer.Tokenize(program)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEX ERROR] %v\n", err)
		os.Exit(1)
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	if debug {
		cyanColor.Fprintf(os.Stdout, "%s", parser.Dump(tree))
	}

	input, err := value.Parse(inputText)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[VALUE ERROR] %v\n", err)
		os.Exit(1)
	}

	result := eval.Forward(tree, input)
	yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
}

func showHelp() {
	cyanColor.Println("Minipyth - a tacit, single-character-per-token code-golf language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  minipyth PROGRAM [INPUT]        Evaluate PROGRAM on INPUT (default \"0\")")
	yellowColor.Println("  minipyth -f FILE [INPUT]        Evaluate the program stored in FILE")
	yellowColor.Println("  minipyth --repl                 Start an interactive session")
	yellowColor.Println("  minipyth --debug PROGRAM [INPUT] Also print the parsed expression tree")
	yellowColor.Println("  minipyth --help                 Display this help message")
	yellowColor.Println("  minipyth --version              Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println(`  minipyth ttsmzyhhyhh`)
	yellowColor.Println(`  minipyth htnrbhqbht "[5, -1]"`)
}

func showVersion() {
	fmt.Printf("Minipyth %s\n", VERSION)
}
