package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultPagesPerSignature is used when -p is not given.
const DefaultPagesPerSignature = 16

const (
	msgMissingSource = "please supply a source filename"
	msgMissingDest   = "please supply a destination filename"
	msgNotDivisible  = "pages per signature must be divisible by 8"
)

type state int

const (
	stateUnparsed state = iota
	stateParsing
	stateParsed
)

// Interpreter converts the raw arguments of one program invocation into an
// Outcome. It parses at most once; later calls to Parse return the cached
// result. An Interpreter is not safe for concurrent use.
type Interpreter struct {
	programPath string
	args        []string
	flags       *pflag.FlagSet

	pagesPerSignature int
	positional        []string
	source            string
	dest              string

	state   state
	outcome Outcome
}

// New creates an Interpreter for args. programPath is the path the program
// was invoked as (usually os.Args[0]); only its base name is shown in the
// usage banner. args is rewritten in place by Parse.
func New(programPath string, args []string) *Interpreter {
	i := &Interpreter{
		programPath: programPath,
		args:        args,
	}

	fs := pflag.NewFlagSet(filepath.Base(programPath), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	fs.VarP(
		newDecimalValue(DefaultPagesPerSignature, &i.pagesPerSignature),
		"pages-per-signature", "p",
		"Number of `PAGES` to use per signature, must be divisible by 8",
	)
	i.flags = fs

	return i
}

// Parse scans and validates the arguments. The first call does the work;
// every later call returns the same Outcome without touching the arguments
// again.
func (i *Interpreter) Parse() Outcome {
	if i.state != stateUnparsed {
		return i.outcome
	}
	i.state = stateParsing
	i.outcome = i.parse()
	i.state = stateParsed
	slog.Debug("Arguments interpreted.", "outcome", i.outcome.Kind, "message", i.outcome.Message)
	return i.outcome
}

func (i *Interpreter) parse() Outcome {
	slog.Debug("Scanning arguments.", "count", len(i.args))
	if err := i.flags.Parse(i.args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Outcome{Kind: Help}
		}
		return failed(err.Error())
	}

	i.positional = append(i.positional, i.flags.Args()...)
	n := copy(i.args, i.positional)
	i.args = i.args[:n]

	if len(i.positional) > 0 {
		i.source = i.positional[0]
	}
	if len(i.positional) > 1 {
		i.dest = i.positional[1]
	}
	if len(i.positional) > 2 {
		slog.Debug("Ignoring extra positional arguments.", "extra", i.positional[2:])
	}

	return i.validate()
}

func (i *Interpreter) validate() Outcome {
	if i.source == "" {
		return failed(msgMissingSource)
	}
	if i.dest == "" {
		return failed(msgMissingDest)
	}
	if i.pagesPerSignature%8 != 0 {
		return failed(msgNotDivisible)
	}
	return succeeded(Configuration{
		Source:            i.source,
		Dest:              i.dest,
		PagesPerSignature: i.pagesPerSignature,
	})
}

// Error returns the failure message of the parse, or "" if Parse has not
// run, succeeded, or stopped for help.
func (i *Interpreter) Error() string {
	if i.state != stateParsed || i.outcome.Kind != Failure {
		return ""
	}
	return i.outcome.Message
}

// PagesPerSignature returns the resolved page count. It is
// DefaultPagesPerSignature until -p is scanned and stays readable when
// validation fails.
func (i *Interpreter) PagesPerSignature() int {
	return i.pagesPerSignature
}

// Source returns the first positional argument, or "".
func (i *Interpreter) Source() string {
	return i.source
}

// Dest returns the second positional argument, or "".
func (i *Interpreter) Dest() string {
	return i.dest
}

// Positional returns every non-flag token seen by the scanner, in order,
// including the ones beyond source and dest that are ignored.
func (i *Interpreter) Positional() []string {
	return append([]string(nil), i.positional...)
}

// Args returns the raw arguments that the scanner did not consume. Before
// Parse, or after a scan error, this is the original argument list.
func (i *Interpreter) Args() []string {
	return i.args
}

// String renders the usage banner followed by the option help and a blank
// line.
func (i *Interpreter) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s SOURCE DEST [-p PAGES]\n\n", filepath.Base(i.programPath))
	b.WriteString(i.flags.FlagUsages())
	b.WriteString("\n")
	return b.String()
}
