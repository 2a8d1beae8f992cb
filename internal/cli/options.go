// Package cli implements the CLI surface: flag parsing, positional
// argument extraction, and filename validation. None of it touches a
// terminal or the filesystem directly; that is left to internal/sink,
// internal/source and cmd/unidiff.
package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// ErrArgument means the command line could not be parsed into a valid
// Options value: an unknown flag, a malformed -n value, the wrong
// number of positional arguments, or an invalid filename.
var ErrArgument = errors.New("invalid arguments")

const defaultContextLines = 3

// Options is the validated result of parsing the command line.
type Options struct {
	Help      bool
	Color     bool
	ForceANSI bool
	OutFile   string
	Lines     int
	Original  string
	Modified  string
}

// Option follows the functional-options pattern for constructing an
// Options value with defaults already applied, primarily for tests
// that don't want to build an argv slice.
type Option func(*Options)

// WithColor sets the Color field.
func WithColor(v bool) Option { return func(o *Options) { o.Color = v } }

// WithLines sets the Lines field.
func WithLines(n int) Option { return func(o *Options) { o.Lines = n } }

// New returns an Options value with defaults applied, then each Option
// applied in order.
func New(opts ...Option) *Options {
	o := &Options{Lines: defaultContextLines}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse parses args (typically os.Args[1:]) into an Options value. The
// two positional arguments, original and modified, must be the last two
// non-flag arguments on the command line.
func Parse(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("unidiff", pflag.ContinueOnError)
	fs.SetOutput(discard{})

	o := &Options{}
	fs.BoolVarP(&o.Help, "help", "h", false, "print usage and exit")
	fs.BoolVarP(&o.Color, "color", "c", false, "enable colour styling")
	fs.BoolVarP(&o.ForceANSI, "force-ansi", "a", false, "use ANSI escapes even where a native console API exists")
	fs.StringVarP(&o.OutFile, "out-file", "o", "", "write output to `FILE` instead of standard output")

	var lines string
	fs.StringVarP(&lines, "lines", "n", "", "number of context `lines` (default 3)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(ErrArgument, err.Error())
	}

	if o.Help {
		return o, nil
	}

	o.Lines = defaultContextLines
	if lines != "" {
		n, err := strconv.ParseUint(lines, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrArgument, "-n/--lines: %q is not a non-negative integer", lines)
		}
		o.Lines = int(n)
	}

	if o.OutFile != "" {
		o.Color = false
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return nil, errors.Wrapf(ErrArgument, "expected 2 positional arguments (original, modified), got %d", len(rest))
	}
	o.Original, o.Modified = rest[0], rest[1]

	if err := ValidateFilename(o.Original); err != nil {
		return nil, err
	}
	if err := ValidateFilename(o.Modified); err != nil {
		return nil, err
	}
	if o.OutFile != "" {
		if err := ValidateFilename(o.OutFile); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// discard implements io.Writer, swallowing pflag's own usage/error
// output so the driver can format its own error messages: single
// line, lower case, no trailing punctuation.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
