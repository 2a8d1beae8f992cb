// Command unidiff computes and prints a unified diff between two text
// files.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/nicolagi/unidiff/diff"
	"github.com/nicolagi/unidiff/internal/cli"
	"github.com/nicolagi/unidiff/internal/sink"
	"github.com/nicolagi/unidiff/internal/source"
)

const usage = `Usage: unidiff [OPTIONS] ORIGINAL MODIFIED

Compares two text files and prints their differences in unified diff
format.

Options:
  -h, --help              print this message and exit
  -c, --color             enable colour styling
  -a, --force-ansi        use ANSI escapes even where a native console API exists
  -o, --out-file FILE     write output to FILE instead of standard output
  -n, --lines NUM         number of context lines (default 3)
`

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fail(err)
	}
	if opts.Help {
		fmt.Print(usage)
		os.Exit(0)
	}

	if err := run(opts); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func run(opts *cli.Options) error {
	log.WithFields(log.Fields{
		"original":  opts.Original,
		"modified":  opts.Modified,
		"lines":     opts.Lines,
		"colorMode": colorMode(opts),
	}).Debug("resolved configuration")

	reader := source.LineReader{}
	probe := source.EndingNewlineProbe{}
	modTimes := source.ModTimeProvider{}

	original, err := reader.Read(opts.Original)
	if err != nil {
		return err
	}
	modified, err := reader.Read(opts.Modified)
	if err != nil {
		return err
	}

	origTimestamp, err := modTimes.FormatModTime(opts.Original)
	if err != nil {
		return err
	}
	modTimestamp, err := modTimes.FormatModTime(opts.Modified)
	if err != nil {
		return err
	}
	modTrailingNewline, err := probe.HasTrailingNewline(opts.Modified)
	if err != nil {
		return err
	}

	script, err := diff.Diff(original, modified)
	if err != nil {
		return err
	}
	hunks := diff.Assemble(script, opts.Lines)

	out, err := buildSink(opts)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	return diff.Format(out, original, modified, hunks,
		diff.FileMeta{Name: opts.Original, Timestamp: origTimestamp},
		diff.FileMeta{Name: opts.Modified, Timestamp: modTimestamp},
		modTrailingNewline,
	)
}

// colorMode reports the colour mode buildSink will resolve to, for
// logging purposes only.
func colorMode(opts *cli.Options) string {
	if opts.OutFile != "" {
		return "disabled (output to file)"
	}
	if !opts.Color {
		return "disabled"
	}
	if opts.ForceANSI {
		return "ansi (forced)"
	}
	if sink.IsTerminal(os.Stdout.Fd()) {
		return "ansi (terminal)"
	}
	return "disabled (not a terminal)"
}

// buildSink picks the Sink implementation: writing to -o always
// disables colour (cli.Parse already clears opts.Color in that case);
// otherwise colour is used only if requested and, absent
// --force-ansi, only if standard output is actually a terminal.
func buildSink(opts *cli.Options) (diff.Sink, error) {
	if opts.OutFile != "" {
		f, err := os.Create(opts.OutFile)
		if err != nil {
			return nil, errors.Wrapf(source.ErrFileOpen, "%s: %v", opts.OutFile, err)
		}
		return sink.NewFileSink(f), nil
	}

	if opts.Color {
		if opts.ForceANSI || sink.IsTerminal(os.Stdout.Fd()) {
			return sink.NewTerminalSink(os.Stdout), nil
		}
		log.Warn("colour requested but standard output is not a terminal; continuing uncoloured")
	}

	return sink.NewFileSink(os.Stdout), nil
}
