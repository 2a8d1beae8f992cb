// Package sink provides the two diff.Sink implementations unidiff writes
// through: a plain file/pipe sink that never styles, and a terminal sink
// that brackets styled regions with lipgloss-rendered ANSI sequences.
package sink

import (
	"bytes"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nicolagi/unidiff/diff"
)

// FileSink writes to an underlying file or pipe and never styles: it is
// used whenever output is redirected to a file, per the CLI contract
// that -o disables colour outright.
type FileSink struct {
	w io.WriteCloser
}

// NewFileSink wraps w. Close closes w.
func NewFileSink(w io.WriteCloser) *FileSink {
	return &FileSink{w: w}
}

func (s *FileSink) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *FileSink) BeginStyle(diff.StyleKind)    {}
func (s *FileSink) EndStyle()                    {}
func (s *FileSink) Close() error                 { return s.w.Close() }

// TerminalSink writes to a terminal, styling the regions diff.Format
// brackets according to a fixed palette. Regions are buffered between
// BeginStyle and EndStyle so the whole region can be handed to
// lipgloss.Style.Render in one call.
type TerminalSink struct {
	out    io.Writer
	styles map[diff.StyleKind]lipgloss.Style

	buffering bool
	current   diff.StyleKind
	buf       bytes.Buffer
	flushErr  error
}

// NewTerminalSink wraps out with the default colour palette: the ---
// header in red, the +++ header in green, the @@ hunk range in
// magenta, removed lines in red, inserted lines in green.
func NewTerminalSink(out io.Writer) *TerminalSink {
	return &TerminalSink{
		out: out,
		styles: map[diff.StyleKind]lipgloss.Style{
			diff.StyleOrigHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			diff.StyleModHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			diff.StyleHunkRange:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			diff.StyleRemoveLine: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			diff.StyleInsertLine: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		},
	}
}

// IsTerminal reports whether fd refers to a terminal, so the CLI driver
// can decide whether colour output is even possible.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

func (s *TerminalSink) Write(p []byte) (int, error) {
	if s.flushErr != nil {
		err := s.flushErr
		s.flushErr = nil
		return 0, err
	}
	if s.buffering {
		return s.buf.Write(p)
	}
	return s.out.Write(p)
}

func (s *TerminalSink) BeginStyle(kind diff.StyleKind) {
	s.current = kind
	s.buffering = true
	s.buf.Reset()
}

func (s *TerminalSink) EndStyle() {
	if !s.buffering {
		return
	}
	s.buffering = false
	style, ok := s.styles[s.current]
	if !ok {
		_, err := s.out.Write(s.buf.Bytes())
		s.flushErr = err
		return
	}
	_, err := io.WriteString(s.out, style.Render(s.buf.String()))
	s.flushErr = err
}

func (s *TerminalSink) Close() error { return nil }
