package diff

import (
	"fmt"

	"github.com/pkg/errors"
)

// FileMeta carries the two header fields unified diff needs for one side
// of the comparison: the name as it should appear after "--- "/"+++ ",
// and a pre-formatted modification-time string.
type FileMeta struct {
	Name      string
	Timestamp string
}

// Format renders hunks as unified-diff text to sink, given the original
// and modified line sequences the hunks index into, metadata for the two
// "--- "/"+++ " header lines, and whether the modified file ends with a
// newline. When it does not and modified has at least one line, a final
// "\ No newline at end of file" line is written.
//
// Colour is not a parameter here: styling is advisory (see Sink), so
// Format always brackets the header, hunk-range and changed-line
// regions with BeginStyle/EndStyle and leaves the decision of whether
// those calls do anything to the Sink implementation the caller
// constructed.
func Format(sink Sink, original, modified []string, hunks []Hunk, origMeta, modMeta FileMeta, modTrailingNewline bool) error {
	if err := writeStyled(sink, StyleOrigHeader, "--- %s\t%s\n", origMeta.Name, origMeta.Timestamp); err != nil {
		return err
	}
	if err := writeStyled(sink, StyleModHeader, "+++ %s\t%s\n", modMeta.Name, modMeta.Timestamp); err != nil {
		return err
	}

	for _, h := range hunks {
		if err := writeHunk(sink, original, modified, h); err != nil {
			return err
		}
	}

	if !modTrailingNewline && len(modified) > 0 {
		if _, err := fmt.Fprint(sink, "\\ No newline at end of file\n"); err != nil {
			return wrapSinkErr(err)
		}
	}

	return nil
}

func writeHunk(sink Sink, original, modified []string, h Hunk) error {
	if err := writeStyled(sink, StyleHunkRange, "@@ -%d,%d +%d,%d @@\n", h.OrigStart, h.OrigCount, h.ModStart, h.ModCount); err != nil {
		return err
	}
	for _, op := range h.Ops {
		switch op.Change {
		case Equal:
			if _, err := fmt.Fprintf(sink, " %s\n", original[op.I]); err != nil {
				return wrapSinkErr(err)
			}
		case Remove:
			if err := writeStyled(sink, StyleRemoveLine, "-%s\n", original[op.I]); err != nil {
				return err
			}
		case Insert:
			if err := writeStyled(sink, StyleInsertLine, "+%s\n", modified[op.J]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStyled(sink Sink, kind StyleKind, format string, a ...interface{}) error {
	sink.BeginStyle(kind)
	_, err := fmt.Fprintf(sink, format, a...)
	sink.EndStyle()
	if err != nil {
		return wrapSinkErr(err)
	}
	return nil
}

func wrapSinkErr(err error) error {
	return errors.Wrap(ErrSinkWrite, err.Error())
}
