// Package source implements the filesystem-facing collaborators unidiff's
// core needs but does not itself depend on: reading a file as a line
// sequence, checking whether it ends with a newline, and formatting its
// modification time for a unified-diff header.
package source

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrFileOpen means the named file could not be opened for reading.
	ErrFileOpen = errors.New("could not open file")
	// ErrFileRead means an I/O failure occurred after the file was
	// opened, before the read completed.
	ErrFileRead = errors.New("could not read file")
	// ErrMetadata means a file's modification time could not be
	// obtained.
	ErrMetadata = errors.New("could not read file metadata")
)

// LineReader reads a file and splits it into a sequence of lines, with
// the terminating "\n" of each line dropped. A final, unterminated
// partial line (the common case when the file does not end with a
// newline) is kept as the last element.
type LineReader struct{}

// Read loads path and splits it on "\n".
func (LineReader) Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, errors.Wrapf(ErrFileOpen, "%s: %v", path, err)
		}
		return nil, errors.Wrapf(ErrFileRead, "%s: %v", path, err)
	}
	return splitLines(data), nil
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	trailingNewline := data[len(data)-1] == '\n'
	if trailingNewline {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		// The file was exactly "\n": one empty line.
		return []string{""}
	}
	parts := bytes.Split(data, []byte("\n"))
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(p)
	}
	return lines
}

// EndingNewlineProbe reports whether a file's last byte is "\n".
type EndingNewlineProbe struct{}

// HasTrailingNewline opens path and inspects its last byte. An empty
// file is reported as having no trailing newline; diff.Format writes no
// "\ No newline at end of file" line for a modified file with no lines.
func (EndingNewlineProbe) HasTrailingNewline(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(ErrFileOpen, "%s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return false, errors.Wrapf(ErrMetadata, "%s: %v", path, err)
	}
	if fi.Size() == 0 {
		return false, nil
	}

	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, fi.Size()-1); err != nil {
		return false, errors.Wrapf(ErrFileRead, "%s: %v", path, err)
	}
	return buf[0] == '\n', nil
}

// ModTimeProvider formats a file's modification time the way unified
// diff headers expect: "YYYY-MM-DD HH:MM:SS.<frac> ±HHMM".
type ModTimeProvider struct{}

// FormatModTime stats path and renders its ModTime. The fractional
// seconds field carries nanosecond precision; callers must treat it as
// an opaque fractional field rather than assume a specific unit, since
// not every source of modification times agrees on the unit.
func (ModTimeProvider) FormatModTime(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(ErrMetadata, "%s: %v", path, err)
	}
	return formatTime(fi.ModTime()), nil
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000000000 -0700")
}
