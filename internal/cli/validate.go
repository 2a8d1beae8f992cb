package cli

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const maxFilenameLength = 255

var forbiddenFilenameChars = `\/:*?"<>|`

var reservedBasenames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {},
}

// ValidateFilename rejects a path whose base name is empty, longer than
// 255 bytes, contains any of \ / : * ? " < > |, or matches (case
// insensitively) a reserved DOS device name. The check is against the
// base name, not the full path: the forbidden set includes the path
// separators themselves, so validating the whole path would reject
// every non-trivial path. It applies to both input and output paths.
func ValidateFilename(path string) error {
	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return errors.Wrap(ErrArgument, "filename must not be empty")
	}
	if len(name) > maxFilenameLength {
		return errors.Wrapf(ErrArgument, "filename longer than %d bytes", maxFilenameLength)
	}
	if strings.ContainsAny(name, forbiddenFilenameChars) {
		return errors.Wrapf(ErrArgument, "filename %q contains a forbidden character", name)
	}
	if _, reserved := reservedBasenames[strings.ToUpper(name)]; reserved {
		return errors.Wrapf(ErrArgument, "filename %q is a reserved name", name)
	}
	return nil
}
