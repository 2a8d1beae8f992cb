package diff

import "github.com/pkg/errors"

// Sentinel errors for the taxonomy this package can raise. Callers should
// compare against these with errors.Is, since every returned error is
// wrapped with operation-specific context via errors.Wrapf.
var (
	// ErrEditScriptExhausted is returned by Diff when the internal
	// iteration bound is exceeded. This is a defensive condition: for
	// valid inputs (finite line sequences) it cannot happen.
	ErrEditScriptExhausted = errors.New("could not find edit script")

	// ErrResource is returned by Diff, before anything is allocated, when
	// the combined input length exceeds the size of per-diagonal state it
	// is willing to allocate.
	ErrResource = errors.New("could not allocate diff working set")

	// ErrSinkWrite is returned by the formatter when a write to the
	// destination Sink fails.
	ErrSinkWrite = errors.New("could not write diff output")
)
