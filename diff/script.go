// Package diff implements the core of a unified-diff tool: Myers'
// shortest-edit-script algorithm, assembly of the script into hunks with
// surrounding context, and rendering of those hunks as unified-diff text.
//
// The three pieces are independent and run in sequence: Diff produces a
// Script, Assemble groups a Script into Hunks, and Format renders Hunks to
// a Sink. None of them touch the filesystem or a terminal; those concerns
// live in internal/source, internal/sink and internal/cli.
package diff

// Change tags a single EditOp. It is a closed, three-variant sum type;
// switches over Change should not have a default case, so that adding a
// fourth variant is a compile-time break, not a silent one.
type Change int

const (
	// Equal means original[i] == modified[j]; both indices advance.
	Equal Change = iota
	// Remove means original[i] has no corresponding line in modified;
	// only i advances.
	Remove
	// Insert means modified[j] has no corresponding line in original;
	// only j advances.
	Insert
)

func (c Change) String() string {
	switch c {
	case Equal:
		return "equal"
	case Remove:
		return "remove"
	case Insert:
		return "insert"
	default:
		return "invalid"
	}
}

// EditOp is one atomic step of an edit script. I and J are 0-based indices
// into the original and modified line sequences respectively; see Change
// for which of the two is meaningful for a given operation.
type EditOp struct {
	Change Change
	I      int
	J      int
}

// Script is a minimal-length sequence of EditOp transforming an original
// line sequence into a modified one. Its Remove/Equal restriction
// reproduces the original; its Insert/Equal restriction reproduces the
// modified.
type Script []EditOp
