package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolagi/unidiff/diff"
)

func mustDiff(t *testing.T, original, modified []string) diff.Script {
	t.Helper()
	script, err := diff.Diff(original, modified)
	require.NoError(t, err)
	return script
}

func TestAssembleNoChanges(t *testing.T) {
	script := mustDiff(t, []string{"1", "2", "3"}, []string{"1", "2", "3"})
	hunks := diff.Assemble(script, 3)
	assert.Empty(t, hunks)
}

func TestAssembleZeroContext(t *testing.T) {
	original := []string{"1", "2", "3", "4", "5"}
	modified := []string{"1", "2", "X", "4", "5"}
	script := mustDiff(t, original, modified)

	hunks := diff.Assemble(script, 0)
	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 3, h.OrigStart)
	assert.Equal(t, 1, h.OrigCount)
	assert.Equal(t, 3, h.ModStart)
	assert.Equal(t, 1, h.ModCount)
	for _, op := range h.Ops {
		assert.NotEqual(t, diff.Equal, op.Change)
	}
}

func TestAssembleSplitsDistantChanges(t *testing.T) {
	// Two single-line changes separated by enough Equal lines that, with
	// context=1, their padded windows cannot touch: 2*1+1 = 3 unchanged
	// lines between them forces a split into two hunks.
	original := []string{"a", "1", "b", "c", "d", "2", "e"}
	modified := []string{"a", "X", "b", "c", "d", "Y", "e"}
	script := mustDiff(t, original, modified)

	hunks := diff.Assemble(script, 1)
	require.Len(t, hunks, 2)
}

func TestAssembleMergesCloseChanges(t *testing.T) {
	// Same shape, but only 2*context unchanged lines between the two
	// changes: the hunks' context windows overlap and must merge into
	// one.
	original := []string{"a", "1", "b", "c", "2", "d"}
	modified := []string{"a", "X", "b", "c", "Y", "d"}
	script := mustDiff(t, original, modified)

	hunks := diff.Assemble(script, 1)
	require.Len(t, hunks, 1)
}

func TestAssembleAllRemoved(t *testing.T) {
	original := []string{"1", "2", "3"}
	script := mustDiff(t, original, nil)
	hunks := diff.Assemble(script, 3)
	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 1, h.OrigStart)
	assert.Equal(t, 3, h.OrigCount)
	assert.Equal(t, 0, h.ModCount)
}

func TestAssembleAllInserted(t *testing.T) {
	modified := []string{"1", "2", "3"}
	script := mustDiff(t, nil, modified)
	hunks := diff.Assemble(script, 3)
	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 0, h.OrigCount)
	assert.Equal(t, 1, h.ModStart)
	assert.Equal(t, 3, h.ModCount)
}

func TestAssembleLeadingContextCapped(t *testing.T) {
	// The change is near the start of the file; with context=3 there are
	// only 2 lines of leading context available, so the ring should yield
	// exactly those 2 rather than padding with anything spurious.
	original := []string{"a", "b", "1", "c", "d", "e", "f"}
	modified := []string{"a", "b", "X", "c", "d", "e", "f"}
	script := mustDiff(t, original, modified)

	hunks := diff.Assemble(script, 3)
	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 1, h.OrigStart)
}

func TestAssembleHunkCountsMatchLineCounts(t *testing.T) {
	original := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	modified := []string{"1", "2", "X", "4", "5", "Y", "Z", "8", "9", "10"}
	script := mustDiff(t, original, modified)

	for _, context := range []int{0, 1, 2, 3} {
		hunks := diff.Assemble(script, context)
		for _, h := range hunks {
			var origCount, modCount int
			for _, op := range h.Ops {
				switch op.Change {
				case diff.Equal:
					origCount++
					modCount++
				case diff.Remove:
					origCount++
				case diff.Insert:
					modCount++
				}
			}
			assert.Equal(t, h.OrigCount, origCount)
			assert.Equal(t, h.ModCount, modCount)
		}
	}
}
