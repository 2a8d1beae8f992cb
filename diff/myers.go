package diff

import (
	"math"

	"github.com/pkg/errors"
)

// resourceCeiling bounds N+M, which sizes each per-diagonal array this
// package allocates. It exists purely as a defensive check;
// no legitimate two-file diff comes close to it: fail cleanly with
// ErrResource rather than let an allocation panic bring the process
// down.
const resourceCeiling = math.MaxInt32

// Diff computes a minimal-length Script transforming original into
// modified, using Myers' O(ND) algorithm (E. Myers, "An O(ND) Difference
// Algorithm and Its Variations", 1986).
//
// Ties in the algorithm (neighbouring diagonals k-1 and k+1 holding the
// same x) are broken in favor of removal: an insertion step from k+1 is
// taken only when k+1 reaches strictly further. This determines how
// Insert and Remove interleave when a change could be expressed either
// way.
func Diff(original, modified []string) (Script, error) {
	n, m := len(original), len(modified)

	switch {
	case n == 0 && m == 0:
		return nil, nil
	case n == 0:
		script := make(Script, m)
		for j := 0; j < m; j++ {
			script[j] = EditOp{Change: Insert, I: 0, J: j}
		}
		return script, nil
	case m == 0:
		script := make(Script, n)
		for i := 0; i < n; i++ {
			script[i] = EditOp{Change: Remove, I: i, J: 0}
		}
		return script, nil
	}

	maxD := n + m
	if maxD > resourceCeiling {
		return nil, errors.Wrapf(ErrResource, "sequences too large: %d + %d lines", n, m)
	}

	// v[offset(k)] is the furthest-reaching x on diagonal k = x - y for
	// the current number of edits d. trace holds a snapshot of v at
	// the start of every d, so the script can be recovered by walking
	// backwards from (n, m) without retaining per-diagonal script
	// prefixes (which would grow quadratically if aliased).
	offset := func(k int) int { return k + maxD }
	v := make([]int, 2*maxD+1)
	trace := make([][]int, 0, maxD+1)

	var finalD int
	found := false

outer:
	for d := 0; d <= maxD; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			insert := k == -d || (k != d && v[offset(k-1)] < v[offset(k+1)])
			if insert {
				x = v[offset(k+1)]
			} else {
				x = v[offset(k-1)] + 1
			}
			y := x - k

			for x < n && y < m && original[x] == modified[y] {
				x++
				y++
			}

			v[offset(k)] = x

			if x >= n && y >= m {
				finalD = d
				found = true
				break outer
			}
		}
	}

	if !found {
		return nil, errors.Wrap(ErrEditScriptExhausted, "iteration bound exceeded")
	}

	return backtrack(trace, original, modified, finalD, n, m, maxD), nil
}

// backtrack walks the per-d snapshots of the furthest-reaching array from
// (n, m) back to (0, 0), emitting EditOp values in forward order.
func backtrack(trace [][]int, original, modified []string, d, n, m, maxD int) Script {
	offset := func(k int) int { return k + maxD }

	x, y := n, m
	var reversed Script

	for dd := d; dd > 0; dd-- {
		v := trace[dd]
		k := x - y

		var prevK int
		if k == -dd || (k != dd && v[offset(k-1)] < v[offset(k+1)]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[offset(prevK)]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			reversed = append(reversed, EditOp{Change: Equal, I: x, J: y})
		}

		if prevK == k+1 {
			y--
			reversed = append(reversed, EditOp{Change: Insert, I: x, J: y})
		} else {
			x--
			reversed = append(reversed, EditOp{Change: Remove, I: x, J: y})
		}
	}

	for x > 0 && y > 0 && original[x-1] == modified[y-1] {
		x--
		y--
		reversed = append(reversed, EditOp{Change: Equal, I: x, J: y})
	}

	script := make(Script, len(reversed))
	for i, op := range reversed {
		script[len(reversed)-1-i] = op
	}
	return script
}
