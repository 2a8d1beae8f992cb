package diff

// Hunk is a contiguous subrange of a Script together with the header
// fields a unified-diff renderer needs: 1-based starting lines and
// counts for both the original and modified sequences. See
// https://www.gnu.org/software/diffutils/manual/html_node/Hunks.html.
type Hunk struct {
	OrigStart, OrigCount int
	ModStart, ModCount   int
	Ops                  Script
}

// builder accumulates the operations of a single, not-yet-closed hunk.
// sinceLastDiff counts the trailing run of Equal operations appended so
// far, which decides when a hunk can no longer be extended.
type builder struct {
	ops           Script
	sinceLastDiff int
	context       int
}

func newBuilder(context int, backfill Script) *builder {
	return &builder{
		ops:           append(Script(nil), backfill...),
		sinceLastDiff: len(backfill),
		context:       context,
	}
}

func (b *builder) appendChange(op EditOp) {
	b.ops = append(b.ops, op)
	b.sinceLastDiff = 0
}

func (b *builder) appendEqual(op EditOp) {
	b.ops = append(b.ops, op)
	b.sinceLastDiff++
}

// complete reports whether the trailing run of Equal operations is long
// enough to prove that a following hunk, if any, could not share context
// with this one: 2*context+1 unchanged lines is exactly the point at
// which two change clusters stop being mergeable.
func (b *builder) complete() bool {
	return b.sinceLastDiff >= 2*b.context+1
}

// trim clips the trailing Equal run back down to `context` operations,
// returning the clipped tail so the caller can backfill the next hunk's
// leading context ring with it.
func (b *builder) trim() Script {
	if b.sinceLastDiff <= b.context {
		return nil
	}
	excess := b.sinceLastDiff - b.context
	tail := append(Script(nil), b.ops[len(b.ops)-excess:]...)
	b.ops = b.ops[:len(b.ops)-excess]
	return tail
}

func (b *builder) finish() Hunk {
	h := Hunk{Ops: b.ops}
	for _, op := range b.ops {
		switch op.Change {
		case Equal:
			h.OrigCount++
			h.ModCount++
		case Remove:
			h.OrigCount++
		case Insert:
			h.ModCount++
		}
	}
	for _, op := range b.ops {
		if op.Change != Insert {
			h.OrigStart = op.I + 1
			break
		}
	}
	for _, op := range b.ops {
		if op.Change != Remove {
			h.ModStart = op.J + 1
			break
		}
	}
	return h
}

// Assemble groups a Script into an ordered, non-overlapping sequence of
// Hunks, each padded with up to `context` lines of surrounding Equal
// operations. Change clusters whose context windows would touch or
// overlap are merged into a single hunk. context must be >= 0.
func Assemble(script Script, context int) []Hunk {
	if context < 0 {
		context = 0
	}

	var hunks []Hunk
	leading := newRing(context)
	var cur *builder

	for _, op := range script {
		if op.Change == Equal {
			if cur == nil {
				leading.push(op)
				continue
			}
			cur.appendEqual(op)
			if cur.complete() {
				backfill := cur.trim()
				hunks = append(hunks, cur.finish())
				cur = nil
				leading = newRing(context)
				for _, op := range backfill {
					leading.push(op)
				}
			}
			continue
		}
		if cur == nil {
			cur = newBuilder(context, leading.drain())
		}
		cur.appendChange(op)
	}

	if cur != nil {
		cur.trim()
		hunks = append(hunks, cur.finish())
	}

	return hunks
}
