package cursor

import (
	"fmt"

	"github.com/dshills/textobj/internal/engine/buffer"
)

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// ByteOffset is an alias for buffer.ByteOffset.
type ByteOffset = buffer.ByteOffset

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor
// position. When Anchor == Head, this represents a bare cursor.
// Selection is an immutable value type.
type Selection struct {
	Anchor ByteOffset // Where selection started
	Head   ByteOffset // Current cursor position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head ByteOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() ByteOffset {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() ByteOffset {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Direction returns -1 for a backward selection, +1 otherwise.
func (s Selection) Direction() int {
	if s.IsBackward() {
		return -1
	}
	return 1
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// SameRange returns true if two selections cover the same range,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Start() == other.Start() && s.End() == other.End()
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Head)
}

// SelectMode is the selection granularity.
type SelectMode uint8

const (
	// SelectChar selects by character.
	SelectChar SelectMode = iota

	// SelectLine selects whole lines.
	SelectLine
)

// String returns the mode name.
func (m SelectMode) String() string {
	switch m {
	case SelectChar:
		return "char"
	case SelectLine:
		return "line"
	default:
		return "unknown"
	}
}

// State is the live selection state of an editing session.
// It is passed into and returned from the selection applier rather
// than mutated in place; the host owns its lifecycle and resets it
// when visual mode exits.
type State struct {
	Selection

	// Active reports whether a selection is in progress.
	Active bool

	// Mode is the selection granularity.
	Mode SelectMode

	// Expanded reports whether the region has been expanded to cover
	// the character under the head. Expansion happens at most once per
	// visual session.
	Expanded bool
}

// NewState creates an inactive state with the cursor at off.
func NewState(off ByteOffset) State {
	return State{Selection: Selection{Anchor: off, Head: off}}
}

// Activate returns the state with an active charwise selection
// covering the given region.
func (st State) Activate(anchor, head ByteOffset) State {
	st.Active = true
	st.Anchor = anchor
	st.Head = head
	return st
}

// Charwise returns the state converted to character granularity.
// The region itself is unchanged.
func (st State) Charwise() State {
	st.Mode = SelectChar
	return st
}

// ExpandOnce returns the state with the region expanded to include
// the character under its greater end. Subsequent calls are no-ops.
func (st State) ExpandOnce(text string) State {
	if st.Expanded {
		return st
	}
	st.Expanded = true
	if st.Head >= st.Anchor {
		st.Head = buffer.NextOffset(text, st.Head)
	} else {
		st.Anchor = buffer.NextOffset(text, st.Anchor)
	}
	return st
}

// WithRegion returns the state with the selection set to r, oriented
// in the given direction (head at the far end for dir > 0, at the
// near end for dir < 0).
func (st State) WithRegion(r Range, dir int) State {
	r = r.Normalize()
	st.Active = true
	if dir < 0 {
		st.Anchor = r.End
		st.Head = r.Start
	} else {
		st.Anchor = r.Start
		st.Head = r.End
	}
	return st
}
