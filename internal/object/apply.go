package object

import (
	"github.com/dshills/textobj/internal/engine/buffer"
	"github.com/dshills/textobj/internal/engine/cursor"
)

// RangeFunc produces an object range at a position. Every text object
// entry point compiles down to one of these; count carries direction
// in its sign.
type RangeFunc func(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.Range, error)

// MarkRange reconciles a computed object range with live selection
// state and returns the updated state.
//
// With no active selection, the range is computed at the head and a
// charwise selection is established over it. With an active
// selection, the count is signed by the selection direction, a
// linewise selection is converted to charwise, the region is expanded
// once per session, and the selection is set to the computed range.
//
// If setting the selection produces no change from the prior region,
// the computation is stuck at a boundary: the head is nudged one
// character in the selection direction and the range recomputed once,
// accepting whatever follows. There is no second retry.
//
// Errors from the range function (delimiter climbs) are propagated
// and the region is left as it was.
func MarkRange(buf *buffer.Buffer, st cursor.State, count int, fn RangeFunc) (cursor.State, error) {
	if count == 0 {
		count = 1
	}

	if !st.Active {
		r, err := fn(buf, st.Head, count)
		if err != nil {
			return st, err
		}
		return st.WithRegion(r.Normalize(), 1), nil
	}

	dir := st.Direction()
	if st.Mode == cursor.SelectLine {
		st = st.Charwise()
	}
	st = st.ExpandOnce(buf.Text())

	prev := st
	r, err := fn(buf, st.Head, count*dir)
	if err != nil {
		return prev, err
	}
	st = st.WithRegion(r.Normalize(), dir)

	if st.SameRange(prev.Selection) {
		nudged := nudge(buf, st.Head, dir)
		if r2, err2 := fn(buf, nudged, count*dir); err2 == nil {
			st = st.WithRegion(r2.Normalize(), dir)
		}
	}
	return st, nil
}

// nudge moves pos one character in the given direction, bounded by
// the buffer; failure to move is absorbed by returning pos itself.
func nudge(buf *buffer.Buffer, pos buffer.ByteOffset, dir int) buffer.ByteOffset {
	if dir < 0 {
		return buffer.PrevOffset(buf.Text(), pos)
	}
	return buffer.NextOffset(buf.Text(), pos)
}
