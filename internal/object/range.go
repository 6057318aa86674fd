package object

import (
	"github.com/dshills/textobj/internal/engine/buffer"
)

// normalizeCount maps a raw repeat count to a magnitude and direction.
// Zero counts behave as one; negative counts reverse direction.
func normalizeCount(count int) (n, dir int) {
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return -count, -1
	}
	return count, 1
}

// ObjectRange computes the span of |count| consecutive units
// straddling pos, using the unit's boundary motions only.
//
// For a forward search the end motion runs first and the begin motion
// runs from its result; this yields both boundaries of the span
// regardless of which side of a unit boundary pos started on. A
// failing motion is absorbed: the position is unchanged at that step
// and the result degrades toward a zero-width range at pos.
func ObjectRange(buf *buffer.Buffer, pos buffer.ByteOffset, count int, u Unit) buffer.Range {
	n, dir := normalizeCount(count)

	p1 := pos
	if dir > 0 {
		if q, err := u.Forward(buf, pos, n); err == nil {
			p1 = q
		}
		p2 := p1
		if q, err := u.Backward(buf, p1, n); err == nil {
			p2 = q
		}
		return buffer.NewRange(p1, p2)
	}

	if q, err := u.Backward(buf, pos, n); err == nil {
		p1 = q
	}
	p2 := p1
	if q, err := u.Forward(buf, p1, n); err == nil {
		p2 = q
	}
	return buffer.NewRange(p1, p2)
}

// missesLine reports whether the computed range lies entirely beyond
// the cursor line in the search direction. That happens when the
// cursor sat exactly on a unit boundary and both motions overshot
// onto a neighboring line; the fix is to recompute with the count
// sign flipped.
func missesLine(r buffer.Range, dir int, lineStart, lineEnd buffer.ByteOffset) bool {
	if dir > 0 {
		return r.Start >= lineEnd
	}
	return r.End <= lineStart
}

// InnerObjectRange computes the tight range of |count| units at pos.
// The result always contains pos, even when a motion under- or
// overshoots.
func InnerObjectRange(buf *buffer.Buffer, pos buffer.ByteOffset, count int, u Unit) buffer.Range {
	n, dir := normalizeCount(count)
	count = n * dir

	r := ObjectRange(buf, pos, count, u)

	lineStart, lineEnd := buf.LineRange(pos)
	if missesLine(r, dir, lineStart, lineEnd) {
		r = ObjectRange(buf, pos, -count, u)
	}

	if pos < r.Start {
		r.Start = pos
	}
	if pos > r.End {
		r.End = pos
	}
	return r
}

// AnObjectRange computes the outer range of |count| units at pos:
// the tight range plus an adjacent whitespace run.
//
// Trailing whitespace is absorbed by default; leading whitespace is
// absorbed instead when the point lies before the object or no
// trailing run exists. Unless includeNewlines is set, absorption is
// clamped to the object's line and a range that escaped the cursor
// line triggers a recompute with the count sign flipped. With
// includeNewlines set, a blank line adjacent to the object is
// absorbed as well.
func AnObjectRange(buf *buffer.Buffer, pos buffer.ByteOffset, count int, u Unit, includeNewlines bool, ws WhitespaceClass) buffer.Range {
	if ws == nil {
		ws = DefaultWhitespace
	}
	n, dir := normalizeCount(count)
	count = n * dir
	text := buf.Text()

	r := ObjectRange(buf, pos, count, u)

	if !includeNewlines {
		lineStart, lineEnd := buf.LineRange(pos)
		if missesLine(r, dir, lineStart, lineEnd) {
			count = -count
			dir = -dir
			r = ObjectRange(buf, pos, count, u)
		}
	}

	beg, end := r.Start, r.End

	begLineStart, _ := buf.LineRange(beg)
	_, endLineEnd := buf.LineRange(end)
	forwardLimit := endLineEnd
	backwardLimit := begLineStart
	if includeNewlines {
		forwardLimit = buf.Len()
		backwardLimit = 0
	}

	trailing := SkipForward(text, end, forwardLimit, ws)
	pointLeads := (dir > 0 && pos < beg) || (dir < 0 && pos >= end)

	if pointLeads || trailing == end {
		// No trailing run to take (or the point precedes the object):
		// absorb leading whitespace instead. Skip entirely when the
		// object already starts its line, so the previous line's
		// trailing content is left alone.
		if includeNewlines || beg != begLineStart {
			beg = SkipBackward(text, beg, backwardLimit, ws)
		}
	} else {
		end = trailing
	}

	if includeNewlines {
		beg, end = absorbBlankLines(buf, beg, end)
	}
	return buffer.NewRange(beg, end)
}

// absorbBlankLines extends an outer range over a single blank line
// touching either side of the object.
func absorbBlankLines(buf *buffer.Buffer, beg, end buffer.ByteOffset) (buffer.ByteOffset, buffer.ByteOffset) {
	endLine := buf.LineAt(end)
	if end < buf.Len() && buf.IsBlankLine(endLine) {
		if endLine+1 < buf.LineCount() {
			end = buf.LineStart(endLine + 1)
		} else {
			end = buf.Len()
		}
	}

	begLine := buf.LineAt(beg)
	if beg == buf.LineStart(begLine) && begLine > 0 && buf.IsBlankLine(begLine-1) {
		beg = buf.LineStart(begLine - 1)
	}
	return beg, end
}
