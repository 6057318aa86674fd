package object

import (
	"fmt"

	"github.com/dshills/textobj/internal/engine/buffer"
)

// ParagraphUnit provides paragraph boundary motions. A paragraph is a
// maximal run of non-blank lines; a paragraph begins at the start of
// its first line and ends at the start of the blank line that follows
// it (or the buffer end).
type ParagraphUnit struct{}

// Forward returns the count-th paragraph end strictly after pos.
func (ParagraphUnit) Forward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error) {
	p := pos
	for i := 0; i < count; i++ {
		q, ok := nextParagraphEnd(buf, p)
		if !ok {
			return pos, fmt.Errorf("paragraph forward: %w", ErrMotionExhausted)
		}
		p = q
	}
	return p, nil
}

// Backward returns the count-th paragraph beginning strictly before pos.
func (ParagraphUnit) Backward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error) {
	p := pos
	for i := 0; i < count; i++ {
		q, ok := prevParagraphBegin(buf, p)
		if !ok {
			return pos, fmt.Errorf("paragraph backward: %w", ErrMotionExhausted)
		}
		p = q
	}
	return p, nil
}

// nextParagraphEnd finds the end of the paragraph at or after pos:
// the start of the terminating blank line, or the buffer end.
func nextParagraphEnd(buf *buffer.Buffer, pos buffer.ByteOffset) (buffer.ByteOffset, bool) {
	lc := buf.LineCount()
	line := buf.LineAt(pos)

	// Inside a blank run, the relevant paragraph is the next one.
	for line < lc && buf.IsBlankLine(line) {
		line++
	}
	if line >= lc {
		return pos, false
	}
	for line < lc && !buf.IsBlankLine(line) {
		line++
	}

	var end buffer.ByteOffset
	if line < lc {
		end = buf.LineStart(line)
	} else {
		end = buf.Len()
	}
	if end <= pos {
		return pos, false
	}
	return end, true
}

// prevParagraphBegin finds the start of the first line of the
// paragraph whose beginning lies strictly before pos.
func prevParagraphBegin(buf *buffer.Buffer, pos buffer.ByteOffset) (buffer.ByteOffset, bool) {
	line := buf.LineAt(pos)

	// Inside a blank run, back up to the previous paragraph.
	for line >= 0 && buf.IsBlankLine(line) {
		line--
	}
	if line >= 0 {
		first := firstParagraphLine(buf, line)
		if begin := buf.LineStart(first); begin < pos {
			return begin, true
		}
		// Exactly on a paragraph beginning: move to the one before.
		line = first - 1
		for line >= 0 && buf.IsBlankLine(line) {
			line--
		}
	}
	if line < 0 {
		return pos, false
	}
	return buf.LineStart(firstParagraphLine(buf, line)), true
}

// firstParagraphLine walks up to the first line of the paragraph
// containing the given non-blank line.
func firstParagraphLine(buf *buffer.Buffer, line int) int {
	for line > 0 && !buf.IsBlankLine(line-1) {
		line--
	}
	return line
}
