package object

import (
	"fmt"

	"github.com/dshills/textobj/internal/engine/buffer"
)

// WordUnit provides word boundary motions. With Big set it treats
// WORD objects: any run of non-whitespace characters is one unit.
type WordUnit struct {
	Big bool
}

// Forward returns the count-th word end strictly after pos.
func (u WordUnit) Forward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error) {
	text := buf.Text()
	p := pos
	for i := 0; i < count; i++ {
		q, ok := nextWordEnd(text, p, u.Big)
		if !ok {
			return pos, fmt.Errorf("word forward: %w", ErrMotionExhausted)
		}
		p = q
	}
	return p, nil
}

// Backward returns the count-th word beginning strictly before pos.
func (u WordUnit) Backward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error) {
	text := buf.Text()
	p := pos
	for i := 0; i < count; i++ {
		q, ok := prevWordBegin(text, p, u.Big)
		if !ok {
			return pos, fmt.Errorf("word backward: %w", ErrMotionExhausted)
		}
		p = q
	}
	return p, nil
}

// nextWordEnd finds the first word-end boundary strictly after pos.
// A word end is the offset just past the last character of a word.
func nextWordEnd(text string, pos buffer.ByteOffset, big bool) (buffer.ByteOffset, bool) {
	n := buffer.ByteOffset(len(text))
	if pos < 0 {
		pos = 0
	}
	e := pos
	for e < n {
		e = buffer.NextOffset(text, e)
		if isWordEnd(text, e, big) {
			return e, true
		}
	}
	return pos, false
}

// prevWordBegin finds the first word-begin boundary strictly before pos.
func prevWordBegin(text string, pos buffer.ByteOffset, big bool) (buffer.ByteOffset, bool) {
	n := buffer.ByteOffset(len(text))
	if pos > n {
		pos = n
	}
	b := pos
	for b > 0 {
		b = buffer.PrevOffset(text, b)
		if isWordBegin(text, b, big) {
			return b, true
		}
	}
	return pos, false
}

// isWordEnd reports whether e sits just past the last character of a
// word: the preceding character belongs to a word and the following
// one (if any) belongs to a different class.
func isWordEnd(text string, e buffer.ByteOffset, big bool) bool {
	prev, size := buffer.RuneBefore(text, e)
	if size == 0 {
		return false
	}
	cls := classify(prev, big)
	if cls == classSpace {
		return false
	}
	if e >= buffer.ByteOffset(len(text)) {
		return true
	}
	next, _ := buffer.RuneAt(text, e)
	return classify(next, big) != cls
}

// isWordBegin reports whether b is the first character of a word.
func isWordBegin(text string, b buffer.ByteOffset, big bool) bool {
	r, size := buffer.RuneAt(text, b)
	if size == 0 {
		return false
	}
	cls := classify(r, big)
	if cls == classSpace {
		return false
	}
	if b == 0 {
		return true
	}
	prev, _ := buffer.RuneBefore(text, b)
	return classify(prev, big) != cls
}
