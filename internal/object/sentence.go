package object

import (
	"fmt"
	"unicode"

	"github.com/dshills/textobj/internal/engine/buffer"
)

// SentenceUnit provides sentence boundary motions. A sentence ends
// with '.', '!', or '?' followed by whitespace or the buffer end; a
// paragraph break also starts a new sentence.
type SentenceUnit struct{}

// Forward returns the count-th sentence end strictly after pos.
func (SentenceUnit) Forward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error) {
	text := buf.Text()
	p := pos
	for i := 0; i < count; i++ {
		q, ok := nextSentenceEnd(text, p)
		if !ok {
			return pos, fmt.Errorf("sentence forward: %w", ErrMotionExhausted)
		}
		p = q
	}
	return p, nil
}

// Backward returns the count-th sentence beginning strictly before pos.
func (SentenceUnit) Backward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error) {
	text := buf.Text()
	p := pos
	for i := 0; i < count; i++ {
		q, ok := prevSentenceBegin(text, p)
		if !ok {
			return pos, fmt.Errorf("sentence backward: %w", ErrMotionExhausted)
		}
		p = q
	}
	return p, nil
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// nextSentenceEnd finds the offset just past the next terminal
// punctuation that is followed by whitespace or the buffer end.
func nextSentenceEnd(text string, pos buffer.ByteOffset) (buffer.ByteOffset, bool) {
	n := buffer.ByteOffset(len(text))
	if pos < 0 {
		pos = 0
	}
	e := pos
	for e < n {
		e = buffer.NextOffset(text, e)
		if isSentenceEnd(text, e) {
			return e, true
		}
	}
	return pos, false
}

func isSentenceEnd(text string, e buffer.ByteOffset) bool {
	prev, size := buffer.RuneBefore(text, e)
	if size == 0 || !isSentenceTerminal(prev) {
		return false
	}
	if e >= buffer.ByteOffset(len(text)) {
		return true
	}
	next, _ := buffer.RuneAt(text, e)
	return unicode.IsSpace(next)
}

// prevSentenceBegin finds the first character of a sentence strictly
// before pos: a non-blank character whose preceding non-blank text
// ends a sentence, or that follows a paragraph break or the buffer
// start.
func prevSentenceBegin(text string, pos buffer.ByteOffset) (buffer.ByteOffset, bool) {
	n := buffer.ByteOffset(len(text))
	if pos > n {
		pos = n
	}
	b := pos
	for b > 0 {
		b = buffer.PrevOffset(text, b)
		if isSentenceBegin(text, b) {
			return b, true
		}
	}
	return pos, false
}

func isSentenceBegin(text string, b buffer.ByteOffset) bool {
	r, size := buffer.RuneAt(text, b)
	if size == 0 || unicode.IsSpace(r) {
		return false
	}

	// Walk back over the whitespace run before b. A sentence begins
	// after a terminal-plus-whitespace sequence, after a blank line,
	// or at the buffer start.
	i := b
	sawSpace := false
	newlines := 0
	for i > 0 {
		prev, _ := buffer.RuneBefore(text, i)
		if !unicode.IsSpace(prev) {
			return sawSpace && isSentenceTerminal(prev)
		}
		sawSpace = true
		if prev == '\n' {
			newlines++
			if newlines >= 2 {
				return true
			}
		}
		i = buffer.PrevOffset(text, i)
	}
	return true
}
