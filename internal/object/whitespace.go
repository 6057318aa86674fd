package object

import "github.com/dshills/textobj/internal/engine/buffer"

// WhitespaceClass recognizes characters that count as whitespace when
// outer ranges absorb adjacent blanks.
type WhitespaceClass func(r rune) bool

// DefaultWhitespace recognizes space, tab, newline, and carriage return.
func DefaultWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// WhitespaceOf builds a class from an explicit character set.
func WhitespaceOf(chars string) WhitespaceClass {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return func(r rune) bool { return set[r] }
}

// SkipForward advances pos past a whitespace run, stopping at limit.
func SkipForward(text string, pos, limit buffer.ByteOffset, ws WhitespaceClass) buffer.ByteOffset {
	for pos < limit {
		r, size := buffer.RuneAt(text, pos)
		if size == 0 || !ws(r) {
			break
		}
		pos += buffer.ByteOffset(size)
	}
	return pos
}

// SkipBackward retreats pos before a whitespace run, stopping at limit.
func SkipBackward(text string, pos, limit buffer.ByteOffset, ws WhitespaceClass) buffer.ByteOffset {
	for pos > limit {
		r, size := buffer.RuneBefore(text, pos)
		if size == 0 || !ws(r) {
			break
		}
		pos -= buffer.ByteOffset(size)
	}
	return pos
}
