package buffer

import "unicode/utf8"

// ByteOffset represents a byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// NextOffset returns the offset one rune after off, clamped to len(text).
func NextOffset(text string, off ByteOffset) ByteOffset {
	n := ByteOffset(len(text))
	if off >= n {
		return n
	}
	if off < 0 {
		return 0
	}
	_, size := utf8.DecodeRuneInString(text[off:])
	if size == 0 {
		return off
	}
	return off + ByteOffset(size)
}

// PrevOffset returns the offset of the rune start before off, clamped to 0.
func PrevOffset(text string, off ByteOffset) ByteOffset {
	if off <= 0 {
		return 0
	}
	n := ByteOffset(len(text))
	if off > n {
		off = n
	}
	off--
	for off > 0 && !utf8.RuneStart(text[off]) {
		off--
	}
	return off
}

// RuneAt returns the rune starting at off in text.
// Returns utf8.RuneError and size 0 if off is out of range.
func RuneAt(text string, off ByteOffset) (rune, int) {
	if off < 0 || off >= ByteOffset(len(text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(text[off:])
}

// RuneBefore returns the rune ending at off in text.
// Returns utf8.RuneError and size 0 if no rune precedes off.
func RuneBefore(text string, off ByteOffset) (rune, int) {
	if off <= 0 || off > ByteOffset(len(text)) {
		return utf8.RuneError, 0
	}
	return RuneAt(text, PrevOffset(text, off))
}

// Clamp restricts off to the valid range [0, max].
func Clamp(off, max ByteOffset) ByteOffset {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
