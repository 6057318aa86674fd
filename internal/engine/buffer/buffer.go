package buffer

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is a random-access character buffer with line-bounds queries.
// Line endings are normalized to LF on construction and edit.
type Buffer struct {
	text  string
	lines []ByteOffset // byte offset of the start of each line
}

// New creates a buffer with the given content.
func New(text string) *Buffer {
	b := &Buffer{}
	b.setText(normalizeLineEndings(text))
	return b
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// setText replaces the content and rebuilds the newline index.
func (b *Buffer) setText(text string) {
	b.text = text
	b.lines = b.lines[:0]
	b.lines = append(b.lines, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lines = append(b.lines, ByteOffset(i)+1)
		}
	}
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(off ByteOffset) (rune, int) {
	return RuneAt(b.text, off)
}

// Slice returns the text in [start, end). Bounds are checked.
func (b *Buffer) Slice(start, end ByteOffset) (string, error) {
	if start < 0 || start > end || end > b.Len() {
		return "", ErrRangeInvalid
	}
	return b.text[start:end], nil
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineAt returns the index of the line containing off.
// Offsets at or past the end of the buffer map to the last line.
func (b *Buffer) LineAt(off ByteOffset) int {
	if off < 0 {
		return 0
	}
	// First line whose start is beyond off, minus one.
	i := sort.Search(len(b.lines), func(i int) bool {
		return b.lines[i] > off
	})
	return i - 1
}

// LineStart returns the byte offset of the start of a line.
func (b *Buffer) LineStart(line int) ByteOffset {
	if line < 0 {
		line = 0
	}
	if line >= len(b.lines) {
		line = len(b.lines) - 1
	}
	return b.lines[line]
}

// LineEnd returns the byte offset of the end of a line, excluding
// the trailing newline.
func (b *Buffer) LineEnd(line int) ByteOffset {
	if line < 0 {
		line = 0
	}
	if line >= len(b.lines)-1 {
		return b.Len()
	}
	return b.lines[line+1] - 1
}

// LineRange returns the bounds of the line containing off.
// End excludes the trailing newline.
func (b *Buffer) LineRange(off ByteOffset) (start, end ByteOffset) {
	line := b.LineAt(off)
	return b.LineStart(line), b.LineEnd(line)
}

// LineText returns the text of a line, without the trailing newline.
func (b *Buffer) LineText(line int) string {
	return b.text[b.LineStart(line):b.LineEnd(line)]
}

// IsBlankLine returns true if the line is empty or whitespace-only.
func (b *Buffer) IsBlankLine(line int) bool {
	for _, r := range b.LineText(line) {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Clamp restricts off to the valid offset range of the buffer.
func (b *Buffer) Clamp(off ByteOffset) ByteOffset {
	return Clamp(off, b.Len())
}

// ClampToRune restricts off to the valid range and snaps it back to
// the nearest rune start.
func (b *Buffer) ClampToRune(off ByteOffset) ByteOffset {
	off = b.Clamp(off)
	for off > 0 && off < b.Len() && !utf8.RuneStart(b.text[off]) {
		off--
	}
	return off
}

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(off ByteOffset, text string) (ByteOffset, error) {
	if off < 0 || off > b.Len() {
		return 0, ErrOffsetOutOfRange
	}
	text = normalizeLineEndings(text)
	b.setText(b.text[:off] + text + b.text[off:])
	return off + ByteOffset(len(text)), nil
}

// Delete removes text in [start, end) and returns the removed text.
func (b *Buffer) Delete(start, end ByteOffset) (string, error) {
	if start < 0 || start > end || end > b.Len() {
		return "", ErrRangeInvalid
	}
	removed := b.text[start:end]
	b.setText(b.text[:start] + b.text[end:])
	return removed, nil
}

// Replace replaces text in [start, end) with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	if start < 0 || start > end || end > b.Len() {
		return 0, ErrRangeInvalid
	}
	text = normalizeLineEndings(text)
	b.setText(b.text[:start] + text + b.text[end:])
	return start + ByteOffset(len(text)), nil
}
