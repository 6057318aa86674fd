package object

import (
	"fmt"

	"github.com/dshills/textobj/internal/engine/buffer"
)

// delimPairs maps opening delimiters to their closing partners.
var delimPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// delimOpeners is the reverse mapping, closing to opening.
var delimOpeners = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
	'>': '<',
}

// DelimiterPair resolves a delimiter key to its open/close pair.
// Both halves of a pair resolve to the same pair.
func DelimiterPair(key rune) (open, close rune, ok bool) {
	if c, found := delimPairs[key]; found {
		return key, c, true
	}
	if o, found := delimOpeners[key]; found {
		return o, key, true
	}
	return 0, 0, false
}

// MatchingBoundary returns the position of the syntactic partner of
// the delimiter at pos. For dir > 0 the character at pos must be an
// opening delimiter and the scan runs forward; for dir < 0 it must be
// a closing delimiter and the scan runs backward. Nesting of the same
// delimiter family is skipped.
func MatchingBoundary(buf *buffer.Buffer, pos buffer.ByteOffset, dir int) (buffer.ByteOffset, error) {
	text := buf.Text()
	r, size := buffer.RuneAt(text, pos)
	if size == 0 {
		return 0, fmt.Errorf("matching boundary at %d: %w", pos, buffer.ErrOffsetOutOfRange)
	}

	if dir >= 0 {
		close, ok := delimPairs[r]
		if !ok {
			return 0, fmt.Errorf("matching boundary: %q is not an opening delimiter", r)
		}
		if match, found := matchForward(text, pos, r, close); found {
			return match, nil
		}
		return 0, fmt.Errorf("matching boundary for %q at %d: %w", r, pos, ErrNoEnclosingDelimiter)
	}

	open, ok := delimOpeners[r]
	if !ok {
		return 0, fmt.Errorf("matching boundary: %q is not a closing delimiter", r)
	}
	if match, found := matchBackward(text, pos, open, r); found {
		return match, nil
	}
	return 0, fmt.Errorf("matching boundary for %q at %d: %w", r, pos, ErrNoEnclosingDelimiter)
}

// matchForward scans forward from an opening delimiter at openPos and
// returns the position of its balanced closing partner.
func matchForward(text string, openPos buffer.ByteOffset, open, close rune) (buffer.ByteOffset, bool) {
	n := buffer.ByteOffset(len(text))
	depth := 0
	i := openPos
	for i < n {
		r, size := buffer.RuneAt(text, i)
		if size == 0 {
			break
		}
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i += buffer.ByteOffset(size)
	}
	return 0, false
}

// matchBackward scans backward from a closing delimiter at closePos
// and returns the position of its balanced opening partner.
func matchBackward(text string, closePos buffer.ByteOffset, open, close rune) (buffer.ByteOffset, bool) {
	depth := 0
	i := buffer.NextOffset(text, closePos)
	for i > 0 {
		i = buffer.PrevOffset(text, i)
		r, _ := buffer.RuneAt(text, i)
		switch r {
		case close:
			depth++
		case open:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// prevUnmatchedOpen scans backward from `from` (exclusive) for the
// nearest opening delimiter that is unmatched within the scanned
// region, which is the next enclosing level outward.
func prevUnmatchedOpen(text string, from buffer.ByteOffset, open, close rune) (buffer.ByteOffset, bool) {
	depth := 0
	i := from
	for i > 0 {
		i = buffer.PrevOffset(text, i)
		r, _ := buffer.RuneAt(text, i)
		switch r {
		case close:
			depth++
		case open:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

// ParenRange finds the count-th enclosing delimiter pair outward from
// pos. With includeDelims the delimiters themselves are part of the
// range; otherwise the range is shrunk one character on each side.
//
// Unlike the other range functions this one can fail: when no
// matching enclosing pair exists within the requested nesting count,
// ErrNoEnclosingDelimiter is returned and no degraded range is
// produced.
func ParenRange(buf *buffer.Buffer, pos buffer.ByteOffset, count int, open, close rune, includeDelims bool) (buffer.Range, error) {
	if count == 0 {
		count = 1
	}
	text := buf.Text()
	pos = buf.ClampToRune(pos)

	// Standing on an opening delimiter: step off it so the enclosing
	// scan finds the pair the cursor is leaving.
	probe := pos
	if r, _ := buffer.RuneAt(text, probe); r == open {
		probe = buffer.NextOffset(text, probe)
	}

	remaining := count
	search := probe
	for {
		openPos, ok := prevUnmatchedOpen(text, search, open, close)
		if !ok {
			return buffer.Range{}, fmt.Errorf("text object %c%c at %d: %w", open, close, pos, ErrNoEnclosingDelimiter)
		}
		if closePos, found := matchForward(text, openPos, open, close); found && closePos >= pos {
			remaining--
			if remaining <= 0 {
				if includeDelims {
					return buffer.NewRange(openPos, buffer.NextOffset(text, closePos)), nil
				}
				return buffer.NewRange(buffer.NextOffset(text, openPos), closePos), nil
			}
		}
		search = openPos
	}
}
