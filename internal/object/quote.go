package object

import (
	"github.com/dshills/textobj/internal/engine/buffer"
)

// QuoteChars are the quote delimiters recognized by default.
var QuoteChars = []rune{'"', '\'', '`'}

// QuoteRange finds a quote-delimited span around pos. With
// includeQuotes the quote characters are part of the range.
//
// The scan is escape-aware: a quote preceded by a single backslash is
// not a terminator. Runs of multiple backslashes are not specially
// handled; this is a documented limitation, not a correctness
// guarantee. Quote ranges are total: when no pair resolves even via
// the forward fallback, a zero-width range is returned instead of an
// error so selection commands stay total.
func QuoteRange(buf *buffer.Buffer, pos buffer.ByteOffset, count int, quote rune, includeQuotes bool) buffer.Range {
	n, _ := normalizeCount(count)
	text := buf.Text()
	pos = buf.ClampToRune(pos)

	// Standing on the quote character: step off it first.
	probe := pos
	if r, _ := buffer.RuneAt(text, probe); r == quote {
		probe = buffer.NextOffset(text, probe)
	}

	// The count-th unescaped quote ahead is the closing candidate.
	end := buffer.ByteOffset(-1)
	for i := 0; i < n; i++ {
		q, ok := nextUnescapedQuote(text, probe, quote)
		if !ok {
			break
		}
		end = q
		probe = buffer.NextOffset(text, q)
	}
	if end < 0 {
		return buffer.NewRange(pos, pos)
	}

	if open, ok := prevUnescapedQuote(text, end, quote); ok {
		return quoteSpan(text, open, end, includeQuotes)
	}

	// No opening quote to the left: treat the found quote as the
	// opening one and scan forward for its closing partner.
	open := end
	if close, ok := nextUnescapedQuote(text, buffer.NextOffset(text, open), quote); ok {
		return quoteSpan(text, open, close, includeQuotes)
	}
	return buffer.NewRange(open, open)
}

func quoteSpan(text string, open, close buffer.ByteOffset, includeQuotes bool) buffer.Range {
	if includeQuotes {
		return buffer.NewRange(open, buffer.NextOffset(text, close))
	}
	return buffer.NewRange(buffer.NextOffset(text, open), close)
}

// nextUnescapedQuote finds the first unescaped quote at or after from.
func nextUnescapedQuote(text string, from buffer.ByteOffset, quote rune) (buffer.ByteOffset, bool) {
	n := buffer.ByteOffset(len(text))
	i := from
	if i < 0 {
		i = 0
	}
	for i < n {
		r, size := buffer.RuneAt(text, i)
		if size == 0 {
			break
		}
		if r == quote && !escapedAt(text, i) {
			return i, true
		}
		i += buffer.ByteOffset(size)
	}
	return 0, false
}

// prevUnescapedQuote finds the last unescaped quote strictly before `before`.
func prevUnescapedQuote(text string, before buffer.ByteOffset, quote rune) (buffer.ByteOffset, bool) {
	i := before
	for i > 0 {
		i = buffer.PrevOffset(text, i)
		r, _ := buffer.RuneAt(text, i)
		if r == quote && !escapedAt(text, i) {
			return i, true
		}
	}
	return 0, false
}

// escapedAt reports whether the character at pos is preceded by a
// backslash. Exactly one preceding backslash escapes; longer runs are
// not inspected.
func escapedAt(text string, pos buffer.ByteOffset) bool {
	r, size := buffer.RuneBefore(text, pos)
	return size != 0 && r == '\\'
}
