package object

import (
	"unicode"

	"github.com/dshills/textobj/internal/engine/buffer"
)

// Unit provides boundary motions for one kind of text object.
//
// Both motions are all-or-nothing: if fewer than count boundaries
// exist in the requested direction, the original position is returned
// together with ErrMotionExhausted. Motions never move a shared
// cursor; they map a position to a position.
type Unit interface {
	// Forward returns the count-th unit end strictly after pos.
	Forward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error)

	// Backward returns the count-th unit beginning strictly before pos.
	Backward(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.ByteOffset, error)
}

// charClass partitions runes for word-boundary purposes: whitespace,
// word constituents, and everything else (punctuation runs form their
// own words, matching Vim's small-word rules).
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classify(r rune, big bool) charClass {
	if unicode.IsSpace(r) {
		return classSpace
	}
	if big {
		return classWord
	}
	if isWordRune(r) {
		return classWord
	}
	return classPunct
}

// isWordRune reports whether r is a word constituent.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
