package vim

import (
	"fmt"

	"github.com/dshills/textobj/internal/engine/buffer"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/object"
)

// Prefix selects the inner or around variant of a text object.
type Prefix uint8

const (
	// PrefixNone indicates no text object prefix.
	PrefixNone Prefix = iota

	// PrefixInner selects the tight object range (i).
	PrefixInner

	// PrefixAround selects the object plus adjacent whitespace (a).
	PrefixAround
)

// String returns a string representation of the prefix.
func (p Prefix) String() string {
	switch p {
	case PrefixInner:
		return "inner"
	case PrefixAround:
		return "around"
	default:
		return "none"
	}
}

// IsPrefix returns true if the key is 'i' or 'a'.
func IsPrefix(key rune) bool {
	return key == 'i' || key == 'a'
}

// PrefixFor returns the prefix type for the key.
func PrefixFor(key rune) Prefix {
	switch key {
	case 'i':
		return PrefixInner
	case 'a':
		return PrefixAround
	default:
		return PrefixNone
	}
}

// unitSpec describes a motion-based text object key.
type unitSpec struct {
	unit            object.Unit
	includeNewlines bool
}

// Registry resolves text object keys to range functions. The standard
// Vim objects are registered by default; hosts extend it with custom
// delimiter pairs, quote characters, and a whitespace class.
type Registry struct {
	units      map[rune]unitSpec
	pairs      map[rune][2]rune
	quotes     map[rune]bool
	whitespace object.WhitespaceClass
}

// NewRegistry creates a registry with the standard Vim text objects:
// w, W, s, p for motion units; b, B as aliases for () and {}; the
// four bracket pairs under both halves; and ", ', ` quotes.
func NewRegistry() *Registry {
	r := &Registry{
		units: map[rune]unitSpec{
			'w': {unit: object.WordUnit{}},
			'W': {unit: object.WordUnit{Big: true}},
			's': {unit: object.SentenceUnit{}},
			'p': {unit: object.ParagraphUnit{}, includeNewlines: true},
		},
		pairs:  make(map[rune][2]rune),
		quotes: make(map[rune]bool),
	}

	for _, key := range []rune{'(', ')', '[', ']', '{', '}', '<', '>'} {
		open, close, _ := object.DelimiterPair(key)
		r.pairs[key] = [2]rune{open, close}
	}
	r.pairs['b'] = [2]rune{'(', ')'}
	r.pairs['B'] = [2]rune{'{', '}'}

	for _, q := range object.QuoteChars {
		r.quotes[q] = true
	}
	return r
}

// AddPair registers a custom delimiter pair under key.
func (r *Registry) AddPair(key, open, close rune) {
	r.pairs[key] = [2]rune{open, close}
}

// AddQuote registers a custom symmetric quote character.
func (r *Registry) AddQuote(q rune) {
	r.quotes[q] = true
}

// SetWhitespace sets the whitespace class used for around-object
// absorption. A nil class restores the default.
func (r *Registry) SetWhitespace(ws object.WhitespaceClass) {
	r.whitespace = ws
}

// SetIncludeNewlines controls whether around-ranges for the motion
// unit registered under key may cross line starts and absorb blank
// lines. Keys that do not name a motion unit are ignored.
func (r *Registry) SetIncludeNewlines(key rune, on bool) {
	if spec, ok := r.units[key]; ok {
		spec.includeNewlines = on
		r.units[key] = spec
	}
}

// Has returns true if key names a registered text object.
func (r *Registry) Has(key rune) bool {
	if _, ok := r.units[key]; ok {
		return true
	}
	if _, ok := r.pairs[key]; ok {
		return true
	}
	return r.quotes[key]
}

// Keys returns all registered text object keys.
func (r *Registry) Keys() []rune {
	keys := make([]rune, 0, len(r.units)+len(r.pairs)+len(r.quotes))
	for k := range r.units {
		keys = append(keys, k)
	}
	for k := range r.pairs {
		keys = append(keys, k)
	}
	for k := range r.quotes {
		keys = append(keys, k)
	}
	return keys
}

// Resolve maps a prefix and object key to a range function.
func (r *Registry) Resolve(prefix Prefix, key rune) (object.RangeFunc, error) {
	if prefix != PrefixInner && prefix != PrefixAround {
		return nil, fmt.Errorf("resolve text object: prefix %v is not i or a", prefix)
	}
	around := prefix == PrefixAround

	if spec, ok := r.units[key]; ok {
		ws := r.whitespace
		if around {
			return func(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.Range, error) {
				return object.AnObjectRange(buf, pos, count, spec.unit, spec.includeNewlines, ws), nil
			}, nil
		}
		return func(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.Range, error) {
			return object.InnerObjectRange(buf, pos, count, spec.unit), nil
		}, nil
	}

	if pair, ok := r.pairs[key]; ok {
		open, close := pair[0], pair[1]
		return func(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.Range, error) {
			return object.ParenRange(buf, pos, count, open, close, around)
		}, nil
	}

	if r.quotes[key] {
		return func(buf *buffer.Buffer, pos buffer.ByteOffset, count int) (buffer.Range, error) {
			return object.QuoteRange(buf, pos, count, key, around), nil
		}, nil
	}

	return nil, fmt.Errorf("resolve text object: no object registered for %q", key)
}

// Apply resolves a text object command and reconciles the computed
// range with the selection state. It is the host-facing entry point
// for a single prefix+key pair.
func (r *Registry) Apply(buf *buffer.Buffer, st cursor.State, count int, prefix Prefix, key rune) (cursor.State, error) {
	fn, err := r.Resolve(prefix, key)
	if err != nil {
		return st, err
	}
	return object.MarkRange(buf, st, count, fn)
}
