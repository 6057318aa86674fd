// Package object computes text-object ranges and applies them to
// selections.
//
// A text object is a syntactic unit of text: a word, a sentence, a
// paragraph, a delimiter-balanced block, or a quoted string. For each
// object the package computes two ranges: an "inner" range tight to
// the unit's own characters, and an "outer" range that additionally
// absorbs adjacent whitespace or the enclosing delimiters. These
// ranges drive select, delete, and change operations in a modal
// editing environment.
//
// The package is organized in three layers:
//
//   - Unit implementations (word, WORD, sentence, paragraph) provide
//     boundary motions: reposition a cursor by a signed count of
//     units, or report ErrMotionExhausted.
//   - Range engines (ObjectRange, InnerObjectRange, AnObjectRange,
//     ParenRange, QuoteRange) turn boundary motions and character
//     scans into normalized ranges.
//   - MarkRange reconciles a computed range with live selection
//     state, handling direction, one-time expansion, and the
//     retry-once rule for stuck selections.
//
// Everything here is pure position arithmetic: no function moves a
// shared cursor, and the only observable effect is the returned range
// or selection state.
package object
