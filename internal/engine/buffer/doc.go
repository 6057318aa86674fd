// Package buffer provides the text buffer used by the range engines.
//
// The buffer stores text as a contiguous UTF-8 string with a newline
// index for line-bounds queries. Positions are byte offsets; all
// character stepping is rune-aware. Reads past either end are defined
// failures (utf8.RuneError with size 0, or an error), never panics.
//
// The buffer is intentionally simpler than a rope: the range engines
// only need random access, line bounds, and occasional edits.
package buffer
