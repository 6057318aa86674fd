// Package vim provides Vim-style parsing and resolution for text
// object commands.
//
// This package implements the grammar for object commands:
//   - Count prefixes: numbers like "2" in "d2aw"
//   - Operators: d, c, y, v applied to an object range
//   - Object prefixes: i (inner) and a (around)
//   - Object keys: w, W, s, p, the bracket pairs, and quotes
//
// # Grammar
//
// The grammar for object commands is:
//
//	[count][operator][count](i|a)<object>
//
// Examples:
//   - "diw": operator=d, inner word
//   - "2d3aw": operator=d, around word, count 2*3=6
//   - "ci(": operator=c, inner parens
//   - `ya"`: operator=y, around double quotes
//   - "ip": inner paragraph (bare selection, as typed in visual mode)
//
// The Parser validates grammar shape and accumulates counts; the
// Registry resolves a prefix and object key to a range function over
// a buffer. Hosts register custom delimiter pairs and quote
// characters on the registry.
package vim
