// Package cursor provides selection value types for the range engines.
//
// A Selection is an anchor/head pair of byte offsets; the anchor is
// where the selection started and the head is where the cursor sits.
// State wraps a Selection with the visual-session bookkeeping the
// selection applier reads and writes: whether a selection is active,
// its granularity mode, and whether the region has been expanded to
// cover the character under the cursor.
//
// All types are immutable values; operations return new values.
package cursor
