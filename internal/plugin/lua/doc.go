// Package lua exposes text object range queries to Lua scripts.
//
// The module is preloaded under the name "textobj". Scripts work with
// 1-based byte positions, the Lua string convention; ranges come back
// as inclusive start/end pairs:
//
//	local textobj = require("textobj")
//	local s, e = textobj.inner("foo bar", 6, "w")  -- 5, 7
//	local s, e = textobj.around("foo bar", 6, "w") -- 4, 7
//
// Failed lookups (no enclosing delimiter, unknown object key) return
// nil plus an error message.
package lua
