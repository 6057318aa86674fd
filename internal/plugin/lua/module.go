package lua

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textobj/internal/engine/buffer"
	"github.com/dshills/textobj/internal/input/vim"
	"github.com/dshills/textobj/internal/object"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "textobj"

// Module binds a text object registry into a Lua state.
type Module struct {
	reg *vim.Registry
}

// NewModule creates a module over the given registry. A nil registry
// gets the standard objects.
func NewModule(reg *vim.Registry) *Module {
	if reg == nil {
		reg = vim.NewRegistry()
	}
	return &Module{reg: reg}
}

// Preload registers the module so scripts can require it.
func (m *Module) Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, m.loader)
}

func (m *Module) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"inner":    m.rangeFn(vim.PrefixInner),
		"around":   m.rangeFn(vim.PrefixAround),
		"matching": m.matching,
	})
	L.Push(mod)
	return 1
}

// rangeFn builds the inner/around entry point:
//
//	textobj.inner(text, pos, key [, count]) -> start, end | nil, err
func (m *Module) rangeFn(prefix vim.Prefix) lua.LGFunction {
	return func(L *lua.LState) int {
		text := L.CheckString(1)
		pos := L.CheckInt(2)
		keyStr := L.CheckString(3)
		count := L.OptInt(4, 1)

		key, size := utf8.DecodeRuneInString(keyStr)
		if size == 0 || size != len(keyStr) {
			return pushError(L, "object key must be a single character")
		}
		fn, err := m.reg.Resolve(prefix, key)
		if err != nil {
			return pushError(L, err.Error())
		}

		buf := buffer.New(text)
		r, err := fn(buf, buf.Clamp(buffer.ByteOffset(pos-1)), count)
		if err != nil {
			return pushError(L, err.Error())
		}
		return pushRange(L, r)
	}
}

// matching finds the partner of the delimiter at pos:
//
//	textobj.matching(text, pos) -> partner | nil, err
func (m *Module) matching(L *lua.LState) int {
	text := L.CheckString(1)
	pos := L.CheckInt(2)

	buf := buffer.New(text)
	off := buf.Clamp(buffer.ByteOffset(pos - 1))
	dir := 1
	if r, _ := buf.RuneAt(off); r == ')' || r == ']' || r == '}' || r == '>' {
		dir = -1
	}
	match, err := object.MatchingBoundary(buf, off, dir)
	if err != nil {
		return pushError(L, err.Error())
	}
	L.Push(lua.LNumber(match + 1))
	return 1
}

// pushRange converts a half-open byte range to 1-based inclusive
// start/end numbers. A zero-width range yields end < start.
func pushRange(L *lua.LState, r buffer.Range) int {
	L.Push(lua.LNumber(r.Start + 1))
	L.Push(lua.LNumber(r.End))
	return 2
}

func pushError(L *lua.LState, msg string) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(msg))
	return 2
}
