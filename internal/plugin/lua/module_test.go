package lua

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textobj/internal/input/vim"
)

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	NewModule(vim.NewRegistry()).Preload(L)
	return L
}

func TestLuaInnerAround(t *testing.T) {
	L := newState(t)
	err := L.DoString(`
		local textobj = require("textobj")

		local s, e = textobj.inner("foo bar", 6, "w")
		assert(s == 5 and e == 7, "inner word: " .. s .. "," .. e)

		s, e = textobj.around("foo bar", 6, "w")
		assert(s == 4 and e == 7, "around word: " .. s .. "," .. e)

		s, e = textobj.inner("a (b (c) d) e", 7, "(", 2)
		assert(s == 4 and e == 10, "nested parens: " .. s .. "," .. e)

		s, e = textobj.inner([[x "abc" y]], 5, '"')
		assert(s == 4 and e == 6, "inner quote: " .. s .. "," .. e)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestLuaErrors(t *testing.T) {
	L := newState(t)
	err := L.DoString(`
		local textobj = require("textobj")

		local s, msg = textobj.inner("no parens", 3, "(")
		assert(s == nil and msg ~= nil, "expected delimiter failure")

		s, msg = textobj.inner("foo", 1, "z")
		assert(s == nil and msg ~= nil, "expected unknown key failure")
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestLuaMatching(t *testing.T) {
	L := newState(t)
	err := L.DoString(`
		local textobj = require("textobj")

		local p = textobj.matching("a (b (c) d) e", 3)
		assert(p == 11, "forward match: " .. p)

		p = textobj.matching("a (b (c) d) e", 11)
		assert(p == 3, "backward match: " .. p)

		local q, msg = textobj.matching("plain", 2)
		assert(q == nil and msg ~= nil, "expected non-delimiter failure")
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}
