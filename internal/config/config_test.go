package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/textobj/internal/engine/buffer"
	"github.com/dshills/textobj/internal/input/vim"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "textobj.toml", `
whitespace = " \t"
quotes = "|"

[linewise]
w = true

[[pairs]]
key = "*"
open = "/"
close = "\\"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Whitespace != " \t" {
		t.Errorf("whitespace = %q, want %q", cfg.Whitespace, " \t")
	}
	if cfg.Quotes != "|" {
		t.Errorf("quotes = %q, want %q", cfg.Quotes, "|")
	}
	if len(cfg.Pairs) != 1 || cfg.Pairs[0].Key != "*" || cfg.Pairs[0].Open != "/" || cfg.Pairs[0].Close != `\` {
		t.Errorf("pairs = %+v", cfg.Pairs)
	}
	if !cfg.Linewise["w"] {
		t.Errorf("linewise = %v, want w=true", cfg.Linewise)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "textobj.yaml", `
whitespace: " "
quotes: "~"
pairs:
  - key: "*"
    open: "/"
    close: "!"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Whitespace != " " || cfg.Quotes != "~" || len(cfg.Pairs) != 1 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadMissingFileDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Whitespace != "" || cfg.Quotes != "" || len(cfg.Pairs) != 0 {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	bad := writeFile(t, "textobj.toml", "whitespace = [broken")
	if _, err := Load(bad); err == nil {
		t.Error("malformed TOML should fail")
	} else {
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("error = %T, want *ParseError", err)
		}
	}

	unknown := writeFile(t, "textobj.conf", "whatever")
	if _, err := Load(unknown); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestValidate(t *testing.T) {
	bad := &Config{Pairs: []Pair{{Key: "ab", Open: "(", Close: ")"}}}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidPair) {
		t.Errorf("error = %v, want ErrInvalidPair", err)
	}
	good := &Config{Pairs: []Pair{{Key: "*", Open: "/", Close: "\\"}}}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	multi := &Config{Linewise: map[string]bool{"ab": true}}
	if err := multi.Validate(); !errors.Is(err, ErrInvalidPair) {
		t.Errorf("error = %v, want ErrInvalidPair", err)
	}
}

func TestApply(t *testing.T) {
	cfg := &Config{
		Whitespace: " ",
		Quotes:     "|",
		Pairs:      []Pair{{Key: "*", Open: "/", Close: "\\"}},
	}
	reg := vim.NewRegistry()
	if err := cfg.Apply(reg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	buf := buffer.New(`a /b\ |c|`)
	fn, err := reg.Resolve(vim.PrefixInner, '*')
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got, err := fn(buf, 3, 1); err != nil || (got != buffer.Range{Start: 3, End: 4}) {
		t.Errorf("custom pair range = (%v, %v), want ([3,4), nil)", got, err)
	}
	if !reg.Has('|') {
		t.Error("custom quote was not registered")
	}
}

func TestApplyLinewise(t *testing.T) {
	cfg := &Config{Linewise: map[string]bool{"w": true}}
	reg := vim.NewRegistry()
	if err := cfg.Apply(reg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	buf := buffer.New("foo\nbar")
	fn, err := reg.Resolve(vim.PrefixAround, 'w')
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	got, err := fn(buf, 4, 1)
	if err != nil {
		t.Fatalf("range func error = %v", err)
	}
	if want := (buffer.Range{Start: 3, End: 7}); got != want {
		t.Errorf("range = %v, want %v", got, want)
	}
}

func TestWatcherReload(t *testing.T) {
	path := writeFile(t, "textobj.toml", `whitespace = " "`)

	got := make(chan *Config, 1)
	w := NewWatcher(path, func(cfg *Config) {
		select {
		case got <- cfg:
		default:
		}
	})
	w.Debounce = 10 * time.Millisecond
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`whitespace = " \t"`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-got:
		if cfg.Whitespace != " \t" {
			t.Errorf("reloaded whitespace = %q, want %q", cfg.Whitespace, " \t")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
