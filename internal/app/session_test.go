package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func typeKeys(t *testing.T, s *Session, keys string) {
	t.Helper()
	for _, r := range keys {
		if err := s.HandleKey(r); err != nil {
			t.Fatalf("HandleKey(%q) error = %v", r, err)
		}
	}
}

func TestSessionIDs(t *testing.T) {
	a := NewSession("", nil)
	b := NewSession("", nil)
	if a.ID() == b.ID() {
		t.Error("sessions should get distinct identifiers")
	}
}

func TestSessionDeleteInnerWord(t *testing.T) {
	s := NewSession("foo bar baz", nil)
	s.MoveTo(5)
	typeKeys(t, s, "diw")

	if got := s.Text(); got != "foo  baz" {
		t.Errorf("text = %q, want %q", got, "foo  baz")
	}
	if s.Yanked() != "bar" {
		t.Errorf("yanked = %q, want %q", s.Yanked(), "bar")
	}
	if s.Selection().Head != 4 {
		t.Errorf("cursor = %d, want 4", s.Selection().Head)
	}
}

func TestSessionDeleteAroundWord(t *testing.T) {
	s := NewSession("foo bar baz", nil)
	s.MoveTo(5)
	typeKeys(t, s, "daw")

	if got := s.Text(); got != "foo baz" {
		t.Errorf("text = %q, want %q", got, "foo baz")
	}
	if s.Yanked() != "bar " {
		t.Errorf("yanked = %q, want %q", s.Yanked(), "bar ")
	}
}

func TestSessionChangeAndInsert(t *testing.T) {
	s := NewSession("foo bar baz", nil)
	s.MoveTo(5)
	typeKeys(t, s, "ciw")

	if !s.InsertPending() {
		t.Fatal("change should leave insert pending")
	}
	if err := s.Insert("qux"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if got := s.Text(); got != "foo qux baz" {
		t.Errorf("text = %q, want %q", got, "foo qux baz")
	}
	if s.InsertPending() {
		t.Error("insert should no longer be pending")
	}
}

func TestSessionYank(t *testing.T) {
	s := NewSession("foo (bar) baz", nil)
	s.MoveTo(6)
	typeKeys(t, s, "yi(")

	if s.Yanked() != "bar" {
		t.Errorf("yanked = %q, want %q", s.Yanked(), "bar")
	}
	if got := s.Text(); got != "foo (bar) baz" {
		t.Errorf("yank modified the buffer: %q", got)
	}
}

func TestSessionVisualSelect(t *testing.T) {
	s := NewSession("foo bar baz", nil)
	s.MoveTo(4)
	s.EnterVisual()
	typeKeys(t, s, "iw")

	sel := s.Selection()
	if !sel.Active || sel.Start() != 4 || sel.End() != 7 {
		t.Errorf("selection = %v, want active [4,7)", sel.Selection)
	}

	s.ExitVisual()
	if s.Selection().Active {
		t.Error("selection should be inactive after exit")
	}
}

func TestSessionCountedDelete(t *testing.T) {
	s := NewSession("one two three four", nil)
	s.MoveTo(0)
	typeKeys(t, s, "d2aw")

	if got := s.Text(); got != "three four" {
		t.Errorf("text = %q, want %q", got, "three four")
	}
}

func TestSessionInvalidKey(t *testing.T) {
	s := NewSession("foo", nil)
	if err := s.HandleKey('x'); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("error = %v, want ErrInvalidCommand", err)
	}
	if s.Pending() {
		t.Error("parser should have reset after an invalid key")
	}
}

func TestSessionDelimiterFailure(t *testing.T) {
	s := NewSession("no parens here", nil)
	s.MoveTo(3)
	for _, r := range "di" {
		if err := s.HandleKey(r); err != nil {
			t.Fatalf("HandleKey(%q) error = %v", r, err)
		}
	}
	if err := s.HandleKey('('); err == nil {
		t.Fatal("expected delimiter failure")
	}
	if got := s.Text(); got != "no parens here" {
		t.Errorf("buffer modified on failure: %q", got)
	}
}

func TestSessionCancelPending(t *testing.T) {
	s := NewSession("foo", nil)
	typeKeys(t, s, "di")
	if !s.Pending() {
		t.Fatal("sequence should be pending")
	}
	s.CancelPending()
	if s.Pending() {
		t.Error("cancel should reset the parser")
	}
}

func TestSessionLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textobj.toml")
	if err := os.WriteFile(path, []byte(`quotes = "|"`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewSession("a |b| c", nil)
	if err := s.LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !s.Registry().Has('|') {
		t.Error("configured quote missing from registry")
	}

	s.MoveTo(3)
	typeKeys(t, s, "di|")
	if got := s.Text(); got != "a || c" {
		t.Errorf("text = %q, want %q", got, "a || c")
	}
}
