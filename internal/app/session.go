package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/textobj/internal/config"
	"github.com/dshills/textobj/internal/engine/buffer"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/input/vim"
	"github.com/dshills/textobj/internal/object"
)

// Session is one editing session: a buffer, live selection state, a
// command parser, and the text object registry that resolves keys.
// Sessions are not safe for concurrent use.
type Session struct {
	id     uuid.UUID
	log    *Logger
	buf    *buffer.Buffer
	state  cursor.State
	parser *vim.Parser
	reg    *vim.Registry

	yanked        string
	insertPending bool
}

// NewSession creates a session over the given text. A nil logger
// discards output.
func NewSession(text string, log *Logger) *Session {
	if log == nil {
		log = NullLogger
	}
	id := uuid.New()
	return &Session{
		id:     id,
		log:    log.WithComponent("session").WithField("session", id.String()),
		buf:    buffer.New(text),
		state:  cursor.NewState(0),
		parser: vim.NewParser(),
		reg:    vim.NewRegistry(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Buffer returns the session buffer.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Text returns the buffer contents.
func (s *Session) Text() string { return s.buf.Text() }

// Registry returns the text object registry for customization.
func (s *Session) Registry() *vim.Registry { return s.reg }

// Selection returns the live selection state.
func (s *Session) Selection() cursor.State { return s.state }

// Yanked returns the text captured by the last yank, delete, or change.
func (s *Session) Yanked() string { return s.yanked }

// InsertPending reports whether a change command is waiting for
// replacement text.
func (s *Session) InsertPending() bool { return s.insertPending }

// MoveTo places the cursor, collapsing any selection.
func (s *Session) MoveTo(off buffer.ByteOffset) {
	s.state = cursor.NewState(s.buf.ClampToRune(off))
}

// EnterVisual activates a charwise selection at the cursor.
func (s *Session) EnterVisual() {
	if s.state.Active {
		return
	}
	s.state = s.state.Activate(s.state.Head, s.state.Head)
}

// ExitVisual collapses the selection back to a cursor.
func (s *Session) ExitVisual() {
	s.state = cursor.NewState(s.state.Head)
}

// HandleKey feeds one key to the command parser and executes any
// completed command. Pending sequences return nil.
func (s *Session) HandleKey(key rune) error {
	cmd, status := s.parser.Feed(key)
	switch status {
	case vim.StatusPending:
		return nil
	case vim.StatusInvalid:
		return fmt.Errorf("key %q: %w", key, ErrInvalidCommand)
	}
	return s.execute(cmd)
}

// Pending reports whether the parser is mid-sequence.
func (s *Session) Pending() bool {
	return s.parser.State() != vim.StateInitial
}

// CancelPending resets a partially entered command.
func (s *Session) CancelPending() {
	s.parser.Reset()
}

func (s *Session) execute(cmd vim.Command) error {
	op := cmd.Operator
	if op == nil || op.Key == vim.OpSelect.Key {
		st, err := s.reg.Apply(s.buf, s.state, cmd.Count, cmd.Prefix, cmd.Key)
		if err != nil {
			s.log.Debug("object selection failed: %v", err)
			return err
		}
		s.state = st
		return nil
	}

	fn, err := s.reg.Resolve(cmd.Prefix, cmd.Key)
	if err != nil {
		return err
	}

	pos := s.state.Head
	switch op.Key {
	case vim.OpDelete.Key:
		at, removed, err := object.DeleteObject(s.buf, pos, cmd.Count, fn)
		if err != nil {
			return err
		}
		s.yanked = removed
		s.state = cursor.NewState(at)

	case vim.OpChange.Key:
		at, removed, err := object.ChangeObject(s.buf, pos, cmd.Count, fn)
		if err != nil {
			return err
		}
		s.yanked = removed
		s.state = cursor.NewState(at)
		s.insertPending = true

	case vim.OpYank.Key:
		r, err := fn(s.buf, pos, cmd.Count)
		if err != nil {
			return err
		}
		r = r.Normalize()
		text, err := s.buf.Slice(r.Start, r.End)
		if err != nil {
			return err
		}
		s.yanked = text

	default:
		return fmt.Errorf("operator %s: %w", op.Name, ErrInvalidCommand)
	}

	s.log.Debug("%s %v%c count=%d", op.Name, cmd.Prefix, cmd.Key, cmd.Count)
	return nil
}

// Insert types text at the cursor, completing a pending change.
func (s *Session) Insert(text string) error {
	end, err := s.buf.Insert(s.state.Head, text)
	if err != nil {
		return err
	}
	s.state = cursor.NewState(end)
	s.insertPending = false
	return nil
}

// LoadConfig loads a configuration file and applies it to the
// session registry.
func (s *Session) LoadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Apply(s.reg); err != nil {
		return err
	}
	s.log.Info("configuration loaded from %s", path)
	return nil
}

// WatchConfig reloads and reapplies the configuration file whenever
// it changes. The caller closes the returned watcher.
func (s *Session) WatchConfig(path string) (*config.Watcher, error) {
	w := config.NewWatcher(path, func(cfg *config.Config) {
		if err := cfg.Apply(s.reg); err != nil {
			s.log.Error("config reload: %v", err)
			return
		}
		s.log.Info("configuration reloaded from %s", path)
	})
	w.OnError = func(err error) {
		s.log.Error("config watch: %v", err)
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return w, nil
}
