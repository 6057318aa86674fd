package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/textobj/internal/input/vim"
	"github.com/dshills/textobj/internal/object"
)

// Pair declares a custom delimiter pair bound to a key.
type Pair struct {
	// Key is the object key that selects this pair.
	Key string `toml:"key" yaml:"key"`

	// Open is the opening delimiter character.
	Open string `toml:"open" yaml:"open"`

	// Close is the closing delimiter character.
	Close string `toml:"close" yaml:"close"`
}

// Config holds text object settings.
type Config struct {
	// Whitespace lists the characters treated as whitespace during
	// around-object absorption. Empty means the default class.
	Whitespace string `toml:"whitespace" yaml:"whitespace"`

	// Pairs are custom delimiter pairs added to the standard set.
	Pairs []Pair `toml:"pairs" yaml:"pairs"`

	// Quotes lists custom quote characters added to the standard set.
	Quotes string `toml:"quotes" yaml:"quotes"`

	// Linewise overrides, per motion object key, whether around-ranges
	// may cross line starts and absorb blank lines.
	Linewise map[string]bool `toml:"linewise" yaml:"linewise"`
}

// Default returns the configuration with no customizations.
func Default() *Config {
	return &Config{}
}

// Validate checks that every pair field is a single character.
func (c *Config) Validate() error {
	for i, p := range c.Pairs {
		for field, s := range map[string]string{"key": p.Key, "open": p.Open, "close": p.Close} {
			if utf8.RuneCountInString(s) != 1 {
				return fmt.Errorf("pair %d: %s %q must be a single character: %w", i, field, s, ErrInvalidPair)
			}
		}
	}
	for k := range c.Linewise {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("linewise key %q must be a single character: %w", k, ErrInvalidPair)
		}
	}
	return nil
}

// Apply registers the configured customizations on a registry.
func (c *Config) Apply(reg *vim.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Whitespace != "" {
		reg.SetWhitespace(object.WhitespaceOf(c.Whitespace))
	}
	for _, p := range c.Pairs {
		key, _ := utf8.DecodeRuneInString(p.Key)
		open, _ := utf8.DecodeRuneInString(p.Open)
		close, _ := utf8.DecodeRuneInString(p.Close)
		reg.AddPair(key, open, close)
	}
	for _, q := range c.Quotes {
		reg.AddQuote(q)
	}
	for k, on := range c.Linewise {
		key, _ := utf8.DecodeRuneInString(k)
		reg.SetIncludeNewlines(key, on)
	}
	return nil
}
