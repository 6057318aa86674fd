// Package config provides configuration for text object behavior.
//
// Configuration files declare the whitespace class used for
// around-object absorption, custom delimiter pairs, custom quote
// characters, and per-object linewise behavior for around ranges.
// Both TOML and YAML formats are supported; the loader
// picks the decoder from the file extension. A missing file yields
// the defaults rather than an error.
//
// The Watcher reloads the file on change and hands the parsed result
// to a callback, debouncing bursts of filesystem events.
package config
