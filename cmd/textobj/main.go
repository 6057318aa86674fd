// Package main is an interactive playground for the text object
// engine. It renders a buffer in the terminal and accepts object
// commands: h/l move, v enters visual mode, i/a pick objects, d/c/y
// operate on them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/textobj/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const sampleText = `The quick (brown "fox") jumps over the lazy dog.
Second sentence here! A third one follows.

A new paragraph with [nested {curly} brackets] and 'quoted' words.
It spans two lines.
`

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var filePath string
	var logLevel string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "path to configuration file (TOML or YAML)")
	flag.StringVar(&filePath, "file", "", "file to load into the buffer")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("textobj %s (%s)\n", version, commit)
		return 0
	}

	text := sampleText
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", filePath, err)
			return 1
		}
		text = string(data)
	}

	logFile, err := os.OpenFile("textobj.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	log := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(logLevel),
		Output: logFile,
		Prefix: "textobj",
	})

	session := app.NewSession(text, log)
	if configPath != "" {
		if err := session.LoadConfig(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
			return 1
		}
		watcher, err := session.WatchConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching config: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	ui, err := newUI(session, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	if err := ui.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
