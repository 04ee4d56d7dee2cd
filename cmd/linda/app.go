package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tuplespaced/linda/internal/config"
	"github.com/tuplespaced/linda/pkg/space"
)

// app holds shared state for all CLI subcommands.
type app struct {
	sp *space.Space
}

// newApp opens the tuple space rooted at LINDA_DIR, wiring a text logger
// to stderr when verbose is set.
func newApp(verbose bool) (*app, error) {
	cfg := config.FromEnv()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sp, err := space.Open(cfg, space.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("cannot open tuple space %q: %w", cfg.Dir, err)
	}
	return &app{sp: sp}, nil
}

// Close releases the underlying space handle.
func (a *app) Close() { a.sp.Close() }

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
