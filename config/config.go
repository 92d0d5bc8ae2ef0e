// Package config loads rookflow settings from a TOML file.
//
// Every field has a default, so a missing file or a partial file is fine:
//
//	[log]
//	level = "debug"
//
//	[solver]
//	queue_chunk = 64
//	show_placements = true
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rookflow/queue"
)

var (
	// ErrInvalidLevel indicates an unknown log level name.
	ErrInvalidLevel = errors.New("config: unknown log level")
	// ErrInvalidChunk indicates a queue chunk size below one.
	ErrInvalidChunk = errors.New("config: queue_chunk must be at least 1")
)

// Config is the decoded configuration file.
type Config struct {
	Log    Log    `toml:"log"`
	Solver Solver `toml:"solver"`
}

// Log configures the CLI logger.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Solver configures flow construction and output.
type Solver struct {
	// QueueChunk is the BFS queue block size.
	QueueChunk int `toml:"queue_chunk"`
	// ShowPlacements prints the decoded rooks after solving.
	ShowPlacements bool `toml:"show_placements"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Solver: Solver{QueueChunk: queue.DefaultChunkSize},
	}
}

// Load reads the file at path over the defaults. An empty path returns
// Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads TOML from r over the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q", undec[0].String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Solver.QueueChunk < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidChunk, c.Solver.QueueChunk)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return lvl, nil
}
