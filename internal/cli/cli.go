// Package cli implements the rookflow command-line interface.
//
// Commands:
//   - solve:  compute the maximum flow (number of rooks) of a problem
//   - gen:    generate a random problem
//   - render: draw a problem's network as DOT or SVG
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML settings file (see package config).
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rookflow/config"
	"github.com/katalvlaran/rookflow/internal/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a CLI logging to w at level, with default configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// LoadConfig reads the configuration file at path (empty for defaults) and
// applies its log level. verbose forces debug level regardless of the file.
func (c *CLI) LoadConfig(path string, verbose bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return nil
}

// RootCommand creates the root cobra command with all subcommands registered.
// Persistent flags --verbose and --config are wired here.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	root := &cobra.Command{
		Use:          "rookflow",
		Short:        "rookflow places non-attacking rooks inside rectangles via max flow",
		Long:         `rookflow builds a source→rows→rectangles→columns→sink network from a grid and a list of rectangles, and solves it with Dinic's blocking-flow algorithm.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.LoadConfig(configPath, verbose)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.renderCommand())
	return root
}
