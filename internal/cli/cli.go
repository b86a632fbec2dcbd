// Package cli implements the tilepath command-line interface.
//
// Commands:
//   - solve:      shortest move sequence for a sliding-tile puzzle
//   - path:       fewest-edge path between two nodes of an explicit graph
//   - components: connected components of an explicit graph
//
// Inputs come from a TOML file (see Config). Results are written to the
// command's stdout; progress and diagnostics go through a charmbracelet/log
// logger on stderr, at debug level with --verbose.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name shown in usage output.
const appName = "tilepath"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is reported by --version; main overrides it via SetVersion.
var version = "dev"

// SetVersion sets the version string displayed by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Breadth-first search over explicit graphs and sliding-tile puzzles",
		Long:          `tilepath finds shortest paths with breadth-first search, both in graphs given as edge lists and in the implicit graph of 5×5 sliding-tile puzzle boards.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.componentsCommand())

	return root
}
