// Command skillgraph is the CLI front-end for the skill graph indexing
// and health engine, grounded on the teacher's cmd/docbuilder structure: a
// root Kong CLI struct with subcommand fields and a shared --config flag.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Set at build time with: -ldflags "-X main.version=1.0.0"
var version = "dev"

// CLI is the root command definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"skillgraph.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Build the skill graph once and print it as JSON"`
	Health HealthCmd `cmd:"" help:"Run health checks once and print the report as JSON"`
	Watch  WatchCmd  `cmd:"" help:"Watch a root and rebuild on every detected change"`
	Init   InitCmd   `cmd:"" help:"Write a starter configuration file"`
}

// AfterApply runs after flag parsing to install the structured logger.
//
//nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	cli := &CLI{}
	parser := kong.Parse(cli,
		kong.Description("skillgraph: index skill files into a cycle-condensed graph and a health report."),
		kong.Vars{"version": version},
	)

	if err := parser.Run(cli); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
