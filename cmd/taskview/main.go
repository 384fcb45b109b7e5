// Package main is taskview, the command-line and terminal client of the task
// API. The list, add and toggle subcommands drive the same synchronization
// controller the interactive view uses. rm is a bulk path that deletes any
// IDs straight through the task client, in parallel.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(setup).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. before runs ahead of every subcommand and
// must store a Runner in the context. The Runner is closed after the
// subcommand returns.
func newApp(before cli.BeforeFunc) *cli.Command {
	return &cli.Command{
		Name:    "taskview",
		Usage:   "Browse and edit your tasks on a task API server",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "Configuration profile (base.yaml plus <profile>.yaml)",
				Value:   "local",
				Sources: cli.EnvVars("APP_PROFILE"),
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "Directory holding the YAML configuration",
				Value: "configs",
			},
			&cli.StringFlag{
				Name:    "server",
				Usage:   "Task API base URL (overrides client.base_url)",
				Sources: cli.EnvVars("TASKSYNC_SERVER"),
			},
			&cli.BoolFlag{
				Name:  "dark",
				Usage: "Start the terminal view in dark mode",
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Bearer token printed by the login command",
				Sources: cli.EnvVars("TASKSYNC_TOKEN"),
			},
		},
		Before:   before,
		After:    teardown,
		Commands: commands(),
	}
}
