// Package main is the entry point for the cloudsh application.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	shcli "github.com/cloudsh/cloudsh/internal/cli"
	"github.com/cloudsh/cloudsh/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:                  "cloudsh",
		Usage:                 "Interactive shell with completion for hierarchical cloud CLIs",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("CLOUDSH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "table",
				Usage:   "Path to the command table file",
				Sources: cli.EnvVars("CLOUDSH_TABLE"),
			},
			&cli.StringFlag{
				Name:    "cli",
				Value:   "az",
				Usage:   "CLI binary the shell wraps",
				Sources: cli.EnvVars("CLOUDSH_CLI"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "shell",
				Usage: "Start the interactive shell (default)",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return shcli.Shell(shcli.ShellParams{
						TablePath: cmd.String("table"),
						CLI:       cmd.String("cli"),
						LogLevel:  cmd.String("log-level"),
						Version:   version.Version,
					})
				},
			},
			{
				Name:      "complete",
				Usage:     "Print completion candidates for an input line",
				ArgsUsage: "<line>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return shcli.Complete(shcli.CompleteParams{
						TablePath: cmd.String("table"),
						CLI:       cmd.String("cli"),
						LogLevel:  cmd.String("log-level"),
						Line:      strings.Join(cmd.Args().Slice(), " "),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a command table file",
				ArgsUsage: "[path]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := cmd.String("table")
					if cmd.Args().Len() > 0 {
						path = cmd.Args().Get(0)
					}
					return shcli.Validate(path)
				},
			},
			{
				Name:  "schema",
				Usage: "Display or export the JSON Schema for command tables",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to a file instead of stdout",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return shcli.Schema(cmd.String("output"))
				},
			},
			{
				Name:  "status",
				Usage: "Show the command table, providers and history state",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return shcli.Status(shcli.StatusParams{
						TablePath: cmd.String("table"),
						CLI:       cmd.String("cli"),
						Version:   version.Version,
					})
				},
			},
		},
		// bare invocation drops straight into the shell
		Action: func(_ context.Context, cmd *cli.Command) error {
			return shcli.Shell(shcli.ShellParams{
				TablePath: cmd.String("table"),
				CLI:       cmd.String("cli"),
				LogLevel:  cmd.String("log-level"),
				Version:   version.Version,
			})
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
