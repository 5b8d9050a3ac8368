// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the ahhnold command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "ahhnold",
		Short: "AHHNOLD developer console",
		Long: `AHHNOLD is an in-process developer console: a command registry and
a line interpreter with scrollback, history and a small rich-text markup.

Run without arguments on a terminal to open the console overlay. When
stdin is not a terminal, each input line is run as a command line:

  printf 'version\nhelp\n' | ahhnold

Built-in console commands: help, !!, clear, hide.
Sample commands: version, quit, echo, doc.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd.InOrStdin()) && IsStdoutTTY() {
				return runTUI(opts, true)
			}
			return runStdin(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ~/.ahhnold/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "write diagnostics to this file")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTUICommand(opts),
		newReplCommand(opts),
		newRunCommand(opts),
		newVersionCommand(),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		DisplayError(os.Stderr, err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
