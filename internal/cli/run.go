// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newRunCommand(opts *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "run <line>...",
		Short: "Run command lines and print the scrollback output",
		Long: `Run each argument as one console command line.

Quote a line to keep its words together:
  ahhnold run "echo hello world" help

Running stops early on 'hide' or 'quit'.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), strict, func(s *session, h *lineHost) error {
				runLines(s.ctrl, h, args)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 1 if any line reports an error")
	return cmd
}

// runStdin runs a script read from in, one command line per input line.
func runStdin(opts *globalOptions, in io.Reader, out, errOut io.Writer) error {
	return runBatch(opts, out, errOut, false, func(s *session, h *lineHost) error {
		return runScript(s.ctrl, h, in)
	})
}

func runBatch(opts *globalOptions, out, errOut io.Writer, strict bool, body func(*session, *lineHost) error) error {
	s, err := newSession(opts, errOut)
	if err != nil {
		return err
	}
	defer s.Close()

	h := newLineHost(s, out, nil)
	defer h.Close()

	if err := body(s, h); err != nil {
		return err
	}
	if strict && h.failed > 0 {
		return &FailedLinesError{Count: h.failed}
	}
	return nil
}
