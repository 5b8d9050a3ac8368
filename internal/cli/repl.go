// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/ahhnold/internal/commands"
	"github.com/jeranaias/ahhnold/internal/config"
	"github.com/jeranaias/ahhnold/internal/console"
)

type reloadResult struct {
	cfg *config.Config
	err error
}

func newReplCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the console in line mode",
		Long: `Run the console in line mode with readline editing.

Up/Down recall earlier lines and Tab completes command names.
The session ends on 'hide', 'quit', Ctrl+C or Ctrl+D.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runREPL drives the controller from a liner prompt. Reload results from the
// watcher goroutine are queued and logged into the console before the next
// prompt, since the controller is only touched from this goroutine.
func runREPL(opts *globalOptions, out, errOut io.Writer) error {
	s, err := newSession(opts, errOut)
	if err != nil {
		return err
	}
	defer s.Close()

	host := newLineHost(s, out, clearScreenFunc(out))
	defer host.Close()

	reloads := make(chan reloadResult, 4)
	s.watch(func(cfg *config.Config, err error) {
		select {
		case reloads <- reloadResult{cfg, err}:
		default:
		}
	})
	consoleLog := slog.New(console.NewLogHandler(s.ctrl, slog.LevelInfo))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		var names []string
		for _, c := range commands.Complete(input, s.ctrl.Commands()) {
			names = append(names, c.Value)
		}
		return names
	})

	if s.cfg.Console.ShowIntro {
		s.ctrl.DrawIntro()
	}

	prompt := s.cfg.Console.Prompt
	for !host.stopped {
		prompt = drainReloads(reloads, consoleLog, prompt)

		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if input != "" {
			line.AppendHistory(input)
		}
		s.ctrl.RunCommandString(input)
	}
	return nil
}

// drainReloads logs pending reload results and returns the prompt to use.
func drainReloads(reloads <-chan reloadResult, logger *slog.Logger, prompt string) string {
	for {
		select {
		case r := <-reloads:
			if r.err != nil {
				logger.Warn("config reload failed", "error", r.err)
				continue
			}
			logger.Info("config reloaded")
			prompt = r.cfg.Console.Prompt
		default:
			return prompt
		}
	}
}
