// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jeranaias/ahhnold/internal/config"
	"github.com/jeranaias/ahhnold/internal/ui/overlay"
	"github.com/jeranaias/ahhnold/internal/ui/styles"
)

func newTUICommand(opts *globalOptions) *cobra.Command {
	var closed bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen console overlay",
		Long: `Open the full-screen console overlay.

Navigation:
  `+"`"+`         Toggle the console (configurable with ui.toggle_key)
  Enter     Run the input line
  Up/Down   Recall history
  Tab       Complete command names
  PgUp/PgDn Scroll
  Ctrl+C    Quit`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, !closed)
		},
	}
	cmd.Flags().BoolVar(&closed, "closed", false, "start with the console closed")
	return cmd
}

func runTUI(opts *globalOptions, open bool) error {
	// Diagnostics would corrupt the alternate screen, so they are discarded
	// unless a log file is configured.
	s, err := newSession(opts, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	lip := lipgloss.NewRenderer(os.Stdout)
	lip.SetColorProfile(ColorProfile(s.cfg.UI.Color, os.Stdout))

	modelOpts := []overlay.Option{
		overlay.WithConfig(s.cfg),
		overlay.WithTheme(styles.NewThemeWithRenderer(lip)),
		overlay.WithLogger(s.logger),
	}
	if open {
		modelOpts = append(modelOpts, overlay.WithStartOpen())
	}
	m := overlay.New(s.ctrl, modelOpts...)
	defer m.Close()
	s.onQuit = m.QuitFunc()

	p := tea.NewProgram(m, tea.WithAltScreen())
	s.watch(func(cfg *config.Config, err error) {
		p.Send(overlay.ConfigReloadedMsg{Config: cfg, Err: err})
	})

	s.logger.Info("tui starting", "session", s.ctrl.ID())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
