// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jeranaias/ahhnold/internal/commands"
	"github.com/jeranaias/ahhnold/internal/config"
	"github.com/jeranaias/ahhnold/internal/console"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
}

// session is everything a host needs to run one console.
type session struct {
	opts    *globalOptions
	cfg     *config.Config
	cfgPath string
	level   *slog.LevelVar
	logger  *slog.Logger
	closers []io.Closer

	set    *commands.Set
	ctrl   *console.Controller
	onQuit func()
}

// =============================================================================
// CONFIG
// =============================================================================

// loadConfig loads the configuration selected by the flags and applies flag
// overrides on top of file and environment values.
func loadConfig(opts *globalOptions) (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if opts.configPath != "" {
		path = opts.configPath
		cfg, err = config.LoadFromPath(path)
	} else {
		if path, err = config.ResolvePath(); err != nil {
			return nil, "", &ConfigError{Err: err}
		}
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, "", &ConfigError{Path: path, Err: err}
	}

	if err := applyOverrides(cfg, opts); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyOverrides writes flag values over cfg. It runs on every load,
// including watcher reloads, so flags keep winning over file edits.
func applyOverrides(cfg *config.Config, opts *globalOptions) error {
	if opts.logLevel != "" {
		if _, err := config.ParseLevel(opts.logLevel); err != nil {
			return &UsageError{Err: fmt.Errorf("--log-level: %w", err)}
		}
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.noColor {
		cfg.UI.Color = config.ColorNever
	}
	return nil
}

// =============================================================================
// LOGGING
// =============================================================================

// newLogger builds the diagnostic logger. Records go to the configured file
// when there is one, otherwise to fallback. A nil fallback discards them,
// which is what full-screen hosts want.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, *slog.LevelVar, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, nil, nil, &ConfigError{Err: err}
	}
	lv := new(slog.LevelVar)
	lv.Set(level)

	var (
		w      = fallback
		closer io.Closer
	)
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, nil, &ConfigError{Err: fmt.Errorf("failed to open log file: %w", err)}
		}
		w, closer = f, f
	}
	if w == nil {
		return slog.New(slog.DiscardHandler), lv, nil, nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})), lv, closer, nil
}

// =============================================================================
// SESSION
// =============================================================================

// newSession loads config, sets up logging and builds the controller with
// the sample commands.
func newSession(opts *globalOptions, logFallback io.Writer) (*session, error) {
	cfg, path, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, lv, closer, err := newLogger(cfg, logFallback)
	if err != nil {
		return nil, err
	}

	s := &session{opts: opts, cfg: cfg, cfgPath: path, level: lv, logger: logger}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	s.set = commands.NewSet(commands.WithQuit(func() {
		if s.onQuit != nil {
			s.onQuit()
		}
	}))
	s.ctrl, err = console.New(s.set.Registrations(),
		console.WithLogger(logger),
		console.WithScrollbackSize(cfg.Console.ScrollbackSize),
	)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.set.Bind(s.ctrl)
	return s, nil
}

// watch starts a config watcher when the session has a config path whose
// directory exists. Reloaded configs get the flag overrides applied again,
// and successful reloads update the log level. onReload runs on the watcher
// goroutine.
func (s *session) watch(onReload config.ReloadFunc) {
	if s.cfgPath == "" {
		return
	}
	w, err := config.NewWatcher(s.cfgPath, s.reloaded(onReload), config.WithWatchLogger(s.logger))
	if err != nil {
		s.logger.Debug("config watch unavailable", "path", s.cfgPath, "error", err)
		return
	}
	s.closers = append(s.closers, w)
}

func (s *session) reloaded(onReload config.ReloadFunc) config.ReloadFunc {
	return func(cfg *config.Config, err error) {
		if err == nil && s.opts != nil {
			if err = applyOverrides(cfg, s.opts); err != nil {
				cfg = nil
			}
		}
		if err == nil {
			if level, perr := config.ParseLevel(cfg.Logging.Level); perr == nil {
				s.level.Set(level)
			}
		}
		onReload(cfg, err)
	}
}

// Close releases the watcher and log file.
func (s *session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
