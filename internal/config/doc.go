// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads, validates and watches the console configuration.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
//	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
//	    // apply color mode and log level
//	})
//	defer w.Close()
package config
