// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the game configuration file, in TOML: window
// and asset options read at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the game configuration.
type Config struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in screen coordinates.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// AssetDir is the directory game assets are loaded from.
	AssetDir string `toml:"asset-dir"`

	// WatchAssets reloads assets edited while the game is running.
	WatchAssets bool `toml:"watch-assets"`

	// Address is the multiplayer server address to connect to, if any.
	Address string `toml:"address,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Title:    "Starling",
		Width:    1024,
		Height:   768,
		AssetDir: "assets",
	}
}

// Open reads the configuration file at the given path, applied over
// the defaults.
func Open(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %q: %w", fname, err)
	}
	return c, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(fname string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(fname, data, 0666)
}

// LocalFile is the name of a project-local configuration file, looked
// for in the working directory before the one at [Path].
const LocalFile = "starling.toml"

// Path returns the standard location of the configuration file in the
// user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "starling", "config.toml"), nil
}
