// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"net"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/starlinghq/starling/config"
	"github.com/starlinghq/starling/engine"
	"github.com/starlinghq/starling/mesh"
)

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if address != "" {
		cfg.Address = address
	}
	if cfg.Address != "" {
		if _, _, err := net.SplitHostPort(cfg.Address); err != nil {
			return fmt.Errorf("invalid address %q: %w", cfg.Address, err)
		}
	}

	eng := engine.New(&engine.Options{
		Title:       cfg.Title,
		Size:        image.Point{cfg.Width, cfg.Height},
		AssetDir:    cfg.AssetDir,
		WatchAssets: cfg.WatchAssets,
		Address:     cfg.Address,
	})
	if err := loadScene(eng, cfg.AssetDir); err != nil {
		return err
	}
	return eng.Run()
}

// loadConfig reads the configuration file named by --config, or a
// starling.toml in the working directory, or the one at the standard
// path. Only an explicitly named file is required to exist; otherwise
// missing files mean defaults.
func loadConfig() (*config.Config, error) {
	if cfgPath != "" {
		return config.Open(cfgPath)
	}
	cfg, err := config.Open(config.LocalFile)
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	path, err := config.Path()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err = config.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// loadScene queues every mesh asset in the asset directory, falling
// back to the built-in triangle when there are none.
func loadScene(eng *engine.Engine, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	n := 0
	for _, ent := range entries {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".gltf" {
			continue
		}
		if _, err := eng.LoadMeshFile(ent.Name()); err != nil {
			slog.Warn("skipping unloadable mesh asset", "file", ent.Name(), "err", err)
			continue
		}
		n++
	}
	if n > 0 {
		return nil
	}
	_, err = eng.LoadMesh(mesh.Triangle())
	return err
}
