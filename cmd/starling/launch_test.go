// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starlinghq/starling/config"
	"github.com/starlinghq/starling/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigExplicitMissing(t *testing.T) {
	cfgPath = filepath.Join(t.TempDir(), "missing.toml")
	defer func() { cfgPath = "" }()

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadConfigExplicit(t *testing.T) {
	cfgPath = filepath.Join(t.TempDir(), "game.toml")
	defer func() { cfgPath = "" }()
	cfg := config.Default()
	cfg.Title = "Fledgling"
	require.NoError(t, cfg.Save(cfgPath))

	got, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Fledgling", got.Title)
}

func TestLoadConfigLocalFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := config.Default()
	cfg.Width = 640
	require.NoError(t, cfg.Save(config.LocalFile))

	got, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 640, got.Width)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	got, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestRunLaunchBadAddress(t *testing.T) {
	t.Chdir(t.TempDir())
	address = "no-port"
	defer func() { address = "" }()

	err := runLaunch(rootCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid address")
}

func TestLoadSceneFallback(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "none")
	eng := engine.New(&engine.Options{AssetDir: dir})

	assert.NoError(t, loadScene(eng, dir))
}

func TestLoadSceneSkipsUnloadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.gltf"), []byte("not gltf"), 0666))
	eng := engine.New(&engine.Options{AssetDir: dir})

	assert.NoError(t, loadScene(eng, dir))
}
