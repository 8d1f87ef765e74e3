// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "Starling", c.Title)
	assert.Equal(t, 1024, c.Width)
	assert.Equal(t, 768, c.Height)
	assert.Equal(t, "assets", c.AssetDir)
	assert.False(t, c.WatchAssets)
}

func TestOpenAppliesOverDefaults(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fname, []byte("width = 640\nheight = 480\n"), 0666))

	c, err := Open(fname)
	require.NoError(t, err)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 480, c.Height)
	// unset fields keep their defaults
	assert.Equal(t, "Starling", c.Title)
	assert.Equal(t, "assets", c.AssetDir)
}

func TestSaveOpenRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.toml")
	in := Default()
	in.Title = "Fledgling"
	in.WatchAssets = true
	in.Address = "play.example.com:7777"
	require.NoError(t, in.Save(fname))

	out, err := Open(fname)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenMalformed(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fname, []byte("width = \"not a number\""), 0666))
	_, err := Open(fname)
	assert.Error(t, err)
}
