// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type settings struct {
	Title  string  `yaml:"title" msgpack:"title"`
	Volume float64 `yaml:"volume" msgpack:"volume"`
}

func (*settings) Backend() Backend { return YAML }

type record struct {
	Name  string
	Score int64
}

func (*record) Backend() Backend { return MessagePack }

func TestSaveLoadYAML(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "settings.yaml")
	in := &settings{Title: "Starling", Volume: 0.8}
	require.NoError(t, Save(fname, in))

	// it really is YAML on disk
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Starling")

	out := &settings{}
	require.NoError(t, Load(fname, out))
	assert.Equal(t, in, out)
}

func TestSaveLoadMessagePack(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "record.bin")
	in := &record{Name: "nest", Score: 9001}
	require.NoError(t, Save(fname, in))

	out := &record{}
	require.NoError(t, Load(fname, out))
	assert.Equal(t, in, out)
}

func TestLoadMissing(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &settings{})
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMalformed(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(":\t not yaml"), 0666))
	err := Load(fname, &settings{})
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	defer func(d time.Duration) { DebounceDelay = d }(DebounceDelay)
	DebounceDelay = 50 * time.Millisecond

	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0666))
	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0666))

	select {
	case got := <-w.C:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for change notification")
	}
	assert.NoError(t, w.Close())
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
