// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	valid := []string{"1.2.3", "v1.2.3", "0.1.0", "10.20.30"}
	for _, s := range valid {
		v, err := ParseVersion(s)
		require.NoError(t, err, s)
		assert.Equal(t, "", v.Prerelease(), s)
	}
	invalid := []string{"", "1", "1.2", "1.2.3.4", "1.2.3-rc.1", "1.2.3+build", "abc", "1.x.3"}
	for _, s := range invalid {
		_, err := ParseVersion(s)
		assert.Error(t, err, s)
	}
}

func TestParseVersionDropsPrefix(t *testing.T) {
	v, err := ParseVersion("v1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())
}

func TestArtifactName(t *testing.T) {
	v, err := ParseVersion("1.2.0")
	require.NoError(t, err)
	assert.Equal(t, "starling-1.2.0-linux-amd64", ArtifactName("starling", v, Target{OS: "linux", Arch: "amd64"}))
	assert.Equal(t, "starling-1.2.0-windows-amd64.exe", ArtifactName("starling", v, Target{OS: "windows", Arch: "amd64"}))
	assert.Equal(t, "starling-1.2.0-darwin-arm64", ArtifactName("starling", v, Target{OS: "darwin", Arch: "arm64"}))
}

func TestTargets(t *testing.T) {
	want := []Target{
		{OS: "linux", Arch: "amd64"},
		{OS: "windows", Arch: "amd64"},
		{OS: "darwin", Arch: "amd64"},
		{OS: "darwin", Arch: "arm64"},
	}
	assert.Equal(t, want, Targets())
}

func TestParseTarget(t *testing.T) {
	tg, err := ParseTarget("linux/amd64")
	require.NoError(t, err)
	assert.Equal(t, Target{OS: "linux", Arch: "amd64"}, tg)
	assert.Equal(t, "linux/amd64", tg.String())

	_, err = ParseTarget("linux")
	assert.Error(t, err)
	_, err = ParseTarget("plan9/amd64")
	assert.Error(t, err)
	_, err = ParseTarget("linux/mips")
	assert.Error(t, err)
}

func TestSetVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.go")
	src := "package starling\n\n// Version is the current version of the game.\nconst Version = \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0666))

	v, err := ParseVersion("0.2.0")
	require.NoError(t, err)
	require.NoError(t, SetVersion(path, v))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `Version = "0.2.0"`)
	assert.NotContains(t, string(b), "0.1.0")
}

func TestSetVersionMissingConstant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.go")
	require.NoError(t, os.WriteFile(path, []byte("package starling\n"), 0666))

	v, err := ParseVersion("0.2.0")
	require.NoError(t, err)
	assert.Error(t, SetVersion(path, v))
}

// TestWriteWorkflow ensures the checked-in release workflow is exactly
// what flock ci generates, so the two can never drift apart.
func TestWriteWorkflow(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("..", WorkflowPath))
	require.NoError(t, err)

	b := &bytes.Buffer{}
	require.NoError(t, WriteWorkflow(b, "starling"))
	assert.Equal(t, string(golden), b.String())
}

func TestWriteWorkflowContract(t *testing.T) {
	b := &bytes.Buffer{}
	require.NoError(t, WriteWorkflow(b, "starling"))
	s := b.String()

	assert.Contains(t, s, `- "[0-9]+.[0-9]+.[0-9]+"`)
	assert.Contains(t, s, "fail-fast: false")
	assert.Contains(t, s, "--draft")
	assert.Contains(t, s, "--draft=false")
	for _, tg := range Targets() {
		assert.Contains(t, s, "- goos: "+tg.OS)
		assert.Contains(t, s, "goarch: "+tg.Arch)
	}
}
