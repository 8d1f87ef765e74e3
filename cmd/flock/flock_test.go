// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/starlinghq/starling"
	"github.com/starlinghq/starling/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBuildBadVersion(t *testing.T) {
	buildVersion = "not-a-version"
	defer func() { buildVersion = "" }()

	assert.Error(t, runBuild(buildCmd, nil))
}

func TestRunBuildBadTarget(t *testing.T) {
	buildTarget = "plan9/amd64"
	defer func() { buildTarget = "" }()

	assert.Error(t, runBuild(buildCmd, nil))
}

func TestRunCI(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runCI(ciCmd, nil))

	got, err := os.ReadFile(dist.WorkflowPath)
	require.NoError(t, err)
	want := &bytes.Buffer{}
	require.NoError(t, dist.WriteWorkflow(want, starling.Name))
	assert.Equal(t, want.String(), string(got))
}

func TestRunVersionSet(t *testing.T) {
	t.Chdir(t.TempDir())
	src := "package starling\n\nconst Version = \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(versionFile, []byte(src), 0666))

	require.NoError(t, runVersion(versionCmd, []string{"0.2.0"}))

	b, err := os.ReadFile(versionFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `Version = "0.2.0"`)
}

func TestRunVersionBad(t *testing.T) {
	assert.Error(t, runVersion(versionCmd, []string{"1.2"}))
}
