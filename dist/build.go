// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/starlinghq/starling/base/errors"
	"github.com/starlinghq/starling/base/exec"
)

// Build is the configuration for building release binaries.
type Build struct {

	// Name is the game name used in artifact names.
	Name string

	// Version is the release version stamped into artifact names.
	Version *semver.Version

	// Package is the package to build. It defaults to ".".
	Package string

	// Output is the directory built binaries are placed in.
	// It defaults to "dist".
	Output string
}

func (c *Build) defaults() {
	if c.Package == "" {
		c.Package = "."
	}
	if c.Output == "" {
		c.Output = "dist"
	}
}

// BuildTarget builds a release binary for the given target, named by
// [ArtifactName], into the output directory.
func BuildTarget(c *Build, t Target) error {
	c.defaults()
	err := os.MkdirAll(c.Output, 0777)
	if err != nil {
		return fmt.Errorf("build: failed to create output directory: %w", err)
	}
	xc := exec.Major()
	xc.Env["GOOS"] = t.OS
	xc.Env["GOARCH"] = t.Arch
	// the windowing layer needs cgo even when cross-building
	// between the two darwin architectures
	xc.Env["CGO_ENABLED"] = "1"
	out := filepath.Join(c.Output, ArtifactName(c.Name, c.Version, t))
	err = xc.Run("go", "build", "-trimpath", "-ldflags", "-s -w", "-o", out, c.Package)
	if err != nil {
		return fmt.Errorf("error building for target %s: %w", t, err)
	}
	return nil
}

// BuildAll builds release binaries for every target in [Targets],
// attempting the remaining targets when one fails and reporting
// all failures together.
func BuildAll(c *Build) error {
	var errs []error
	for _, t := range Targets() {
		err := BuildTarget(c, t)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
