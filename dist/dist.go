// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements the release engineering for the game: building
// binaries for the release targets, naming artifacts, tagging releases,
// and talking to the GitHub release API. The checked-in release workflow
// delegates to the same names, so the artifact naming here is the single
// source of truth shared by CI and the self-updater.
package dist

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion parses a release version of the form
// <major>.<minor>.<patch>, with an optional leading v.
// All three parts must be numeric; prerelease and build
// metadata are not allowed on release versions.
func ParseVersion(tag string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return nil, fmt.Errorf("error parsing version %q: %w", tag, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return nil, fmt.Errorf("error parsing version %q: release versions must be plain major.minor.patch", tag)
	}
	return v, nil
}

// ArtifactName returns the name of the release binary for the given
// game, version, and target: <game>-<version>-<os>-<arch>, with an
// .exe suffix on windows. Release uploads and the self-updater both
// use this name, so it must never be constructed anywhere else.
func ArtifactName(game string, version *semver.Version, t Target) string {
	name := game + "-" + version.String() + "-" + t.OS + "-" + t.Arch
	if t.OS == "windows" {
		name += ".exe"
	}
	return name
}
