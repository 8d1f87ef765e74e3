// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/starlinghq/starling"
	"github.com/starlinghq/starling/base/errors"
	"github.com/starlinghq/starling/base/exec"
	"github.com/starlinghq/starling/dist"
)

func runRelease(cmd *cobra.Command, args []string) error {
	v, err := dist.ParseVersion(args[0])
	if err != nil {
		return err
	}
	err = dist.SetVersion(versionFile, v)
	if err != nil {
		return err
	}
	err = exec.Run("git", "commit", "-am", "update version to "+v.String())
	if err != nil {
		return err
	}
	err = exec.Run("git", "push")
	if err != nil {
		return err
	}
	if direct {
		return releaseDirect(cmd.Context(), v)
	}
	return dist.TagRelease(v)
}

// releaseDirect performs the whole release through the GitHub API,
// for repositories that do not run the release workflow: create the
// draft, build and upload every artifact, then publish.
func releaseDirect(ctx context.Context, v *semver.Version) error {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return errors.New("flock release --direct requires GITHUB_TOKEN")
	}
	gh := dist.NewGitHubClient(ctx, token)
	rel, err := dist.CreateDraft(ctx, gh, starling.RepoOwner, starling.RepoName, v)
	if err != nil {
		return err
	}
	b := &dist.Build{Name: starling.Name, Version: v, Package: "./cmd/starling"}
	err = dist.BuildAll(b)
	if err != nil {
		return err
	}
	err = dist.UploadArtifacts(ctx, gh, starling.RepoOwner, starling.RepoName, rel, b.Output)
	if err != nil {
		return err
	}
	_, err = dist.Publish(ctx, gh, starling.RepoOwner, starling.RepoName, rel)
	return err
}
