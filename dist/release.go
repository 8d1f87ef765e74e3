// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v66/github"
	"github.com/starlinghq/starling/base/exec"
	"golang.org/x/oauth2"
)

// NewGitHubClient returns a GitHub API client, authenticated with
// the given token when it is not empty.
func NewGitHubClient(ctx context.Context, token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// TagRelease tags the current commit as a release of the given version
// and pushes the tag. Pushing the tag is what triggers the release
// workflow, so this is the last local step of a release.
func TagRelease(version *semver.Version) error {
	v := version.String()
	err := exec.Run("git", "tag", "-a", v, "-m", v+" release")
	if err != nil {
		return fmt.Errorf("error tagging release: %w", err)
	}
	err = exec.Run("git", "push", "origin", "--tags")
	if err != nil {
		return fmt.Errorf("error pushing tags: %w", err)
	}
	return nil
}

// CreateDraft creates a draft release for the given version. The
// release stays invisible until [Publish] flips it live, so build
// jobs can upload artifacts to it without users seeing a partial
// release.
func CreateDraft(ctx context.Context, gh *github.Client, owner, repo string, version *semver.Version) (*github.RepositoryRelease, error) {
	v := version.String()
	rel, _, err := gh.Repositories.CreateRelease(ctx, owner, repo, &github.RepositoryRelease{
		TagName: github.String(v),
		Name:    github.String(v),
		Draft:   github.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating draft release: %w", err)
	}
	return rel, nil
}

// UploadArtifacts uploads every regular file in dir as an asset of
// the given release.
func UploadArtifacts(ctx context.Context, gh *github.Client, owner, repo string, rel *github.RepositoryRelease, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading artifact directory: %w", err)
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		f, err := os.Open(filepath.Join(dir, ent.Name()))
		if err != nil {
			return fmt.Errorf("error opening artifact: %w", err)
		}
		_, _, err = gh.Repositories.UploadReleaseAsset(ctx, owner, repo, rel.GetID(), &github.UploadOptions{Name: ent.Name()}, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("error uploading artifact %s: %w", ent.Name(), err)
		}
	}
	return nil
}

// Publish turns the given draft release into a published one.
func Publish(ctx context.Context, gh *github.Client, owner, repo string, rel *github.RepositoryRelease) (*github.RepositoryRelease, error) {
	out, _, err := gh.Repositories.EditRelease(ctx, owner, repo, rel.GetID(), &github.RepositoryRelease{
		Draft: github.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("error publishing release: %w", err)
	}
	return out, nil
}
