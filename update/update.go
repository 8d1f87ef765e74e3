// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package update replaces the running game binary with the newest
// release artifact published on GitHub.
package update

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v66/github"
	"github.com/schollz/progressbar/v3"
	"github.com/starlinghq/starling/base/errors"
	"github.com/starlinghq/starling/dist"
)

// Status describes the outcome of an update check.
type Status struct {

	// Current is the version of the running binary.
	Current *semver.Version

	// Latest is the version of the latest published release.
	Latest *semver.Version

	// Release is the latest published release.
	Release *github.RepositoryRelease

	// Updated is whether the running binary was replaced.
	Updated bool
}

// Newer reports whether the latest release is newer than the
// current version.
func (s *Status) Newer() bool {
	return s.Latest.GreaterThan(s.Current)
}

// Check fetches the latest release of the given repository and compares
// it with the current version. Drafts and prereleases are never served
// by the latest-release endpoint, so they are skipped automatically.
func Check(ctx context.Context, gh *github.Client, owner, repo, current string) (*Status, error) {
	cur, err := dist.ParseVersion(current)
	if err != nil {
		return nil, fmt.Errorf("update: current version: %w", err)
	}
	rel, resp, err := gh.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("update: %s/%s has no releases yet", owner, repo)
		}
		return nil, fmt.Errorf("update: fetching latest release: %w", err)
	}
	latest, err := dist.ParseVersion(rel.GetTagName())
	if err != nil {
		return nil, fmt.Errorf("update: release tag %q: %w", rel.GetTagName(), err)
	}
	return &Status{Current: cur, Latest: latest, Release: rel}, nil
}

// AssetFor returns the asset of the checked release that was built for
// the given platform, which is named by [dist.ArtifactName].
func AssetFor(s *Status, game, goos, goarch string) (*github.ReleaseAsset, error) {
	want := dist.ArtifactName(game, s.Latest, dist.Target{OS: goos, Arch: goarch})
	for _, a := range s.Release.Assets {
		if a.GetName() == want {
			return a, nil
		}
	}
	return nil, fmt.Errorf("update: release %s has no asset named %s", s.Latest, want)
}

// maxAttempts is how many times a download is tried before giving up.
const maxAttempts = 3

// Download fetches the given URL into dest, retrying failed attempts.
// The data goes through a temporary file in the destination directory,
// so a partial download never lands at dest itself.
func Download(ctx context.Context, url, dest string) error {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := download(ctx, url, dest)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return err
		}
		slog.Debug("update: download attempt failed", "attempt", attempt+1, "err", err)
	}
	return fmt.Errorf("update: failed to download %s after %d attempts: %w", url, maxAttempts, lastErr)
}

func download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error building download request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error downloading: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error downloading: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".update_*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}

	title := "downloading " + filepath.Base(dest)
	var bar *progressbar.ProgressBar
	if resp.ContentLength > 0 {
		bar = progressbar.DefaultBytes(resp.ContentLength, title)
	} else {
		bar = progressbar.DefaultBytes(-1, title)
	}
	defer bar.Close()

	if _, err := io.Copy(io.MultiWriter(tmp, bar), resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing download: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o755); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error marking download executable: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error finalizing download: %w", err)
	}
	return nil
}

// Apply replaces the running executable with the binary at path,
// which must be on the same filesystem. The previous executable is
// kept beside it with an .old suffix, since a running binary cannot
// be deleted on windows; [CleanOld] removes it on the next start.
func Apply(path string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("update: locating executable: %w", err)
	}
	old := exe + ".old"
	os.Remove(old)
	if err := os.Rename(exe, old); err != nil {
		return fmt.Errorf("update: moving old executable aside: %w", err)
	}
	if err := os.Rename(path, exe); err != nil {
		// the executable must never be left missing
		if rerr := os.Rename(old, exe); rerr != nil {
			return errors.Join(err, rerr)
		}
		return fmt.Errorf("update: installing new executable: %w", err)
	}
	return nil
}

// CleanOld removes the .old executable a previous [Apply] left
// behind. The file is legitimately absent most of the time, so
// errors are ignored.
func CleanOld() {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	os.Remove(exe + ".old")
}

// Options configures [SelfUpdate].
type Options struct {

	// Owner and Repo identify the GitHub repository to update from.
	Owner string
	Repo  string

	// Game is the artifact base name releases are published under.
	Game string

	// Current is the version of the running binary.
	Current string

	// Force applies the latest release even when it is not newer.
	Force bool

	// Token authenticates GitHub API requests when not empty.
	Token string

	// Client is the GitHub API client to use. A nil Client uses
	// one authenticated by Token.
	Client *github.Client
}

// SelfUpdate checks the repository for a newer release and replaces the
// running executable with the artifact built for this platform. Already
// being up to date is a normal outcome, reported through the returned
// status rather than an error.
func SelfUpdate(ctx context.Context, opts *Options) (*Status, error) {
	gh := opts.Client
	if gh == nil {
		gh = dist.NewGitHubClient(ctx, opts.Token)
	}
	status, err := Check(ctx, gh, opts.Owner, opts.Repo, opts.Current)
	if err != nil {
		return nil, err
	}
	if !status.Newer() && !opts.Force {
		return status, nil
	}
	asset, err := AssetFor(status, opts.Game, runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return status, err
	}
	exe, err := os.Executable()
	if err != nil {
		return status, fmt.Errorf("update: locating executable: %w", err)
	}
	// stage the download next to the executable so the final
	// rename stays on one filesystem
	staged := filepath.Join(filepath.Dir(exe), "."+opts.Game+".new")
	if err := Download(ctx, asset.GetBrowserDownloadURL(), staged); err != nil {
		return status, err
	}
	if err := Apply(staged); err != nil {
		os.Remove(staged)
		return status, err
	}
	status.Updated = true
	return status, nil
}
