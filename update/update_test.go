// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package update

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGitHub returns a GitHub API client pointed at a test server
// running the given handler.
func newGitHub(t *testing.T, h http.Handler) *github.Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	gh := github.NewClient(nil)
	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = u
	return gh
}

func latestReleaseHandler(t *testing.T, body string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/starlinghq/starling/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	})
	return mux
}

func TestCheck(t *testing.T) {
	gh := newGitHub(t, latestReleaseHandler(t, `{"id":1,"tag_name":"0.2.0","assets":[{"name":"starling-0.2.0-linux-amd64"}]}`))

	s, err := Check(context.Background(), gh, "starlinghq", "starling", "0.1.0")
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", s.Latest.String())
	assert.True(t, s.Newer())

	s, err = Check(context.Background(), gh, "starlinghq", "starling", "0.2.0")
	require.NoError(t, err)
	assert.False(t, s.Newer())
}

func TestCheckNoReleases(t *testing.T) {
	gh := newGitHub(t, http.NotFoundHandler())

	_, err := Check(context.Background(), gh, "starlinghq", "starling", "0.1.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no releases yet")
}

func TestCheckBadReleaseTag(t *testing.T) {
	gh := newGitHub(t, latestReleaseHandler(t, `{"id":1,"tag_name":"nightly"}`))

	_, err := Check(context.Background(), gh, "starlinghq", "starling", "0.1.0")
	assert.Error(t, err)
}

func TestCheckBadCurrentVersion(t *testing.T) {
	gh := newGitHub(t, latestReleaseHandler(t, `{"id":1,"tag_name":"0.2.0"}`))

	_, err := Check(context.Background(), gh, "starlinghq", "starling", "dev")
	assert.Error(t, err)
}

func TestAssetFor(t *testing.T) {
	s := &Status{
		Latest: semver.MustParse("0.2.0"),
		Release: &github.RepositoryRelease{Assets: []*github.ReleaseAsset{
			{Name: github.String("starling-0.2.0-linux-amd64")},
			{Name: github.String("starling-0.2.0-windows-amd64.exe")},
		}},
	}

	a, err := AssetFor(s, "starling", "linux", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "starling-0.2.0-linux-amd64", a.GetName())

	a, err = AssetFor(s, "starling", "windows", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "starling-0.2.0-windows-amd64.exe", a.GetName())

	_, err = AssetFor(s, "starling", "darwin", "arm64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starling-0.2.0-darwin-arm64")
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("game binary"))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	dest := filepath.Join(dir, "starling")
	require.NoError(t, Download(context.Background(), srv.URL, dest))

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "game binary", string(b))

	// nothing but the finished download may be left in the directory
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "starling", entries[0].Name())
}

func TestDownloadRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "try again", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("game binary"))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "starling")
	require.NoError(t, Download(context.Background(), srv.URL, dest))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDownloadGivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "starling")
	err := Download(context.Background(), srv.URL, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
	assert.NoFileExists(t, dest)
}

func TestSelfUpdateUpToDate(t *testing.T) {
	gh := newGitHub(t, latestReleaseHandler(t, `{"id":1,"tag_name":"0.1.0"}`))

	s, err := SelfUpdate(context.Background(), &Options{
		Owner:   "starlinghq",
		Repo:    "starling",
		Game:    "starling",
		Current: "0.1.0",
		Client:  gh,
	})
	require.NoError(t, err)
	assert.False(t, s.Updated)
	assert.False(t, s.Newer())
}

func TestSelfUpdateMissingAsset(t *testing.T) {
	gh := newGitHub(t, latestReleaseHandler(t, `{"id":1,"tag_name":"0.2.0","assets":[]}`))

	_, err := SelfUpdate(context.Background(), &Options{
		Owner:   "starlinghq",
		Repo:    "starling",
		Game:    "starling",
		Current: "0.1.0",
		Client:  gh,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no asset named")
}
