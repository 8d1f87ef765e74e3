// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starling

// Name is the game name, used for window titles, artifact names,
// and the GitHub repository to self-update from.
const Name = "starling"

// Version is the current version of the game.
// It is updated by flock version and flock release.
const Version = "0.1.0"

// RepoOwner and RepoName identify the GitHub repository releases
// are published to and updated from.
const (
	RepoOwner = "starlinghq"
	RepoName  = "starling"
)
