// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starling is a small game template built on WebGPU.
//
// The engine package runs a windowed render loop over a colored-mesh
// pipeline with a reverse-z infinite-far camera; mesh imports glTF
// geometry; asset loads and saves game data files and watches them for
// hot reload; state is the typed key-value game state, stored as YAML
// in debug builds and MessagePack otherwise; update self-updates the
// game from GitHub releases; dist implements the build and release
// engineering shared by the flock tool and the CI workflow.
//
// The starling command runs the game; the flock command builds and
// releases it.
package starling
