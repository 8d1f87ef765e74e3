// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging and user-facing printing with
// standard library slog and colored terminal output. The default level
// follows the build: debug builds log everything, release builds only
// warnings and errors.
package logx

// UserLevel is the verbosity level that the user has selected for
// logging and printing, defaulting per build tags: [slog.LevelDebug]
// with the debug tag, [slog.LevelWarn] with the release tag, and
// [slog.LevelInfo] otherwise. Command line flags typically set this.
// It applies to the default slog logger and the Print helpers.
var UserLevel = defaultUserLevel
