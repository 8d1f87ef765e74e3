// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// These helpers print directly to standard output for user-facing
// messages, gated on [UserLevel], in contrast to slog records,
// which carry time and level prefixes and go to standard error.

// PrintlnError prints the given args with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Println(a...)
	}
}

// PrintfError prints the given format and args with [fmt.Printf]
// if [UserLevel] is at or below [slog.LevelError].
func PrintfError(format string, a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Printf(format, a...)
	}
}

// PrintlnWarn prints the given args with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(a...)
	}
}

// PrintfWarn prints the given format and args with [fmt.Printf]
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintfWarn(format string, a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Printf(format, a...)
	}
}

// PrintlnInfo prints the given args with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintfInfo prints the given format and args with [fmt.Printf]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Printf(format, a...)
	}
}

// PrintlnDebug prints the given args with [fmt.Println]
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintfDebug prints the given format and args with [fmt.Printf]
// if [UserLevel] is at or below [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Printf(format, a...)
	}
}
