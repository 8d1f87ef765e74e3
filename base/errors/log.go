// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil.
// It returns the error unchanged, so it can be used in line:
//
//	return errors.Log(doSomething())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs the given error if it is non-nil and returns the
// first value, for wrapping calls that return a value and an error:
//
//	v := errors.Log1(getValue())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Ignore1 returns the first value, ignoring any error, for the rare
// call site where the error genuinely does not matter.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file, line, and function of its caller's caller.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return file + ":" + strconv.Itoa(line) + " (" + runtime.FuncForPC(pc).Name() + ")"
}
