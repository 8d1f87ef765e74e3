// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a kit of error handling helpers on top of the
// standard library errors package, which it wraps so that call sites
// only need one import.
package errors

import "errors"

// New returns an error that formats as the given text.
// It is equivalent to [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// It is equivalent to [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is reports whether any error in err's tree matches target.
// It is equivalent to [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is equivalent to [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
// It is equivalent to [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
