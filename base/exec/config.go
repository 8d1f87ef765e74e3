// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs external commands with behavior controlled by a
// small configuration object, echoing commands and routing output
// based on the logx user level.
package exec

import (
	"io"
	"log/slog"
	"os"

	"github.com/starlinghq/starling/base/logx"
)

// Config contains the configuration information that
// controls the behavior of exec commands.
type Config struct {

	// Buffer is whether to buffer the command's stderr so that it can be
	// included in returned errors.
	Buffer bool

	// PrintOnly is whether to only print commands without running them.
	PrintOnly bool

	// Dir is the directory to execute commands in. It defaults to
	// the current working directory when empty.
	Dir string

	// Env contains environment variables set for executed commands,
	// in addition to the process environment.
	Env map[string]string

	// Echo is the writer commands are echoed to before running.
	// A nil value disables echoing.
	Echo io.Writer

	// Stdout is the writer for the command's standard output.
	Stdout io.Writer

	// Stderr is the writer for the command's standard error.
	Stderr io.Writer

	// Stdin is the reader for the command's standard input.
	Stdin io.Reader
}

// Major returns the default [Config] for commands that are central
// to the program's flow: the command and its output are shown to the
// user at the info level and below.
func Major() *Config {
	c := &Config{Env: map[string]string{}, Stderr: os.Stderr, Stdin: os.Stdin}
	if logx.UserLevel <= slog.LevelInfo {
		c.Echo = os.Stdout
		c.Stdout = os.Stdout
	}
	return c
}

// Minor returns the default [Config] for commands that are
// incidental to the program's flow: the command and its output
// are only shown to the user at the debug level.
func Minor() *Config {
	c := &Config{Env: map[string]string{}, Stderr: os.Stderr, Stdin: os.Stdin}
	if logx.UserLevel <= slog.LevelDebug {
		c.Echo = os.Stdout
		c.Stdout = os.Stdout
	}
	return c
}

// Verbose returns a [Config] that always echoes the command
// and shows its output, regardless of the logx user level.
func Verbose() *Config {
	return &Config{Env: map[string]string{}, Echo: os.Stdout, Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin}
}

// Silent returns the default [Config] for commands that should
// never print anything; errors are still reported through the
// returned error, with stderr buffered into it.
func Silent() *Config {
	return &Config{Env: map[string]string{}, Buffer: true}
}

// SetEnv sets the given environment variable and returns the
// config for chaining.
func (c *Config) SetEnv(key, value string) *Config {
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env[key] = value
	return c
}

// SetDir sets the directory to run in and returns the config for chaining.
func (c *Config) SetDir(dir string) *Config {
	c.Dir = dir
	return c
}

// SetBuffer sets whether stderr is buffered into returned errors
// and returns the config for chaining.
func (c *Config) SetBuffer(buffer bool) *Config {
	c.Buffer = buffer
	return c
}
