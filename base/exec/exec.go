// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Run runs the given command with the given arguments,
// waiting for it to complete before returning.
func (c *Config) Run(cmd string, args ...string) error {
	if c.Echo != nil {
		fmt.Fprintln(c.Echo, CmdString(cmd, args...))
	}
	if c.PrintOnly {
		return nil
	}

	ec := exec.Command(cmd, args...)
	ec.Dir = c.Dir
	ec.Env = environ(c.Env)
	ec.Stdout = c.Stdout
	ec.Stdin = c.Stdin

	var errBuf *bytes.Buffer
	if c.Buffer {
		errBuf = &bytes.Buffer{}
		ec.Stderr = errBuf
	} else {
		ec.Stderr = c.Stderr
	}

	err := ec.Run()
	if err != nil {
		if errBuf != nil && errBuf.Len() > 0 {
			return fmt.Errorf("error running %q: %w: %s", CmdString(cmd, args...), err, strings.TrimSpace(errBuf.String()))
		}
		return fmt.Errorf("error running %q: %w", CmdString(cmd, args...), err)
	}
	return nil
}

// Output runs the given command and returns the text from its
// standard output, with any trailing newline trimmed.
func (c *Config) Output(cmd string, args ...string) (string, error) {
	oldStdout := c.Stdout
	buf := &bytes.Buffer{}
	c.Stdout = buf
	err := c.Run(cmd, args...)
	c.Stdout = oldStdout
	if c.Stdout != nil {
		c.Stdout.Write(buf.Bytes())
	}
	return strings.TrimSuffix(buf.String(), "\n"), err
}

// Run calls [Config.Run] on [Major].
func Run(cmd string, args ...string) error {
	return Major().Run(cmd, args...)
}

// Output calls [Config.Output] on [Major].
func Output(cmd string, args ...string) (string, error) {
	return Major().Output(cmd, args...)
}

// LookPath searches for the given executable in the directories
// named by the PATH environment variable.
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CmdString returns the command with its arguments as a single
// shell-like string, quoting arguments that contain spaces.
func CmdString(cmd string, args ...string) string {
	b := &strings.Builder{}
	b.WriteString(cmd)
	for _, a := range args {
		b.WriteString(" ")
		if strings.ContainsAny(a, " \t") {
			b.WriteString("\"" + a + "\"")
		} else {
			b.WriteString(a)
		}
	}
	return b.String()
}

// environ merges the given variables over the process environment,
// in stable key order.
func environ(env map[string]string) []string {
	if len(env) == 0 {
		return os.Environ()
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := os.Environ()
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
