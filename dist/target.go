// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"strings"
)

// Target is a build target with an operating system and an architecture.
type Target struct {
	OS   string
	Arch string
}

// String returns the target as a string in the form "os/arch".
func (t Target) String() string {
	return t.OS + "/" + t.Arch
}

// supportedOS contains the operating systems release binaries can
// be built for, which are the ones the windowing layer supports.
var supportedOS = map[string]bool{
	"darwin":  true,
	"linux":   true,
	"windows": true,
}

// supportedArch contains the architectures release binaries can be built for.
var supportedArch = map[string]bool{
	"amd64": true,
	"arm64": true,
	"386":   true,
	"arm":   true,
}

// ParseTarget parses a target of the form "os/arch".
func ParseTarget(s string) (Target, error) {
	os, arch, found := strings.Cut(s, "/")
	if !found {
		return Target{}, fmt.Errorf("error parsing target %q: expected os/arch", s)
	}
	if !supportedOS[os] {
		return Target{}, fmt.Errorf("error parsing target %q: operating system %s is not supported", s, os)
	}
	if !supportedArch[arch] {
		return Target{}, fmt.Errorf("error parsing target %q: architecture %s is not supported", s, arch)
	}
	return Target{OS: os, Arch: arch}, nil
}

// Targets returns the targets release binaries are built for, in the
// order they appear in the release workflow matrix. Every published
// release carries exactly one artifact per target.
func Targets() []Target {
	return []Target{
		{OS: "linux", Arch: "amd64"},
		{OS: "windows", Arch: "amd64"},
		{OS: "darwin", Arch: "amd64"},
		{OS: "darwin", Arch: "arm64"},
	}
}
