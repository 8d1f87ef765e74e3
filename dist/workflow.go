// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"io"
	"text/template"
)

// WorkflowPath is where the release workflow lives in the repository.
const WorkflowPath = ".github/workflows/release.yml"

// runners maps a target operating system to the workflow runner
// that builds for it. Both darwin targets build on the same runner,
// cross-building between the darwin architectures.
var runners = map[string]string{
	"linux":   "ubuntu-latest",
	"windows": "windows-latest",
	"darwin":  "macos-latest",
}

// WorkflowData is the data passed to [WorkflowTmpl].
type WorkflowData struct {
	Game    string
	Targets []WorkflowTarget
}

// WorkflowTarget is one entry of the build matrix in [WorkflowTmpl].
type WorkflowTarget struct {
	GOOS   string
	GOARCH string
	Runner string
}

// WriteWorkflow renders the release workflow for the given game to w.
// The workflow implements the same flow as the release operations in
// this package: a pushed version tag creates a draft release, a build
// matrix over [Targets] uploads one artifact per target, and a final
// job publishes the draft once every build is done.
func WriteWorkflow(w io.Writer, game string) error {
	d := &WorkflowData{Game: game}
	for _, t := range Targets() {
		d.Targets = append(d.Targets, WorkflowTarget{GOOS: t.OS, GOARCH: t.Arch, Runner: runners[t.OS]})
	}
	err := WorkflowTmpl.Execute(w, d)
	if err != nil {
		return fmt.Errorf("error rendering release workflow: %w", err)
	}
	return nil
}

// WorkflowTmpl is the template for the GitHub release workflow.
// It uses << >> delimiters because the workflow itself contains
// ${{ }} expressions.
var WorkflowTmpl = template.Must(template.New("WorkflowTmpl").Delims("<<", ">>").Parse(
	`# Code generated by "flock ci"; DO NOT EDIT.
name: release

on:
  push:
    tags:
      - "[0-9]+.[0-9]+.[0-9]+"

permissions:
  contents: write

jobs:
  create-release:
    runs-on: ubuntu-latest
    steps:
      - name: Create draft release
        env:
          GH_TOKEN: ${{ secrets.GITHUB_TOKEN }}
        run: gh release create "${{ github.ref_name }}" --repo "${{ github.repository }}" --title "<<.Game>> ${{ github.ref_name }}" --draft

  build:
    needs: create-release
    strategy:
      fail-fast: false
      matrix:
        include:
<<- range .Targets>>
          - goos: <<.GOOS>>
            goarch: <<.GOARCH>>
            runner: <<.Runner>>
<<- end>>
    runs-on: ${{ matrix.runner }}
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version-file: go.mod
      - name: Install dependencies
        if: matrix.goos == 'linux'
        run: sudo apt-get update && sudo apt-get install -y gcc libgl1-mesa-dev libegl1-mesa-dev mesa-vulkan-drivers xorg-dev
      - name: Build
        run: go run ./cmd/flock build --target ${{ matrix.goos }}/${{ matrix.goarch }} --version "${{ github.ref_name }}"
      - name: Upload artifacts
        shell: bash
        env:
          GH_TOKEN: ${{ secrets.GITHUB_TOKEN }}
        run: gh release upload "${{ github.ref_name }}" dist/* --repo "${{ github.repository }}"

  publish:
    needs: build
    runs-on: ubuntu-latest
    steps:
      - name: Publish release
        env:
          GH_TOKEN: ${{ secrets.GITHUB_TOKEN }}
        run: gh release edit "${{ github.ref_name }}" --repo "${{ github.repository }}" --draft=false
`))
