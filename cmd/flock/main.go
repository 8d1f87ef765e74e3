// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Flock is the project tool for the game: it builds release binaries,
// tags and publishes releases, and keeps the generated files in sync.
// It expects to run at the repository root.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/starlinghq/starling"
	"github.com/starlinghq/starling/base/logx"
	"github.com/starlinghq/starling/dist"
)

// versionFile is the source file holding the Version constant,
// relative to the repository root.
const versionFile = "version.go"

var (
	buildTarget  string
	buildVersion string
	direct       bool
)

var rootCmd = &cobra.Command{
	Use:          "flock",
	Short:        "Flock builds and releases the game",
	SilenceUsage: true,
}

// buildCmd builds release binaries into dist/.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build release binaries for every target",
	RunE:  runBuild,
}

// releaseCmd runs the local half of a release: bump the version,
// commit, and push the tag that the workflow builds from.
var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Tag and publish a release of the given version",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelease,
}

// ciCmd regenerates the release workflow.
var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Write the GitHub release workflow",
	RunE:  runCI,
}

// versionCmd prints or sets the game version.
var versionCmd = &cobra.Command{
	Use:   "version [version]",
	Short: "Print the game version, or set it to the given one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVersion,
}

// setupCmd installs the system packages building the game needs.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install platform dependencies for building the game",
	RunE:  runSetup,
}

func init() {
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "build only the given os/arch target")
	buildCmd.Flags().StringVar(&buildVersion, "version", "", "version to stamp into artifact names")
	releaseCmd.Flags().BoolVar(&direct, "direct", false, "release through the GitHub API instead of tagging for CI")
	rootCmd.AddCommand(buildCmd, releaseCmd, ciCmd, versionCmd, setupCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ver := buildVersion
	if ver == "" {
		ver = starling.Version
	}
	v, err := dist.ParseVersion(ver)
	if err != nil {
		return err
	}
	b := &dist.Build{Name: starling.Name, Version: v, Package: "./cmd/starling"}
	if buildTarget == "" {
		return dist.BuildAll(b)
	}
	t, err := dist.ParseTarget(buildTarget)
	if err != nil {
		return err
	}
	return dist.BuildTarget(b, t)
}

func runCI(cmd *cobra.Command, args []string) error {
	err := os.MkdirAll(filepath.Dir(dist.WorkflowPath), 0777)
	if err != nil {
		return err
	}
	f, err := os.Create(dist.WorkflowPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return dist.WriteWorkflow(f, starling.Name)
}

func runVersion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(starling.Version)
		return nil
	}
	v, err := dist.ParseVersion(args[0])
	if err != nil {
		return err
	}
	err = dist.SetVersion(versionFile, v)
	if err != nil {
		return err
	}
	logx.PrintfInfo("updated version to %s", v)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
