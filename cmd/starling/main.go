// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Starling is the game binary. Run without arguments it launches
// the game; it can also update itself from published releases.
package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/starlinghq/starling"
	"github.com/starlinghq/starling/base/logx"
	"github.com/starlinghq/starling/update"
)

var (
	address string
	cfgPath string
	force   bool
)

// rootCmd launches the game, which is what running the binary
// with no subcommand does.
var rootCmd = &cobra.Command{
	Use:          "starling",
	Short:        "Starling renders a scene of colored meshes",
	SilenceUsage: true,
	RunE:         runLaunch,
}

// launchCmd is the explicit spelling of the default behavior.
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch the game",
	RunE:  runLaunch,
}

// updateCmd replaces the running binary with the latest release.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the game to the latest published release",
	RunE:  runUpdate,
}

// versionCmd prints what is running.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the game version",
	Run:   runVersion,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, launchCmd} {
		c.Flags().StringVar(&address, "address", "", "multiplayer server address (host:port)")
		c.Flags().StringVar(&cfgPath, "config", "", "path to the configuration file")
	}
	updateCmd.Flags().BoolVar(&force, "force", false, "reinstall even when already up to date")
	rootCmd.AddCommand(launchCmd, updateCmd, versionCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	status, err := update.SelfUpdate(cmd.Context(), &update.Options{
		Owner:   starling.RepoOwner,
		Repo:    starling.RepoName,
		Game:    starling.Name,
		Current: starling.Version,
		Force:   force,
		Token:   os.Getenv("GITHUB_TOKEN"),
	})
	if err != nil {
		return err
	}
	if status.Updated {
		logx.PrintfInfo("%s updated to version %s; restart to use it", starling.Name, status.Latest)
	} else {
		logx.PrintfInfo("%s is up to date at version %s", starling.Name, status.Current)
	}
	return nil
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("%s %s %s/%s\n", starling.Name, starling.Version, runtime.GOOS, runtime.GOARCH)
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				fmt.Println("commit", s.Value)
			}
		}
	}
}

func main() {
	update.CleanOld()
	if err := rootCmd.Execute(); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
