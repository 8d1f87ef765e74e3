// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/starlinghq/starling/base/exec"
	"github.com/starlinghq/starling/base/logx"
)

// runSetup installs the system packages the windowing layer needs to
// build. It only needs to run once per machine.
func runSetup(cmd *cobra.Command, args []string) error {
	vc := exec.Verbose().SetBuffer(false)
	switch runtime.GOOS {
	case "darwin":
		p, err := exec.Output("xcode-select", "-p")
		if err != nil || p == "" {
			return vc.Run("xcode-select", "--install")
		}
		logx.PrintlnWarn("xcode tools already installed")
		return nil
	case "linux":
		if _, err := exec.LookPath("apt-get"); err == nil {
			err := vc.Run("sudo", "apt-get", "update")
			if err != nil {
				return err
			}
			return vc.Run("sudo", "apt-get", "install", "-y", "gcc", "libgl1-mesa-dev", "libegl1-mesa-dev", "mesa-vulkan-drivers", "xorg-dev")
		}
		if _, err := exec.LookPath("dnf"); err == nil {
			return vc.Run("sudo", "dnf", "install", "gcc", "libX11-devel", "libXcursor-devel", "libXrandr-devel", "libXinerama-devel", "mesa-libGL-devel", "libXi-devel", "libXxf86vm-devel")
		}
		if _, err := exec.LookPath("pacman"); err == nil {
			return vc.Run("sudo", "pacman", "-S", "xorg-server-devel", "libxcursor", "libxrandr", "libxinerama", "libxi", "vulkan-swrast")
		}
		return fmt.Errorf("unknown Linux distribution; install the X11 and GL development packages for your distribution")
	case "windows":
		if _, err := exec.LookPath("gcc"); err == nil {
			logx.PrintlnWarn("gcc already installed")
			return nil
		}
		return fmt.Errorf("install a C toolchain such as w64devkit and make sure gcc is on PATH")
	}
	return fmt.Errorf("platform %q not supported for setup", runtime.GOOS)
}
