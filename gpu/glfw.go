// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform
// builds. Window creation must happen on the main initial thread.

// Init initializes the windowing system. Must be called on the main
// initial thread, before any window is made.
func Init() error {
	return glfw.Init()
}

// Terminate shuts down the windowing system. Must be called on the
// main initial thread, as the last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// Window is a desktop window with a WebGPU surface.
type Window struct {
	win *glfw.Window
}

// NewWindow makes a new window of the given size in screen coordinates.
// Init must have been called first.
func NewWindow(size image.Point, title string) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Window{win: win}, nil
}

// CreateSurface makes the WebGPU surface for this window.
func (w *Window) CreateSurface() *wgpu.Surface {
	return Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.win))
}

// FramebufferSize returns the size of the window framebuffer in pixels,
// which is what the surface must be configured to.
func (w *Window) FramebufferSize() image.Point {
	width, height := w.win.GetFramebufferSize()
	return image.Point{width, height}
}

// OnResize sets fn to be called with the new framebuffer size in pixels
// whenever the window is resized, including to zero when minimized.
func (w *Window) OnResize(fn func(size image.Point)) {
	w.win.SetFramebufferSizeCallback(func(win *glfw.Window, width, height int) {
		fn(image.Point{width, height})
	})
}

// ShouldClose reports whether the user has requested the window close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PollEvents processes pending window events. Must be called on the
// main initial thread.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy destroys the window.
func (w *Window) Destroy() {
	w.win.Destroy()
}
