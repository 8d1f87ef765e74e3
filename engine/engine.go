// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine provides the game engine: the window, the mesh
// renderer, and the command interface the game drives them through.
package engine

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/starlinghq/starling/asset"
	"github.com/starlinghq/starling/base/errors"
	"github.com/starlinghq/starling/camera"
	"github.com/starlinghq/starling/gpu"
	"github.com/starlinghq/starling/math32"
	"github.com/starlinghq/starling/mesh"
)

func init() {
	// the window and its events must stay on the main thread
	runtime.LockOSThread()
}

// CommandBufferSize is the capacity of the engine command channel.
// Commands beyond this are rejected rather than blocking the caller.
const CommandBufferSize = 16

// MeshID identifies a mesh loaded into the engine. Zero is never
// assigned, so a zero MeshID is always invalid.
type MeshID int

// Options configure the engine at startup.
type Options struct {

	// Title is the window title.
	Title string

	// Size is the initial window size in screen coordinates.
	Size image.Point

	// ClearColor is the background color the frame is cleared to.
	// Alpha is ignored; frames are always opaque.
	ClearColor color.RGBA

	// AssetDir is the directory game assets are loaded from.
	AssetDir string

	// WatchAssets reloads meshes whose files change while running.
	WatchAssets bool

	// Address is the multiplayer server address from the command
	// line, if any.
	Address string
}

func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "Starling"
	}
	if o.Size == (image.Point{}) {
		o.Size = image.Point{1024, 768}
	}
	if o.AssetDir == "" {
		o.AssetDir = "assets"
	}
}

// command is one queued engine command.
type command interface{ isCommand() }

// loadMesh uploads a mesh under an id, replacing any mesh already
// using that id.
type loadMesh struct {
	id MeshID
	m  *mesh.Mesh
}

// setTransform sets the model matrix applied to a mesh each frame.
type setTransform struct {
	id    MeshID
	model math32.Matrix4
}

// setCamera sets the camera used for subsequent frames.
type setCamera struct {
	cam camera.Camera
}

func (loadMesh) isCommand()     {}
func (setTransform) isCommand() {}
func (setCamera) isCommand()    {}

// Engine runs the window and renderer, processing commands sent from
// game code on other goroutines.
type Engine struct {
	opts Options

	commands chan command
	quit     chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	meshIndex int
	meshFiles map[string]MeshID
}

// New returns an engine with the given options. Nil means defaults.
func New(opts *Options) *Engine {
	e := &Engine{
		commands:  make(chan command, CommandBufferSize),
		quit:      make(chan struct{}),
		meshFiles: map[string]MeshID{},
	}
	if opts != nil {
		e.opts = *opts
	}
	e.opts.defaults()
	return e
}

// send queues a command without blocking; a full buffer is an error so
// game code never stalls on the renderer.
func (e *Engine) send(c command) error {
	select {
	case e.commands <- c:
		return nil
	default:
		return errors.New("engine: command buffer is full")
	}
}

// LoadMesh queues m for upload to the GPU and returns its id.
func (e *Engine) LoadMesh(m *mesh.Mesh) (MeshID, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	e.mu.Lock()
	// this skips zero, which is intentional
	e.meshIndex++
	id := MeshID(e.meshIndex)
	e.mu.Unlock()
	if err := e.send(loadMesh{id: id, m: m}); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadMeshFile loads the glTF file at the given path, relative to the
// asset directory unless absolute, and queues it for upload. If asset
// watching is on, the mesh reloads when the file changes.
func (e *Engine) LoadMeshFile(path string) (MeshID, error) {
	fname := path
	if !filepath.IsAbs(fname) {
		fname = filepath.Join(e.opts.AssetDir, path)
	}
	m, err := mesh.Open(fname)
	if err != nil {
		return 0, err
	}
	id, err := e.LoadMesh(m)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	e.meshFiles[fname] = id
	e.mu.Unlock()
	return id, nil
}

// SetTransform sets the model matrix applied to the given mesh.
func (e *Engine) SetTransform(id MeshID, model math32.Matrix4) error {
	return e.send(setTransform{id: id, model: model})
}

// SetCamera sets the camera used for subsequent frames.
func (e *Engine) SetCamera(cam camera.Camera) error {
	return e.send(setCamera{cam: cam})
}

// Stop shuts the engine down after the current frame. It is safe to
// call any number of times, from any goroutine.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.quit) })
}

// reloadChanged reloads a changed asset file if a mesh was loaded
// from it.
func (e *Engine) reloadChanged(path string) {
	e.mu.Lock()
	id, ok := e.meshFiles[path]
	e.mu.Unlock()
	if !ok {
		return
	}
	m, err := mesh.Open(path)
	if err != nil {
		slog.Error("engine: reloading changed mesh", "path", path, "err", err)
		return
	}
	if err := e.send(loadMesh{id: id, m: m}); err != nil {
		slog.Warn("engine: dropping mesh reload", "path", path, "err", err)
		return
	}
	slog.Info("engine: reloading mesh", "path", path)
}

// Run opens the window and runs the engine until the window closes or
// Stop is called. It must be called from the main goroutine.
func (e *Engine) Run() error {
	if e.opts.Address != "" {
		slog.Info("engine: server address configured", "address", e.opts.Address)
	}

	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	win, err := gpu.NewWindow(e.opts.Size, e.opts.Title)
	if err != nil {
		return err
	}
	defer win.Destroy()

	wsf := win.CreateSurface()
	gp, err := gpu.NewGPU(wsf)
	if err != nil {
		return err
	}
	defer gp.Release()

	dev, err := gpu.NewDevice(gp)
	if err != nil {
		return err
	}
	defer dev.Release()

	sf, err := gpu.NewSurface(gp, dev, wsf, win.FramebufferSize())
	if err != nil {
		return err
	}
	defer sf.Release()

	dt, err := gpu.NewDepthTexture(dev, sf.Size)
	if err != nil {
		return err
	}
	defer dt.Release()

	rend, err := newRenderer(dev, sf.Format)
	if err != nil {
		return err
	}
	defer rend.Release()

	win.OnResize(func(size image.Point) {
		sf.Resize(size)
		if err := dt.SetSize(size); err != nil {
			slog.Error("engine: resizing depth buffer", "err", err)
		}
	})

	var watcher *asset.Watcher
	if e.opts.WatchAssets {
		watcher, err = asset.NewWatcher(e.opts.AssetDir)
		if err != nil {
			slog.Warn("engine: cannot watch assets", "dir", e.opts.AssetDir, "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	for {
		select {
		case <-e.quit:
			dev.WaitDone()
			return nil
		default:
		}
		if win.ShouldClose() {
			dev.WaitDone()
			return nil
		}
		win.PollEvents()

		if watcher != nil {
			for done := false; !done; {
				select {
				case path := <-watcher.C:
					e.reloadChanged(path)
				default:
					done = true
				}
			}
		}
		e.drain(rend)

		view, ok := sf.AcquireFrame()
		if !ok {
			// minimized or lost; nothing to draw
			time.Sleep(50 * time.Millisecond)
			continue
		}
		aspect := float32(sf.Size.X) / float32(sf.Size.Y)
		err := rend.Frame(view, dt.View, aspect, e.opts.ClearColor)
		view.Release()
		if err != nil {
			return err
		}
		sf.Present()
	}
}

// drain applies all queued commands.
func (e *Engine) drain(rend *renderer) {
	for {
		select {
		case c := <-e.commands:
			switch c := c.(type) {
			case loadMesh:
				if err := rend.loadMesh(c.id, c.m); err != nil {
					slog.Error("engine: loading mesh", "mesh", c.m.Name, "err", err)
				}
			case setTransform:
				rend.setTransform(c.id, c.model)
			case setCamera:
				rend.cam = c.cam
			}
		default:
			return
		}
	}
}
