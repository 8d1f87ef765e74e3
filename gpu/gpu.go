// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides a focused WebGPU layer for the game's rendering:
// instance, adapter, device, window surface, offscreen render textures,
// a depth buffer, shaders, and data buffers.
package gpu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/starlinghq/starling/base/errors"
)

// Debug is whether to enable debug-level WebGPU logging.
// It defaults to on in builds with the debug tag.
var Debug = debugBuild

var (
	instance     *wgpu.Instance
	instanceOnce sync.Once
)

// Instance returns the shared WebGPU instance, making it if needed.
func Instance() *wgpu.Instance {
	instanceOnce.Do(func() {
		level := wgpu.LogLevelError
		if Debug {
			level = wgpu.LogLevelWarn
		}
		wgpu.SetLogLevel(level)
		wgpu.SetLogCallback(func(level wgpu.LogLevel, msg string) {
			switch level {
			case wgpu.LogLevelError:
				slog.Error("wgpu: " + msg)
			case wgpu.LogLevelWarn:
				slog.Warn("wgpu: " + msg)
			default:
				slog.Debug("wgpu: " + msg)
			}
		})
		instance = wgpu.CreateInstance(nil)
	})
	return instance
}

// GPU represents the physical GPU hardware.
type GPU struct {

	// Adapter is the physical device adapter selected for rendering.
	Adapter *wgpu.Adapter

	// Limits of the adapter, used to size buffers and textures.
	Limits wgpu.SupportedLimits

	// DeviceName is the name of the adapter, for diagnostics.
	DeviceName string
}

// NewGPU returns a new GPU for the given surface, which is nil for
// offscreen-only (headless) use. The adapter is requested with high
// performance preference, compatible with the surface if given.
func NewGPU(sf *wgpu.Surface) (*GPU, error) {
	gp := &GPU{}
	opts := &wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	}
	if sf != nil {
		opts.CompatibleSurface = sf
	}
	ad, err := Instance().RequestAdapter(opts)
	if err != nil {
		return nil, fmt.Errorf("gpu: no suitable adapter found: %w", err)
	}
	gp.Adapter = ad
	gp.Limits = ad.GetLimits()
	info := ad.GetInfo()
	gp.DeviceName = info.Name
	slog.Debug("gpu: using adapter", "name", gp.DeviceName)
	return gp, nil
}

// NoDisplayGPU returns a GPU and Device available for offscreen
// rendering, without any surface. This is what tests use.
func NoDisplayGPU() (*GPU, *Device, error) {
	gp, err := NewGPU(nil)
	if err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, nil, err
	}
	return gp, dev, nil
}

// Release releases the adapter. Call after all devices are released.
func (gp *GPU) Release() {
	if gp.Adapter == nil {
		return
	}
	gp.Adapter.Release()
	gp.Adapter = nil
}

// Device is a logical GPU device and its command queue.
type Device struct {

	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the command queue for the device.
	Queue *wgpu.Queue
}

// NewDevice returns a new device for the given GPU.
func NewDevice(gp *GPU) (*Device, error) {
	dev, err := gp.Adapter.RequestDevice(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Device{Device: dev, Queue: dev.GetQueue()}, nil
}

// WaitDone blocks until all submitted work on this device is done.
func (dv *Device) WaitDone() {
	dv.Device.Poll(true, nil)
}

// Release releases the device. Call after all resources made on it
// are released.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
