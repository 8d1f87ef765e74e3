// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the window surface: its configuration, the per-frame
// texture acquisition, and presentation.
type Surface struct {

	// GPU is the physical GPU this surface renders on.
	GPU *GPU

	// Device is the rendering device for this surface.
	Device *Device

	// Format is the surface texture format, always an sRGB format.
	Format wgpu.TextureFormat

	// Size is the current size of the surface in pixels.
	Size image.Point

	surface *wgpu.Surface
	frame   *wgpu.Texture
}

// srgbFormat returns the first sRGB format among formats, preferring
// BGRA8UnormSrgb, or an error if none is sRGB.
func srgbFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb {
			return f, nil
		}
	}
	for _, f := range formats {
		if f == wgpu.TextureFormatRGBA8UnormSrgb {
			return f, nil
		}
	}
	return wgpu.TextureFormatUndefined, fmt.Errorf("gpu: surface supports no sRGB texture format: %v", formats)
}

// NewSurface configures the given wgpu surface on the device at the
// given size. The surface format must support sRGB.
func NewSurface(gp *GPU, dev *Device, sf *wgpu.Surface, size image.Point) (*Surface, error) {
	caps := sf.GetCapabilities(gp.Adapter)
	format, err := srgbFormat(caps.Formats)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		GPU:     gp,
		Device:  dev,
		Format:  format,
		surface: sf,
	}
	s.Resize(size)
	return s, nil
}

// config returns the surface configuration for the current size.
func (s *Surface) config() *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      s.Format,
		Width:       uint32(s.Size.X),
		Height:      uint32(s.Size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeAuto,
	}
}

// Resize reconfigures the surface to the given size. A size with a
// zero dimension is ignored: the window is minimized and there is
// nothing to configure until it comes back.
func (s *Surface) Resize(size image.Point) {
	if size.X == 0 || size.Y == 0 {
		return
	}
	if size == s.Size {
		return
	}
	s.Size = size
	s.surface.Configure(s.GPU.Adapter, s.Device.Device, s.config())
}

// AcquireFrame returns the texture view to render this frame into.
// If the surface is outdated or lost, it is reconfigured and
// acquisition retried once; ok is false when no frame is available,
// in which case the frame should be skipped.
func (s *Surface) AcquireFrame() (*wgpu.TextureView, bool) {
	if s.Size.X == 0 || s.Size.Y == 0 {
		return nil, false
	}
	tex, err := s.surface.GetCurrentTexture()
	if err != nil {
		slog.Debug("gpu: reconfiguring lost surface", "err", err)
		s.surface.Configure(s.GPU.Adapter, s.Device.Device, s.config())
		tex, err = s.surface.GetCurrentTexture()
		if err != nil {
			slog.Error("gpu: could not acquire surface texture", "err", err)
			return nil, false
		}
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		slog.Error("gpu: could not create surface view", "err", err)
		return nil, false
	}
	s.frame = tex
	return view, true
}

// Present presents the acquired frame to the window. The view passed
// to the render pass must already be released.
func (s *Surface) Present() {
	s.surface.Present()
	if s.frame != nil {
		s.frame.Release()
		s.frame = nil
	}
}

// Release releases the surface.
func (s *Surface) Release() {
	if s.frame != nil {
		s.frame.Release()
		s.frame = nil
	}
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}
