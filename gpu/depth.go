// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the texture format used for depth buffers.
const DepthFormat = wgpu.TextureFormatDepth32Float

// DepthTexture is a depth buffer sized to match a render target.
type DepthTexture struct {

	// Size is the current size of the depth texture in pixels.
	Size image.Point

	// Texture is the underlying depth texture.
	Texture *wgpu.Texture

	// View is the view used as the depth attachment.
	View *wgpu.TextureView

	device *Device
}

// NewDepthTexture returns a new depth texture of the given size.
func NewDepthTexture(dev *Device, size image.Point) (*DepthTexture, error) {
	dt := &DepthTexture{device: dev}
	if err := dt.SetSize(size); err != nil {
		return nil, err
	}
	return dt, nil
}

// SetSize ensures the depth texture is of the given size, recreating
// it if the size changed. Zero dimensions are ignored.
func (dt *DepthTexture) SetSize(size image.Point) error {
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	if size == dt.Size && dt.Texture != nil {
		return nil
	}
	dt.Release()
	tex, err := dt.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "DepthTexture",
		Size: wgpu.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return err
	}
	dt.Size = size
	dt.Texture = tex
	dt.View = view
	return nil
}

// Release releases the depth texture and its view.
func (dt *DepthTexture) Release() {
	if dt.View != nil {
		dt.View.Release()
		dt.View = nil
	}
	if dt.Texture != nil {
		dt.Texture.Release()
		dt.Texture = nil
	}
	dt.Size = image.Point{}
}
