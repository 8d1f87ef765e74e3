// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// RenderTexture is an offscreen texture render target, supporting
// readback of the rendered image for tests and screenshots.
type RenderTexture struct {

	// Format is the texture format rendered to.
	Format wgpu.TextureFormat

	// Size is the size of the texture in pixels.
	Size image.Point

	// Texture is the render target texture.
	Texture *wgpu.Texture

	// View is the view used as the color attachment.
	View *wgpu.TextureView

	device *Device
}

// NewRenderTexture returns a new offscreen render target of the given
// size, in RGBA8UnormSrgb so rendered output matches the window
// surface color space.
func NewRenderTexture(dev *Device, size image.Point) (*RenderTexture, error) {
	rt := &RenderTexture{
		Format: wgpu.TextureFormatRGBA8UnormSrgb,
		Size:   size,
		device: dev,
	}
	tex, err := dev.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "RenderTexture",
		Size: wgpu.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        rt.Format,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, err
	}
	rt.Texture = tex
	rt.View = view
	return rt, nil
}

// paddedRowBytes returns the bytes per row for copying a texture of
// the given pixel width to a buffer, padded to the required alignment.
func paddedRowBytes(width int) int {
	row := width * 4
	align := wgpu.CopyBytesPerRowAlignment
	return (row + align - 1) / align * align
}

// ReadColor copies the rendered texture back to the CPU and returns it
// as an image. It blocks until the GPU work is done.
func (rt *RenderTexture) ReadColor() (*image.NRGBA, error) {
	w, h := rt.Size.X, rt.Size.Y
	rowBytes := paddedRowBytes(w)
	bufSize := uint64(rowBytes * h)

	buf, err := rt.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ReadColor",
		Size:  bufSize,
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if err != nil {
		return nil, err
	}
	defer buf.Release()

	cmd, err := rt.device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, err
	}
	defer cmd.Release()
	err = cmd.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  rt.Texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: buf,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(rowBytes),
				RowsPerImage: uint32(h),
			},
		},
		&wgpu.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		})
	if err != nil {
		return nil, err
	}
	cmdBuf, err := cmd.Finish(nil)
	if err != nil {
		return nil, err
	}
	rt.device.Queue.Submit(cmdBuf)
	cmdBuf.Release()

	var status wgpu.BufferMapAsyncStatus
	err = buf.MapAsync(wgpu.MapModeRead, 0, bufSize, func(s wgpu.BufferMapAsyncStatus) {
		status = s
	})
	if err != nil {
		return nil, err
	}
	rt.device.WaitDone()
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return nil, fmt.Errorf("gpu: buffer map failed: %v", status)
	}
	defer buf.Unmap()

	data := buf.GetMappedRange(0, uint(bufSize))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*4], data[y*rowBytes:y*rowBytes+w*4])
	}
	return img, nil
}

// Release releases the render texture and its view.
func (rt *RenderTexture) Release() {
	if rt.View != nil {
		rt.View.Release()
		rt.View = nil
	}
	if rt.Texture != nil {
		rt.Texture.Release()
		rt.Texture = nil
	}
}
