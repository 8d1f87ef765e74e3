// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestSRGBFormat(t *testing.T) {
	f, err := srgbFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8Unorm,
		wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatBGRA8UnormSrgb,
	})
	assert.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, f)

	f, err = srgbFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatRGBA8Unorm,
	})
	assert.NoError(t, err)
	assert.Equal(t, wgpu.TextureFormatRGBA8UnormSrgb, f)

	_, err = srgbFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8Unorm,
		wgpu.TextureFormatBGRA8Unorm,
	})
	assert.Error(t, err)
}

func TestPaddedRowBytes(t *testing.T) {
	align := wgpu.CopyBytesPerRowAlignment
	assert.Equal(t, align, paddedRowBytes(1))
	assert.Equal(t, align, paddedRowBytes(align/4))
	assert.Equal(t, 2*align, paddedRowBytes(align/4+1))
	assert.Equal(t, 512, paddedRowBytes(128))
}

func TestNoDisplayGPU(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := NoDisplayGPU()
	assert.NoError(t, err)
	rt, err := NewRenderTexture(dev, image.Point{480, 320})
	assert.NoError(t, err)
	img, err := rt.ReadColor()
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 480, 320), img.Bounds())
	rt.Release()
	dev.Release()
	gp.Release()
}
