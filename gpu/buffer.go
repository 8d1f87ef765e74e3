// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// NewVertexBuffer makes a vertex buffer initialized with the given data.
func NewVertexBuffer[E any](dev *Device, label string, data []E) (*wgpu.Buffer, error) {
	return dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: wgpu.ToBytes(data),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
}

// NewIndexBuffer makes an index buffer initialized with the given data.
func NewIndexBuffer[E any](dev *Device, label string, data []E) (*wgpu.Buffer, error) {
	return dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: wgpu.ToBytes(data),
		Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
}

// NewUniformBuffer makes a uniform buffer of the given size in bytes,
// writable from the CPU each frame.
func NewUniformBuffer(dev *Device, label string, size int) (*wgpu.Buffer, error) {
	return dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(size),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
}

// SetBufferFrom writes the given data to the buffer at offset 0.
func SetBufferFrom[E any](dev *Device, buf *wgpu.Buffer, data []E) error {
	return dev.Queue.WriteBuffer(buf, 0, wgpu.ToBytes(data))
}
