// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/starlinghq/starling/base/iox/imagex"
	"github.com/starlinghq/starling/camera"
	"github.com/starlinghq/starling/gpu"
	"github.com/starlinghq/starling/math32"
	"github.com/starlinghq/starling/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOptionsDefaults(t *testing.T) {
	e := New(nil)
	assert.Equal(t, "Starling", e.opts.Title)
	assert.Equal(t, image.Point{1024, 768}, e.opts.Size)
	assert.Equal(t, "assets", e.opts.AssetDir)
}

func TestLoadMeshIDs(t *testing.T) {
	e := New(nil)

	id, err := e.LoadMesh(mesh.Triangle())
	require.NoError(t, err)
	assert.Equal(t, MeshID(1), id)

	id, err = e.LoadMesh(mesh.Triangle())
	require.NoError(t, err)
	assert.Equal(t, MeshID(2), id)

	bad := mesh.Triangle()
	bad.Indices = []uint16{0, 1, 9}
	_, err = e.LoadMesh(bad)
	assert.Error(t, err)
}

func TestCommandBufferFull(t *testing.T) {
	e := New(nil)
	cam := *camera.New(math32.Vec3(0, 0, 2), math32.Vec3(0, 0, 0))
	for i := 0; i < CommandBufferSize; i++ {
		require.NoError(t, e.SetCamera(cam))
	}
	assert.Error(t, e.SetCamera(cam))
}

func TestStopIdempotent(t *testing.T) {
	e := New(nil)
	e.Stop()
	e.Stop()
}

func TestDrainAppliesCommands(t *testing.T) {
	t.Skip("Need software GPU on CI")
	_, dev, err := gpu.NoDisplayGPU()
	require.NoError(t, err)
	defer dev.Release()

	rend, err := newRenderer(dev, wgpu.TextureFormatRGBA8UnormSrgb)
	require.NoError(t, err)
	defer rend.Release()

	e := New(nil)
	id, err := e.LoadMesh(mesh.Triangle())
	require.NoError(t, err)
	var spin math32.Matrix4
	spin.SetRotationY(math32.DegToRad(45))
	require.NoError(t, e.SetTransform(id, spin))
	e.drain(rend)

	require.Contains(t, rend.meshes, id)
	assert.Equal(t, spin, rend.meshes[id].model)
}

func TestRenderTriangle(t *testing.T) {
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	require.NoError(t, err)
	defer gp.Release()
	defer dev.Release()

	sz := image.Point{480, 320}
	rt, err := gpu.NewRenderTexture(dev, sz)
	require.NoError(t, err)
	defer rt.Release()
	dt, err := gpu.NewDepthTexture(dev, sz)
	require.NoError(t, err)
	defer dt.Release()

	rend, err := newRenderer(dev, rt.Format)
	require.NoError(t, err)
	defer rend.Release()

	e := New(nil)
	_, err = e.LoadMesh(mesh.Triangle())
	require.NoError(t, err)
	e.drain(rend)

	aspect := float32(sz.X) / float32(sz.Y)
	require.NoError(t, rend.Frame(rt.View, dt.View, aspect, e.opts.ClearColor))
	dev.WaitDone()

	img, err := rt.ReadColor()
	require.NoError(t, err)
	imagex.Assert(t, img, "triangle")
}
