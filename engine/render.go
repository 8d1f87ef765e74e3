// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	_ "embed"
	"image/color"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/starlinghq/starling/camera"
	"github.com/starlinghq/starling/gpu"
	"github.com/starlinghq/starling/math32"
	"github.com/starlinghq/starling/mesh"
)

//go:embed shaders/mesh.wgsl
var meshWGSL string

// uniformSize is the byte size of the per-mesh shader uniform: one
// 4x4 float32 matrix.
const uniformSize = 64

var stencilKeep = wgpu.StencilFaceState{
	Compare:     wgpu.CompareFunctionAlways,
	FailOp:      wgpu.StencilOperationKeep,
	DepthFailOp: wgpu.StencilOperationKeep,
	PassOp:      wgpu.StencilOperationKeep,
}

// renderer owns the mesh pipeline and the GPU resources of loaded
// meshes, and records the render pass for each frame.
type renderer struct {
	device   *gpu.Device
	pipeline *wgpu.RenderPipeline
	layout   *wgpu.BindGroupLayout
	cam      camera.Camera
	meshes   map[MeshID]*meshGPU
	order    []MeshID
}

// meshGPU is the GPU-side data of one loaded mesh.
type meshGPU struct {
	positions  *wgpu.Buffer
	colors     *wgpu.Buffer
	indices    *wgpu.Buffer
	indexCount int
	uniform    *wgpu.Buffer
	bindGroup  *wgpu.BindGroup
	model      math32.Matrix4
}

// newRenderer makes the mesh render pipeline for the given target
// format. The pipeline draws lists of counterclockwise triangles with
// no culling and no blending, depth tested greater-or-equal against a
// reverse-z depth buffer.
func newRenderer(dev *gpu.Device, format wgpu.TextureFormat) (*renderer, error) {
	module, err := gpu.NewShaderModule(dev, "mesh", meshWGSL)
	if err != nil {
		return nil, err
	}
	defer module.Release()

	layout, err := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "mesh_uniforms_layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: uniformSize,
			},
		}},
	})
	if err != nil {
		return nil, err
	}

	plo, err := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "mesh_pipeline_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		layout.Release()
		return nil, err
	}
	defer plo.Release()

	pipeline, err := dev.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "mesh_pipeline",
		Layout: plo,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 4 * 4,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
					},
				},
				{
					ArrayStride: 3 * 4,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 1},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            gpu.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionGreaterEqual,
			StencilFront:      stencilKeep,
			StencilBack:       stencilKeep,
			StencilReadMask:   0xFFFFFFFF,
			StencilWriteMask:  0xFFFFFFFF,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		layout.Release()
		return nil, err
	}

	return &renderer{
		device:   dev,
		pipeline: pipeline,
		layout:   layout,
		cam:      *camera.New(math32.Vec3(0, 0, 2), math32.Vec3(0, 0, 0)),
		meshes:   map[MeshID]*meshGPU{},
	}, nil
}

// loadMesh uploads m to the GPU under the given id, replacing any mesh
// already using it, which is how hot reload works.
func (r *renderer) loadMesh(id MeshID, m *mesh.Mesh) error {
	mg := &meshGPU{indexCount: len(m.Indices)}
	mg.model.SetIdentity()

	var err error
	if mg.positions, err = gpu.NewVertexBuffer(r.device, "positions", m.Positions); err != nil {
		return err
	}
	if mg.colors, err = gpu.NewVertexBuffer(r.device, "colors", m.Colors); err != nil {
		mg.release()
		return err
	}
	if mg.indices, err = gpu.NewIndexBuffer(r.device, "indices", m.Indices); err != nil {
		mg.release()
		return err
	}
	if mg.uniform, err = gpu.NewUniformBuffer(r.device, "mvp", uniformSize); err != nil {
		mg.release()
		return err
	}
	mg.bindGroup, err = r.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "mesh_uniforms",
		Layout: r.layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  mg.uniform,
			Size:    uniformSize,
		}},
	})
	if err != nil {
		mg.release()
		return err
	}

	if old, ok := r.meshes[id]; ok {
		old.release()
	} else {
		r.order = append(r.order, id)
	}
	r.meshes[id] = mg
	return nil
}

// setTransform sets the model matrix of the given mesh.
func (r *renderer) setTransform(id MeshID, model math32.Matrix4) {
	mg, ok := r.meshes[id]
	if !ok {
		slog.Warn("engine: transform for unknown mesh", "id", id)
		return
	}
	mg.model = model
}

// Frame writes each mesh's model-view-projection matrix, records one
// render pass drawing all meshes to the given color and depth views,
// and submits it. The caller owns the views.
func (r *renderer) Frame(view, depthView *wgpu.TextureView, aspect float32, clear color.RGBA) error {
	vp := r.cam.ViewProjection(aspect)
	for _, id := range r.order {
		mg := r.meshes[id]
		var mvp math32.Matrix4
		mvp.MulMatrices(&vp, &mg.model)
		if err := gpu.SetBufferFrom(r.device, mg.uniform, mvp[:]); err != nil {
			return err
		}
	}

	cmd, err := r.device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()

	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "mesh_pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpClear,
			StoreOp: wgpu.StoreOpStore,
			ClearValue: wgpu.Color{
				R: float64(clear.R) / 255,
				G: float64(clear.G) / 255,
				B: float64(clear.B) / 255,
				A: 1,
			},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 0,
		},
	})
	rp.SetPipeline(r.pipeline)
	for _, id := range r.order {
		mg := r.meshes[id]
		rp.SetBindGroup(0, mg.bindGroup, nil)
		rp.SetVertexBuffer(0, mg.positions, 0, wgpu.WholeSize)
		rp.SetVertexBuffer(1, mg.colors, 0, wgpu.WholeSize)
		rp.SetIndexBuffer(mg.indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		rp.DrawIndexed(uint32(mg.indexCount), 1, 0, 0, 0)
	}
	rp.End()
	rp.Release()

	cmdBuf, err := cmd.Finish(nil)
	if err != nil {
		return err
	}
	r.device.Queue.Submit(cmdBuf)
	cmdBuf.Release()
	return nil
}

func (mg *meshGPU) release() {
	if mg.bindGroup != nil {
		mg.bindGroup.Release()
		mg.bindGroup = nil
	}
	for _, b := range []*wgpu.Buffer{mg.positions, mg.colors, mg.indices, mg.uniform} {
		if b != nil {
			b.Release()
		}
	}
	mg.positions, mg.colors, mg.indices, mg.uniform = nil, nil, nil, nil
}

func (r *renderer) Release() {
	for _, mg := range r.meshes {
		mg.release()
	}
	r.meshes = nil
	r.order = nil
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	if r.layout != nil {
		r.layout.Release()
		r.layout = nil
	}
}
