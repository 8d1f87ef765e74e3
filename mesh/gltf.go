// Copyright (c) 2026, The Starling Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/starlinghq/starling/base/errors"
	"github.com/starlinghq/starling/math32"
)

// DecodeGLTF parses glTF content (GLB or JSON with embedded buffers)
// and merges the geometry of all root nodes in all scenes into one
// mesh. Only indexed triangle primitives with position and color
// attributes and 16-bit indices are imported; anything else is
// skipped with a warning. Node transforms are not applied.
func DecodeGLTF(data []byte) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	m := &Mesh{}
	for _, sc := range doc.Scenes {
		for _, ni := range sc.Nodes {
			node := doc.Nodes[ni]
			if node.Mesh == nil {
				continue
			}
			for _, prim := range doc.Meshes[*node.Mesh].Primitives {
				if prim.Mode != gltf.PrimitiveTriangles {
					slog.Warn("mesh: skipping non-triangle geometry during import")
					continue
				}
				pi, ok := prim.Attributes[gltf.POSITION]
				if !ok {
					slog.Warn("mesh: skipping geometry with no position attribute during import")
					continue
				}
				ci, ok := prim.Attributes[gltf.COLOR_0]
				if !ok {
					slog.Warn("mesh: skipping geometry with no color attribute during import")
					continue
				}
				if prim.Indices == nil || doc.Accessors[*prim.Indices].ComponentType != gltf.ComponentUshort {
					slog.Warn("mesh: skipping geometry with an unsupported index type during import")
					continue
				}

				pos, err := modeler.ReadPosition(doc, doc.Accessors[pi], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh: %w", err)
				}
				cols, err := readColors(doc, doc.Accessors[ci])
				if err != nil {
					return nil, fmt.Errorf("mesh: %w", err)
				}
				idx, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh: %w", err)
				}

				offset := uint16(len(m.Positions))
				for _, p := range pos {
					m.Positions = append(m.Positions, math32.Vec4(p[0], p[1], p[2], 1))
				}
				m.Colors = append(m.Colors, cols...)
				for _, ix := range idx {
					m.Indices = append(m.Indices, uint16(ix)+offset)
				}
			}
		}
	}
	if len(m.Indices) == 0 {
		return nil, errors.New("mesh: no triangle geometry found")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Open loads a mesh from the glTF file at the given path.
func Open(fname string) (*Mesh, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	m, err := DecodeGLTF(data)
	if err != nil {
		return nil, err
	}
	m.Name = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	return m, nil
}

// readColors reads a COLOR_0 accessor as RGB float colors, converting
// from the normalized byte and short forms glTF allows. Alpha, if
// present, is dropped.
func readColors(doc *gltf.Document, acc *gltf.Accessor) ([]math32.Vector3, error) {
	switch acc.ComponentType {
	case gltf.ComponentFloat:
		data, err := modeler.ReadAccessor(doc, acc, nil)
		if err != nil {
			return nil, err
		}
		switch vals := data.(type) {
		case [][3]float32:
			cols := make([]math32.Vector3, len(vals))
			for i, v := range vals {
				cols[i] = math32.Vec3(v[0], v[1], v[2])
			}
			return cols, nil
		case [][4]float32:
			cols := make([]math32.Vector3, len(vals))
			for i, v := range vals {
				cols[i] = math32.Vec3(v[0], v[1], v[2])
			}
			return cols, nil
		default:
			return nil, fmt.Errorf("mesh: unsupported color accessor type %T", data)
		}
	case gltf.ComponentUshort:
		vals, err := modeler.ReadColor64(doc, acc, nil)
		if err != nil {
			return nil, err
		}
		cols := make([]math32.Vector3, len(vals))
		for i, v := range vals {
			cols[i] = math32.Vec3(float32(v[0])/65535, float32(v[1])/65535, float32(v[2])/65535)
		}
		return cols, nil
	default:
		vals, err := modeler.ReadColor(doc, acc, nil)
		if err != nil {
			return nil, err
		}
		cols := make([]math32.Vector3, len(vals))
		for i, v := range vals {
			cols[i] = math32.Vec3(float32(v[0])/255, float32(v[1])/255, float32(v[2])/255)
		}
		return cols, nil
	}
}
