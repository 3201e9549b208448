package io

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"planet-viewer/scene"
)

// ExportGLTF writes meshes as a glTF 2.0 scene, one node per mesh. A path
// ending in .glb produces the binary container; anything else is written
// as .gltf JSON with the buffer embedded.
func ExportGLTF(path string, meshes []*scene.Mesh) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "planet-viewer"

	for _, mesh := range meshes {
		prim, err := writePrimitive(doc, mesh)
		if err != nil {
			return fmt.Errorf("mesh %q: %w", mesh.Name, err)
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       mesh.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: mesh.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

func writePrimitive(doc *gltf.Document, mesh *scene.Mesh) (*gltf.Primitive, error) {
	if len(mesh.Positions) == 0 {
		return nil, fmt.Errorf("no positions")
	}

	positions := make([][3]float32, len(mesh.Positions))
	for i, p := range mesh.Positions {
		positions[i] = p
	}

	prim := &gltf.Primitive{
		Mode: gltf.PrimitiveTriangles,
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		},
	}

	if len(mesh.Normals) == len(mesh.Positions) {
		normals := make([][3]float32, len(mesh.Normals))
		for i, n := range mesh.Normals {
			normals[i] = n
		}
		prim.Attributes[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}
	if len(mesh.UVs) == len(mesh.Positions) {
		uvs := make([][2]float32, len(mesh.UVs))
		for i, uv := range mesh.UVs {
			uvs[i] = uv
		}
		prim.Attributes[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, uvs)
	}
	if len(mesh.Indices) > 0 {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, mesh.Indices))
	}

	return prim, nil
}

// LoadGLTF opens a .glb or .gltf file and returns the first primitive of
// every mesh in it.
func LoadGLTF(path string) ([]*scene.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var meshes []*scene.Mesh
	for i, gm := range doc.Meshes {
		if len(gm.Primitives) == 0 {
			continue
		}
		m, err := readPrimitive(doc, gm.Name, gm.Primitives[0])
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

func readPrimitive(doc *gltf.Document, name string, prim *gltf.Primitive) (*scene.Mesh, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	m := scene.NewMesh(name)
	m.Positions = make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		m.Positions[i] = p
	}

	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("normals: %w", err)
		}
		m.Normals = make([]mgl32.Vec3, len(normals))
		for i, n := range normals {
			m.Normals[i] = n
		}
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("uvs: %w", err)
		}
		m.UVs = make([]mgl32.Vec2, len(uvs))
		for i, uv := range uvs {
			m.UVs[i] = uv
		}
	}
	if prim.Indices != nil {
		m.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}
	return m, nil
}

// Export writes meshes in the format named by the file extension: .obj,
// .gltf or .glb.
func Export(path string, meshes []*scene.Mesh) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return ExportOBJ(path, meshes)
	case ".gltf", ".glb":
		return ExportGLTF(path, meshes)
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}
}
