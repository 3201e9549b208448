package io

import (
	"bufio"
	"fmt"
	goio "io"
	"os"

	"planet-viewer/scene"
)

// ExportOBJ writes meshes to a Wavefront .obj file, one object per mesh.
func ExportOBJ(path string, meshes []*scene.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}
	defer f.Close()

	if err := WriteOBJ(f, meshes); err != nil {
		return err
	}
	return f.Close()
}

// WriteOBJ writes meshes in OBJ text form. Every vertex carries its own
// position, uv and normal, so a face references all three by the same index.
func WriteOBJ(out goio.Writer, meshes []*scene.Mesh) error {
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "# Exported by planet-viewer")
	fmt.Fprintln(w)

	offset := uint32(0)
	for _, mesh := range meshes {
		if len(mesh.Normals) != len(mesh.Positions) || len(mesh.UVs) != len(mesh.Positions) {
			return fmt.Errorf("mesh %q: %d positions, %d normals, %d uvs", mesh.Name,
				len(mesh.Positions), len(mesh.Normals), len(mesh.UVs))
		}

		fmt.Fprintf(w, "o %s\n", mesh.Name)

		for _, p := range mesh.Positions {
			fmt.Fprintf(w, "v %f %f %f\n", p.X(), p.Y(), p.Z())
		}
		for _, n := range mesh.Normals {
			fmt.Fprintf(w, "vn %f %f %f\n", n.X(), n.Y(), n.Z())
		}
		for _, uv := range mesh.UVs {
			fmt.Fprintf(w, "vt %f %f\n", uv.X(), uv.Y())
		}

		// 1-indexed
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			i0 := mesh.Indices[i] + 1 + offset
			i1 := mesh.Indices[i+1] + 1 + offset
			i2 := mesh.Indices[i+2] + 1 + offset
			fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", i0, i0, i0, i1, i1, i1, i2, i2, i2)
		}

		offset += uint32(len(mesh.Positions))
		fmt.Fprintln(w)
	}

	return w.Flush()
}
