package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"planet-viewer/scene"
)

var smallTorus = scene.Torus{
	LargeRadius:   3,
	SmallRadius:   1,
	MajorSegments: 6,
	MinorSegments: 4,
}

func triangle() *scene.Mesh {
	m := scene.NewMesh("tri")
	m.Positions = []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	m.Normals = []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	m.UVs = []mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}}
	m.Indices = []uint32{0, 1, 2}
	return m
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, []*scene.Mesh{triangle(), triangle()}); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, "\nv "); n != 6 {
		t.Errorf("positions: expected 6, got %d", n)
	}
	if n := strings.Count(out, "\nvn "); n != 6 {
		t.Errorf("normals: expected 6, got %d", n)
	}
	if n := strings.Count(out, "\nvt "); n != 6 {
		t.Errorf("uvs: expected 6, got %d", n)
	}
	if !strings.Contains(out, "f 1/1/1 2/2/2 3/3/3\n") {
		t.Error("first face: expected 1-based indices")
	}
	if !strings.Contains(out, "f 4/4/4 5/5/5 6/6/6\n") {
		t.Error("second face: expected indices offset by the first mesh")
	}
	if !strings.Contains(out, "v 1.000000 0.000000 0.000000\n") {
		t.Error("positions: expected fixed-point coordinates")
	}
}

func TestWriteOBJRejectsMismatchedAttributes(t *testing.T) {
	m := triangle()
	m.Normals = m.Normals[:2]

	if err := WriteOBJ(&bytes.Buffer{}, []*scene.Mesh{m}); err == nil {
		t.Error("WriteOBJ: expected an error for missing normals")
	}
}

func TestExportOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torus.obj")
	mesh := smallTorus.Mesh()

	if err := Export(path, []*scene.Mesh{mesh}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if n := strings.Count(string(data), "\nf "); n != mesh.TriangleCount() {
		t.Errorf("faces: expected %d, got %d", mesh.TriangleCount(), n)
	}
}

func TestExportGLTFRoundTrip(t *testing.T) {
	for _, name := range []string{"torus.glb", "torus.gltf"} {
		path := filepath.Join(t.TempDir(), name)
		mesh := smallTorus.Mesh()

		if err := Export(path, []*scene.Mesh{mesh}); err != nil {
			t.Fatalf("%s: Export: %v", name, err)
		}

		loaded, err := LoadGLTF(path)
		if err != nil {
			t.Fatalf("%s: LoadGLTF: %v", name, err)
		}
		if len(loaded) != 1 {
			t.Fatalf("%s: expected 1 mesh, got %d", name, len(loaded))
		}
		got := loaded[0]

		if got.Name != mesh.Name {
			t.Errorf("%s: name expected %q, got %q", name, mesh.Name, got.Name)
		}
		if len(got.Positions) != len(mesh.Positions) || len(got.Normals) != len(mesh.Normals) || len(got.UVs) != len(mesh.UVs) {
			t.Fatalf("%s: attribute counts changed: %d/%d/%d", name, len(got.Positions), len(got.Normals), len(got.UVs))
		}
		for i := range mesh.Positions {
			if got.Positions[i] != mesh.Positions[i] || got.Normals[i] != mesh.Normals[i] || got.UVs[i] != mesh.UVs[i] {
				t.Fatalf("%s: vertex %d changed", name, i)
			}
		}
		if len(got.Indices) != len(mesh.Indices) {
			t.Fatalf("%s: indices expected %d, got %d", name, len(mesh.Indices), len(got.Indices))
		}
		for i := range mesh.Indices {
			if got.Indices[i] != mesh.Indices[i] {
				t.Fatalf("%s: index %d expected %d, got %d", name, i, mesh.Indices[i], got.Indices[i])
			}
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	err := Export(filepath.Join(t.TempDir(), "torus.stl"), []*scene.Mesh{triangle()})
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Export: expected unsupported format error, got %v", err)
	}
}

func TestExportGLTFEmptyMesh(t *testing.T) {
	err := ExportGLTF(filepath.Join(t.TempDir(), "empty.glb"), []*scene.Mesh{scene.NewMesh("empty")})
	if err == nil {
		t.Error("ExportGLTF: expected an error for a mesh without positions")
	}
}

func TestStateRoundTrip(t *testing.T) {
	view := scene.NewView(1, 1)
	view.Orbit(0.5, 2)
	view.SetZoomPrecise(-1.5)
	light := scene.NewLight(1, 0.4, 0.3)

	path := filepath.Join(t.TempDir(), "view.json")
	if err := SaveState(path, CaptureState(view, light)); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	state, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	view2 := scene.NewView(1, 1)
	light2 := scene.NewLight(0, 0, 0)
	state.Apply(view2, light2)

	if view2.Theta != view.Theta || view2.Phi != view.Phi || view2.ZoomPrecise != view.ZoomPrecise || view2.Zoom != view.Zoom {
		t.Errorf("view: expected %+v, got %+v", view, view2)
	}
	if *light2 != *light {
		t.Errorf("light: expected %+v, got %+v", light, light2)
	}
}

func TestLoadStateErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadState(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file: expected an error")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"version": "9"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadState(bad); err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("wrong version: expected a version error, got %v", err)
	}
}
