package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Torus describes the planet. The tube circle has radius LargeRadius around
// the Y axis; the tube itself has radius SmallRadius.
type Torus struct {
	LargeRadius             float32
	SmallRadius             float32
	TerrainResolution       float32
	TerrainNormalResolution float32
	MajorSegments           int
	MinorSegments           int
}

// BackgroundQuad is the full-screen strip the starfield is drawn on,
// two components per vertex. It winds counter-clockwise so it survives
// back-face culling left enabled by the planet pass of the previous frame.
func BackgroundQuad() []float32 {
	return []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}
}

func (t Torus) segments() (major, minor int) {
	major, minor = t.MajorSegments, t.MinorSegments
	if major < 3 {
		major = 3
	}
	if minor < 3 {
		minor = 3
	}
	return major, minor
}

// StripVertexCount is the number of vertices StripVertices returns.
func (t Torus) StripVertexCount() int {
	major, minor := t.segments()
	return major*2*(minor+1) + 2*(major-1)
}

// StripVertices returns the (u, v) parameter grid of the torus as a single
// triangle strip, two components per vertex. u runs around the central
// axis and v around the tube, both over [0, 1]. Rows are joined with two
// degenerate vertices so every row starts on an even index and keeps the
// outward counter-clockwise winding.
func (t Torus) StripVertices() []float32 {
	major, minor := t.segments()
	data := make([]float32, 0, t.StripVertexCount()*2)

	for i := 0; i < major; i++ {
		u0 := float32(i) / float32(major)
		u1 := float32(i+1) / float32(major)

		if i > 0 {
			// repeat the last vertex of the previous row and the first of this one
			data = append(data, data[len(data)-2], data[len(data)-1])
			data = append(data, u1, 0)
		}

		for j := 0; j <= minor; j++ {
			v := float32(j) / float32(minor)
			data = append(data, u1, v, u0, v)
		}
	}
	return data
}

// Point evaluates the undisplaced surface at (u, v).
func (t Torus) Point(u, v float32) mgl32.Vec3 {
	sinT, cosT := sincos(u)
	sinP, cosP := sincos(v)
	ring := t.LargeRadius + t.SmallRadius*cosP
	return mgl32.Vec3{ring * cosT, t.SmallRadius * sinP, ring * sinT}
}

// Normal is the outward unit normal of the undisplaced surface at (u, v).
func (t Torus) Normal(u, v float32) mgl32.Vec3 {
	sinT, cosT := sincos(u)
	sinP, cosP := sincos(v)
	return mgl32.Vec3{cosP * cosT, sinP, cosP * sinT}
}

func sincos(turns float32) (sin, cos float32) {
	s, c := stdmath.Sincos(float64(turns) * 2 * stdmath.Pi)
	return float32(s), float32(c)
}

// Mesh builds an indexed triangle mesh of the undisplaced torus for export.
// Seam vertices are duplicated so UVs stay continuous.
func (t Torus) Mesh() *Mesh {
	major, minor := t.segments()
	m := NewMesh("Torus")

	for i := 0; i <= major; i++ {
		u := float32(i) / float32(major)
		for j := 0; j <= minor; j++ {
			v := float32(j) / float32(minor)
			m.Positions = append(m.Positions, t.Point(u, v))
			m.Normals = append(m.Normals, t.Normal(u, v))
			m.UVs = append(m.UVs, mgl32.Vec2{u, v})
		}
	}

	for i := 0; i < major; i++ {
		for j := 0; j < minor; j++ {
			current := uint32(i*(minor+1) + j)
			next := current + uint32(minor+1)

			m.Indices = append(m.Indices, current, current+1, next)
			m.Indices = append(m.Indices, current+1, next+1, next)
		}
	}
	return m
}
