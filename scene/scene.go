package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"planet-viewer/internal/gfx"
)

// Light is the directional sun.
//
// Azimuth and Elevation place the sun on the sky; Direction is the way the
// light travels (towards the planet) and DirectionMatrix rotates +Z onto the
// sun. Both are derived by Update and must be refreshed after the angles
// change.
type Light struct {
	Azimuth   float32
	Elevation float32
	Ambience  float32

	Direction       mgl32.Vec4
	DirectionMatrix mgl32.Mat4
}

// NewLight returns a light with its derived fields already computed.
func NewLight(azimuth, elevation, ambience float32) *Light {
	l := &Light{Azimuth: azimuth, Elevation: elevation, Ambience: ambience}
	l.Update()
	return l
}

// Update recomputes Direction and DirectionMatrix from the angles.
// Elevation is clamped to ±π/2.
func (l *Light) Update() {
	const halfPi = math.Pi / 2
	if l.Elevation > halfPi {
		l.Elevation = halfPi
	}
	if l.Elevation < -halfPi {
		l.Elevation = -halfPi
	}

	l.DirectionMatrix = mgl32.HomogRotate3DY(l.Azimuth).Mul4(mgl32.HomogRotate3DX(-l.Elevation))
	toSun := l.DirectionMatrix.Mul4x1(mgl32.Vec4{0, 0, 1, 0})
	l.Direction = mgl32.Vec4{-toSun.X(), -toSun.Y(), -toSun.Z(), 0}
}

// Rotate moves the sun and refreshes the derived fields.
func (l *Light) Rotate(deltaAzimuth, deltaElevation float32) {
	l.Azimuth = wrapAngle(l.Azimuth + deltaAzimuth)
	l.Elevation += deltaElevation
	l.Update()
}

// Programs are the two linked shading programs.
type Programs struct {
	Stars gfx.ProgramInfo
	Torus gfx.ProgramInfo
}

// Buffers are the uploaded shapes, one per program.
type Buffers struct {
	Stars gfx.Buffer
	Torus gfx.Buffer
}

// Scene is everything a frame reads. The draw routines never modify it.
type Scene struct {
	View     *View
	Torus    Torus
	Light    *Light
	Programs Programs
	Buffers  Buffers
}
