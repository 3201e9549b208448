package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// View is the orbit camera around the torus.
//
// ZoomPrecise is the signed log2 of the zoom and may go below zero; Zoom is
// the distance-like value derived from it and never drops under MinZoom.
// Zoom >= 1 exactly when ZoomPrecise >= 0 (above the floor).
type View struct {
	Zoom        float32
	ZoomPrecise float32
	FOV         float32 // radians
	Aspect      float32
	Theta       float32 // tilt around the tube, about X
	Phi         float32 // orbit around the central axis, about Y

	MinZoomPrecise float32
	MaxZoomPrecise float32
	MinZoom        float32
}

// NewView returns a view at zoom 1 looking straight at the tube.
func NewView(fov, aspect float32) *View {
	v := &View{
		FOV:            fov,
		Aspect:         aspect,
		MinZoomPrecise: -8,
		MaxZoomPrecise: 3,
		MinZoom:        1.0 / 256,
	}
	v.SetZoomPrecise(0)
	return v
}

// SetZoomPrecise clamps precise to the configured range and derives Zoom.
func (v *View) SetZoomPrecise(precise float32) {
	if precise < v.MinZoomPrecise {
		precise = v.MinZoomPrecise
	}
	if precise > v.MaxZoomPrecise {
		precise = v.MaxZoomPrecise
	}
	v.ZoomPrecise = precise

	zoom := float32(math.Exp2(float64(precise)))
	if zoom < v.MinZoom {
		zoom = v.MinZoom
	}
	v.Zoom = zoom
}

// ZoomBy moves the precise zoom by delta. Negative deltas move the camera in.
func (v *View) ZoomBy(delta float32) {
	v.SetZoomPrecise(v.ZoomPrecise + delta)
}

// Orbit rotates the camera. Both angles wrap to [0, 2π).
func (v *View) Orbit(deltaTheta, deltaPhi float32) {
	v.Theta = wrapAngle(v.Theta + deltaTheta)
	v.Phi = wrapAngle(v.Phi + deltaPhi)
}

// SetAspect updates the aspect ratio from a framebuffer size. A zero
// height leaves the previous value in place (minimised window).
func (v *View) SetAspect(width, height int) {
	if height > 0 {
		v.Aspect = float32(width) / float32(height)
	}
}

func wrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	w := float32(math.Mod(float64(a), twoPi))
	if w < 0 {
		w += twoPi
	}
	return w
}

// ProjectionParams returns the field of view, near and far planes used by
// ProjectionMatrix.
//
// Once zoomed past neutral the camera stops approaching the surface (see
// ViewMatrix) and the field of view narrows instead, so the near plane
// never has to come close enough to clip the terrain.
func ProjectionParams(view *View, torus Torus) (fov, zNear, zFar float32) {
	if view.ZoomPrecise >= 0 {
		fov = view.FOV
		zNear = view.Zoom * 0.5
		zFar = (view.Zoom + torus.LargeRadius + torus.SmallRadius) * 2
	} else {
		fov = view.FOV * view.Zoom
		zNear = 0.5
		zFar = (torus.LargeRadius + torus.SmallRadius) * 2
	}
	return fov, zNear, zFar
}

// ProjectionMatrix builds the perspective projection for the torus pass.
func ProjectionMatrix(view *View, torus Torus) mgl32.Mat4 {
	fov, zNear, zFar := ProjectionParams(view, torus)
	return mgl32.Perspective(fov, view.Aspect, zNear, zFar)
}

// ViewMatrix places the camera above the tube and orbits it around the
// torus axis. Theta tilts around the near point of the tube, phi orbits
// around the central axis; swapping the steps moves the orbit centre.
func ViewMatrix(view *View, torus Torus) mgl32.Mat4 {
	distance := torus.SmallRadius + max(view.Zoom, 1.0)

	m := mgl32.Ident4()
	m = m.Mul4(mgl32.Translate3D(0, 0, -distance))
	m = m.Mul4(mgl32.HomogRotate3DX(view.Theta))
	m = m.Mul4(mgl32.Translate3D(0, 0, -torus.LargeRadius))
	m = m.Mul4(mgl32.HomogRotate3DY(view.Phi))
	return m
}

// ViewRayScale is the half-extent of the near plane at unit distance,
// (tan(fov/2) × Aspect, tan(fov/2)), with the fov ProjectionMatrix uses.
// The background shader scales screen positions by it to build view rays.
func ViewRayScale(view *View, torus Torus) mgl32.Vec2 {
	fov, _, _ := ProjectionParams(view, torus)
	t := float32(math.Tan(float64(fov) / 2))
	return mgl32.Vec2{t * view.Aspect, t}
}

// ViewDirectionMatrix is ViewMatrix without the translations, for effects
// that only depend on where the camera looks.
func ViewDirectionMatrix(view *View) mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.HomogRotate3DX(view.Theta))
	m = m.Mul4(mgl32.HomogRotate3DY(view.Phi))
	return m
}
