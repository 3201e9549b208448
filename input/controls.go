package input

import "planet-viewer/scene"

// Keys binds the keyboard controls to key codes.
type Keys struct {
	SunLeft, SunRight, SunUp, SunDown int
	ZoomIn, ZoomOut                   int
	Reset                             int
}

// Controls maps the per-frame input onto the view and the light.
//
// Dragging with the left button orbits: horizontal motion turns around the
// central axis (Phi), vertical motion tilts around the tube (Theta). Each
// scroll notch moves ZoomPrecise by ZoomStep, scrolling up moves in. The
// sun keys turn the light at LightSpeed radians per second. Holding Shift
// scales every step by FineScale, holding Ctrl by CoarseScale; a zero scale
// counts as 1.
type Controls struct {
	OrbitSpeed  float32
	ZoomStep    float32
	LightSpeed  float32
	FineScale   float32
	CoarseScale float32
	Keys        Keys
}

// Apply updates view and light from m for a frame lasting dt seconds and
// reports whether anything changed.
func (c Controls) Apply(m *Manager, view *scene.View, light *scene.Light, dt float32) bool {
	changed := false
	scale := c.stepScale(m)

	if m.IsMouseDown(MouseLeft) && (m.MouseDeltaX != 0 || m.MouseDeltaY != 0) {
		speed := c.OrbitSpeed * scale
		view.Orbit(float32(m.MouseDeltaY)*speed, float32(m.MouseDeltaX)*speed)
		changed = true
	}

	zoom := float32(m.ScrollDelta)
	if m.IsKeyPressed(c.Keys.ZoomIn) {
		zoom++
	}
	if m.IsKeyPressed(c.Keys.ZoomOut) {
		zoom--
	}
	if zoom != 0 {
		view.ZoomBy(-zoom * c.ZoomStep * scale)
		changed = true
	}

	var dAz, dEl float32
	step := c.LightSpeed * dt * scale
	if m.IsKeyDown(c.Keys.SunLeft) {
		dAz -= step
	}
	if m.IsKeyDown(c.Keys.SunRight) {
		dAz += step
	}
	if m.IsKeyDown(c.Keys.SunUp) {
		dEl += step
	}
	if m.IsKeyDown(c.Keys.SunDown) {
		dEl -= step
	}
	if dAz != 0 || dEl != 0 {
		light.Rotate(dAz, dEl)
		changed = true
	}

	if m.IsKeyPressed(c.Keys.Reset) {
		view.Theta, view.Phi = 0, 0
		view.SetZoomPrecise(0)
		changed = true
	}

	return changed
}

func (c Controls) stepScale(m *Manager) float32 {
	scale := float32(1)
	if m.ShiftDown && c.FineScale != 0 {
		scale *= c.FineScale
	}
	if m.CtrlDown && c.CoarseScale != 0 {
		scale *= c.CoarseScale
	}
	return scale
}

// WatchedKeys lists every key Apply reads, for NewManager.
func (k Keys) WatchedKeys() []int {
	return []int{k.SunLeft, k.SunRight, k.SunUp, k.SunDown, k.ZoomIn, k.ZoomOut, k.Reset}
}
