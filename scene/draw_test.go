package scene

import (
	"math"
	"testing"

	"planet-viewer/internal/gfx"
)

const (
	starsProgram = 1
	torusProgram = 2
	torusAttrib  = 3
)

func newTestScene() *Scene {
	torusUniforms := make(map[string]int32, len(TorusUniforms))
	for i, name := range TorusUniforms {
		torusUniforms[name] = int32(i)
	}

	view := NewView(math.Pi/4, 4.0/3.0)
	view.SetZoomPrecise(0.5)
	view.Orbit(0.3, 1.2)

	return &Scene{
		View:  view,
		Torus: testTorus,
		Light: NewLight(0.5, 0.25, 0.1),
		Programs: Programs{
			Stars: gfx.ProgramInfo{
				Program: starsProgram,
				UniformLocations: map[string]int32{
					UniformViewDirectionMatrix:  0,
					UniformLightDirectionMatrix: 1,
					UniformViewRayScale:         2,
				},
				AttribLocations: map[string]uint32{AttribVertexPosition: 0},
			},
			Torus: gfx.ProgramInfo{
				Program:          torusProgram,
				UniformLocations: torusUniforms,
				AttribLocations:  map[string]uint32{AttribVertexPosition: torusAttrib},
			},
		},
		Buffers: Buffers{
			Stars: gfx.Buffer{Data: 10, VertexCount: 4, NumComponents: 2, Type: gfx.Float},
			Torus: gfx.Buffer{Data: 11, VertexCount: 1234, NumComponents: 2, Type: gfx.Float, Stride: 8},
		},
	}
}

func TestDrawStars(t *testing.T) {
	s := newTestScene()
	ctx := gfx.NewRecorder()
	ctx.Enable(gfx.DepthTest)

	DrawStars(ctx, s)

	if len(ctx.Draws) != 1 {
		t.Fatalf("draws: expected 1, got %d", len(ctx.Draws))
	}
	d := ctx.Draws[0]
	if d.Mode != gfx.TriangleStrip || d.First != 0 || d.Count != s.Buffers.Stars.VertexCount {
		t.Errorf("draw: expected strip of %d from 0, got mode %#x first %d count %d",
			s.Buffers.Stars.VertexCount, d.Mode, d.First, d.Count)
	}
	if d.State.DepthTest {
		t.Error("draw: expected depth test disabled")
	}
	if d.State.Program != starsProgram || d.State.ArrayBuffer != s.Buffers.Stars.Data {
		t.Errorf("draw: expected program %d buffer %d, got %+v", starsProgram, s.Buffers.Stars.Data, d.State)
	}

	m, ok := ctx.Matrix(starsProgram, 0)
	if !ok || !m.ApproxEqualThreshold(ViewDirectionMatrix(s.View), tolerance) {
		t.Errorf("viewDirectionMatrix: expected %v, got %v", ViewDirectionMatrix(s.View), m)
	}
	m, ok = ctx.Matrix(starsProgram, 1)
	if !ok || m != s.Light.DirectionMatrix {
		t.Errorf("lightDirectionMatrix: expected %v, got %v", s.Light.DirectionMatrix, m)
	}
	ray, ok := ctx.Vector2(starsProgram, 2)
	if !ok || ray != ViewRayScale(s.View, s.Torus) {
		t.Errorf("viewRayScale: expected %v, got %v", ViewRayScale(s.View, s.Torus), ray)
	}
}

func TestDrawTorus(t *testing.T) {
	s := newTestScene()
	ctx := gfx.NewRecorder()

	DrawTorus(ctx, s)

	if len(ctx.Draws) != 1 {
		t.Fatalf("draws: expected 1, got %d", len(ctx.Draws))
	}
	d := ctx.Draws[0]
	if d.Mode != gfx.TriangleStrip || d.Count != s.Buffers.Torus.VertexCount {
		t.Errorf("draw: expected strip of %d, got mode %#x count %d", s.Buffers.Torus.VertexCount, d.Mode, d.Count)
	}
	if !d.State.DepthTest || !d.State.CullFace {
		t.Errorf("draw: expected depth test and culling, got %+v", d.State)
	}
	if d.State.DepthFunc != gfx.LEqual {
		t.Errorf("draw: expected LEQUAL depth func, got %#x", d.State.DepthFunc)
	}

	clear := ctx.Index("Clear", 0)
	draw := ctx.Index("DrawArrays", 0)
	if clear < 0 || clear > draw {
		t.Fatalf("clear: expected a depth clear before the draw (clear %d, draw %d)", clear, draw)
	}
	call := ctx.Calls[clear]
	if call.Args[0] != gfx.DepthBufferBit {
		t.Errorf("clear: expected depth buffer bit, got %v", call.Args[0])
	}
	if call.State.ClearDepth != 1 {
		t.Errorf("clear: expected clear depth 1.0, got %v", call.State.ClearDepth)
	}
}

func TestDrawTorusUniforms(t *testing.T) {
	s := newTestScene()
	ctx := gfx.NewRecorder()

	DrawTorus(ctx, s)

	loc := s.Programs.Torus.UniformLocations
	zoom := s.View.Zoom

	if m, _ := ctx.Matrix(torusProgram, loc[UniformProjectionMatrix]); !m.ApproxEqualThreshold(ProjectionMatrix(s.View, s.Torus), tolerance) {
		t.Errorf("projectionMatrix: got %v", m)
	}
	if m, _ := ctx.Matrix(torusProgram, loc[UniformViewMatrix]); !m.ApproxEqualThreshold(ViewMatrix(s.View, s.Torus), tolerance) {
		t.Errorf("viewMatrix: got %v", m)
	}
	if v, _ := ctx.Vector(torusProgram, loc[UniformLightDirection]); v != s.Light.Direction {
		t.Errorf("lightDirection: expected %v, got %v", s.Light.Direction, v)
	}

	floats := map[string]float32{
		UniformLightAmbience:           s.Light.Ambience,
		UniformZoomLevel:               zoom,
		UniformTerrainResolution:       zoom * s.Torus.TerrainResolution,
		UniformTerrainHeightScale:      TerrainHeightScale(zoom, s.Torus.TerrainResolution),
		UniformTerrainNormalResolution: zoom * s.Torus.TerrainNormalResolution,
	}
	for name, want := range floats {
		got, ok := ctx.Float(torusProgram, loc[name])
		if !ok {
			t.Errorf("%s: not uploaded", name)
			continue
		}
		if !approx(got, want) {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestSetPositionAttribute(t *testing.T) {
	s := newTestScene()
	ctx := gfx.NewRecorder()

	ctx.UseProgram(torusProgram)
	setPositionAttribute(ctx, s.Buffers.Torus, s.Programs.Torus)

	layout, enabled := ctx.Attrib(torusAttrib)
	if !enabled {
		t.Fatal("attribute: expected slot enabled")
	}
	b := s.Buffers.Torus
	want := gfx.AttribLayout{
		Buffer:     b.Data,
		Size:       b.NumComponents,
		Type:       b.Type,
		Normalized: b.Normalize,
		Stride:     b.Stride,
		Offset:     b.Offset,
	}
	if layout != want {
		t.Errorf("attribute: expected %+v, got %+v", want, layout)
	}
	if ctx.Index("BindBuffer", 0) > ctx.Index("VertexAttribPointer", 0) {
		t.Error("attribute: layout described before the buffer was bound")
	}
}

func TestRenderFrameOrder(t *testing.T) {
	s := newTestScene()
	ctx := gfx.NewRecorder()

	for frame := 0; frame < 2; frame++ {
		ctx.Reset()
		RenderFrame(ctx, s)

		if len(ctx.Draws) != 2 {
			t.Fatalf("frame %d: expected 2 draws, got %d", frame, len(ctx.Draws))
		}
		stars, torus := ctx.Draws[0], ctx.Draws[1]
		if stars.State.Program != starsProgram || torus.State.Program != torusProgram {
			t.Errorf("frame %d: expected stars then torus, got programs %d then %d",
				frame, stars.State.Program, torus.State.Program)
		}
		if stars.State.DepthTest {
			t.Errorf("frame %d: stars drawn with depth test on", frame)
		}
		if !torus.State.DepthTest {
			t.Errorf("frame %d: torus drawn without depth test", frame)
		}

		first := ctx.Index("DrawArrays", 0)
		if clear := ctx.Index("Clear", first); clear < 0 {
			t.Errorf("frame %d: expected depth clear after the background draw", frame)
		}
	}
}

func TestDrawDoesNotMutateScene(t *testing.T) {
	s := newTestScene()
	view, light := *s.View, *s.Light

	RenderFrame(gfx.NewRecorder(), s)

	if *s.View != view {
		t.Errorf("view changed: %+v -> %+v", view, *s.View)
	}
	if *s.Light != light {
		t.Errorf("light changed: %+v -> %+v", light, *s.Light)
	}
}
