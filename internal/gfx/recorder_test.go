package gfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRecorderTracksCapabilities(t *testing.T) {
	r := NewRecorder()

	if r.State().DepthTest || r.State().CullFace {
		t.Fatalf("fresh recorder: expected depth test and culling off, got %+v", r.State())
	}

	r.Enable(DepthTest)
	r.Enable(CullFace)
	r.Disable(DepthTest)

	s := r.State()
	if s.DepthTest {
		t.Error("DepthTest: expected disabled after Disable")
	}
	if !s.CullFace {
		t.Error("CullFace: expected enabled")
	}
}

func TestRecorderUniformsArePerProgram(t *testing.T) {
	r := NewRecorder()

	r.UseProgram(1)
	r.Uniform1f(3, 0.5)
	r.UseProgram(2)
	r.Uniform1f(3, 2)

	if v, ok := r.Float(1, 3); !ok || v != 0.5 {
		t.Errorf("program 1: expected 0.5, got %v (%v)", v, ok)
	}
	if v, ok := r.Float(2, 3); !ok || v != 2 {
		t.Errorf("program 2: expected 2, got %v (%v)", v, ok)
	}
	if _, ok := r.Matrix(1, 3); ok {
		t.Error("Matrix: expected no matrix upload")
	}

	r.Uniform2f(4, 1.5, 0.5)
	if v, ok := r.Vector2(2, 4); !ok || v.X() != 1.5 || v.Y() != 0.5 {
		t.Errorf("Vector2: expected (1.5, 0.5), got %v (%v)", v, ok)
	}
	if _, ok := r.Vector2(1, 4); ok {
		t.Error("Vector2: expected no upload for program 1")
	}
}

func TestRecorderAttribUsesBoundBuffer(t *testing.T) {
	r := NewRecorder()

	r.BindBuffer(ArrayBuffer, 9)
	r.VertexAttribPointer(0, 2, Float, false, 0, 0)

	if _, enabled := r.Attrib(0); enabled {
		t.Error("Attrib: expected slot disabled before EnableVertexAttribArray")
	}

	r.EnableVertexAttribArray(0)
	layout, enabled := r.Attrib(0)
	if !enabled {
		t.Fatal("Attrib: expected slot enabled")
	}
	if layout.Buffer != 9 || layout.Size != 2 || layout.Type != Float {
		t.Errorf("Attrib: unexpected layout %+v", layout)
	}
}

func TestRecorderDrawSnapshotsState(t *testing.T) {
	r := NewRecorder()

	r.UseProgram(4)
	r.Enable(DepthTest)
	r.DrawArrays(TriangleStrip, 0, 10)
	r.Disable(DepthTest)

	if len(r.Draws) != 1 {
		t.Fatalf("Draws: expected 1, got %d", len(r.Draws))
	}
	d := r.Draws[0]
	if !d.State.DepthTest || d.State.Program != 4 {
		t.Errorf("Draw state: expected program 4 with depth test, got %+v", d.State)
	}

	r.Reset()
	if len(r.Calls) != 0 || len(r.Draws) != 0 {
		t.Error("Reset: expected no recorded calls")
	}
	if r.State().Program != 4 {
		t.Error("Reset: expected pipeline state to survive")
	}
}

func TestProgramInfoUniformMissing(t *testing.T) {
	p := ProgramInfo{UniformLocations: map[string]int32{"a": 2}}

	if p.Uniform("a") != 2 {
		t.Errorf("Uniform(a): expected 2, got %d", p.Uniform("a"))
	}
	if p.Uniform("b") != -1 {
		t.Errorf("Uniform(b): expected -1, got %d", p.Uniform("b"))
	}
}

func TestRecorderIndex(t *testing.T) {
	r := NewRecorder()
	r.Clear(DepthBufferBit)
	r.UniformMatrix4fv(0, mgl32.Ident4())
	r.Clear(ColorBufferBit)

	if i := r.Index("Clear", 0); i != 0 {
		t.Errorf("Index: expected 0, got %d", i)
	}
	if i := r.Index("Clear", 1); i != 2 {
		t.Errorf("Index from 1: expected 2, got %d", i)
	}
	if i := r.Index("DrawArrays", 0); i != -1 {
		t.Errorf("Index: expected -1, got %d", i)
	}
}
