package gfx

import "github.com/go-gl/mathgl/mgl32"

// State is a snapshot of the pipeline flags a Recorder tracks.
type State struct {
	Program     uint32
	ArrayBuffer uint32
	DepthTest   bool
	CullFace    bool
	DepthFunc   uint32
	ClearDepth  float64
}

// Call is one recorded Context invocation together with the state that
// was current when it was made.
type Call struct {
	Op    string
	Args  []any
	State State
}

// Draw is a recorded DrawArrays call.
type Draw struct {
	Mode  uint32
	First int32
	Count int32
	State State
}

// Recorder is an in-memory Context. It keeps every call in order and the
// last value uploaded per (program, location), which is enough to check
// what a frame would have sent to a driver.
type Recorder struct {
	Calls []Call
	Draws []Draw

	state    State
	matrices map[uniformKey]mgl32.Mat4
	vectors  map[uniformKey]mgl32.Vec4
	pairs    map[uniformKey]mgl32.Vec2
	floats   map[uniformKey]float32
	attribs  map[uint32]AttribLayout
	enabled  map[uint32]bool
}

// AttribLayout is what VertexAttribPointer recorded for an attribute slot.
type AttribLayout struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
}

type uniformKey struct {
	program  uint32
	location int32
}

var _ Context = (*Recorder)(nil)

// NewRecorder returns a Recorder in the default GL state.
func NewRecorder() *Recorder {
	return &Recorder{
		state:    State{DepthFunc: Less, ClearDepth: 1},
		matrices: make(map[uniformKey]mgl32.Mat4),
		vectors:  make(map[uniformKey]mgl32.Vec4),
		pairs:    make(map[uniformKey]mgl32.Vec2),
		floats:   make(map[uniformKey]float32),
		attribs:  make(map[uint32]AttribLayout),
		enabled:  make(map[uint32]bool),
	}
}

// State returns the current pipeline flags.
func (r *Recorder) State() State { return r.state }

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, State: r.state})
}

func (r *Recorder) UseProgram(program uint32) {
	r.state.Program = program
	r.record("UseProgram", program)
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	if target == ArrayBuffer {
		r.state.ArrayBuffer = buffer
	}
	r.record("BindBuffer", target, buffer)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	r.attribs[index] = AttribLayout{
		Buffer:     r.state.ArrayBuffer,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
	r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.enabled[index] = true
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) Enable(capability uint32) {
	r.setCapability(capability, true)
	r.record("Enable", capability)
}

func (r *Recorder) Disable(capability uint32) {
	r.setCapability(capability, false)
	r.record("Disable", capability)
}

func (r *Recorder) setCapability(capability uint32, on bool) {
	switch capability {
	case DepthTest:
		r.state.DepthTest = on
	case CullFace:
		r.state.CullFace = on
	}
}

func (r *Recorder) DepthFunc(fn uint32) {
	r.state.DepthFunc = fn
	r.record("DepthFunc", fn)
}

func (r *Recorder) ClearDepth(depth float64) {
	r.state.ClearDepth = depth
	r.record("ClearDepth", depth)
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", mask)
}

func (r *Recorder) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	r.matrices[uniformKey{r.state.Program, location}] = m
	r.record("UniformMatrix4fv", location, m)
}

func (r *Recorder) Uniform4fv(location int32, v mgl32.Vec4) {
	r.vectors[uniformKey{r.state.Program, location}] = v
	r.record("Uniform4fv", location, v)
}

func (r *Recorder) Uniform2f(location int32, x, y float32) {
	r.pairs[uniformKey{r.state.Program, location}] = mgl32.Vec2{x, y}
	r.record("Uniform2f", location, x, y)
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.floats[uniformKey{r.state.Program, location}] = v
	r.record("Uniform1f", location, v)
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.Draws = append(r.Draws, Draw{Mode: mode, First: first, Count: count, State: r.state})
	r.record("DrawArrays", mode, first, count)
}

// Matrix returns the last matrix uploaded to location of program.
func (r *Recorder) Matrix(program uint32, location int32) (mgl32.Mat4, bool) {
	m, ok := r.matrices[uniformKey{program, location}]
	return m, ok
}

// Vector returns the last vec4 uploaded to location of program.
func (r *Recorder) Vector(program uint32, location int32) (mgl32.Vec4, bool) {
	v, ok := r.vectors[uniformKey{program, location}]
	return v, ok
}

// Vector2 returns the last vec2 uploaded to location of program.
func (r *Recorder) Vector2(program uint32, location int32) (mgl32.Vec2, bool) {
	v, ok := r.pairs[uniformKey{program, location}]
	return v, ok
}

// Float returns the last float uploaded to location of program.
func (r *Recorder) Float(program uint32, location int32) (float32, bool) {
	f, ok := r.floats[uniformKey{program, location}]
	return f, ok
}

// Attrib returns the layout recorded for an attribute slot and whether the
// slot was enabled.
func (r *Recorder) Attrib(index uint32) (AttribLayout, bool) {
	layout, ok := r.attribs[index]
	return layout, ok && r.enabled[index]
}

// Index returns the position of the first call to op at or after from, or
// -1 when there is none.
func (r *Recorder) Index(op string, from int) int {
	for i := from; i < len(r.Calls); i++ {
		if r.Calls[i].Op == op {
			return i
		}
	}
	return -1
}

// Reset drops recorded calls but keeps the pipeline state, the way a
// driver keeps it across frames.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
}
