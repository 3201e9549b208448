// Package gfx describes the graphics pipeline the scene layer draws against.
//
// Context is the pipeline state machine: every method mutates the state in
// place and nothing is reset between calls, so callers own the ordering.
// The enum constants below carry the OpenGL values so an implementation
// backed by a real driver can pass them through untouched.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// Capabilities toggled with Enable / Disable.
const (
	CullFace  uint32 = 0x0B44
	DepthTest uint32 = 0x0B71
)

// Depth comparison functions.
const (
	Less   uint32 = 0x0201
	LEqual uint32 = 0x0203
)

// Clear masks.
const (
	DepthBufferBit uint32 = 0x00000100
	ColorBufferBit uint32 = 0x00004000
)

// Primitive modes.
const TriangleStrip uint32 = 0x0005

// Buffer targets and element types.
const (
	ArrayBuffer uint32 = 0x8892
	Float       uint32 = 0x1406
)

// Context is the subset of the graphics API the scene layer needs.
type Context interface {
	// UseProgram makes program the target of later uniform and attribute calls.
	UseProgram(program uint32)
	// BindBuffer makes buffer the active source for target.
	BindBuffer(target, buffer uint32)
	// VertexAttribPointer describes the layout of the bound ARRAY_BUFFER for
	// attribute index of the current program.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	Enable(capability uint32)
	Disable(capability uint32)
	DepthFunc(fn uint32)
	ClearDepth(depth float64)
	Clear(mask uint32)

	UniformMatrix4fv(location int32, m mgl32.Mat4)
	Uniform4fv(location int32, v mgl32.Vec4)
	Uniform2f(location int32, x, y float32)
	Uniform1f(location int32, v float32)

	DrawArrays(mode uint32, first, count int32)
}
