package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"planet-viewer/internal/gfx"
	"planet-viewer/internal/logger"
)

// Context drives the current OpenGL context. The gfx enum values are the GL
// ones, so every call passes its arguments straight through.
type Context struct {
	vao uint32
}

var _ gfx.Context = (*Context)(nil)

// NewContext loads the GL entry points and binds the vertex array object
// the core profile requires before any attribute setup.
// Must be called after the GLFW window context is made current.
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Log.Info("OpenGL initialised",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.ClearColor(0, 0, 0, 1)
	return c, nil
}

// SetViewport resizes the GL viewport to the framebuffer size.
func (c *Context) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// CheckError logs and returns the first pending GL error, if any.
func (c *Context) CheckError(where string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	err := fmt.Errorf("%s: GL error 0x%04X", where, code)
	logger.Log.Error("GL error", zap.String("where", where), zap.Uint32("code", code))
	return err
}

// Destroy releases the vertex array object.
func (c *Context) Destroy() {
	gl.DeleteVertexArrays(1, &c.vao)
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) Enable(capability uint32) {
	gl.Enable(capability)
}

func (c *Context) Disable(capability uint32) {
	gl.Disable(capability)
}

func (c *Context) DepthFunc(fn uint32) {
	gl.DepthFunc(fn)
}

func (c *Context) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (c *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *Context) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (c *Context) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (c *Context) Uniform4fv(location int32, v mgl32.Vec4) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (c *Context) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}
