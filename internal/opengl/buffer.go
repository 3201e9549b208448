package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"planet-viewer/internal/gfx"
)

// UploadBuffer copies data into a new static ARRAY_BUFFER holding tightly
// packed float vertices of the given component count.
func UploadBuffer(data []float32, components int32) gfx.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return gfx.Buffer{
		Data:          vbo,
		VertexCount:   int32(len(data)) / components,
		NumComponents: components,
		Type:          gfx.Float,
	}
}

// DeleteBuffer releases a buffer created by UploadBuffer.
func DeleteBuffer(b gfx.Buffer) {
	gl.DeleteBuffers(1, &b.Data)
}
