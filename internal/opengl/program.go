package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"planet-viewer/internal/gfx"
	"planet-viewer/internal/logger"
)

// LoadProgram compiles and links a program and resolves the named uniform
// and attribute locations.
//
// A missing attribute is an error. A uniform the driver optimised out gets
// location -1, which GL silently ignores on upload, so it is only logged.
func LoadProgram(vertSrc, fragSrc string, uniforms, attribs []string) (gfx.ProgramInfo, error) {
	prog, err := NewProgram(vertSrc, fragSrc)
	if err != nil {
		return gfx.ProgramInfo{}, err
	}

	info := gfx.ProgramInfo{
		Program:          prog,
		UniformLocations: make(map[string]int32, len(uniforms)),
		AttribLocations:  make(map[string]uint32, len(attribs)),
	}

	for _, name := range attribs {
		loc := gl.GetAttribLocation(prog, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(prog)
			return gfx.ProgramInfo{}, fmt.Errorf("attribute %q not found in program %d", name, prog)
		}
		info.AttribLocations[name] = uint32(loc)
	}

	for _, name := range uniforms {
		loc := gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
		if loc < 0 {
			logger.Log.Warn("uniform not active",
				zap.String("uniform", name),
				zap.Uint32("program", prog),
			)
		}
		info.UniformLocations[name] = loc
	}

	return info, nil
}

// NewProgram compiles both stages and links them.
func NewProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %v", strings.TrimRight(log, "\x00"))
	}

	return prog, nil
}

// DeleteProgram releases a program built by LoadProgram.
func DeleteProgram(info gfx.ProgramInfo) {
	gl.DeleteProgram(info.Program)
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
