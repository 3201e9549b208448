package scene

import "planet-viewer/internal/gfx"

// Attribute and uniform names shared with the shader sources.
const (
	AttribVertexPosition = "vertexPosition"

	UniformViewDirectionMatrix     = "viewDirectionMatrix"
	UniformLightDirectionMatrix    = "lightDirectionMatrix"
	UniformViewRayScale            = "viewRayScale"
	UniformProjectionMatrix        = "projectionMatrix"
	UniformViewMatrix              = "viewMatrix"
	UniformLightDirection          = "lightDirection"
	UniformLightAmbience           = "lightAmbience"
	UniformZoomLevel               = "zoomLevel"
	UniformTerrainResolution       = "terrainResolution"
	UniformTerrainHeightScale      = "terrainHeightScale"
	UniformTerrainNormalResolution = "terrainNormalResolution"
)

// StarsUniforms and TorusUniforms list what each program must expose.
var (
	StarsUniforms = []string{
		UniformViewDirectionMatrix,
		UniformLightDirectionMatrix,
		UniformViewRayScale,
	}
	TorusUniforms = []string{
		UniformProjectionMatrix,
		UniformViewMatrix,
		UniformLightDirection,
		UniformLightAmbience,
		UniformZoomLevel,
		UniformTerrainResolution,
		UniformTerrainHeightScale,
		UniformTerrainNormalResolution,
	}
	Attribs = []string{AttribVertexPosition}
)

// RenderFrame draws one frame: the background first, then the planet over
// it. Neither pass restores the pipeline state it changes, so this is the
// only order in which they compose.
func RenderFrame(ctx gfx.Context, s *Scene) {
	DrawStars(ctx, s)
	DrawTorus(ctx, s)
}

// DrawStars draws the starry background as a full-screen strip with depth
// testing off.
func DrawStars(ctx gfx.Context, s *Scene) {
	prog := s.Programs.Stars

	ctx.UseProgram(prog.Program)
	setPositionAttribute(ctx, s.Buffers.Stars, prog)

	ctx.Disable(gfx.DepthTest)

	ctx.UniformMatrix4fv(prog.Uniform(UniformViewDirectionMatrix), ViewDirectionMatrix(s.View))
	ctx.UniformMatrix4fv(prog.Uniform(UniformLightDirectionMatrix), s.Light.DirectionMatrix)

	ray := ViewRayScale(s.View, s.Torus)
	ctx.Uniform2f(prog.Uniform(UniformViewRayScale), ray.X(), ray.Y())

	ctx.DrawArrays(gfx.TriangleStrip, 0, s.Buffers.Stars.VertexCount)
}

// DrawTorus draws the planet. It clears depth itself, so whatever was drawn
// before it stays in the colour buffer and never occludes the planet.
func DrawTorus(ctx gfx.Context, s *Scene) {
	prog := s.Programs.Torus
	view := s.View
	torus := s.Torus

	ctx.UseProgram(prog.Program)
	setPositionAttribute(ctx, s.Buffers.Torus, prog)

	ctx.Enable(gfx.DepthTest)
	ctx.DepthFunc(gfx.LEqual)
	ctx.Enable(gfx.CullFace)

	ctx.ClearDepth(1.0)
	ctx.Clear(gfx.DepthBufferBit)

	ctx.UniformMatrix4fv(prog.Uniform(UniformProjectionMatrix), ProjectionMatrix(view, torus))
	ctx.UniformMatrix4fv(prog.Uniform(UniformViewMatrix), ViewMatrix(view, torus))

	ctx.Uniform4fv(prog.Uniform(UniformLightDirection), s.Light.Direction)

	ctx.Uniform1f(prog.Uniform(UniformLightAmbience), s.Light.Ambience)
	ctx.Uniform1f(prog.Uniform(UniformZoomLevel), view.Zoom)
	ctx.Uniform1f(prog.Uniform(UniformTerrainResolution), view.Zoom*torus.TerrainResolution)
	ctx.Uniform1f(prog.Uniform(UniformTerrainHeightScale), TerrainHeightScale(view.Zoom, torus.TerrainResolution))
	ctx.Uniform1f(prog.Uniform(UniformTerrainNormalResolution), view.Zoom*torus.TerrainNormalResolution)

	ctx.DrawArrays(gfx.TriangleStrip, 0, s.Buffers.Torus.VertexCount)
}

// setPositionAttribute feeds buffer to the vertexPosition attribute of the
// program currently in use. Call it after UseProgram.
func setPositionAttribute(ctx gfx.Context, buffer gfx.Buffer, prog gfx.ProgramInfo) {
	loc := prog.AttribLocations[AttribVertexPosition]

	ctx.BindBuffer(gfx.ArrayBuffer, buffer.Data)
	ctx.VertexAttribPointer(
		loc,
		buffer.NumComponents,
		buffer.Type,
		buffer.Normalize,
		buffer.Stride,
		buffer.Offset,
	)
	ctx.EnableVertexAttribArray(loc)
}
