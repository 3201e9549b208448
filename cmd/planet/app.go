package main

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"planet-viewer/config"
	"planet-viewer/core"
	"planet-viewer/input"
	"planet-viewer/internal/logger"
	"planet-viewer/internal/opengl"
	"planet-viewer/io"
	"planet-viewer/scene"
)

// maxFrameTime caps the step handed to the controls after a stall.
const maxFrameTime = 0.1

type app struct {
	window   *core.Window
	ctx      *opengl.Context
	scene    *scene.Scene
	input    *input.Manager
	controls input.Controls

	title     string
	statePath string
}

func newApp(cfg *config.Config, statePath string) (*app, error) {
	window, err := core.NewWindow(core.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return nil, err
	}

	ctx, err := opengl.NewContext()
	if err != nil {
		window.Destroy()
		return nil, err
	}

	a := &app{
		window:    window,
		ctx:       ctx,
		title:     cfg.Window.Title,
		statePath: statePath,
	}

	if err := a.buildScene(cfg); err != nil {
		a.destroy()
		return nil, err
	}

	keys := input.Keys{
		SunLeft:  core.KeyLeft,
		SunRight: core.KeyRight,
		SunUp:    core.KeyUp,
		SunDown:  core.KeyDown,
		ZoomIn:   core.KeyEqual,
		ZoomOut:  core.KeyMinus,
		Reset:    core.KeyR,
	}
	a.input = input.NewManager(window, append(keys.WatchedKeys(), core.KeyEscape)...)
	a.input.SetModifiers(
		[]int{core.KeyLeftShift, core.KeyRightShift},
		[]int{core.KeyLeftControl, core.KeyRightControl},
	)
	a.controls = cfg.Controls.NewControls(keys)

	window.OnResize(a.resize)
	a.resize(window.GetFramebufferSize())

	return a, nil
}

func (a *app) buildScene(cfg *config.Config) error {
	torus := cfg.Torus.Shape()

	stars, err := opengl.LoadProgram(scene.StarsVertexShader, scene.StarsFragmentShader, scene.StarsUniforms, scene.Attribs)
	if err != nil {
		return fmt.Errorf("stars program: %w", err)
	}
	planet, err := opengl.LoadProgram(scene.TorusVertexShader(torus, cfg.Torus.Relief), scene.TorusFragmentShader, scene.TorusUniforms, scene.Attribs)
	if err != nil {
		opengl.DeleteProgram(stars)
		return fmt.Errorf("torus program: %w", err)
	}

	width, height := a.window.GetFramebufferSize()
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	a.scene = &scene.Scene{
		View:  cfg.View.NewView(aspect),
		Torus: torus,
		Light: cfg.Light.NewLight(),
		Programs: scene.Programs{
			Stars: stars,
			Torus: planet,
		},
		Buffers: scene.Buffers{
			Stars: opengl.UploadBuffer(scene.BackgroundQuad(), 2),
			Torus: opengl.UploadBuffer(torus.StripVertices(), 2),
		},
	}

	logger.Log.Info("scene ready",
		zap.Int32("torusVertices", a.scene.Buffers.Torus.VertexCount),
		zap.Float32("largeRadius", torus.LargeRadius),
		zap.Float32("smallRadius", torus.SmallRadius),
	)

	if a.statePath != "" {
		state, err := io.LoadState(a.statePath)
		switch {
		case err == nil:
			state.Apply(a.scene.View, a.scene.Light)
		case errors.Is(err, fs.ErrNotExist):
			logger.Log.Info("no saved state yet", zap.String("path", a.statePath))
		default:
			logger.Log.Warn("ignoring saved state", zap.String("path", a.statePath), zap.Error(err))
		}
	}

	return a.ctx.CheckError("scene setup")
}

func (a *app) resize(width, height int) {
	a.ctx.SetViewport(width, height)
	a.scene.View.SetAspect(width, height)
}

func (a *app) run() {
	last := a.window.Time()
	a.updateTitle()

	for !a.window.ShouldClose() {
		a.window.PollEvents()
		a.input.Update()

		now := a.window.Time()
		dt := float32(now - last)
		last = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		if a.input.IsKeyPressed(core.KeyEscape) {
			a.window.SetShouldClose(true)
		}
		if a.controls.Apply(a.input, a.scene.View, a.scene.Light, dt) {
			a.updateTitle()
		}

		scene.RenderFrame(a.ctx, a.scene)

		a.window.SwapBuffers()
		a.input.EndFrame()
	}
}

func (a *app) updateTitle() {
	v := a.scene.View
	a.window.SetTitle(fmt.Sprintf("%s  zoom %.3g  octaves %d", a.title, v.Zoom,
		scene.TerrainOctaves(v.Zoom, a.scene.Torus.TerrainResolution)))
}

func (a *app) destroy() {
	if a.scene != nil {
		if a.statePath != "" {
			if err := io.SaveState(a.statePath, io.CaptureState(a.scene.View, a.scene.Light)); err != nil {
				logger.Log.Warn("failed to save state", zap.Error(err))
			}
		}
		opengl.DeleteProgram(a.scene.Programs.Stars)
		opengl.DeleteProgram(a.scene.Programs.Torus)
		opengl.DeleteBuffer(a.scene.Buffers.Stars)
		opengl.DeleteBuffer(a.scene.Buffers.Torus)
		a.scene = nil
	}
	a.ctx.Destroy()
	a.window.Destroy()
}
