// Package config loads the viewer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"

	"planet-viewer/input"
	"planet-viewer/scene"
)

// Config is the top-level settings file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	View     ViewConfig     `yaml:"view"`
	Torus    TorusConfig    `yaml:"torus"`
	Light    LightConfig    `yaml:"light"`
	Controls ControlsConfig `yaml:"controls"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// ViewConfig is the starting camera. FOV is in degrees.
type ViewConfig struct {
	FOV            float32 `yaml:"fov"`
	ZoomPrecise    float32 `yaml:"zoom_precise"`
	MinZoomPrecise float32 `yaml:"min_zoom_precise"`
	MaxZoomPrecise float32 `yaml:"max_zoom_precise"`
	MinZoom        float32 `yaml:"min_zoom"`
	Theta          float32 `yaml:"theta"`
	Phi            float32 `yaml:"phi"`
}

// TorusConfig describes the planet shape and terrain detail.
type TorusConfig struct {
	LargeRadius             float32 `yaml:"large_radius"`
	SmallRadius             float32 `yaml:"small_radius"`
	TerrainResolution       float32 `yaml:"terrain_resolution"`
	TerrainNormalResolution float32 `yaml:"terrain_normal_resolution"`
	MajorSegments           int     `yaml:"major_segments"`
	MinorSegments           int     `yaml:"minor_segments"`
	Relief                  float32 `yaml:"relief"` // terrain height as a fraction of small_radius
}

// LightConfig places the sun. Angles are in radians.
type LightConfig struct {
	Azimuth   float32 `yaml:"azimuth"`
	Elevation float32 `yaml:"elevation"`
	Ambience  float32 `yaml:"ambience"`
}

// ControlsConfig scales the mouse, scroll and keyboard controls.
type ControlsConfig struct {
	OrbitSpeed float32 `yaml:"orbit_speed"` // radians per pixel dragged
	ZoomStep   float32 `yaml:"zoom_step"`   // zoom_precise change per scroll notch
	LightSpeed float32 `yaml:"light_speed"` // radians per second while an arrow key is held

	FineScale   float32 `yaml:"fine_scale"`   // step multiplier while Shift is held
	CoarseScale float32 `yaml:"coarse_scale"` // step multiplier while Ctrl is held
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Planet",
			Resizable: true,
			VSync:     true,
		},
		View: ViewConfig{
			FOV:            45,
			ZoomPrecise:    1,
			MinZoomPrecise: -8,
			MaxZoomPrecise: 3,
			MinZoom:        1.0 / 256,
		},
		Torus: TorusConfig{
			LargeRadius:             3,
			SmallRadius:             1,
			TerrainResolution:       0.002,
			TerrainNormalResolution: 0.0005,
			MajorSegments:           256,
			MinorSegments:           128,
			Relief:                  scene.DefaultRelief,
		},
		Light: LightConfig{
			Azimuth:   0.6,
			Elevation: 0.3,
			Ambience:  0.15,
		},
		Controls: ControlsConfig{
			OrbitSpeed:  0.005,
			ZoomStep:    0.25,
			LightSpeed:  1,
			FineScale:   0.2,
			CoarseScale: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads filePath over the defaults. The returned config is always
// usable; on error it holds the defaults plus whatever parsed before the
// failure.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate reports every setting the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)

	check(c.View.FOV > 0 && c.View.FOV < 180, "view: fov must be in (0, 180), got %v", c.View.FOV)
	check(c.View.MinZoomPrecise <= c.View.MaxZoomPrecise, "view: min_zoom_precise %v above max_zoom_precise %v", c.View.MinZoomPrecise, c.View.MaxZoomPrecise)
	check(c.View.MinZoom > 0, "view: min_zoom must be positive, got %v", c.View.MinZoom)

	check(c.Torus.LargeRadius > 0, "torus: large_radius must be positive, got %v", c.Torus.LargeRadius)
	check(c.Torus.SmallRadius > 0, "torus: small_radius must be positive, got %v", c.Torus.SmallRadius)
	check(c.Torus.SmallRadius < c.Torus.LargeRadius, "torus: small_radius %v must be below large_radius %v", c.Torus.SmallRadius, c.Torus.LargeRadius)
	check(c.Torus.TerrainResolution > 0, "torus: terrain_resolution must be positive, got %v", c.Torus.TerrainResolution)
	check(c.Torus.TerrainNormalResolution > 0, "torus: terrain_normal_resolution must be positive, got %v", c.Torus.TerrainNormalResolution)
	check(c.Torus.MajorSegments >= 3 && c.Torus.MinorSegments >= 3, "torus: need at least 3 segments each way, got %dx%d", c.Torus.MajorSegments, c.Torus.MinorSegments)
	check(c.Torus.Relief >= 0, "torus: relief must not be negative, got %v", c.Torus.Relief)

	check(c.Light.Ambience >= 0 && c.Light.Ambience <= 1, "light: ambience must be in [0, 1], got %v", c.Light.Ambience)

	check(c.Controls.FineScale > 0 && c.Controls.CoarseScale > 0, "controls: fine_scale and coarse_scale must be positive, got %v and %v", c.Controls.FineScale, c.Controls.CoarseScale)

	return errors.Join(errs...)
}

// Shape returns the torus the scene is built from.
func (t TorusConfig) Shape() scene.Torus {
	return scene.Torus{
		LargeRadius:             t.LargeRadius,
		SmallRadius:             t.SmallRadius,
		TerrainResolution:       t.TerrainResolution,
		TerrainNormalResolution: t.TerrainNormalResolution,
		MajorSegments:           t.MajorSegments,
		MinorSegments:           t.MinorSegments,
	}
}

// NewView builds the starting camera for a framebuffer of the given aspect.
func (v ViewConfig) NewView(aspect float32) *scene.View {
	view := scene.NewView(v.FOV*math.Pi/180, aspect)
	view.MinZoomPrecise = v.MinZoomPrecise
	view.MaxZoomPrecise = v.MaxZoomPrecise
	view.MinZoom = v.MinZoom
	view.Theta = v.Theta
	view.Phi = v.Phi
	view.SetZoomPrecise(v.ZoomPrecise)
	return view
}

// NewControls binds the control speeds to keys.
func (c ControlsConfig) NewControls(keys input.Keys) input.Controls {
	return input.Controls{
		OrbitSpeed:  c.OrbitSpeed,
		ZoomStep:    c.ZoomStep,
		LightSpeed:  c.LightSpeed,
		FineScale:   c.FineScale,
		CoarseScale: c.CoarseScale,
		Keys:        keys,
	}
}

// NewLight builds the sun.
func (l LightConfig) NewLight() *scene.Light {
	return scene.NewLight(l.Azimuth, l.Elevation, l.Ambience)
}
