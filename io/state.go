package io

import (
	"encoding/json"
	"fmt"
	"os"

	"planet-viewer/scene"
)

// StateFile is a saved camera and sun position.
type StateFile struct {
	Version string    `json:"version"`
	View    ViewData  `json:"view"`
	Light   LightData `json:"light"`
}

// ViewData stores the orbit camera
type ViewData struct {
	ZoomPrecise float32 `json:"zoom_precise"`
	Theta       float32 `json:"theta"`
	Phi         float32 `json:"phi"`
}

// LightData stores the sun angles
type LightData struct {
	Azimuth   float32 `json:"azimuth"`
	Elevation float32 `json:"elevation"`
	Ambience  float32 `json:"ambience"`
}

const stateVersion = "1"

// CaptureState records the parts of view and light a user can change.
func CaptureState(view *scene.View, light *scene.Light) *StateFile {
	return &StateFile{
		Version: stateVersion,
		View: ViewData{
			ZoomPrecise: view.ZoomPrecise,
			Theta:       view.Theta,
			Phi:         view.Phi,
		},
		Light: LightData{
			Azimuth:   light.Azimuth,
			Elevation: light.Elevation,
			Ambience:  light.Ambience,
		},
	}
}

// Apply restores the state onto view and light, going through their
// setters so the zoom clamp and the light matrices are refreshed.
func (s *StateFile) Apply(view *scene.View, light *scene.Light) {
	view.Theta, view.Phi = 0, 0
	view.Orbit(s.View.Theta, s.View.Phi)
	view.SetZoomPrecise(s.View.ZoomPrecise)

	light.Azimuth = s.Light.Azimuth
	light.Elevation = s.Light.Elevation
	light.Ambience = s.Light.Ambience
	light.Update()
}

// SaveState serializes the state to a JSON file
func SaveState(path string, state *StateFile) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// LoadState deserializes a JSON state file
func LoadState(path string) (*StateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state := &StateFile{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Version != stateVersion {
		return nil, fmt.Errorf("unsupported state version %q", state.Version)
	}
	return state, nil
}
