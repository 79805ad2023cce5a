package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"texture-viewer/viewport"
)

// Settings holds optional overrides loaded from
// ~/.config/texture-viewer/config.yaml.
type Settings struct {
	Texture     string  `yaml:"texture"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	MaxZoom     float64 `yaml:"max_zoom"`
	Align       string  `yaml:"align"`
	FitDuration float64 `yaml:"fit_duration"`
	Font        string  `yaml:"font"`
}

// DefaultSettingsPath returns the per-user settings file location, or ""
// when there is no home directory.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", SettingsDirectory, "config.yaml")
}

// LoadSettings reads the settings file at path, or the default location
// when path is empty. A missing file yields zero-value Settings.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsPath()
		if path == "" {
			return &Settings{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, err := s.SessionOptions(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Merge applies the CLI texture argument. It takes precedence over the file.
func (s *Settings) Merge(texture string) string {
	if texture != "" {
		return texture
	}
	return s.Texture
}

// SessionOptions turns the settings into viewport options. Zero values
// keep the viewport defaults.
func (s *Settings) SessionOptions() ([]viewport.Option, error) {
	align, ok := viewport.ParseAlign(s.Align)
	if !ok {
		return nil, fmt.Errorf("unknown align %q (want start or center)", s.Align)
	}
	if s.ZoomSpeed < 0 || s.MaxZoom < 0 {
		return nil, fmt.Errorf("zoom_speed and max_zoom must not be negative")
	}
	return []viewport.Option{
		viewport.WithAlign(align),
		viewport.WithZoomSpeed(s.ZoomSpeed),
		viewport.WithMaxZoom(s.MaxZoom),
	}, nil
}

// FitSeconds is how long the fit-to-view animation runs.
func (s *Settings) FitSeconds() float32 {
	if s.FitDuration < 0 {
		return 0
	}
	if s.FitDuration == 0 {
		return DefaultFitDuration
	}
	return float32(s.FitDuration)
}
