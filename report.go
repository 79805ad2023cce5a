package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"texture-viewer/engine"
	"texture-viewer/viewport"
)

type SizeState struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ViewState struct {
	Zoom    float64       `yaml:"zoom"`
	MinZoom float64       `yaml:"min_zoom"`
	Pan     viewport.Vec2 `yaml:"pan"`
}

// ReplayReport is the YAML document a replay run prints.
type ReplayReport struct {
	Script  string                 `yaml:"script"`
	Image   SizeState              `yaml:"image"`
	Align   string                 `yaml:"align"`
	Steps   []engine.Step          `yaml:"steps"`
	Final   ViewState              `yaml:"final"`
	Globals map[string]interface{} `yaml:"globals,omitempty"`
}

func NewReplayReport(script string, s *viewport.Session, res *engine.Result) *ReplayReport {
	r := &ReplayReport{
		Script: script,
		Image:  SizeState{Width: s.Image.Width, Height: s.Image.Height},
		Align:  s.Align.String(),
		Final:  ViewState{Zoom: s.Zoom, MinZoom: s.MinZoom(), Pan: s.Pan},
	}
	if res != nil {
		r.Steps = res.Steps
		if len(res.Globals) > 0 {
			r.Globals = res.Globals
		}
	}
	return r
}

func WriteReport(w io.Writer, r *ReplayReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func SaveReport(r *ReplayReport, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteReport(f, r)
}

func LoadReport(filename string) (*ReplayReport, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var r ReplayReport
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return &r, nil
}

// Compare checks got against the expected report step by step. Zoom and
// pan may differ by at most tol.
func (r *ReplayReport) Compare(got *ReplayReport, tol float64) error {
	if r.Image != got.Image {
		return fmt.Errorf("image: want %dx%d, got %dx%d", r.Image.Width, r.Image.Height, got.Image.Width, got.Image.Height)
	}
	if len(r.Steps) != len(got.Steps) {
		return fmt.Errorf("steps: want %d, got %d", len(r.Steps), len(got.Steps))
	}
	for i, want := range r.Steps {
		g := got.Steps[i]
		if want.Op != g.Op {
			return fmt.Errorf("step %d: want op %s, got %s", i, want.Op, g.Op)
		}
		if !near(want.Zoom, g.Zoom, tol) || !near(want.Pan.X, g.Pan.X, tol) || !near(want.Pan.Y, g.Pan.Y, tol) {
			return fmt.Errorf("step %d (%s): want zoom %.4f pan (%.2f, %.2f), got zoom %.4f pan (%.2f, %.2f)",
				i, want.Op, want.Zoom, want.Pan.X, want.Pan.Y, g.Zoom, g.Pan.X, g.Pan.Y)
		}
	}
	f, gf := r.Final, got.Final
	if !near(f.Zoom, gf.Zoom, tol) || !near(f.Pan.X, gf.Pan.X, tol) || !near(f.Pan.Y, gf.Pan.Y, tol) {
		return fmt.Errorf("final: want zoom %.4f pan (%.2f, %.2f), got zoom %.4f pan (%.2f, %.2f)",
			f.Zoom, f.Pan.X, f.Pan.Y, gf.Zoom, gf.Pan.X, gf.Pan.Y)
	}
	return nil
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
