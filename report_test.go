package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texture-viewer/engine"
	"texture-viewer/viewport"
)

const zoomScript = `
scroll(-10, 250, 60)
down(300, 300)
drag(280, 290)
label = "zoom-and-drag"
`

func runReplay(t *testing.T, script string) *ReplayReport {
	t.Helper()
	s, err := viewport.NewSession(viewport.Size{Width: 1000, Height: 500},
		viewport.Rect{Width: WindowSize, Height: WindowSize})
	require.NoError(t, err)
	res, err := engine.Replay("zoom.star", script, s)
	require.NoError(t, err)
	return NewReplayReport("zoom.star", s, res)
}

func TestReplayReport(t *testing.T) {
	r := runReplay(t, zoomScript)
	assert.Equal(t, SizeState{Width: 1000, Height: 500}, r.Image)
	assert.Equal(t, "start", r.Align)
	require.Len(t, r.Steps, 3)
	assert.InDelta(t, 1.46, r.Final.Zoom, 1e-9)
	assert.InDelta(t, 0.46, r.Final.MinZoom, 1e-12)
	assert.Equal(t, r.Steps[2].Pan, r.Final.Pan)
	assert.Equal(t, "zoom-and-drag", r.Globals["label"])
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, runReplay(t, zoomScript)))
	out := buf.String()
	assert.Contains(t, out, "script: zoom.star")
	assert.Contains(t, out, "op: scroll")
	assert.Contains(t, out, "min_zoom:")
	assert.Contains(t, out, "label: zoom-and-drag")
}

func TestSaveLoadReportCompare(t *testing.T) {
	want := runReplay(t, zoomScript)
	path := filepath.Join(t.TempDir(), "expected.yaml")
	require.NoError(t, SaveReport(want, path))

	loaded, err := LoadReport(path)
	require.NoError(t, err)
	assert.NoError(t, loaded.Compare(runReplay(t, zoomScript), 1e-9))

	shorter := runReplay(t, "scroll(-10, 250, 60)")
	assert.Error(t, loaded.Compare(shorter, 1e-9))

	other := runReplay(t, `
scroll(-10, 250, 60)
down(300, 300)
drag(200, 290)
`)
	err = loaded.Compare(other, 1e-9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2 (drag)")
}

func TestLoadReportMissing(t *testing.T) {
	_, err := LoadReport(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
