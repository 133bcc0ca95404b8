package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlDefs = `
[[charts]]
name = "diet"
title = "Diet (tuned)"

[charts.layout]
y_spacing = 0.25

[[charts.overrides]]
subject = "Connor"
label = "Rice"
offset = [0.5, 0.0]
line_length = 0.6

[[charts]]
name = "walkers"
kind = "bar"
palette = ["#99ff99"]

[charts.dataset]
name = "walkers"
unit = "km"

[[charts.dataset.subjects]]
name = "Agnel"

[[charts.dataset.subjects.entries]]
category = "Walking"
value = 100.0

[[charts.dataset.subjects.entries]]
category = "Cycling"
`

const yamlDefs = `
charts:
  - name: energy
    unavailable_text: "no data"
    layout:
      pct_distance: 0.7
  - name: transport
    drop_zero: false
    overrides:
      - subject: Jonathan
        label: Train
        offset: [0.1, -0.1]
        line_offset: [0.0, 0.05]
`

func TestLoadTOML(t *testing.T) {
	defs, err := Load(strings.NewReader(tomlDefs), FormatTOML)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	diet := defs[0]
	assert.Equal(t, "Diet (tuned)", diet.Title)
	require.NotNil(t, diet.Layout)
	require.NotNil(t, diet.Layout.YSpacing)
	assert.Equal(t, 0.25, *diet.Layout.YSpacing)
	assert.Nil(t, diet.Layout.MinPct)
	require.Len(t, diet.Overrides, 1)
	assert.Equal(t, [2]float64{0.5, 0}, diet.Overrides[0].Offset)
	require.NotNil(t, diet.Overrides[0].LineLength)
	assert.Equal(t, 0.6, *diet.Overrides[0].LineLength)

	walkers := defs[1]
	require.NotNil(t, walkers.Dataset)
	agnel := walkers.Dataset.Subjects[0]
	require.Len(t, agnel.Entries, 2)
	assert.Equal(t, 100.0, *agnel.Entries[0].Value)
	assert.True(t, agnel.Entries[1].IsMissing(), "omitted value is missing")

	merged, err := Builtin().Merge(defs)
	require.NoError(t, err)
	s, _ := merged.Get("walkers")
	assert.Equal(t, KindBar, s.Kind)
	assert.Equal(t, DefaultBarWidth, s.Width)
}

func TestLoadYAML(t *testing.T) {
	defs, err := Load(strings.NewReader(yamlDefs), FormatYAML)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	merged, err := Builtin().Merge(defs)
	require.NoError(t, err)

	energy, _ := merged.Get("energy")
	assert.Equal(t, "no data", energy.UnavailableText)
	assert.Equal(t, 0.7, energy.Layout.PctDistance)

	transport, _ := merged.Get("transport")
	assert.False(t, transport.DropZero)
	require.Len(t, transport.Overrides, 1)
	assert.Equal(t, [2]float64{0, 0.05}, transport.Overrides[0].LineOffset)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"unknown subject", "charts:\n  - name: x\n    dataset:\n      subjects:\n        - name: Zed\n", FormatYAML, errors.ErrCodeInvalidChart},
		{"missing name", "[[charts]]\ntitle = \"x\"\n", FormatTOML, errors.ErrCodeInvalidChart},
		{"bad name", `{"charts":[{"name":"A/B"}]}`, FormatJSON, errors.ErrCodeInvalidChart},
		{"syntax", "[[charts]\n", FormatTOML, errors.ErrCodeInvalidChart},
		{"format", "", Format("ini"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charts.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDefs), 0o644))

	defs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = LoadFile(filepath.Join(dir, "charts.ini"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestLoadKeepsZeroLineLength(t *testing.T) {
	const defs = `
[[charts]]
name = "transport"

[[charts.overrides]]
subject = "Connor"
label = "Bus"
line_length = 0.0

[[charts.overrides]]
subject = "Connor"
label = "Train"
offset = [0.1, 0.0]
`
	loaded, err := Load(strings.NewReader(defs), FormatTOML)
	require.NoError(t, err)
	merged, err := Builtin().Merge(loaded)
	require.NoError(t, err)
	s, _ := merged.Get("transport")

	ov := s.LayoutOverrides()
	bus, ok := ov.Lookup("Connor", "Bus")
	require.True(t, ok)
	require.NotNil(t, bus.LineLength, "explicit 0 is not the same as unset")
	assert.Zero(t, *bus.LineLength)

	train, ok := ov.Lookup("Connor", "Train")
	require.True(t, ok)
	assert.Nil(t, train.LineLength)
}
