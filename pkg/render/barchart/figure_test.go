package barchart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/dataset"
	"github.com/matzehuels/footprint/pkg/errors"
)

func builtin(t *testing.T, name string) chart.Spec {
	t.Helper()
	s, err := chart.Builtin().Get(name)
	require.NoError(t, err)
	return s
}

func TestBuildPanels(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "diet-bars"))
	require.NoError(t, err)

	require.Len(t, fig.Panels, 3)
	p := fig.Panels[0]
	assert.Equal(t, dataset.Jonathan, p.Subject)
	require.Len(t, p.Bars, 7)
	assert.Equal(t, "Beef", p.Bars[0].Category)
	assert.InDelta(t, 7.8, p.Bars[0].Value, 1e-9)
	assert.Equal(t, "7.80", p.Bars[0].Text)
	assert.Equal(t, "Beef: 7.80", p.Bars[0].Label())
	assert.Equal(t, "#ff9999", p.Bars[0].Color)
	assert.InDelta(t, 7.8*1.15, p.YMax, 1e-9)
	assert.Equal(t, "Food", fig.XLabel)
}

func TestBuildMissingBar(t *testing.T) {
	spec := chart.New("energy-missing", chart.KindBar)
	spec.Palette = []string{"#ff9999", "#66b3ff"}
	spec.Dataset = dataset.Energy()
	fig, err := Build(context.Background(), spec)
	require.NoError(t, err)

	agnel := fig.Panels[2]
	require.Len(t, agnel.Bars, 2)
	oil := agnel.Bars[1]
	assert.True(t, oil.Missing)
	assert.Zero(t, oil.Value)
	assert.Equal(t, "Heating Oil: N/A", oil.Label())
	assert.InDelta(t, 317.5*1.15, agnel.YMax, 1e-9)
}

func TestBuildAllZeroPanel(t *testing.T) {
	spec := chart.New("zero", chart.KindBar)
	spec.Palette = []string{"#ff9999"}
	spec.Dataset = dataset.Dataset{Subjects: []dataset.Subject{
		{Name: "A", Entries: []dataset.Entry{dataset.Present("x", 0)}},
	}}
	fig, err := Build(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 0.1, fig.Panels[0].YMax)
}

func TestBuildSinglePanelHasNoSubjectTitle(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "total-bars"))
	require.NoError(t, err)
	require.Len(t, fig.Panels, 1)
	assert.Empty(t, fig.Panels[0].Subject)
	assert.Len(t, fig.Panels[0].Bars, 3)
}

func TestBuildDecimals(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "water-bars"))
	require.NoError(t, err)
	for _, b := range fig.Panels[0].Bars {
		assert.Regexp(t, `^\d+\.\d{3}$`, b.Text)
	}
}

func TestBuildRejects(t *testing.T) {
	_, err := Build(context.Background(), builtin(t, "diet"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))

	spec := chart.New("empty", chart.KindBar)
	spec.Dataset = dataset.Dataset{Subjects: []dataset.Subject{{Name: "A"}}}
	_, err = Build(context.Background(), spec)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		panels     int
		cols, rows int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{3, 2, 2},
		{4, 2, 2},
	}
	for _, tt := range tests {
		g := NewGrid(Figure{Width: 1000, Height: 800, Panels: make([]Panel, tt.panels)}, 1)
		assert.Equal(t, tt.cols, g.Cols, "panels=%d", tt.panels)
		assert.Equal(t, tt.rows, g.Rows, "panels=%d", tt.panels)
		require.Len(t, g.Cells, tt.panels)
		for _, c := range g.Cells {
			assert.LessOrEqual(t, c.X+c.Width, g.Width+1e-9)
			assert.LessOrEqual(t, c.Y+c.Height, g.Height+1e-9)
		}
	}
}

func TestNewGridScale(t *testing.T) {
	g := NewGrid(Figure{Width: 500, Height: 300, Panels: make([]Panel, 3)}, 2)
	assert.Equal(t, 1000.0, g.Width)
	assert.Equal(t, 600.0, g.Height)
	assert.Equal(t, g.Cells[0].Y, g.Cells[1].Y)
	assert.Equal(t, g.Cells[0].X, g.Cells[2].X)
	assert.Greater(t, g.Cells[2].Y, g.Cells[0].Y)
}

func TestAxisDecimals(t *testing.T) {
	assert.Equal(t, 0, axisDecimals(26.9))
	assert.Equal(t, 1, axisDecimals(8.97))
	assert.Equal(t, 2, axisDecimals(0.1))
	assert.Equal(t, 3, axisDecimals(0.05))
}
