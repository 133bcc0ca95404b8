package piechart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/dataset"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pie"
)

func builtin(t *testing.T, name string) chart.Spec {
	t.Helper()
	s, err := chart.Builtin().Get(name)
	require.NoError(t, err)
	return s
}

func TestBuildPanelsInSubjectOrder(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "diet"))
	require.NoError(t, err)

	require.Len(t, fig.Panels, 3)
	assert.Equal(t, dataset.Jonathan, fig.Panels[0].Subject)
	assert.Equal(t, dataset.Connor, fig.Panels[1].Subject)
	assert.Equal(t, dataset.Agnel, fig.Panels[2].Subject)
	for _, p := range fig.Panels {
		assert.Equal(t, p.Subject, p.Plan.Pie)
		assert.Len(t, p.Colors, len(p.Wedges))
		assert.Len(t, p.Hatches, len(p.Wedges))
	}
	assert.Equal(t, "Diet Breakdown", fig.Title)
	assert.Len(t, fig.Legend, 7)
	assert.Equal(t, "Beef", fig.Legend[0].Label)
	assert.Equal(t, "#ff9999", fig.Legend[0].Color)
	assert.Equal(t, "x", fig.Legend[0].Hatch)
}

func TestBuildAppliesOverrides(t *testing.T) {
	spec := builtin(t, "diet")
	fig, err := Build(context.Background(), spec)
	require.NoError(t, err)

	plain := spec
	plain.Overrides = nil
	base, err := Build(context.Background(), plain)
	require.NoError(t, err)

	find := func(p pie.Plan, label string) pie.Label {
		for _, l := range p.Labels {
			if l.Wedge == label {
				return l
			}
		}
		t.Fatalf("no label for %s", label)
		return pie.Label{}
	}
	// Jonathan's Fish is internal and nudged right by 0.1.
	got := find(fig.Panels[0].Plan, "Fish")
	want := find(base.Panels[0].Plan, "Fish")
	require.Equal(t, pie.Internal, got.Placement)
	assert.InDelta(t, want.Anchor.X+0.1, got.Anchor.X, 1e-9)
	assert.InDelta(t, want.Anchor.Y, got.Anchor.Y, 1e-9)
}

func TestBuildUnavailableSubject(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "energy"))
	require.NoError(t, err)

	agnel := fig.Panels[2]
	assert.True(t, agnel.Unavailable)
	assert.Empty(t, agnel.Wedges)
	assert.NotNil(t, agnel.Plan.Labels)
	assert.Empty(t, agnel.Plan.Labels)
	assert.Equal(t, "N/A", fig.UnavailableText)

	jonathan := fig.Panels[0]
	assert.False(t, jonathan.Unavailable)
	require.Len(t, jonathan.Plan.External(), 1)
	assert.Equal(t, "Electricity", jonathan.Plan.External()[0].Wedge)
}

func TestBuildDropZeroKeepsCategoryColours(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "transport"))
	require.NoError(t, err)

	connor := fig.Panels[1]
	require.Len(t, connor.Wedges, 1)
	assert.Equal(t, "Train", connor.Wedges[0].Label)
	assert.Equal(t, fig.Panels[0].Colors[1], connor.Colors[0])
	require.Len(t, connor.Plan.Labels, 1)
	assert.Equal(t, "100.0%", connor.Plan.Labels[0].Text)
}

func TestBuildRejectsBarSpec(t *testing.T) {
	_, err := Build(context.Background(), builtin(t, "diet-bars"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))
}

func TestBuildInvalidLayout(t *testing.T) {
	spec := builtin(t, "water")
	spec.Layout.MinPct = 150
	_, err := Build(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, builtin(t, "water"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFrame(t *testing.T) {
	fig := Figure{Width: 1500, Height: 500, Panels: make([]Panel, 3)}
	f := NewFrame(fig, 2)

	assert.Equal(t, 3000.0, f.Width)
	assert.Equal(t, 1000.0, f.Height)
	require.Len(t, f.Centers, 3)
	assert.Less(t, f.Centers[0].X, f.Centers[1].X)
	assert.Equal(t, f.Centers[0].Y, f.Centers[2].Y)

	c := f.Centers[1]
	top := f.Map(1, pie.Point{X: 0, Y: 1})
	assert.InDelta(t, c.X, top.X, 1e-9)
	assert.InDelta(t, c.Y-f.Radius, top.Y, 1e-9)

	right := f.ArcPoint(1, 0)
	assert.InDelta(t, c.X+f.Radius, right.X, 1e-9)
	assert.InDelta(t, c.Y, right.Y, 1e-9)
}

func TestNewFrameNonPositiveScale(t *testing.T) {
	f := NewFrame(Figure{Width: 100, Height: 50}, 0)
	assert.Equal(t, 1.0, f.Scale)
	assert.Empty(t, f.Centers)
}
