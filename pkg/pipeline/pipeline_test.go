package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/footprint/pkg/cache"
	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	err := ValidateFormats([]string{"svg", "invalid"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Invalid format should fail with INVALID_FORMAT: %v", err)
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats(" svg,PNG,,svg ,json")
	require.NoError(t, err)
	assert.Equal(t, []string{"svg", "png", "json"}, got)

	_, err = ParseFormats("svg,gif")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	require.NoError(t, o.ValidateAndSetDefaults())
	assert.Equal(t, []string{FormatSVG}, o.Formats)
	assert.Equal(t, DefaultScale, o.Scale)
	assert.NotNil(t, o.Logger)

	// Idempotent.
	require.NoError(t, o.ValidateAndSetDefaults())
	assert.Equal(t, []string{FormatSVG}, o.Formats)

	for _, bad := range []Options{
		{Scale: -1},
		{Scale: MaxScale + 1},
		{Width: -5},
		{Formats: []string{"gif"}},
	} {
		assert.Error(t, bad.ValidateAndSetDefaults(), "%+v", bad)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Scale: 3, EmbedFont: true}
	png := o.ArtifactKeyOpts(FormatPNG)
	svg := o.ArtifactKeyOpts(FormatSVG)
	assert.Equal(t, 3.0, png.Scale)
	assert.False(t, png.EmbeddedFont)
	assert.Zero(t, svg.Scale)
	assert.True(t, svg.EmbeddedFont)
	assert.NotEmpty(t, svg.Generator)
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, chart.Builtin().Names(), c.Names())

	path := filepath.Join(t.TempDir(), "charts.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[charts]]
name = "diet"
title = "Diet (revised)"
`), 0644))
	c, err = LoadCatalog(path)
	require.NoError(t, err)
	s, err := c.Get("diet")
	require.NoError(t, err)
	assert.Equal(t, "Diet (revised)", s.Title)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	c := chart.Builtin()
	all, err := Select(c, nil)
	require.NoError(t, err)
	assert.Len(t, all, c.Len())

	some, err := Select(c, []string{"water", "diet"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "water", some[0].Name)

	_, err = Select(c, []string{"nope"})
	assert.True(t, errors.Is(err, errors.ErrCodeChartNotFound))
}

func TestFigureRoundTrip(t *testing.T) {
	spec, err := chart.Builtin().Get("energy")
	require.NoError(t, err)
	fig, err := GenerateLayout(context.Background(), spec)
	require.NoError(t, err)

	data, err := MarshalFigure(fig)
	require.NoError(t, err)
	back, err := UnmarshalFigure(data)
	require.NoError(t, err)
	assert.Equal(t, fig, back)

	_, err = UnmarshalFigure([]byte(`{"kind":"pie"}`))
	assert.Error(t, err)
}

func TestFigureCounts(t *testing.T) {
	spec, err := chart.Builtin().Get("energy")
	require.NoError(t, err)
	fig, err := GenerateLayout(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 3, fig.Panels())
	assert.Equal(t, 4, fig.Labels())

	bars, err := chart.Builtin().Get("total-bars")
	require.NoError(t, err)
	fig, err = GenerateLayout(context.Background(), bars)
	require.NoError(t, err)
	assert.Equal(t, 1, fig.Panels())
	assert.Equal(t, 3, fig.Labels())
}

func TestApplySize(t *testing.T) {
	spec := chart.New("x", chart.KindPie)
	got := ApplySize(spec, Options{Width: 900})
	assert.Equal(t, 900, got.Width)
	assert.Equal(t, spec.Height, got.Height)
}

// countingCache records Set calls on top of a real file cache.
type countingCache struct {
	cache.Cache
	sets int
}

func (c *countingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.sets++
	return c.Cache.Set(ctx, key, data, ttl)
}

func TestRunnerExecuteCaches(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	cc := &countingCache{Cache: fc}
	r := NewRunner(cc, nil, log.New(os.Stderr))
	defer r.Close()

	spec, err := chart.Builtin().Get("water")
	require.NoError(t, err)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(context.Background(), spec, opts)
	require.NoError(t, err)
	assert.False(t, first.CacheInfo.LayoutHit)
	assert.False(t, first.CacheInfo.RenderHit)
	require.Len(t, first.Artifacts, 2)
	assert.True(t, strings.HasPrefix(string(first.Artifacts[FormatSVG]), "<svg"))
	assert.Equal(t, 3, cc.sets) // layout + two artifacts

	second, err := r.Execute(context.Background(), spec, opts)
	require.NoError(t, err)
	assert.True(t, second.CacheInfo.LayoutHit)
	assert.True(t, second.CacheInfo.RenderHit)
	assert.Equal(t, first.Artifacts, second.Artifacts)
	assert.Equal(t, first.SpecHash, second.SpecHash)

	// A new format renders only what is missing.
	opts.Formats = append(opts.Formats, FormatPNG)
	opts.Scale = 0.5
	third, err := r.Execute(context.Background(), spec, opts)
	require.NoError(t, err)
	assert.True(t, third.CacheInfo.LayoutHit)
	assert.False(t, third.CacheInfo.RenderHit)
	assert.Len(t, third.Artifacts, 3)
	assert.Equal(t, 4, cc.sets)
}

func TestRunnerSpecChangeMissesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(fc, nil, nil)

	spec, err := chart.Builtin().Get("diet")
	require.NoError(t, err)
	a, err := r.Execute(context.Background(), spec, Options{})
	require.NoError(t, err)

	spec.Layout.YSpacing = 0.3
	b, err := r.Execute(context.Background(), spec, Options{})
	require.NoError(t, err)
	assert.NotEqual(t, a.SpecHash, b.SpecHash)
	assert.False(t, b.CacheInfo.LayoutHit)
}

func TestRunnerRefresh(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(fc, nil, nil)
	spec, err := chart.Builtin().Get("energy")
	require.NoError(t, err)

	_, err = r.Execute(context.Background(), spec, Options{})
	require.NoError(t, err)
	res, err := r.Execute(context.Background(), spec, Options{Refresh: true})
	require.NoError(t, err)
	assert.False(t, res.CacheInfo.LayoutHit)
	assert.False(t, res.CacheInfo.RenderHit)
}

func TestRunnerInvalidSpec(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	spec, err := chart.Builtin().Get("diet")
	require.NoError(t, err)
	spec.Layout.MinPct = -1

	_, err = r.Execute(context.Background(), spec, Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, chart string, panels int, _ time.Duration, err error) {
	h.events = append(h.events, fmt.Sprintf("layout %s %d %v", chart, panels, err == nil))
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, chart string, formats []string, _ time.Duration, err error) {
	h.events = append(h.events, fmt.Sprintf("render %s %s %v", chart, strings.Join(formats, ","), err == nil))
}

func TestRunnerEmitsHooks(t *testing.T) {
	defer observability.Reset()
	hooks := &recordingHooks{}
	counter := &observability.CacheCounter{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(counter)

	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(fc, nil, nil)
	spec, err := chart.Builtin().Get("energy")
	require.NoError(t, err)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	_, err = r.Execute(context.Background(), spec, opts)
	require.NoError(t, err)
	_, err = r.Execute(context.Background(), spec, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"layout energy 3 true", "render energy svg,json true",
		"layout energy 3 true", "render energy svg,json true",
	}, hooks.events)

	stats := counter.Snapshot()
	assert.Equal(t, int64(3), stats.Hits)   // second run: layout + two artifacts
	assert.Equal(t, int64(3), stats.Misses) // first run
	assert.Equal(t, int64(3), stats.Sets)
	assert.Positive(t, stats.Written)
}
