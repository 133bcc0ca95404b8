package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/footprint/pkg/cache"
	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs layout and render for one chart, with caching.
func (r *Runner) Execute(ctx context.Context, spec chart.Spec, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	spec = ApplySize(spec, opts)
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	specHash, err := cache.HashJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("hash chart %s: %w", spec.Name, err)
	}
	result := &Result{Chart: spec.Name, SpecHash: specHash}

	hooks := observability.Pipeline()

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, spec.Name, string(spec.Kind))
	fig, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, spec, specHash, opts)
	hooks.OnLayoutComplete(ctx, spec.Name, fig.Panels(), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", spec.Name, err)
	}
	result.Figure = fig
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Panels = fig.Panels()
	result.Stats.Labels = fig.Labels()
	result.CacheInfo.LayoutHit = layoutHit

	opts.Logger.Debug("computed layout",
		"chart", spec.Name,
		"panels", result.Stats.Panels,
		"labels", result.Stats.Labels,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, spec.Name, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, fig, specHash, opts)
	hooks.OnRenderComplete(ctx, spec.Name, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", spec.Name, err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Debug("rendered outputs",
		"chart", spec.Name,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateLayoutWithCacheInfo computes the figure for spec with caching and
// returns cache hit info. specHash must be the content hash of spec.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, spec chart.Spec, specHash string, opts Options) (Figure, bool, error) {
	cacheKey := r.Keyer.LayoutKey(specHash, opts.LayoutKeyOpts(string(spec.Kind)))
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if fig, err := UnmarshalFigure(data); err == nil {
				hooks.OnCacheHit(ctx, observability.KeyTypeLayout)
				return fig, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
		}
	}

	hooks.OnCacheMiss(ctx, observability.KeyTypeLayout)

	fig, err := GenerateLayout(ctx, spec)
	if err != nil {
		return Figure{}, false, err
	}

	if data, err := MarshalFigure(fig); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
		} else {
			hooks.OnCacheSet(ctx, observability.KeyTypeLayout, len(data))
		}
	}
	return fig, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. Only formats missing from the cache are rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, fig Figure, specHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				hooks.OnCacheHit(ctx, observability.KeyTypeArtifact)
				artifacts[format] = data
				continue
			}
		}
		hooks.OnCacheMiss(ctx, observability.KeyTypeArtifact)
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, fig, sub)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			hooks.OnCacheSet(ctx, observability.KeyTypeArtifact, len(data))
		}
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
