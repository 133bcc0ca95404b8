// Package pipeline provides the chart pipeline shared by every footprint
// command.
//
// This package implements the complete load → layout → render pipeline. By
// centralizing this logic, render, watch and pick behave identically and
// share one cache.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Build the chart catalog, merging an optional definition file
//     over the built-in charts
//  2. Layout: Compute the figure (pie label plans or bar panels)
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Layout and render results are cached by a content hash of the chart spec.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	catalog, err := pipeline.LoadCatalog("charts.toml")
//	spec, err := catalog.Get("diet")
//	result, err := runner.Execute(ctx, spec, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/footprint/pkg/buildinfo"
	"github.com/matzehuels/footprint/pkg/cache"
	"github.com/matzehuels/footprint/pkg/errors"
)

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// MaxScale bounds the PNG multiplier.
	MaxScale = 8.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// FormatNames lists the formats in their canonical order.
var FormatNames = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// Options contains the per-run configuration of the pipeline.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	// Scale multiplies PNG pixel dimensions.
	Scale float64 `json:"scale,omitempty"`
	// Width and Height override the chart's figure size when non-zero.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	// EmbedFont embeds the label font in SVG output.
	EmbedFont bool `json:"embed_font,omitempty"`
	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Chart string
	// SpecHash is the content hash of the chart spec the run used.
	SpecHash  string
	Figure    Figure
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Panels     int
	Labels     int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the figure came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list such as "svg,png", dropping
// blanks and duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v outside (0, %v]", o.Scale, MaxScale)
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size %dx%d must not be negative", o.Width, o.Height)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for figure computation.
func (o *Options) LayoutKeyOpts(kind string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Kind: kind, Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		Width:     o.Width,
		Height:    o.Height,
		Generator: buildinfo.Generator(),
	}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatSVG:
		k.EmbeddedFont = o.EmbedFont
	}
	return k
}
