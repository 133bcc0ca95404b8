package pipeline

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/render/barchart"
	"github.com/matzehuels/footprint/pkg/render/piechart"
)

// Figure is a computed figure of either kind. Exactly one of Pie and Bar
// is set.
type Figure struct {
	Kind chart.Kind       `json:"kind"`
	Pie  *piechart.Figure `json:"pie,omitempty"`
	Bar  *barchart.Figure `json:"bar,omitempty"`
}

// Panels returns the number of panels in the figure.
func (f Figure) Panels() int {
	switch {
	case f.Pie != nil:
		return len(f.Pie.Panels)
	case f.Bar != nil:
		return len(f.Bar.Panels)
	}
	return 0
}

// Labels returns the number of pie labels placed, or bars drawn.
func (f Figure) Labels() int {
	n := 0
	switch {
	case f.Pie != nil:
		for _, p := range f.Pie.Panels {
			n += len(p.Plan.Labels)
		}
	case f.Bar != nil:
		for _, p := range f.Bar.Panels {
			n += len(p.Bars)
		}
	}
	return n
}

// ApplySize returns spec with the options' size overrides applied.
func ApplySize(spec chart.Spec, opts Options) chart.Spec {
	if opts.Width > 0 {
		spec.Width = opts.Width
	}
	if opts.Height > 0 {
		spec.Height = opts.Height
	}
	return spec
}

// GenerateLayout computes the figure for spec.
func GenerateLayout(ctx context.Context, spec chart.Spec) (Figure, error) {
	switch spec.Kind {
	case chart.KindPie:
		fig, err := piechart.Build(ctx, spec)
		if err != nil {
			return Figure{}, err
		}
		return Figure{Kind: chart.KindPie, Pie: &fig}, nil
	case chart.KindBar:
		fig, err := barchart.Build(ctx, spec)
		if err != nil {
			return Figure{}, err
		}
		return Figure{Kind: chart.KindBar, Bar: &fig}, nil
	default:
		return Figure{}, errors.New(errors.ErrCodeInvalidChart, "%s: unknown kind %q", spec.Name, spec.Kind)
	}
}

// MarshalFigure serializes a figure for the layout cache.
func MarshalFigure(f Figure) ([]byte, error) {
	return json.Marshal(f)
}

// UnmarshalFigure reads a figure written by [MarshalFigure].
func UnmarshalFigure(data []byte) (Figure, error) {
	var f Figure
	if err := json.Unmarshal(data, &f); err != nil {
		return Figure{}, err
	}
	if (f.Pie == nil) == (f.Bar == nil) {
		return Figure{}, errors.New(errors.ErrCodeInvalidInput, "cached figure has no single %s body", f.Kind)
	}
	return f, nil
}
