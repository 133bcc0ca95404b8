package piechart

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pie"
)

// Panel is one subject's pie.
type Panel struct {
	Subject string      `json:"subject"`
	Wedges  []pie.Wedge `json:"wedges,omitempty"`
	Colors  []string    `json:"colors,omitempty"`
	Hatches []string    `json:"hatches,omitempty"`
	Plan    pie.Plan    `json:"plan"`
	// Unavailable is set when the subject has missing figures. Such panels
	// carry no wedges and an empty plan.
	Unavailable bool `json:"unavailable,omitempty"`
}

// LegendItem is one legend row.
type LegendItem struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Hatch string `json:"hatch,omitempty"`
}

// Figure is a fully computed pie figure, ready for any sink.
type Figure struct {
	Chart           string `json:"chart"`
	Title           string `json:"title"`
	UnavailableText string `json:"unavailable_text"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	// Layout is the parameter set every panel's plan was computed with.
	Layout pie.Config   `json:"layout"`
	Panels []Panel      `json:"panels"`
	Legend []LegendItem `json:"legend"`
}

// Build computes the figure for a pie chart spec. Layout errors from any
// subject abort the whole figure.
func Build(ctx context.Context, spec chart.Spec) (Figure, error) {
	if spec.Kind != chart.KindPie {
		return Figure{}, errors.New(errors.ErrCodeInvalidChart, "%s is a %s chart, not a pie chart", spec.Name, spec.Kind)
	}

	subjects := spec.Subjects()
	panels := make([]Panel, len(subjects))
	overrides := spec.LayoutOverrides()

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range subjects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.Unavailable() {
				panels[i] = Panel{Subject: s.Name, Unavailable: true, Plan: pie.Plan{Pie: s.Name, Labels: []pie.Label{}}}
				return nil
			}

			labels, values := s.Series()
			wedges := pie.Spans(labels, values, spec.StartAngle)
			plan, err := pie.Build(wedges, spec.Layout, pie.WithPie(s.Name), pie.WithOverrides(overrides))
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "%s: layout %s", spec.Name, s.Name)
			}

			p := Panel{Subject: s.Name, Wedges: wedges, Plan: plan}
			for j, w := range wedges {
				p.Colors = append(p.Colors, spec.Color(j, w.Label))
				p.Hatches = append(p.Hatches, spec.Hatch(j, w.Label))
			}
			panels[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Figure{}, err
	}

	fig := Figure{
		Chart:           spec.Name,
		Title:           spec.Title,
		UnavailableText: spec.UnavailableText,
		Width:           spec.Width,
		Height:          spec.Height,
		Layout:          spec.Layout,
		Panels:          panels,
	}
	for i, cat := range spec.Dataset.Categories() {
		fig.Legend = append(fig.Legend, LegendItem{
			Label: cat,
			Color: spec.Color(i, cat),
			Hatch: spec.Hatch(i, cat),
		})
	}
	return fig, nil
}
