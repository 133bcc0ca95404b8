package barchart

import (
	"context"
	"fmt"

	"github.com/matzehuels/footprint/pkg/chart"
	"github.com/matzehuels/footprint/pkg/errors"
)

// headroom is the space left above the tallest bar, as a fraction of it.
const headroom = 1.15

// emptyMax is the y-axis top used when every bar in a panel is zero.
const emptyMax = 0.1

// NotAvailable is the value text of a bar whose figure is missing.
const NotAvailable = "N/A"

// Bar is one bar of a panel.
type Bar struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Missing  bool    `json:"missing,omitempty"`
	Color    string  `json:"color"`
	// Text is the value as printed on the axis label, or "N/A".
	Text string `json:"text"`
}

// Label is the bar's x-axis caption, carrying its value.
func (b Bar) Label() string {
	return b.Category + ": " + b.Text
}

// Panel is one subject's bars and y-axis range.
type Panel struct {
	// Subject is empty for single-panel figures, which need no panel title.
	Subject string  `json:"subject,omitempty"`
	Bars    []Bar   `json:"bars"`
	YMax    float64 `json:"y_max"`
}

// Figure is a fully computed bar figure.
type Figure struct {
	Chart  string  `json:"chart"`
	Title  string  `json:"title"`
	XLabel string  `json:"x_label,omitempty"`
	YLabel string  `json:"y_label,omitempty"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Panels []Panel `json:"panels"`
}

// Build computes the figure for a bar chart spec.
func Build(ctx context.Context, spec chart.Spec) (Figure, error) {
	if spec.Kind != chart.KindBar {
		return Figure{}, errors.New(errors.ErrCodeInvalidChart, "%s is a %s chart, not a bar chart", spec.Name, spec.Kind)
	}
	if err := ctx.Err(); err != nil {
		return Figure{}, err
	}

	subjects := spec.Subjects()
	fig := Figure{
		Chart:  spec.Name,
		Title:  spec.Title,
		XLabel: spec.XLabel,
		YLabel: spec.YLabel,
		Width:  spec.Width,
		Height: spec.Height,
	}
	for _, s := range subjects {
		if len(s.Entries) == 0 {
			return Figure{}, errors.New(errors.ErrCodeInvalidChart, "%s: subject %s has no entries", spec.Name, s.Name)
		}
		p := Panel{}
		if len(subjects) > 1 {
			p.Subject = s.Name
		}
		var top float64
		for i, e := range s.Entries {
			b := Bar{Category: e.Category, Color: spec.Color(i, e.Category)}
			if e.IsMissing() {
				b.Missing = true
				b.Text = NotAvailable
			} else {
				b.Value = e.Float()
				b.Text = fmt.Sprintf("%.*f", spec.Decimals, b.Value)
				top = max(top, b.Value)
			}
			p.Bars = append(p.Bars, b)
		}
		p.YMax = emptyMax
		if top > 0 {
			p.YMax = top * headroom
		}
		fig.Panels = append(fig.Panels, p)
	}
	return fig, nil
}
