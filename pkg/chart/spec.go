// Package chart defines footprint's chart records and the built-in catalog.
//
// A [Spec] is everything needed to draw one figure: which dataset, which
// kind of chart, its palette and hatches, pie layout parameters and any
// hand-tuned label overrides. The renderers in pkg/render consume specs;
// they hold no per-chart knowledge of their own.
//
// Specs come from the built-in [Catalog] and can be adjusted by chart
// definition files (see [LoadFile]), which are merged over the catalog by
// chart name.
package chart

import (
	"slices"

	"github.com/matzehuels/footprint/pkg/dataset"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pie"
)

// Kind selects the figure type.
type Kind string

const (
	KindPie Kind = "pie"
	KindBar Kind = "bar"
)

// ColorBy selects how wedges and bars pick their colour and hatch.
type ColorBy string

const (
	// ColorByIndex cycles the palette by entry position within a subject.
	ColorByIndex ColorBy = "index"
	// ColorByCategory fixes one colour per category, in the dataset's
	// category order, so a category keeps its colour across subjects even
	// when other categories are dropped.
	ColorByCategory ColorBy = "category"
)

// Defaults applied by [New].
const (
	DefaultUnavailableText = "Data unavailable"
	DefaultDecimals        = 2
	DefaultPieWidth        = 1500
	DefaultPieHeight       = 500
	DefaultBarWidth        = 1800
	DefaultBarHeight       = 1200
	MaxDecimals            = 6
)

// Override is a hand-tuned nudge for one label of one subject's pie.
type Override struct {
	Subject    string     `json:"subject" toml:"subject" yaml:"subject"`
	Label      string     `json:"label" toml:"label" yaml:"label"`
	Offset     [2]float64 `json:"offset" toml:"offset" yaml:"offset"`
	LineOffset [2]float64 `json:"line_offset" toml:"line_offset" yaml:"line_offset"`
	LineLength *float64   `json:"line_length,omitempty" toml:"line_length" yaml:"line_length"`
}

// Spec is the full description of one chart.
type Spec struct {
	Name    string          `json:"name"`
	Title   string          `json:"title"`
	Kind    Kind            `json:"kind"`
	Dataset dataset.Dataset `json:"dataset"`

	Palette []string `json:"palette"`
	Hatches []string `json:"hatches,omitempty"`
	ColorBy ColorBy  `json:"color_by"`

	// Pie only.
	StartAngle      float64    `json:"start_angle"`
	Layout          pie.Config `json:"layout"`
	Overrides       []Override `json:"overrides,omitempty"`
	UnavailableText string     `json:"unavailable_text"`
	DropZero        bool       `json:"drop_zero,omitempty"`

	// Bar only.
	Decimals int    `json:"decimals"`
	XLabel   string `json:"x_label,omitempty"`
	YLabel   string `json:"y_label,omitempty"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// New returns a spec with every default filled in.
func New(name string, kind Kind) Spec {
	s := Spec{
		Name:            name,
		Title:           name,
		Kind:            kind,
		ColorBy:         ColorByIndex,
		StartAngle:      pie.DefaultStartAngle,
		Layout:          pie.DefaultConfig(),
		UnavailableText: DefaultUnavailableText,
		Decimals:        DefaultDecimals,
		Width:           DefaultPieWidth,
		Height:          DefaultPieHeight,
	}
	if kind == KindBar {
		s.Width, s.Height = DefaultBarWidth, DefaultBarHeight
	}
	return s
}

// Subjects returns the dataset's subjects as drawn: with zero entries
// removed when DropZero is set.
func (s Spec) Subjects() []dataset.Subject {
	out := slices.Clone(s.Dataset.Subjects)
	if s.DropZero {
		for i := range out {
			out[i] = out[i].DropZero()
		}
	}
	return out
}

// Color returns the fill colour for the entry at position i of a subject,
// with the given category.
func (s Spec) Color(i int, category string) string {
	return pick(s.Palette, s.slot(i, category))
}

// Hatch returns the hatch pattern for an entry, or "" when the chart has
// none.
func (s Spec) Hatch(i int, category string) string {
	return pick(s.Hatches, s.slot(i, category))
}

func (s Spec) slot(i int, category string) int {
	if s.ColorBy == ColorByCategory {
		if j := slices.Index(s.Dataset.Categories(), category); j >= 0 {
			return j
		}
	}
	return i
}

func pick(list []string, i int) string {
	if len(list) == 0 {
		return ""
	}
	return list[i%len(list)]
}

// LayoutOverrides converts the spec's overrides into the engine's lookup
// table. The subject name is the pie identity.
func (s Spec) LayoutOverrides() pie.Overrides {
	if len(s.Overrides) == 0 {
		return nil
	}
	ov := make(pie.Overrides, len(s.Overrides))
	for _, o := range s.Overrides {
		ov[pie.Key{Pie: o.Subject, Label: o.Label}] = pie.Override{
			Offset:     pie.Point{X: o.Offset[0], Y: o.Offset[1]},
			LineOffset: pie.Point{X: o.LineOffset[0], Y: o.LineOffset[1]},
			LineLength: o.LineLength,
		}
	}
	return ov
}

// Validate reports every problem with the spec at once, as an
// errors.ErrCodeInvalidChart error.
func (s Spec) Validate() error {
	v := errors.ValidationErrors{Code: errors.ErrCodeInvalidChart}

	if err := errors.ValidateChartName(s.Name); err != nil {
		v.Add("%s", errors.UserMessage(err))
	}
	switch s.Kind {
	case KindPie, KindBar:
	default:
		v.Add("%s: unknown kind %q", s.Name, s.Kind)
	}
	switch s.ColorBy {
	case ColorByIndex, ColorByCategory:
	default:
		v.Add("%s: unknown color_by %q", s.Name, s.ColorBy)
	}

	if len(s.Palette) == 0 {
		v.Add("%s: palette is empty", s.Name)
	}
	for _, c := range s.Palette {
		if err := errors.ValidateHexColor(c); err != nil {
			v.Add("%s: %s", s.Name, errors.UserMessage(err))
		}
	}
	for _, h := range s.Hatches {
		if !ValidHatch(h) {
			v.Add("%s: unknown hatch %q", s.Name, h)
		}
	}

	if err := s.Dataset.Validate(); err != nil {
		v.Add("%s: %s", s.Name, errors.UserMessage(err))
	}
	if len(s.Dataset.Subjects) == 0 {
		v.Add("%s: dataset has no subjects", s.Name)
	}

	if s.Kind == KindPie {
		if err := s.Layout.Validate(); err != nil {
			v.Add("%s: %s", s.Name, errors.UserMessage(err))
		}
		for _, o := range s.Overrides {
			if _, ok := s.Dataset.Subject(o.Subject); !ok {
				v.Add("%s: override for unknown subject %q", s.Name, o.Subject)
			}
			if o.LineLength != nil && *o.LineLength < 0 {
				v.Add("%s: override %s/%s: line_length must not be negative", s.Name, o.Subject, o.Label)
			}
		}
	}
	if s.Decimals < 0 || s.Decimals > MaxDecimals {
		v.Add("%s: decimals %d outside [0, %d]", s.Name, s.Decimals, MaxDecimals)
	}
	if s.Width <= 0 || s.Height <= 0 {
		v.Add("%s: size %dx%d must be positive", s.Name, s.Width, s.Height)
	}

	return v.Err()
}

// Hatches understood by the renderers.
var validHatches = []string{"", "x", "-", "/", "\\", "|", "+", "o"}

// ValidHatch reports whether h is a known hatch pattern.
func ValidHatch(h string) bool {
	return slices.Contains(validHatches, h)
}
