package chart

import (
	"slices"

	"github.com/matzehuels/footprint/pkg/dataset"
)

// Definition is a chart entry in a definition file. Every field is
// optional except Name; set fields replace the corresponding field of the
// chart being patched.
type Definition struct {
	Name    string           `json:"name" toml:"name" yaml:"name"`
	Title   string           `json:"title,omitempty" toml:"title" yaml:"title"`
	Kind    Kind             `json:"kind,omitempty" toml:"kind" yaml:"kind"`
	Dataset *dataset.Dataset `json:"dataset,omitempty" toml:"dataset" yaml:"dataset"`

	Palette []string `json:"palette,omitempty" toml:"palette" yaml:"palette"`
	Hatches []string `json:"hatches,omitempty" toml:"hatches" yaml:"hatches"`
	ColorBy ColorBy  `json:"color_by,omitempty" toml:"color_by" yaml:"color_by"`

	StartAngle      *float64     `json:"start_angle,omitempty" toml:"start_angle" yaml:"start_angle"`
	Layout          *LayoutPatch `json:"layout,omitempty" toml:"layout" yaml:"layout"`
	Overrides       []Override   `json:"overrides,omitempty" toml:"overrides" yaml:"overrides"`
	UnavailableText string       `json:"unavailable_text,omitempty" toml:"unavailable_text" yaml:"unavailable_text"`
	DropZero        *bool        `json:"drop_zero,omitempty" toml:"drop_zero" yaml:"drop_zero"`

	Decimals *int   `json:"decimals,omitempty" toml:"decimals" yaml:"decimals"`
	XLabel   string `json:"x_label,omitempty" toml:"x_label" yaml:"x_label"`
	YLabel   string `json:"y_label,omitempty" toml:"y_label" yaml:"y_label"`

	Width  int `json:"width,omitempty" toml:"width" yaml:"width"`
	Height int `json:"height,omitempty" toml:"height" yaml:"height"`
}

// LayoutPatch holds optional pie layout parameters.
type LayoutPatch struct {
	MinPct             *float64 `json:"min_pct,omitempty" toml:"min_pct" yaml:"min_pct"`
	PctDistance        *float64 `json:"pct_distance,omitempty" toml:"pct_distance" yaml:"pct_distance"`
	LabelDistance      *float64 `json:"label_distance,omitempty" toml:"label_distance" yaml:"label_distance"`
	FixedStartDistance *float64 `json:"fixed_start_distance,omitempty" toml:"fixed_start_distance" yaml:"fixed_start_distance"`
	YSpacing           *float64 `json:"y_spacing,omitempty" toml:"y_spacing" yaml:"y_spacing"`
	Epsilon            *float64 `json:"epsilon,omitempty" toml:"epsilon" yaml:"epsilon"`
}

// Apply returns base with the definition's set fields applied. Overrides
// are merged by (subject, label): a matching override is replaced, others
// are appended.
func (d Definition) Apply(base Spec) Spec {
	s := base
	setString(&s.Title, d.Title)
	setString(&s.UnavailableText, d.UnavailableText)
	setString(&s.XLabel, d.XLabel)
	setString(&s.YLabel, d.YLabel)
	if d.Kind != "" {
		s.Kind = d.Kind
	}
	if d.ColorBy != "" {
		s.ColorBy = d.ColorBy
	}
	if d.Dataset != nil {
		s.Dataset = *d.Dataset
	}
	if d.Palette != nil {
		s.Palette = slices.Clone(d.Palette)
	}
	if d.Hatches != nil {
		s.Hatches = slices.Clone(d.Hatches)
	}
	if d.StartAngle != nil {
		s.StartAngle = *d.StartAngle
	}
	if d.DropZero != nil {
		s.DropZero = *d.DropZero
	}
	if d.Decimals != nil {
		s.Decimals = *d.Decimals
	}
	if d.Width > 0 {
		s.Width = d.Width
	}
	if d.Height > 0 {
		s.Height = d.Height
	}

	if p := d.Layout; p != nil {
		setFloat(&s.Layout.MinPct, p.MinPct)
		setFloat(&s.Layout.PctDistance, p.PctDistance)
		setFloat(&s.Layout.LabelDistance, p.LabelDistance)
		setFloat(&s.Layout.FixedStartDistance, p.FixedStartDistance)
		setFloat(&s.Layout.YSpacing, p.YSpacing)
		setFloat(&s.Layout.Epsilon, p.Epsilon)
	}

	if len(d.Overrides) > 0 {
		s.Overrides = slices.Clone(base.Overrides)
		for _, o := range d.Overrides {
			i := slices.IndexFunc(s.Overrides, func(e Override) bool {
				return e.Subject == o.Subject && e.Label == o.Label
			})
			if i >= 0 {
				s.Overrides[i] = o
			} else {
				s.Overrides = append(s.Overrides, o)
			}
		}
	}
	return s
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
