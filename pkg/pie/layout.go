package pie

import (
	"fmt"
	"math"

	"github.com/matzehuels/footprint/pkg/errors"
)

// spanTolerance is the slack, in degrees, allowed when checking that wedge
// spans are contiguous and cover a full turn.
const spanTolerance = 1e-6

// Placement says whether a label sits inside its wedge or outside the pie.
type Placement int

const (
	Internal Placement = iota
	External
)

func (p Placement) String() string {
	switch p {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// MarshalText renders the placement as "internal" or "external".
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses "internal" or "external".
func (p *Placement) UnmarshalText(b []byte) error {
	switch string(b) {
	case "internal":
		*p = Internal
	case "external":
		*p = External
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown placement %q", b)
	}
	return nil
}

// Leader is the dashed line joining a thin wedge to its external label.
type Leader struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Label is the placement decision for one wedge.
type Label struct {
	// Index is the wedge's position in the input sequence.
	Index int    `json:"index"`
	Wedge string `json:"wedge"`
	// Text is the percentage with one decimal, e.g. "12.5%".
	Text      string    `json:"text"`
	Pct       float64   `json:"pct"`
	Placement Placement `json:"placement"`
	// Anchor is where the text is centred, after collision resolution.
	Anchor Point `json:"anchor"`
	// Leader is set for external labels only. It is computed from the anchor
	// before collision resolution, so a displaced label keeps its original
	// line.
	Leader *Leader `json:"leader,omitempty"`
}

// Plan is the full set of label placements for one pie, in wedge order.
type Plan struct {
	Pie    string  `json:"pie,omitempty"`
	Labels []Label `json:"labels"`
}

// Internal returns the internal labels in wedge order.
func (p Plan) Internal() []Label { return p.filter(Internal) }

// External returns the external labels in wedge order.
func (p Plan) External() []Label { return p.filter(External) }

func (p Plan) filter(pl Placement) []Label {
	var out []Label
	for _, l := range p.Labels {
		if l.Placement == pl {
			out = append(out, l)
		}
	}
	return out
}

// FormatPct formats a percentage the way labels show it.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// Option configures [Build].
type Option func(*builder)

type builder struct {
	pie       string
	overrides Overrides
}

// WithPie sets the pie identity used for override lookup and reported on
// the plan.
func WithPie(name string) Option {
	return func(b *builder) { b.pie = name }
}

// WithOverrides applies hand-tuned nudges. Entries whose key does not match
// the pie identity are ignored.
func WithOverrides(ov Overrides) Option {
	return func(b *builder) { b.overrides = ov }
}

// Build computes the label plan for wedges.
//
// Wedges with a zero value, or a percentage below cfg.Epsilon, are skipped.
// The rest are labelled internally when their percentage is at least
// cfg.MinPct and externally otherwise. External labels are then passed
// through [ResolveCollisions] with cfg.YSpacing. A pie whose values sum to
// zero yields an empty plan.
//
// Build returns an errors.ErrCodeInvalidConfig error for out-of-range
// parameters and an errors.ErrCodeInvalidWedges error for malformed wedges.
func Build(wedges []Wedge, cfg Config, opts ...Option) (Plan, error) {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	total, err := checkWedges(wedges)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Pie: b.pie, Labels: []Label{}}
	if total == 0 {
		return plan, nil
	}

	var queue []queued
	for i, w := range wedges {
		if w.Value == 0 {
			continue
		}
		pct := 100 * w.Value / total
		if pct < cfg.Epsilon {
			continue
		}

		ov, _ := b.overrides.Lookup(b.pie, w.Label)
		mid := w.MidAngle()
		l := Label{Index: i, Wedge: w.Label, Text: FormatPct(pct), Pct: pct}

		if pct >= cfg.MinPct {
			l.Placement = Internal
			l.Anchor = Polar(cfg.PctDistance, mid).Add(ov.Offset)
		} else {
			raw := Polar(cfg.LabelDistance, mid).Add(ov.Offset)
			start := Polar(cfg.FixedStartDistance, mid)
			end := start.Add(raw.Sub(start).Scale(ov.fraction())).Add(ov.LineOffset)

			l.Placement = External
			l.Anchor = raw
			l.Leader = &Leader{Start: start, End: end}
			queue = append(queue, queued{idx: len(plan.Labels), at: raw})
		}
		plan.Labels = append(plan.Labels, l)
	}

	resolve(queue, cfg.YSpacing)
	for _, q := range queue {
		plan.Labels[q.idx].Anchor = q.at
	}
	return plan, nil
}

// checkWedges validates wedges and returns the sum of their values.
func checkWedges(wedges []Wedge) (float64, error) {
	var total float64
	for i, w := range wedges {
		if math.IsNaN(w.Value) || math.IsInf(w.Value, 0) || w.Value < 0 {
			return 0, errors.New(errors.ErrCodeInvalidWedges, "wedge %d (%q): value must be finite and non-negative, got %v", i, w.Label, w.Value)
		}
		total += w.Value
	}
	if math.IsInf(total, 0) {
		return 0, errors.New(errors.ErrCodeInvalidWedges, "sum of %d wedge values overflows float64", len(wedges))
	}

	for i, w := range wedges {
		if math.IsNaN(w.Theta1) || math.IsNaN(w.Theta2) || math.IsInf(w.Theta1, 0) || math.IsInf(w.Theta2, 0) {
			return 0, errors.New(errors.ErrCodeInvalidWedges, "wedge %d (%q): angles must be finite", i, w.Label)
		}
		if w.Theta2 < w.Theta1 {
			return 0, errors.New(errors.ErrCodeInvalidWedges, "wedge %d (%q): theta2 %v before theta1 %v", i, w.Label, w.Theta2, w.Theta1)
		}
		if i > 0 && math.Abs(w.Theta1-wedges[i-1].Theta2) > spanTolerance {
			return 0, errors.New(errors.ErrCodeInvalidWedges, "wedge %d (%q): starts at %v, previous wedge ends at %v", i, w.Label, w.Theta1, wedges[i-1].Theta2)
		}
	}

	if total > 0 {
		turn := wedges[len(wedges)-1].Theta2 - wedges[0].Theta1
		if math.Abs(turn-360) > spanTolerance {
			return 0, errors.New(errors.ErrCodeInvalidWedges, "wedges cover %v degrees, want 360", turn)
		}
	}
	return total, nil
}
