package pie

import (
	"math"

	"github.com/matzehuels/footprint/pkg/errors"
)

// Default layout parameters.
const (
	DefaultMinPct             = 5.0
	DefaultPctDistance        = 0.6
	DefaultLabelDistance      = 1.5
	DefaultFixedStartDistance = 0.9
	DefaultYSpacing           = 0.2
	DefaultEpsilon            = 0.1
)

// Config holds the layout parameters for one pie. Distances are fractions
// of the pie radius; percentages are in [0, 100].
type Config struct {
	// MinPct is the percentage below which a label is placed outside its wedge.
	MinPct float64 `json:"min_pct" toml:"min_pct" yaml:"min_pct"`
	// PctDistance is the radial distance of internal labels.
	PctDistance float64 `json:"pct_distance" toml:"pct_distance" yaml:"pct_distance"`
	// LabelDistance is the radial distance of external labels before
	// collision resolution.
	LabelDistance float64 `json:"label_distance" toml:"label_distance" yaml:"label_distance"`
	// FixedStartDistance is where leader lines start, near the wedge edge.
	FixedStartDistance float64 `json:"fixed_start_distance" toml:"fixed_start_distance" yaml:"fixed_start_distance"`
	// YSpacing is the minimum vertical gap between consecutive external labels.
	YSpacing float64 `json:"y_spacing" toml:"y_spacing" yaml:"y_spacing"`
	// Epsilon is the percentage below which a wedge gets no label at all.
	Epsilon float64 `json:"epsilon" toml:"epsilon" yaml:"epsilon"`
}

// DefaultConfig returns the default layout parameters.
func DefaultConfig() Config {
	return Config{
		MinPct:             DefaultMinPct,
		PctDistance:        DefaultPctDistance,
		LabelDistance:      DefaultLabelDistance,
		FixedStartDistance: DefaultFixedStartDistance,
		YSpacing:           DefaultYSpacing,
		Epsilon:            DefaultEpsilon,
	}
}

// Validate reports the first out-of-range parameter as an
// errors.ErrCodeInvalidConfig error.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"min_pct", c.MinPct},
		{"pct_distance", c.PctDistance},
		{"label_distance", c.LabelDistance},
		{"fixed_start_distance", c.FixedStartDistance},
		{"y_spacing", c.YSpacing},
		{"epsilon", c.Epsilon},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be finite, got %v", f.name, f.v)
		}
	}

	switch {
	case c.MinPct < 0 || c.MinPct > 100:
		return errors.New(errors.ErrCodeInvalidConfig, "min_pct %v outside [0, 100]", c.MinPct)
	case c.Epsilon < 0 || c.Epsilon > 100:
		return errors.New(errors.ErrCodeInvalidConfig, "epsilon %v outside [0, 100]", c.Epsilon)
	case c.YSpacing < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "y_spacing must not be negative, got %v", c.YSpacing)
	case c.PctDistance <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "pct_distance must be positive, got %v", c.PctDistance)
	case c.LabelDistance <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "label_distance must be positive, got %v", c.LabelDistance)
	case c.FixedStartDistance <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "fixed_start_distance must be positive, got %v", c.FixedStartDistance)
	}
	return nil
}
