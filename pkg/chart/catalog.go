package chart

import (
	"slices"

	"github.com/matzehuels/footprint/pkg/errors"
)

// Catalog is an ordered, name-indexed set of chart specs.
type Catalog struct {
	specs []Spec
}

// NewCatalog validates specs and returns them as a catalog. Names must be
// unique.
func NewCatalog(specs ...Spec) (*Catalog, error) {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if seen[s.Name] {
			return nil, errors.New(errors.ErrCodeInvalidChart, "duplicate chart %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return &Catalog{specs: slices.Clone(specs)}, nil
}

// Get returns the spec called name.
func (c *Catalog) Get(name string) (Spec, error) {
	if i := c.index(name); i >= 0 {
		return c.specs[i], nil
	}
	return Spec{}, errors.New(errors.ErrCodeChartNotFound, "no chart named %q", name)
}

// Names returns the chart names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.specs))
	for i, s := range c.specs {
		names[i] = s.Name
	}
	return names
}

// All returns every spec in catalog order.
func (c *Catalog) All() []Spec {
	return slices.Clone(c.specs)
}

// Len returns the number of charts.
func (c *Catalog) Len() int { return len(c.specs) }

// Merge applies definitions over the catalog: a definition naming an
// existing chart patches it, any other definition adds a new chart built
// from defaults. The receiver is not modified.
func (c *Catalog) Merge(defs []Definition) (*Catalog, error) {
	specs := slices.Clone(c.specs)
	for _, d := range defs {
		if i := slices.IndexFunc(specs, func(s Spec) bool { return s.Name == d.Name }); i >= 0 {
			specs[i] = d.Apply(specs[i])
			continue
		}
		if d.Kind == "" {
			return nil, errors.New(errors.ErrCodeInvalidChart, "new chart %q needs a kind", d.Name)
		}
		if d.Dataset == nil {
			return nil, errors.New(errors.ErrCodeInvalidChart, "new chart %q needs a dataset", d.Name)
		}
		specs = append(specs, d.Apply(New(d.Name, d.Kind)))
	}
	return NewCatalog(specs...)
}

func (c *Catalog) index(name string) int {
	return slices.IndexFunc(c.specs, func(s Spec) bool { return s.Name == name })
}
