package pipeline

import (
	"github.com/matzehuels/footprint/pkg/chart"
)

// LoadCatalog returns the built-in catalog, with the chart definition file
// at path merged over it when path is not empty.
func LoadCatalog(path string) (*chart.Catalog, error) {
	builtin := chart.Builtin()
	if path == "" {
		return builtin, nil
	}
	defs, err := chart.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return builtin.Merge(defs)
}

// Select returns the named specs in the given order, or every spec when
// names is empty.
func Select(c *chart.Catalog, names []string) ([]chart.Spec, error) {
	if len(names) == 0 {
		return c.All(), nil
	}
	specs := make([]chart.Spec, 0, len(names))
	for _, n := range names {
		s, err := c.Get(n)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
