// Package dataset models the per-subject figures plotted by footprint
// charts.
//
// A [Dataset] is a named, unit-tagged list of [Subject] values (one per
// person), each holding ordered [Entry] values (one per category). An entry
// whose Value is nil is missing: it is distinct from zero, and a subject
// with any missing entry is reported as unavailable by the pie renderers.
package dataset

import (
	"math"
	"slices"

	"github.com/matzehuels/footprint/pkg/errors"
)

// Entry is one category value of a subject. A nil Value means the figure is
// missing.
type Entry struct {
	Category string   `json:"category" toml:"category" yaml:"category"`
	Value    *float64 `json:"value" toml:"value,omitempty" yaml:"value,omitempty"`
}

// Present returns an entry with a known value.
func Present(category string, v float64) Entry {
	return Entry{Category: category, Value: &v}
}

// Missing returns an entry whose value is unknown.
func Missing(category string) Entry {
	return Entry{Category: category}
}

// IsMissing reports whether the entry has no value.
func (e Entry) IsMissing() bool { return e.Value == nil }

// Float returns the value, or 0 when missing.
func (e Entry) Float() float64 {
	if e.Value == nil {
		return 0
	}
	return *e.Value
}

// Subject is one person's figures for a dataset.
type Subject struct {
	Name    string  `json:"name" toml:"name" yaml:"name"`
	Entries []Entry `json:"entries" toml:"entries" yaml:"entries"`
}

// Unavailable reports whether any entry is missing.
func (s Subject) Unavailable() bool {
	return slices.ContainsFunc(s.Entries, Entry.IsMissing)
}

// Total sums the present values.
func (s Subject) Total() float64 {
	var t float64
	for _, e := range s.Entries {
		t += e.Float()
	}
	return t
}

// Series splits the entries into parallel category and value slices.
// Missing values appear as 0.
func (s Subject) Series() ([]string, []float64) {
	labels := make([]string, len(s.Entries))
	values := make([]float64, len(s.Entries))
	for i, e := range s.Entries {
		labels[i] = e.Category
		values[i] = e.Float()
	}
	return labels, values
}

// Lookup returns the entry for category.
func (s Subject) Lookup(category string) (Entry, bool) {
	i := slices.IndexFunc(s.Entries, func(e Entry) bool { return e.Category == category })
	if i < 0 {
		return Entry{}, false
	}
	return s.Entries[i], true
}

// DropZero returns a copy of s without entries whose value is exactly zero.
// Missing entries are kept.
func (s Subject) DropZero() Subject {
	out := Subject{Name: s.Name}
	for _, e := range s.Entries {
		if e.Value != nil && *e.Value == 0 {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

// Dataset is a set of subjects measured in the same unit.
type Dataset struct {
	Name     string    `json:"name" toml:"name" yaml:"name"`
	Unit     string    `json:"unit" toml:"unit" yaml:"unit"`
	Subjects []Subject `json:"subjects" toml:"subjects" yaml:"subjects"`
}

// Subject returns the subject called name.
func (d Dataset) Subject(name string) (Subject, bool) {
	i := slices.IndexFunc(d.Subjects, func(s Subject) bool { return s.Name == name })
	if i < 0 {
		return Subject{}, false
	}
	return d.Subjects[i], true
}

// Names returns the subject names in order.
func (d Dataset) Names() []string {
	names := make([]string, len(d.Subjects))
	for i, s := range d.Subjects {
		names[i] = s.Name
	}
	return names
}

// Categories returns every category used by any subject, in first-seen
// order.
func (d Dataset) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, s := range d.Subjects {
		for _, e := range s.Entries {
			if !seen[e.Category] {
				seen[e.Category] = true
				cats = append(cats, e.Category)
			}
		}
	}
	return cats
}

// Scale returns a deep copy of d with every present value multiplied by f
// and the unit replaced by unit. Missing values stay missing.
func (d Dataset) Scale(f float64, unit string) Dataset {
	out := Dataset{Name: d.Name, Unit: unit, Subjects: make([]Subject, len(d.Subjects))}
	for i, s := range d.Subjects {
		ns := Subject{Name: s.Name, Entries: make([]Entry, len(s.Entries))}
		for j, e := range s.Entries {
			if e.Value == nil {
				ns.Entries[j] = Missing(e.Category)
				continue
			}
			ns.Entries[j] = Present(e.Category, *e.Value*f)
		}
		out.Subjects[i] = ns
	}
	return out
}

// Totals collapses d into a single subject called name whose categories are
// the original subjects and whose values are their totals. A subject with a
// missing entry yields a missing total.
func (d Dataset) Totals(name string) Dataset {
	s := Subject{Name: name}
	for _, sub := range d.Subjects {
		if sub.Unavailable() {
			s.Entries = append(s.Entries, Missing(sub.Name))
			continue
		}
		s.Entries = append(s.Entries, Present(sub.Name, sub.Total()))
	}
	return Dataset{Name: d.Name, Unit: d.Unit, Subjects: []Subject{s}}
}

// Validate checks the structural rules the renderers rely on: subject names
// are non-empty and unique, categories are non-empty and unique within a
// subject, and present values are finite and non-negative.
func (d Dataset) Validate() error {
	v := errors.ValidationErrors{Code: errors.ErrCodeInvalidDataset}
	subjects := make(map[string]bool)
	for i, s := range d.Subjects {
		if s.Name == "" {
			v.Add("subject %d has no name", i)
		} else if subjects[s.Name] {
			v.Add("duplicate subject %q", s.Name)
		}
		subjects[s.Name] = true

		cats := make(map[string]bool)
		for _, e := range s.Entries {
			switch {
			case e.Category == "":
				v.Add("subject %q has an entry without a category", s.Name)
			case cats[e.Category]:
				v.Add("subject %q lists %q twice", s.Name, e.Category)
			}
			cats[e.Category] = true

			if e.Value != nil {
				x := *e.Value
				if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
					v.Add("subject %q: %s must be finite and non-negative, got %v", s.Name, e.Category, x)
				}
			}
		}
	}
	return v.Err()
}
