package chart

import (
	"testing"

	"github.com/matzehuels/footprint/pkg/dataset"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/pie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames(t *testing.T) {
	want := []string{
		"diet", "water", "energy", "residential-energy", "transport",
		"diet-bars", "energy-bars", "transport-bars", "water-bars",
		"comparison-bars", "total-bars",
	}
	assert.Equal(t, want, Builtin().Names())
}

func TestCatalogGet(t *testing.T) {
	c := Builtin()

	s, err := c.Get("energy")
	require.NoError(t, err)
	assert.Equal(t, KindPie, s.Kind)
	assert.Equal(t, "N/A", s.UnavailableText)

	_, err = c.Get("nope")
	assert.True(t, errors.Is(err, errors.ErrCodeChartNotFound))
}

func TestNewCatalogDuplicate(t *testing.T) {
	s := dietPie()
	_, err := NewCatalog(s, s)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))
}

func TestSpecColorByCategory(t *testing.T) {
	s, err := Builtin().Get("transport")
	require.NoError(t, err)

	// Connor's car is dropped, so Train is his first wedge but keeps its
	// colour and hatch.
	subjects := s.Subjects()
	require.Len(t, subjects, 3)
	connor := subjects[1]
	require.Len(t, connor.Entries, 1)
	assert.Equal(t, "Train", connor.Entries[0].Category)
	assert.Equal(t, "#66b3ff", s.Color(0, "Train"))
	assert.Equal(t, "-", s.Hatch(0, "Train"))
	assert.Equal(t, "#99ff99", s.Color(0, "Walking"))
}

func TestSpecColorByIndex(t *testing.T) {
	s := New("x", KindPie)
	s.Palette = []string{"#111", "#222"}
	assert.Equal(t, "#111", s.Color(0, "a"))
	assert.Equal(t, "#222", s.Color(1, "a"))
	assert.Equal(t, "#111", s.Color(2, "a"))
	assert.Empty(t, s.Hatch(0, "a"))
}

func TestLayoutOverrides(t *testing.T) {
	s, _ := Builtin().Get("diet")
	ov := s.LayoutOverrides()

	pasta, ok := ov.Lookup(dataset.Jonathan, "Pasta")
	require.True(t, ok)
	assert.Equal(t, pie.Point{X: -0.3, Y: 0}, pasta.Offset)
	assert.Equal(t, pie.Point{X: 0.1, Y: 0}, pasta.LineOffset)
	require.NotNil(t, pasta.LineLength)
	assert.Equal(t, 1.7, *pasta.LineLength)

	_, ok = ov.Lookup(dataset.Agnel, "Pasta")
	assert.False(t, ok)

	assert.Nil(t, New("x", KindPie).LayoutOverrides())
}

func TestSpecValidate(t *testing.T) {
	valid := func() Spec {
		s := New("x", KindPie)
		s.Palette = []string{"#ff9999"}
		s.Dataset = dataset.Transport()
		return s
	}
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"bad name", func(s *Spec) { s.Name = "../x" }},
		{"bad kind", func(s *Spec) { s.Kind = "donut" }},
		{"bad color_by", func(s *Spec) { s.ColorBy = "random" }},
		{"empty palette", func(s *Spec) { s.Palette = nil }},
		{"bad colour", func(s *Spec) { s.Palette = []string{"red"} }},
		{"bad hatch", func(s *Spec) { s.Hatches = []string{"*"} }},
		{"no subjects", func(s *Spec) { s.Dataset = dataset.Dataset{} }},
		{"bad layout", func(s *Spec) { s.Layout.MinPct = 200 }},
		{"override unknown subject", func(s *Spec) { s.Overrides = []Override{{Subject: "Zed", Label: "Car"}} }},
		{"negative line length", func(s *Spec) { s.Overrides = []Override{{Subject: "Connor", Label: "Car", LineLength: length(-1)}} }},
		{"decimals", func(s *Spec) { s.Decimals = 9 }},
		{"size", func(s *Spec) { s.Width = 0 }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart), "got %v", err)
		})
	}
}

func TestMergePatchesExisting(t *testing.T) {
	spacing := 0.3
	defs := []Definition{{
		Name:   "diet",
		Title:  "Food",
		Layout: &LayoutPatch{YSpacing: &spacing},
		Overrides: []Override{
			{Subject: dataset.Jonathan, Label: "Pasta", Offset: [2]float64{-0.2, 0}},
			{Subject: dataset.Agnel, Label: "Rice", Offset: [2]float64{0.1, 0.1}},
		},
	}}

	base := Builtin()
	merged, err := base.Merge(defs)
	require.NoError(t, err)

	s, _ := merged.Get("diet")
	assert.Equal(t, "Food", s.Title)
	assert.Equal(t, 0.3, s.Layout.YSpacing)
	assert.Equal(t, 1.2, s.Layout.LabelDistance, "unset fields keep the built-in value")
	assert.Len(t, s.Overrides, 9)

	pasta, _ := s.LayoutOverrides().Lookup(dataset.Jonathan, "Pasta")
	assert.Equal(t, pie.Point{X: -0.2, Y: 0}, pasta.Offset)
	assert.Nil(t, pasta.LineLength)

	orig, _ := base.Get("diet")
	assert.Equal(t, "Diet Breakdown", orig.Title, "receiver untouched")
	assert.Len(t, orig.Overrides, 8)
}

func TestMergeAddsNew(t *testing.T) {
	ds := dataset.Transport()
	merged, err := Builtin().Merge([]Definition{{
		Name:    "walking",
		Kind:    KindPie,
		Dataset: &ds,
		Palette: []string{"#000000"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 12, merged.Len())

	s, err := merged.Get("walking")
	require.NoError(t, err)
	assert.Equal(t, pie.DefaultConfig(), s.Layout)
	assert.Equal(t, DefaultPieWidth, s.Width)
}

func TestMergeNewNeedsKindAndDataset(t *testing.T) {
	_, err := Builtin().Merge([]Definition{{Name: "fresh"}})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))

	_, err = Builtin().Merge([]Definition{{Name: "fresh", Kind: KindBar}})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidChart))
}
