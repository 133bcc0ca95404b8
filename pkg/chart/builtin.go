package chart

import (
	"github.com/matzehuels/footprint/pkg/dataset"
	"github.com/matzehuels/footprint/pkg/pie"
)

var (
	pastel = []string{"#ff9999", "#66b3ff", "#99ff99", "#ffcc99", "#c2c2f0", "#ffb3e6", "#c4e17f"}

	printHatches = []string{"x", "-", "/", "\\", "|", "+", "o"}
)

const (
	yLabelTonnes = "GHG Emission (tCO₂e)"
	yLabelTotal  = "GHG Emissions (tCO₂e)"
)

// Builtin returns the catalog of charts footprint ships with.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinSpecs()...)
	if err != nil {
		panic("chart: invalid built-in catalog: " + err.Error())
	}
	return c
}

func builtinSpecs() []Spec {
	return []Spec{
		dietPie(),
		waterPie(),
		energyPie(),
		residentialEnergyPie(),
		transportPie(),
		bars("diet-bars", "Diet Carbon Footprint Comparison", dataset.Diet().Scale(0.001, dataset.UnitTCO2e), pastel, "Food"),
		bars("energy-bars", "Residential Energy Consumption Carbon Footprint Comparison", dataset.EnergyTonnes(), pastel[:2], "Activity"),
		transportBars(),
		waterBars(),
		bars("comparison-bars", "Carbon Footprint Comparison", dataset.Comparison(), pastel[:4], "Activity"),
		totalBars(),
	}
}

func dietPie() Spec {
	s := New("diet", KindPie)
	s.Title = "Diet Breakdown"
	s.Dataset = dataset.Diet()
	s.Palette = pastel
	s.Hatches = printHatches
	s.Layout = pie.Config{
		MinPct:             5,
		PctDistance:        0.6,
		LabelDistance:      1.2,
		FixedStartDistance: 0.85,
		YSpacing:           0.15,
		Epsilon:            pie.DefaultEpsilon,
	}
	s.Overrides = []Override{
		{Subject: dataset.Jonathan, Label: "Fish", Offset: [2]float64{0.1, 0}},
		{Subject: dataset.Jonathan, Label: "Poultry", Offset: [2]float64{0.1, 0.1}},
		{Subject: dataset.Jonathan, Label: "Pasta", Offset: [2]float64{-0.3, 0}, LineOffset: [2]float64{0.1, 0}, LineLength: length(1.7)},
		{Subject: dataset.Jonathan, Label: "Rice", Offset: [2]float64{0.4, 0}, LineLength: length(0.7)},
		{Subject: dataset.Connor, Label: "Fish", Offset: [2]float64{0.2, -0.05}, LineOffset: [2]float64{0.2, 0}, LineLength: length(0.2)},
		{Subject: dataset.Connor, Label: "Pasta", Offset: [2]float64{-0.3, 0}, LineOffset: [2]float64{0, 0.1}, LineLength: length(1.3)},
		{Subject: dataset.Connor, Label: "Rice", Offset: [2]float64{0.4, 0}, LineLength: length(0.7)},
		{Subject: dataset.Agnel, Label: "Potatoes", Offset: [2]float64{0.3, 0}, LineOffset: [2]float64{-0.1, -0.05}, LineLength: length(0.9)},
	}
	return s
}

func waterPie() Spec {
	s := New("water", KindPie)
	s.Title = "Water Consumption Breakdown"
	s.Dataset = dataset.Water()
	s.Palette = pastel[:5]
	s.Hatches = []string{"x", "-", "/", "\\", "o", "|", "+"}
	s.Layout.PctDistance = 0.73
	s.Layout.LabelDistance = 1.2
	s.Overrides = []Override{
		{Subject: dataset.Connor, Label: "Washing Machine", Offset: [2]float64{0.1, 0}},
	}
	return s
}

func energyPie() Spec {
	s := New("energy", KindPie)
	s.Title = "Energy Usage"
	s.Dataset = dataset.Energy()
	s.Palette = pastel[:4]
	s.Layout.PctDistance = 0.75
	s.Layout.LabelDistance = 1.2
	s.UnavailableText = "N/A"
	return s
}

func residentialEnergyPie() Spec {
	s := New("residential-energy", KindPie)
	s.Title = "Residential Energy Consumption Breakdown"
	s.Dataset = dataset.ResidentialEnergy()
	s.Palette = pastel[:4]
	s.Hatches = printHatches
	s.Layout.PctDistance = 0.75
	s.Layout.LabelDistance = 1.2
	s.Width = 1000
	return s
}

func transportPie() Spec {
	s := New("transport", KindPie)
	s.Title = "Transport Breakdown"
	s.Dataset = dataset.Transport()
	s.Palette = pastel[:3]
	s.Hatches = []string{"x", "-", "/"}
	s.ColorBy = ColorByCategory
	s.Layout.PctDistance = 0.75
	s.Layout.LabelDistance = 1.2
	s.DropZero = true
	return s
}

func bars(name, title string, ds dataset.Dataset, palette []string, xLabel string) Spec {
	s := New(name, KindBar)
	s.Title = title
	s.Dataset = ds
	s.Palette = palette
	s.XLabel = xLabel
	s.YLabel = yLabelTonnes
	return s
}

func transportBars() Spec {
	s := bars("transport-bars", "Transport Carbon Footprint Comparison", dataset.TransportTonnes(), pastel[:2], "Activity")
	s.Height = 800
	return s
}

func waterBars() Spec {
	s := bars("water-bars", "Water Consumption Carbon Footprint Comparison", dataset.WaterTonnes().Totals("Water"), pastel[:3], "Group Member")
	s.YLabel = yLabelTotal
	s.Decimals = 3
	s.Width, s.Height = 1200, 600
	return s
}

func totalBars() Spec {
	s := bars("total-bars", "Total Carbon Footprint Comparison", dataset.Comparison().Totals("Total"), pastel[:3], "Group Member")
	s.YLabel = yLabelTotal
	s.Width, s.Height = 1000, 600
	return s
}

func length(f float64) *float64 { return &f }
