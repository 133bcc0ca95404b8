package dataset

import (
	"math"
	"testing"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectUnavailable(t *testing.T) {
	e := Energy()
	agnel, ok := e.Subject(Agnel)
	require.True(t, ok)
	assert.True(t, agnel.Unavailable())

	jonathan, _ := e.Subject(Jonathan)
	assert.False(t, jonathan.Unavailable())
	assert.InDelta(t, 8985.81, jonathan.Total(), 1e-9)
}

func TestMissingIsNotZero(t *testing.T) {
	s := subject("x", Present("a", 0), Missing("b"))
	assert.False(t, s.Entries[0].IsMissing())
	assert.True(t, s.Entries[1].IsMissing())
	assert.Zero(t, s.Entries[1].Float())

	dropped := s.DropZero()
	require.Len(t, dropped.Entries, 1)
	assert.Equal(t, "b", dropped.Entries[0].Category)
}

func TestSeries(t *testing.T) {
	connor, _ := Transport().Subject(Connor)
	labels, values := connor.Series()
	assert.Equal(t, []string{"Car", "Train"}, labels)
	assert.Equal(t, []float64{0, 40.28}, values)

	labels, values = connor.DropZero().Series()
	assert.Equal(t, []string{"Train"}, labels)
	assert.Equal(t, []float64{40.28}, values)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Car", "Train", "Walking"}, Transport().Categories())
	assert.Equal(t, []string{"Heating Oil", "Electricity"}, ResidentialEnergy().Categories())
}

func TestScale(t *testing.T) {
	diet := Diet()
	tonnes := diet.Scale(0.001, UnitTCO2e)

	assert.Equal(t, UnitTCO2e, tonnes.Unit)
	assert.Equal(t, UnitKgCO2e, diet.Unit, "original untouched")

	agnel, _ := tonnes.Subject(Agnel)
	beef, ok := agnel.Lookup("Beef")
	require.True(t, ok)
	assert.InDelta(t, 23.4, *beef.Value, 1e-9)

	scaled := Energy().Scale(2, "x")
	a, _ := scaled.Subject(Agnel)
	oil, _ := a.Lookup("Heating Oil")
	assert.True(t, oil.IsMissing())
}

func TestTotals(t *testing.T) {
	totals := Comparison().Totals("Total")
	require.Len(t, totals.Subjects, 1)

	s := totals.Subjects[0]
	assert.Equal(t, "Total", s.Name)
	require.Len(t, s.Entries, 3)
	assert.Equal(t, Jonathan, s.Entries[0].Category)
	assert.InDelta(t, 21.295, *s.Entries[0].Value, 1e-9)
	assert.InDelta(t, 12.966, *s.Entries[1].Value, 1e-9)
	assert.InDelta(t, 31.518, *s.Entries[2].Value, 1e-9)

	withMissing := EnergyTonnes().Totals("Total")
	assert.True(t, withMissing.Subjects[0].Entries[2].IsMissing())
}

func TestBuiltinsValid(t *testing.T) {
	for _, d := range []Dataset{
		Diet(), Water(), Energy(), ResidentialEnergy(), Transport(),
		Comparison(), EnergyTonnes(), TransportTonnes(), WaterTonnes(),
	} {
		if err := d.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", d.Name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
	}{
		{"unnamed subject", Dataset{Subjects: []Subject{subject("", Present("a", 1))}}},
		{"duplicate subject", Dataset{Subjects: []Subject{subject("a"), subject("a")}}},
		{"empty category", Dataset{Subjects: []Subject{subject("a", Present("", 1))}}},
		{"duplicate category", Dataset{Subjects: []Subject{subject("a", Present("x", 1), Present("x", 2))}}},
		{"negative", Dataset{Subjects: []Subject{subject("a", Present("x", -1))}}},
		{"nan", Dataset{Subjects: []Subject{subject("a", Present("x", math.NaN()))}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidDataset))
		})
	}
}
