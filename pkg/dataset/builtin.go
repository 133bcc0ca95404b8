package dataset

// Units used by the built-in datasets.
const (
	UnitKgCO2e = "kgCO₂e"
	UnitTCO2e  = "tCO₂e"
	UnitLitres = "L"
)

// The three subjects every built-in dataset describes.
const (
	Jonathan = "Jonathan"
	Connor   = "Connor"
	Agnel    = "Agnel"
)

func subject(name string, entries ...Entry) Subject {
	return Subject{Name: name, Entries: entries}
}

// Diet returns yearly food emissions per subject.
func Diet() Dataset {
	row := func(name string, beef, pig, fish, poultry, rice, potatoes, pasta float64) Subject {
		return subject(name,
			Present("Beef", beef),
			Present("Pig Meat", pig),
			Present("Fish", fish),
			Present("Poultry", poultry),
			Present("Rice", rice),
			Present("Potatoes", potatoes),
			Present("Pasta", pasta),
		)
	}
	return Dataset{
		Name: "diet",
		Unit: UnitKgCO2e,
		Subjects: []Subject{
			row(Jonathan, 7800, 0, 873.6, 936, 10.92, 30.28, 312),
			row(Connor, 3900, 1560, 312, 1248, 21.84, 43.26, 208),
			row(Agnel, 23400, 0, 0, 6240, 10.92, 69.22, 1456),
		},
	}
}

// Water returns yearly household water use per subject.
func Water() Dataset {
	row := func(name string, shower, dishes, washing, toilet, tank float64) Subject {
		return subject(name,
			Present("Shower", shower),
			Present("Cleaning Dishes", dishes),
			Present("Washing Machine", washing),
			Present("Toilet", toilet),
			Present("Fish Tank", tank),
		)
	}
	return Dataset{
		Name: "water",
		Unit: UnitLitres,
		Subjects: []Subject{
			row(Jonathan, 16380, 4186, 8112, 7300, 1664),
			row(Connor, 32760, 2184, 4680, 26280, 0),
			row(Agnel, 49140, 10192, 2704, 9125, 0),
		},
	}
}

// Energy returns residential energy emissions for all subjects. Agnel's
// heating oil figure is unknown.
func Energy() Dataset {
	return Dataset{
		Name: "energy",
		Unit: UnitKgCO2e,
		Subjects: []Subject{
			subject(Jonathan, Present("Electricity", 311.20), Present("Heating Oil", 8674.61)),
			subject(Connor, Present("Electricity", 149.56), Present("Heating Oil", 5461.32)),
			subject(Agnel, Present("Electricity", 317.50), Missing("Heating Oil")),
		},
	}
}

// ResidentialEnergy returns residential energy emissions for the subjects
// with complete figures, heating oil first.
func ResidentialEnergy() Dataset {
	return Dataset{
		Name: "residential-energy",
		Unit: UnitKgCO2e,
		Subjects: []Subject{
			subject(Jonathan, Present("Heating Oil", 8674.61), Present("Electricity", 311.20)),
			subject(Connor, Present("Heating Oil", 5461.32), Present("Electricity", 149.56)),
		},
	}
}

// Transport returns travel emissions per subject and mode.
func Transport() Dataset {
	return Dataset{
		Name: "transport",
		Unit: UnitKgCO2e,
		Subjects: []Subject{
			subject(Jonathan, Present("Car", 2217.35), Present("Train", 115.45)),
			subject(Connor, Present("Car", 0), Present("Train", 40.28)),
			subject(Agnel, Present("Walking", 100)),
		},
	}
}

// Comparison returns each subject's emissions per activity, in tonnes.
func Comparison() Dataset {
	row := func(name string, energy, water, transport, diet float64) Subject {
		return subject(name,
			Present("Residential Energy", energy),
			Present("Water", water),
			Present("Transport", transport),
			Present("Diet", diet),
		)
	}
	return Dataset{
		Name: "comparison",
		Unit: UnitTCO2e,
		Subjects: []Subject{
			row(Jonathan, 8.986, 0.013, 2.333, 9.963),
			row(Connor, 5.611, 0.022, 0.040, 7.293),
			row(Agnel, 0.318, 0.024, 0.000, 31.176),
		},
	}
}

// EnergyTonnes returns residential energy emissions in tonnes.
func EnergyTonnes() Dataset {
	return Dataset{
		Name: "energy-tonnes",
		Unit: UnitTCO2e,
		Subjects: []Subject{
			subject(Jonathan, Present("Electricity", 0.311), Present("Heating Oil", 8.675)),
			subject(Connor, Present("Electricity", 0.150), Present("Heating Oil", 5.461)),
			subject(Agnel, Present("Electricity", 0.318), Missing("Heating Oil")),
		},
	}
}

// TransportTonnes returns travel emissions in tonnes for the subjects who
// travel by train or car.
func TransportTonnes() Dataset {
	return Dataset{
		Name: "transport-tonnes",
		Unit: UnitTCO2e,
		Subjects: []Subject{
			subject(Jonathan, Present("Train", 0.115), Present("Car", 2.217)),
			subject(Connor, Present("Train", 0.040), Present("Car", 0)),
		},
	}
}

// WaterTonnes returns water-use emissions in tonnes.
func WaterTonnes() Dataset {
	return Dataset{
		Name: "water-tonnes",
		Unit: UnitTCO2e,
		Subjects: []Subject{
			subject(Jonathan, Present("Water", 0.013)),
			subject(Connor, Present("Water", 0.022)),
			subject(Agnel, Present("Water", 0.024)),
		},
	}
}
