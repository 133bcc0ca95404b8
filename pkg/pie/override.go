package pie

// Key identifies one label of one pie: the pie's identity (in a figure,
// the subject name) and the wedge label.
type Key struct {
	Pie   string
	Label string
}

// Override nudges a computed label position.
type Override struct {
	// Offset moves the label anchor. For external labels the leader line
	// follows the moved anchor.
	Offset Point `json:"offset"`
	// LineOffset moves the end of the leader line.
	LineOffset Point `json:"line_offset"`
	// LineLength scales the leader line from its start towards the anchor.
	// Nil means 1, a line ending exactly at the anchor; 0 collapses the
	// line onto its start.
	LineLength *float64 `json:"line_length,omitempty"`
}

// fraction returns the effective leader-line length fraction.
func (o Override) fraction() float64 {
	if o.LineLength == nil {
		return 1
	}
	return *o.LineLength
}

// Overrides maps labels to hand-tuned nudges.
type Overrides map[Key]Override

// Lookup returns the override for (pie, label), or the zero Override.
func (o Overrides) Lookup(pie, label string) (Override, bool) {
	ov, ok := o[Key{Pie: pie, Label: label}]
	return ov, ok
}

// ForPie returns the subset of o that applies to pie.
func (o Overrides) ForPie(pie string) Overrides {
	out := Overrides{}
	for k, v := range o {
		if k.Pie == pie {
			out[k] = v
		}
	}
	return out
}
