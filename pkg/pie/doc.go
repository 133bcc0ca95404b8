// Package pie computes label placement for annotated pie charts.
//
// # Overview
//
// A pie is an ordered sequence of [Wedge] values whose angular spans
// partition a full turn. [Build] turns a pie into a [Plan]: one [Label] per
// wedge that is large enough to annotate, saying where its percentage text
// goes and, for thin wedges, where the dashed leader line runs.
//
// The package knows nothing about colours, fonts or output formats. Sinks in
// pkg/render/piechart consume a Plan and draw it.
//
// # Placement
//
// Every wedge with a percentage of at least [Config.Epsilon] gets a label.
// Wedges at or above [Config.MinPct] are labelled internally, at
// [Config.PctDistance] along the wedge's mid-angle. Thinner wedges are
// labelled externally at [Config.LabelDistance], with a leader line starting
// at [Config.FixedStartDistance]:
//
//	plan, err := pie.Build(pie.Spans(labels, values, pie.DefaultStartAngle), pie.DefaultConfig())
//
// Distances are fractions of the pie radius, in a y-up coordinate space
// centred on the pie.
//
// # Collision Resolution
//
// External labels of one pie are de-overlapped vertically by
// [ResolveCollisions]: sorted by y, then walked once, pushing each label to
// previous.y + spacing whenever it sits closer than spacing to its
// predecessor. The walk is a single forward pass. A label displaced by a
// long run of neighbours can end up closer than spacing to a label two
// positions back; that is accepted behaviour.
//
// # Overrides
//
// Hand-tuned nudges for specific labels live in [Overrides], keyed by pie
// identity and wedge label, and are applied on top of the computed default
// position via [WithOverrides].
package pie
