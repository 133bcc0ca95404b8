package pie

import "math"

// DefaultStartAngle is where the first wedge begins, in degrees
// counter-clockwise from the positive x-axis.
const DefaultStartAngle = 90.0

// Point is a position in pie coordinates: origin at the pie centre, unit
// length equal to the pie radius, y pointing up.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Polar returns the point at radius r and angle deg (degrees).
func Polar(r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// Wedge is one angular slice of a pie, spanning [Theta1, Theta2) degrees.
type Wedge struct {
	Label  string  `json:"label"`
	Theta1 float64 `json:"theta1"`
	Theta2 float64 `json:"theta2"`
	Value  float64 `json:"value"`
}

// MidAngle returns the angle halfway through the wedge, in degrees.
func (w Wedge) MidAngle() float64 { return (w.Theta1 + w.Theta2) / 2 }

// Span returns the angular width of the wedge, in degrees.
func (w Wedge) Span() float64 { return w.Theta2 - w.Theta1 }

// Spans lays values out as consecutive wedges, counter-clockwise from
// startAngle, each spanning a share of 360 degrees proportional to its
// value. Zero values get zero-width wedges. If the values sum to zero every
// wedge collapses onto startAngle.
//
// labels[i] names wedge i; missing labels are left empty.
func Spans(labels []string, values []float64, startAngle float64) []Wedge {
	var total float64
	for _, v := range values {
		total += v
	}

	wedges := make([]Wedge, len(values))
	var cum float64
	for i, v := range values {
		w := Wedge{Value: v, Theta1: startAngle, Theta2: startAngle}
		if i < len(labels) {
			w.Label = labels[i]
		}
		if total > 0 {
			w.Theta1 = startAngle + 360*cum/total
			w.Theta2 = startAngle + 360*(cum+v)/total
		}
		cum += v
		wedges[i] = w
	}
	return wedges
}
