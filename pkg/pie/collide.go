package pie

import (
	"math"
	"slices"
)

type queued struct {
	idx int
	at  Point
}

// ResolveCollisions spaces points vertically so that each is at least
// spacing above its predecessor in y order. It returns the points sorted by
// ascending y (ties keep input order) with adjusted y values; x values are
// untouched.
//
// The adjustment is one forward pass comparing each point with the
// already-adjusted previous one: if |y - prev.y| < spacing then
// y = prev.y + spacing. Points already spaced by at least spacing are
// returned unchanged.
func ResolveCollisions(points []Point, spacing float64) []Point {
	q := make([]queued, len(points))
	for i, p := range points {
		q[i] = queued{idx: i, at: p}
	}
	resolve(q, spacing)

	out := make([]Point, len(q))
	for i, e := range q {
		out[i] = e.at
	}
	return out
}

// resolve sorts q by y and applies the forward pass in place. Each entry
// keeps its idx, so callers can map adjusted positions back to their labels.
func resolve(q []queued, spacing float64) {
	slices.SortStableFunc(q, func(a, b queued) int {
		switch {
		case a.at.Y < b.at.Y:
			return -1
		case a.at.Y > b.at.Y:
			return 1
		}
		return 0
	})
	for i := 1; i < len(q); i++ {
		prev := q[i-1].at.Y
		if math.Abs(q[i].at.Y-prev) < spacing {
			q[i].at.Y = prev + spacing
		}
	}
}
