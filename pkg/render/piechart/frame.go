package piechart

import (
	"math"

	"github.com/matzehuels/footprint/pkg/pie"
)

// Figure layout proportions.
const (
	plotShare     = 0.75 // width left of the legend
	titleBand     = 0.15 // height above the pies
	subjectBand   = 0.12 // height below the pies
	radiusDivisor = 1.7  // room for external labels around each pie
	swatchSize    = 20.0
	legendRowGap  = 10.0
)

// Frame maps a figure into pixel space. All lengths are already multiplied
// by Scale.
type Frame struct {
	Scale         float64
	Width, Height float64
	Radius        float64
	Centers       []Pixel
	TitleY        float64
	SubjectY      float64
	LegendX       float64
	LegendY       float64
	LegendRow     float64
}

// Pixel is a position in output pixels, y down.
type Pixel struct{ X, Y float64 }

// NewFrame computes the pixel layout for fig at the given scale.
func NewFrame(fig Figure, scale float64) Frame {
	if scale <= 0 {
		scale = 1
	}
	w := float64(fig.Width) * scale
	h := float64(fig.Height) * scale
	n := max(1, len(fig.Panels))

	cellW := w * plotShare / float64(n)
	top := h * titleBand
	plotH := h * (1 - titleBand - subjectBand)

	f := Frame{
		Scale:     scale,
		Width:     w,
		Height:    h,
		Radius:    math.Min(cellW, plotH) / 2 / radiusDivisor,
		TitleY:    top / 2,
		SubjectY:  h - h*subjectBand/2,
		LegendX:   w*plotShare + 10*scale,
		LegendRow: (swatchSize + legendRowGap) * scale,
	}
	for i := range fig.Panels {
		f.Centers = append(f.Centers, Pixel{X: cellW * (float64(i) + 0.5), Y: top + plotH/2})
	}
	f.LegendY = h/2 - float64(len(fig.Legend))*f.LegendRow/2
	return f
}

// Map converts a point in pie units for panel i to pixels.
func (f Frame) Map(i int, p pie.Point) Pixel {
	c := f.Centers[i]
	return Pixel{X: c.X + p.X*f.Radius, Y: c.Y - p.Y*f.Radius}
}

// Font scales a base font size.
func (f Frame) Font(size float64) float64 { return size * f.Scale }

// Swatch returns the side of a legend swatch.
func (f Frame) Swatch() float64 { return swatchSize * f.Scale }

// ArcPoint returns the pixel on panel i's rim at angle deg.
func (f Frame) ArcPoint(i int, deg float64) Pixel {
	return f.Map(i, pie.Polar(1, deg))
}

// legendTextX is where legend labels start.
func (f Frame) legendTextX() float64 {
	return f.LegendX + f.Swatch() + 10*f.Scale
}

// fullTurn reports whether a wedge covers the whole pie.
func fullTurn(w pie.Wedge) bool {
	return w.Span() >= 360-1e-9
}
