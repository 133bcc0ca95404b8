package piechart

import (
	"bytes"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/fonts"
	"github.com/matzehuels/footprint/pkg/pie"
	"github.com/matzehuels/footprint/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the figure with gg. No external tools are needed.
func RenderPNG(fig Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	f := NewFrame(fig, r.scale)

	src, err := fonts.Bold()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}

	dc := gg.NewContext(int(math.Ceil(f.Width)), int(math.Ceil(f.Height)))
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	p := painter{dc: dc, f: f, face: func(size float64) { dc.SetFont(src.Face(f.Font(size))) }}

	dc.SetHexColor(styles.ColorText)
	p.face(styles.TitleSize)
	dc.DrawStringAnchored(fig.Title, f.Width/2, f.TitleY, 0.5, 0.5)

	for i, panel := range fig.Panels {
		if panel.Unavailable {
			if err := p.unavailable(i, fig.UnavailableText); err != nil {
				return nil, err
			}
		} else {
			if err := p.wedges(i, panel); err != nil {
				return nil, err
			}
			if err := p.labels(i, panel.Plan); err != nil {
				return nil, err
			}
		}
		dc.SetHexColor(styles.ColorText)
		p.face(styles.SubjectSize)
		dc.DrawStringAnchored(panel.Subject, f.Centers[i].X, f.SubjectY, 0.5, 0.5)
	}

	if err := p.legend(fig.Legend); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

type painter struct {
	dc   *gg.Context
	f    Frame
	face func(size float64)
}

func (p painter) unavailable(i int, text string) error {
	c := p.f.Centers[i]
	p.dc.DrawCircle(c.X, c.Y, p.f.Radius)
	p.dc.SetHexColor(styles.ColorUnavailable)
	if err := p.dc.FillPreserve(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "fill")
	}
	p.edge()
	if err := p.dc.Stroke(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "stroke")
	}
	p.dc.SetHexColor(styles.ColorText)
	p.face(styles.UnavailableSize)
	p.dc.DrawStringAnchored(text, c.X, c.Y, 0.5, 0.5)
	return nil
}

func (p painter) wedges(i int, panel Panel) error {
	c := p.f.Centers[i]
	for j, w := range panel.Wedges {
		if w.Span() <= 0 {
			continue
		}
		p.wedgePath(i, w)
		p.dc.SetHexColor(panel.Colors[j])
		if err := p.dc.Fill(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "fill wedge %s", w.Label)
		}

		if hatched(panel.Hatches[j]) {
			p.dc.Push()
			p.wedgePath(i, w)
			p.dc.Clip()
			err := p.hatch(panel.Hatches[j], c.X-p.f.Radius, c.Y-p.f.Radius, 2*p.f.Radius, 2*p.f.Radius)
			p.dc.Pop()
			if err != nil {
				return err
			}
		}

		p.wedgePath(i, w)
		p.edge()
		if err := p.dc.Stroke(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "stroke wedge %s", w.Label)
		}
	}
	return nil
}

// wedgePath traces a wedge. Pie angles run counter-clockwise with y up, so
// on screen the arc goes from -theta2 to -theta1.
func (p painter) wedgePath(i int, w pie.Wedge) {
	c := p.f.Centers[i]
	if fullTurn(w) {
		p.dc.DrawCircle(c.X, c.Y, p.f.Radius)
		return
	}
	start := p.f.ArcPoint(i, w.Theta2)
	p.dc.MoveTo(c.X, c.Y)
	p.dc.LineTo(start.X, start.Y)
	p.dc.DrawArc(c.X, c.Y, p.f.Radius, -radians(w.Theta2), -radians(w.Theta1))
	p.dc.ClosePath()
}

// hatch strokes hatch tiles over the rectangle; callers clip first.
func (p painter) hatch(h string, x, y, w, ht float64) error {
	t := styles.HatchTile(h)
	size := t.Size * p.f.Scale
	p.dc.SetHexColor(styles.ColorHatch)
	p.dc.SetLineWidth(styles.HatchWidth * p.f.Scale)
	for ty := y; ty < y+ht; ty += size {
		for tx := x; tx < x+w; tx += size {
			for _, l := range t.Lines {
				p.dc.DrawLine(tx+l.X1*p.f.Scale, ty+l.Y1*p.f.Scale, tx+l.X2*p.f.Scale, ty+l.Y2*p.f.Scale)
			}
			for _, d := range t.Dots {
				p.dc.DrawCircle(tx+d.X*p.f.Scale, ty+d.Y*p.f.Scale, d.R*p.f.Scale)
			}
		}
	}
	if err := p.dc.Stroke(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "hatch %q", h)
	}
	return nil
}

func (p painter) edge() {
	p.dc.SetHexColor(styles.ColorEdge)
	p.dc.SetLineWidth(styles.EdgeWidth * p.f.Scale)
}

func (p painter) labels(i int, plan pie.Plan) error {
	for _, l := range plan.Labels {
		if l.Leader == nil {
			continue
		}
		a := p.f.Map(i, l.Leader.Start)
		b := p.f.Map(i, l.Leader.End)
		p.dc.SetHexColor(styles.ColorLeader)
		p.dc.SetLineWidth(styles.LeaderWidth * p.f.Scale)
		p.dc.SetDash(scaled(styles.LeaderDash, p.f.Scale)...)
		p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
		err := p.dc.Stroke()
		p.dc.ClearDash()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "leader %s", l.Wedge)
		}
	}

	p.dc.SetHexColor(styles.ColorText)
	p.face(styles.LabelSize)
	for _, l := range plan.Labels {
		at := p.f.Map(i, l.Anchor)
		p.dc.DrawStringAnchored(l.Text, at.X, at.Y, 0.5, 0.5)
	}
	return nil
}

func (p painter) legend(items []LegendItem) error {
	sw := p.f.Swatch()
	for k, it := range items {
		y := p.f.LegendY + float64(k)*p.f.LegendRow
		p.dc.DrawRectangle(p.f.LegendX, y, sw, sw)
		p.dc.SetHexColor(it.Color)
		if err := p.dc.Fill(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "legend %s", it.Label)
		}
		if hatched(it.Hatch) {
			p.dc.Push()
			p.dc.DrawRectangle(p.f.LegendX, y, sw, sw)
			p.dc.Clip()
			err := p.hatch(it.Hatch, p.f.LegendX, y, sw, sw)
			p.dc.Pop()
			if err != nil {
				return err
			}
		}
		p.dc.SetHexColor(styles.ColorText)
		p.face(styles.LegendSize)
		p.dc.DrawStringAnchored(it.Label, p.f.legendTextX(), y+sw/2, 0, 0.5)
	}
	return nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
