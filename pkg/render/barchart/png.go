package barchart

import (
	"bytes"
	"image/png"
	"math"

	"github.com/gogpu/gg"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/fonts"
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

// RenderPNG rasterizes each panel with go-chart and composites the panels
// onto one gg canvas.
func RenderPNG(fig Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	g := NewGrid(fig, r.scale)

	src, err := fonts.Bold()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}

	dc := gg.NewContext(int(math.Ceil(g.Width)), int(math.Ceil(g.Height)))
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	for i, p := range fig.Panels {
		c := g.Cells[i]
		data, err := renderPanel(fig, p, g, c, chart.PNG)
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: decode panel %d", fig.Chart, i)
		}
		dc.DrawImage(gg.ImageBufFromImage(img), c.X, c.Y)
	}

	dc.SetHexColor(styles.ColorText)
	dc.SetFont(src.Face(styles.TitleSize * g.Scale))
	dc.DrawStringAnchored(fig.Title, g.Width/2, g.TitleY, 0.5, 0.5)

	if fig.XLabel != "" {
		dc.SetFont(src.Face(styles.AxisLabelSize * g.Scale))
		for i := range fig.Panels {
			c := g.Cells[i]
			dc.DrawStringAnchored(fig.XLabel, c.X+c.Width/2, g.xLabelY(c), 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
