package barchart

import (
	"bytes"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/footprint/pkg/buildinfo"
	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/fonts"
	"github.com/matzehuels/footprint/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale float64
}

// WithSVGScale multiplies the SVG's pixel dimensions.
func WithSVGScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// RenderSVG renders the figure as one SVG document, each panel a nested
// <svg> produced by go-chart.
func RenderSVG(fig Figure, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	g := NewGrid(fig, r.scale)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.Width, g.Height, g.Width, g.Height)
	fmt.Fprintf(&buf, "  <!-- %s -->\n", styles.EscapeXML(buildinfo.Generator()))
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.ColorBackground)
	writeText(&buf, g.Width/2, g.TitleY, styles.TitleSize*g.Scale, "title", fig.Title)

	for i, p := range fig.Panels {
		c := g.Cells[i]
		panel, err := renderPanel(fig, p, g, c, chart.SVG)
		if err != nil {
			return nil, err
		}
		nested, err := nest(panel, c.X, c.Y)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: panel %d", fig.Chart, i)
		}
		fmt.Fprintf(&buf, `  <g class="panel" data-subject="%s">`+"\n", styles.EscapeXML(p.Subject))
		buf.WriteString(nested)
		if fig.XLabel != "" {
			writeText(&buf, c.X+c.Width/2, g.xLabelY(c), styles.AxisLabelSize*g.Scale, "x-label", fig.XLabel)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderPanel(fig Figure, p Panel, g Grid, c Cell, format chart.RendererProvider) ([]byte, error) {
	bc, err := panelChart(fig, p, g, c)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := bc.Render(format, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: render panel %q", fig.Chart, p.Subject)
	}
	return out.Bytes(), nil
}

// nest strips any prolog from a standalone SVG document and positions its
// root element at (x, y).
func nest(doc []byte, x, y float64) (string, error) {
	s := string(doc)
	i := strings.Index(s, "<svg")
	if i < 0 {
		return "", fmt.Errorf("no <svg> element in panel output")
	}
	return fmt.Sprintf(`<svg x="%.2f" y="%.2f"`, x, y) + s[i+len("<svg"):] + "\n", nil
}

func writeText(buf *bytes.Buffer, x, y, size float64, class, s string) {
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" font-family="%s" font-weight="bold" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		class, x, y, styles.EscapeXML(fonts.FallbackFontFamily), size, styles.ColorText, styles.EscapeXML(s))
}
