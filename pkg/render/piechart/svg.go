package piechart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/footprint/pkg/buildinfo"
	"github.com/matzehuels/footprint/pkg/fonts"
	"github.com/matzehuels/footprint/pkg/pie"
	"github.com/matzehuels/footprint/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
	scale     float64
}

// WithEmbeddedFont embeds the bold Go font as a data URI so the SVG looks
// identical everywhere. It adds roughly 200 KB.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithSVGScale multiplies the SVG's pixel dimensions.
func WithSVGScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the figure as a standalone SVG document.
func RenderSVG(fig Figure, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := NewFrame(fig, r.scale)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, "  <!-- %s -->\n", styles.EscapeXML(buildinfo.Generator()))

	r.renderDefs(&buf, fig)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.ColorBackground)
	writeText(&buf, f.Width/2, f.TitleY, f.Font(styles.TitleSize), "title", fig.Title)

	for i, p := range fig.Panels {
		fmt.Fprintf(&buf, `  <g class="pie" id="pie-%s">`+"\n", styles.EscapeXML(slug(p.Subject)))
		if p.Unavailable {
			renderUnavailable(&buf, f, i, fig.UnavailableText)
		} else {
			renderWedges(&buf, f, i, p)
			renderLabels(&buf, f, i, p.Plan)
		}
		writeText(&buf, f.Centers[i].X, f.SubjectY, f.Font(styles.SubjectSize), "subject", p.Subject)
		buf.WriteString("  </g>\n")
	}

	renderLegend(&buf, f, fig.Legend)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderDefs(buf *bytes.Buffer, fig Figure) {
	buf.WriteString("  <defs>\n")
	buf.WriteString("    <style>\n")
	if r.embedFont {
		fmt.Fprintf(buf, "      @font-face { font-family: '%s'; font-weight: bold; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			fonts.FontFamily, fonts.BoldTTFBase64())
	}
	fmt.Fprintf(buf, "      text { font-family: %s; font-weight: bold; fill: %s; }\n", fonts.FallbackFontFamily, styles.ColorText)
	buf.WriteString("    </style>\n")

	seen := make(map[string]bool)
	pattern := func(h, c string) {
		if !hatched(h) {
			return
		}
		id := styles.PatternID(h, c)
		if seen[id] {
			return
		}
		seen[id] = true
		styles.WritePattern(buf, h, c)
	}
	for _, p := range fig.Panels {
		for j := range p.Wedges {
			pattern(p.Hatches[j], p.Colors[j])
		}
	}
	for _, it := range fig.Legend {
		pattern(it.Hatch, it.Color)
	}
	buf.WriteString("  </defs>\n")
}

func hatched(h string) bool { return h != "" && !styles.HatchTile(h).Empty() }

func fill(color, hatch string) string {
	if !hatched(hatch) {
		return styles.EscapeXML(color)
	}
	return fmt.Sprintf("url(#%s)", styles.PatternID(hatch, color))
}

func renderUnavailable(buf *bytes.Buffer, f Frame, i int, text string) {
	c := f.Centers[i]
	fmt.Fprintf(buf, `    <circle class="unavailable" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
		c.X, c.Y, f.Radius, styles.ColorUnavailable, styles.ColorEdge, styles.EdgeWidth*f.Scale)
	writeText(buf, c.X, c.Y, f.Font(styles.UnavailableSize), "unavailable-text", text)
}

func renderWedges(buf *bytes.Buffer, f Frame, i int, p Panel) {
	c := f.Centers[i]
	for j, w := range p.Wedges {
		if w.Span() <= 0 {
			continue
		}
		paint := fill(p.Colors[j], p.Hatches[j])
		if fullTurn(w) {
			fmt.Fprintf(buf, `    <circle class="wedge" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
				c.X, c.Y, f.Radius, paint, styles.ColorEdge, styles.EdgeWidth*f.Scale)
			continue
		}
		start := f.ArcPoint(i, w.Theta1)
		end := f.ArcPoint(i, w.Theta2)
		large := 0
		if w.Span() > 180 {
			large = 1
		}
		// Counter-clockwise in pie space is sweep-flag 0 in y-down SVG space.
		fmt.Fprintf(buf, `    <path class="wedge" data-label="%s" d="M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 0 %.2f,%.2f Z" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
			styles.EscapeXML(w.Label), c.X, c.Y, start.X, start.Y, f.Radius, f.Radius, large, end.X, end.Y,
			paint, styles.ColorEdge, styles.EdgeWidth*f.Scale)
	}
}

func renderLabels(buf *bytes.Buffer, f Frame, i int, plan pie.Plan) {
	for _, l := range plan.Labels {
		if l.Leader != nil {
			a := f.Map(i, l.Leader.Start)
			b := f.Map(i, l.Leader.End)
			fmt.Fprintf(buf, `    <line class="leader" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g" stroke-dasharray="%s"/>`+"\n",
				a.X, a.Y, b.X, b.Y, styles.ColorLeader, styles.LeaderWidth*f.Scale, styles.DashArray(scaled(styles.LeaderDash, f.Scale)))
		}
		at := f.Map(i, l.Anchor)
		writeText(buf, at.X, at.Y, f.Font(styles.LabelSize), "label "+l.Placement.String(), l.Text)
	}
}

func renderLegend(buf *bytes.Buffer, f Frame, items []LegendItem) {
	if len(items) == 0 {
		return
	}
	buf.WriteString(`  <g class="legend">` + "\n")
	sw := f.Swatch()
	for k, it := range items {
		y := f.LegendY + float64(k)*f.LegendRow
		fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
			f.LegendX, y, sw, sw, fill(it.Color, it.Hatch), styles.ColorEdge)
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.1f" dominant-baseline="central">%s</text>`+"\n",
			f.legendTextX(), y+sw/2, f.Font(styles.LegendSize), styles.EscapeXML(it.Label))
	}
	buf.WriteString("  </g>\n")
}

func writeText(buf *bytes.Buffer, x, y, size float64, class, s string) {
	fmt.Fprintf(buf, `    <text class="%s" x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		class, x, y, size, styles.EscapeXML(s))
}

func scaled(d []float64, s float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = v * s
	}
	return out
}

func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, s)
}
