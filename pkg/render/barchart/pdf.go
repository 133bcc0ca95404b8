package barchart

import (
	"context"

	"github.com/matzehuels/footprint/pkg/render"
)

// RenderPDF renders the figure as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, fig Figure, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(fig, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
