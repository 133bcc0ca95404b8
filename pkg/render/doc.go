// Package render holds the pieces shared by footprint's figure renderers.
//
// # Overview
//
// Figures are drawn by two subpackages:
//
//   - [piechart]: side-by-side annotated pies, one per subject, with label
//     placement from pkg/pie
//   - [barchart]: a grid of bar panels, one per subject, drawn with go-chart
//
// Both produce SVG natively and PNG natively (gogpu/gg for pies, go-chart
// plus gg compositing for bars). PDF goes through SVG.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg):
//
//	svg := piechart.RenderSVG(fig)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [CanConvert] reports whether the tool is installed, so callers can skip
// PDF output instead of failing.
//
// # Styles
//
// The [styles] subpackage holds the colours, font sizes, hatch tiles and XML
// helpers both renderers use.
//
// [piechart]: github.com/matzehuels/footprint/pkg/render/piechart
// [barchart]: github.com/matzehuels/footprint/pkg/render/barchart
// [styles]: github.com/matzehuels/footprint/pkg/render/styles
package render
