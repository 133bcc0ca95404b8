// Package piechart renders annotated pie figures: one pie per subject,
// side by side, under a shared title and next to a shared legend.
//
// # Overview
//
// [Build] turns a [chart.Spec] into a [Figure]. Each subject becomes a
// [Panel] holding its wedges, their colours and hatches, and the label
// [pie.Plan] computed by the layout engine. Subjects with missing figures
// become unavailable panels, drawn as a flat grey disc carrying the chart's
// unavailable text; the engine is not consulted for them. Panels are built
// concurrently.
//
// A Figure is then handed to a sink:
//
//   - [RenderSVG]: vector output, hatches as SVG patterns
//   - [RenderPNG]: raster output drawn natively with gogpu/gg
//   - [RenderPDF]: SVG converted with rsvg-convert
//   - [RenderJSON]: the label plans, for inspection and tooling
//
// Basic usage:
//
//	fig, err := piechart.Build(ctx, spec)
//	svg := piechart.RenderSVG(fig)
//	png, err := piechart.RenderPNG(fig, piechart.WithScale(2))
//
// # Coordinates
//
// Plans are in pie units (radius 1, y up, origin at the pie centre). The
// sinks map them into pixels per panel; see [Frame].
//
// [chart.Spec]: github.com/matzehuels/footprint/pkg/chart.Spec
// [pie.Plan]: github.com/matzehuels/footprint/pkg/pie.Plan
package piechart
