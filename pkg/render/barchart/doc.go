// Package barchart renders grouped bar figures: one bar panel per subject,
// arranged in a grid under a shared title.
//
// [Build] turns a bar [chart.Spec] into a [Figure] of [Panel] values. Each
// panel is drawn with go-chart and the panels are then composed into one
// image: nested <svg> elements for [RenderSVG], and a gogpu/gg canvas for
// [RenderPNG]. Missing figures become zero-height bars labelled "N/A".
//
// [chart.Spec]: github.com/matzehuels/footprint/pkg/chart.Spec
package barchart
