// Package pkg provides the libraries behind footprint, a renderer for
// carbon footprint comparison charts.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Domain: [dataset] (the measured figures), [pie] (the label layout
//     engine) and [chart] (chart records and the built-in catalog)
//  2. Rendering: [render/piechart], [render/barchart] and their shared
//     [render/styles], plus [fonts]
//  3. Orchestration: [pipeline] (load, layout, render) with [cache]
//  4. Support: [errors], [buildinfo] and [observability]
//
// # Architecture
//
// The typical data flow through footprint:
//
//	Built-in catalog + chart definition file
//	         ↓
//	    [chart] package (one Spec per chart)
//	         ↓
//	    [pie] package (label plans per subject)
//	         ↓
//	    [render/piechart] or [render/barchart] (figures)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Place the labels of one pie:
//
//	wedges := pie.Spans(labels, values, pie.DefaultStartAngle)
//	plan, err := pie.Build(wedges, pie.DefaultConfig())
//	for _, l := range plan.Labels {
//	    fmt.Println(l.Wedge, l.Text, l.Placement, l.Anchor)
//	}
//
// Render a catalog chart with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	spec, _ := chart.Builtin().Get("diet")
//	result, err := runner.Execute(ctx, spec, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pie/...      # The layout engine
//	go test -run Example ./... # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/dataset
// [pie]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/pie
// [chart]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/chart
// [render/piechart]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/render/piechart
// [render/barchart]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/render/barchart
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/render/styles
// [fonts]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/buildinfo
// [observability]: https://pkg.go.dev/github.com/matzehuels/footprint/pkg/observability
package pkg
