package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/render/barchart"
	"github.com/matzehuels/footprint/pkg/render/piechart"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, fig Figure, opts Options) (map[string][]byte, error) {
	switch {
	case fig.Pie != nil:
		return renderPie(ctx, *fig.Pie, opts)
	case fig.Bar != nil:
		return renderBar(ctx, *fig.Bar, opts)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "empty figure")
}

func renderPie(ctx context.Context, fig piechart.Figure, opts Options) (map[string][]byte, error) {
	var svgOpts []piechart.SVGOption
	if opts.EmbedFont {
		svgOpts = append(svgOpts, piechart.WithEmbeddedFont())
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = piechart.RenderSVG(fig, svgOpts...)
		case FormatPNG:
			data, err = piechart.RenderPNG(fig, piechart.WithScale(opts.Scale))
		case FormatPDF:
			data, err = piechart.RenderPDF(ctx, fig, piechart.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = piechart.RenderJSON(fig)
		default:
			return nil, fmt.Errorf("unsupported pie format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderBar(ctx context.Context, fig barchart.Figure, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = barchart.RenderSVG(fig)
		case FormatPNG:
			data, err = barchart.RenderPNG(fig, barchart.WithScale(opts.Scale))
		case FormatPDF:
			data, err = barchart.RenderPDF(ctx, fig)
		case FormatJSON:
			data, err = barchart.RenderJSON(fig)
		default:
			return nil, fmt.Errorf("unsupported bar format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
