package piechart

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/footprint/pkg/buildinfo"
	"github.com/matzehuels/footprint/pkg/fonts"
)

func TestRenderSVGWellFormed(t *testing.T) {
	for _, name := range []string{"diet", "water", "energy", "residential-energy", "transport"} {
		t.Run(name, func(t *testing.T) {
			fig, err := Build(context.Background(), builtin(t, name))
			require.NoError(t, err)

			out := RenderSVG(fig)
			dec := xml.NewDecoder(strings.NewReader(string(out)))
			for {
				_, err := dec.Token()
				if err != nil {
					assert.Equal(t, "EOF", err.Error())
					break
				}
			}
		})
	}
}

func TestRenderSVGContent(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "energy"))
	require.NoError(t, err)
	svg := string(RenderSVG(fig))

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1500.0 500.0"`))
	assert.Contains(t, svg, buildinfo.Generator())
	assert.Contains(t, svg, ">Energy Usage</text>")
	assert.Contains(t, svg, `id="pie-agnel"`)
	assert.Contains(t, svg, `class="unavailable"`)
	assert.Contains(t, svg, ">N/A</text>")
	assert.Contains(t, svg, `class="leader"`)
	assert.Contains(t, svg, `stroke-dasharray="6,4"`)
	assert.Contains(t, svg, `class="legend"`)
	assert.NotContains(t, svg, "@font-face")

	// Two available pies with two wedges each.
	assert.Equal(t, 4, strings.Count(svg, `class="wedge"`))
}

func TestRenderSVGHatchPatterns(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "diet"))
	require.NoError(t, err)
	svg := string(RenderSVG(fig))

	assert.Contains(t, svg, `<pattern id="hatch-cross-ff9999"`)
	assert.Contains(t, svg, `fill="url(#hatch-cross-ff9999)"`)
	// Each pattern is defined once however many wedges use it.
	assert.Equal(t, 1, strings.Count(svg, `<pattern id="hatch-cross-ff9999"`))
}

func TestRenderSVGFullTurnWedge(t *testing.T) {
	fig, err := Build(context.Background(), builtin(t, "transport"))
	require.NoError(t, err)
	svg := string(RenderSVG(fig))

	// Connor and Agnel each have a single wedge covering the whole pie.
	assert.Equal(t, 2, strings.Count(svg, `<circle class="wedge"`))
	assert.Equal(t, 2, strings.Count(svg, `<path class="wedge"`))
}

func TestRenderSVGEscapesText(t *testing.T) {
	fig := Figure{
		Title:  "Beef & <Lamb>",
		Width:  400,
		Height: 200,
		Panels: []Panel{{Subject: "A&B", Unavailable: true}},
	}
	svg := string(RenderSVG(fig))
	assert.Contains(t, svg, "Beef &amp; &lt;Lamb&gt;")
	assert.Contains(t, svg, ">A&amp;B</text>")
}

func TestWithEmbeddedFont(t *testing.T) {
	fig := Figure{Title: "t", Width: 100, Height: 100}
	svg := string(RenderSVG(fig, WithEmbeddedFont()))
	assert.Contains(t, svg, "@font-face")
	assert.Contains(t, svg, fonts.BoldTTFBase64()[:64])
}

func TestWithSVGScale(t *testing.T) {
	fig := Figure{Title: "t", Width: 100, Height: 50}
	svg := string(RenderSVG(fig, WithSVGScale(2)))
	assert.Contains(t, svg, `width="200" height="100"`)
}
