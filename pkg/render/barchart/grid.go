package barchart

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/footprint/pkg/errors"
	"github.com/matzehuels/footprint/pkg/fonts"
	"github.com/matzehuels/footprint/pkg/render/styles"
)

// Grid proportions, in unscaled pixels.
const (
	maxCols     = 2
	titleHeight = 60.0
	xLabelBand  = 30.0
	barFill     = 0.6 // share of a panel's width covered by bars
)

// Cell is a panel's box in the output image.
type Cell struct {
	X, Y          float64
	Width, Height float64
}

// Grid places a figure's panels. All lengths are already multiplied by
// Scale.
type Grid struct {
	Scale         float64
	Width, Height float64
	Cols, Rows    int
	TitleY        float64
	Cells         []Cell
}

// NewGrid lays panels out row by row, at most two per row.
func NewGrid(fig Figure, scale float64) Grid {
	if scale <= 0 {
		scale = 1
	}
	n := max(1, len(fig.Panels))
	cols := min(n, maxCols)
	rows := (n + cols - 1) / cols

	g := Grid{
		Scale:  scale,
		Width:  float64(fig.Width) * scale,
		Height: float64(fig.Height) * scale,
		Cols:   cols,
		Rows:   rows,
		TitleY: titleHeight * scale / 2,
	}
	cellW := g.Width / float64(cols)
	cellH := (g.Height - titleHeight*scale) / float64(rows)
	for i := range fig.Panels {
		r, c := i/cols, i%cols
		g.Cells = append(g.Cells, Cell{
			X:      float64(c) * cellW,
			Y:      titleHeight*scale + float64(r)*cellH,
			Width:  cellW,
			Height: cellH,
		})
	}
	return g
}

// plotHeight is the part of a cell given to go-chart; the rest holds the
// x-axis label.
func (g Grid) plotHeight(c Cell) float64 {
	return c.Height - xLabelBand*g.Scale
}

// xLabelY is the baseline centre of a cell's x-axis label.
func (g Grid) xLabelY(c Cell) float64 {
	return c.Y + c.Height - xLabelBand*g.Scale/2
}

var (
	chartFont     *truetype.Font
	chartFontErr  error
	chartFontOnce sync.Once
)

func barFont() (*truetype.Font, error) {
	chartFontOnce.Do(func() {
		chartFont, chartFontErr = truetype.Parse(fonts.BoldTTF())
	})
	return chartFont, chartFontErr
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(styles.HexDigits(hex))
}

// panelChart builds the go-chart bar chart for panel p drawn into cell c.
func panelChart(fig Figure, p Panel, g Grid, c Cell) (chart.BarChart, error) {
	font, err := barFont()
	if err != nil {
		return chart.BarChart{}, errors.Wrap(errors.ErrCodeInternal, err, "parse chart font")
	}

	w := int(math.Round(c.Width))
	h := int(math.Round(g.plotHeight(c)))
	decimals := axisDecimals(p.YMax)

	bc := chart.BarChart{
		Title: p.Subject,
		TitleStyle: chart.Style{
			FontSize:  styles.SubjectSize,
			FontColor: color(styles.ColorText),
		},
		Width:    w,
		Height:   h,
		DPI:      chart.DefaultDPI * g.Scale,
		Font:     font,
		BarWidth: max(1, int(float64(w)*barFill/float64(len(p.Bars)))),
		Background: chart.Style{
			FillColor: color(styles.ColorBackground),
			Padding: chart.Box{
				Top:    int(40 * g.Scale),
				Left:   int(20 * g.Scale),
				Right:  int(20 * g.Scale),
				Bottom: int(10 * g.Scale),
			},
		},
		XAxis: chart.Style{
			FontSize:  styles.LabelSize * 0.8,
			FontColor: color(styles.ColorText),
		},
		YAxis: chart.YAxis{
			Name: fig.YLabel,
			NameStyle: chart.Style{
				FontSize:  styles.AxisLabelSize * 0.8,
				FontColor: color(styles.ColorText),
			},
			Style: chart.Style{
				FontSize:  styles.LabelSize * 0.8,
				FontColor: color(styles.ColorText),
			},
			Range: &chart.ContinuousRange{Min: 0, Max: p.YMax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.*f", decimals, f)
				}
				return ""
			},
			GridMajorStyle: chart.Style{
				StrokeColor: color(styles.ColorGrid),
				StrokeWidth: 1,
			},
		},
	}
	for _, b := range p.Bars {
		bc.Bars = append(bc.Bars, chart.Value{
			Label: b.Label(),
			Value: b.Value,
			Style: chart.Style{
				FillColor:   color(b.Color),
				StrokeColor: color(styles.ColorEdge),
				StrokeWidth: styles.EdgeWidth,
			},
		})
	}
	return bc, nil
}

// axisDecimals picks enough decimals to tell y-axis ticks apart.
func axisDecimals(top float64) int {
	switch {
	case top >= 10:
		return 0
	case top >= 1:
		return 1
	case top >= 0.1:
		return 2
	default:
		return 3
	}
}
