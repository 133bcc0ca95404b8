package styles

import (
	"bytes"
	"fmt"
	"strings"
)

// HatchTileSize is the edge length of one hatch tile in pixels.
const HatchTileSize = 10.0

// Segment is a line inside a hatch tile.
type Segment struct{ X1, Y1, X2, Y2 float64 }

// Dot is a circle inside a hatch tile.
type Dot struct{ X, Y, R float64 }

// Tile is the repeating unit of a hatch pattern. Coordinates are relative
// to the tile's top-left corner; segments may overhang by a pixel so
// diagonals join seamlessly.
type Tile struct {
	Size  float64
	Lines []Segment
	Dots  []Dot
}

var hatchNames = map[string]string{
	"x":  "cross",
	"-":  "horizontal",
	"/":  "diagonal",
	"\\": "backdiagonal",
	"|":  "vertical",
	"+":  "plus",
	"o":  "circle",
}

// HatchTile returns the tile for a hatch code. The empty code, or an
// unknown one, yields an empty tile.
func HatchTile(h string) Tile {
	s := HatchTileSize
	t := Tile{Size: s}
	diag := []Segment{{0, s, s, 0}, {-1, 1, 1, -1}, {s - 1, s + 1, s + 1, s - 1}}
	back := []Segment{{0, 0, s, s}, {-1, s - 1, 1, s + 1}, {s - 1, -1, s + 1, 1}}
	horiz := Segment{0, s / 2, s, s / 2}
	vert := Segment{s / 2, 0, s / 2, s}

	switch h {
	case "/":
		t.Lines = diag
	case "\\":
		t.Lines = back
	case "x":
		t.Lines = append(append([]Segment{}, diag...), back...)
	case "-":
		t.Lines = []Segment{horiz}
	case "|":
		t.Lines = []Segment{vert}
	case "+":
		t.Lines = []Segment{horiz, vert}
	case "o":
		t.Dots = []Dot{{s / 2, s / 2, s / 4}}
	}
	return t
}

// Empty reports whether the tile draws nothing.
func (t Tile) Empty() bool { return len(t.Lines) == 0 && len(t.Dots) == 0 }

// PatternID returns the SVG id of the pattern filling colour fill with
// hatch h.
func PatternID(h, fill string) string {
	name, ok := hatchNames[h]
	if !ok {
		name = "none"
	}
	return fmt.Sprintf("hatch-%s-%s", name, strings.ToLower(HexDigits(fill)))
}

// WritePattern writes an SVG <pattern> that paints fill overlaid with the
// hatch's white strokes.
func WritePattern(buf *bytes.Buffer, h, fill string) {
	t := HatchTile(h)
	fmt.Fprintf(buf, `    <pattern id="%s" patternUnits="userSpaceOnUse" width="%g" height="%g">`+"\n",
		PatternID(h, fill), t.Size, t.Size)
	fmt.Fprintf(buf, `      <rect width="%g" height="%g" fill="%s"/>`+"\n", t.Size, t.Size, EscapeXML(fill))
	for _, l := range t.Lines {
		fmt.Fprintf(buf, `      <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
			l.X1, l.Y1, l.X2, l.Y2, ColorHatch, HatchWidth)
	}
	for _, d := range t.Dots {
		fmt.Fprintf(buf, `      <circle cx="%g" cy="%g" r="%g" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
			d.X, d.Y, d.R, ColorHatch, HatchWidth)
	}
	buf.WriteString("    </pattern>\n")
}
