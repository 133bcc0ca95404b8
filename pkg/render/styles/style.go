// Package styles holds the visual constants and helpers shared by the pie
// and bar renderers.
package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Colours.
const (
	ColorBackground  = "#ffffff"
	ColorEdge        = "#ffffff"
	ColorText        = "#000000"
	ColorLeader      = "#000000"
	ColorUnavailable = "#d3d3d3"
	ColorHatch       = "#ffffff"
	ColorGrid        = "#b0b0b0"
)

// Font sizes in pixels.
const (
	TitleSize       = 25.0
	SubjectSize     = 20.0
	LabelSize       = 15.0
	LegendSize      = 15.0
	UnavailableSize = 14.0
	AxisLabelSize   = 16.0
)

// Stroke widths in pixels.
const (
	EdgeWidth   = 1.0
	LeaderWidth = 1.2
	HatchWidth  = 1.0
)

// LeaderDash is the dash pattern of leader lines.
var LeaderDash = []float64{6, 4}

// DashArray renders a dash pattern for an SVG stroke-dasharray attribute.
func DashArray(d []float64) string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ",")
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// HexDigits strips the leading '#' of a hex colour.
func HexDigits(c string) string {
	return strings.TrimPrefix(c, "#")
}
