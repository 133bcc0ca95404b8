package piechart

import (
	"encoding/json"

	"github.com/matzehuels/footprint/pkg/buildinfo"
)

// RenderJSON renders the figure's panels and label plans as indented JSON.
// Anchors and leader lines are in pie units (radius 1, y up), not pixels.
func RenderJSON(fig Figure) ([]byte, error) {
	return json.MarshalIndent(struct {
		Generator string `json:"generator"`
		Figure
	}{buildinfo.Generator(), fig}, "", "  ")
}
