package barchart

import (
	"encoding/json"

	"github.com/matzehuels/footprint/pkg/buildinfo"
)

// RenderJSON renders the figure's panels and bar values as indented JSON.
func RenderJSON(fig Figure) ([]byte, error) {
	return json.MarshalIndent(struct {
		Generator string `json:"generator"`
		Figure
	}{buildinfo.Generator(), fig}, "", "  ")
}
