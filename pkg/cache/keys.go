package cache

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey addresses a computed figure (label plans, bar panels).
	LayoutKey(specHash string, opts LayoutKeyOpts) string
	// ArtifactKey addresses one rendered output file.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs besides the chart spec that change a figure.
type LayoutKeyOpts struct {
	Kind   string `json:"kind"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ArtifactKeyOpts are the inputs besides the chart spec that change an artifact.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	Scale        float64 `json:"scale,omitempty"`
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
	EmbeddedFont bool    `json:"embedded_font,omitempty"`
	// Generator is the build that produced the artifact, so an upgrade
	// invalidates old renders.
	Generator string `json:"generator,omitempty"`
}

// DefaultKeyer produces keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(specHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", specHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", specHash, opts)
}
