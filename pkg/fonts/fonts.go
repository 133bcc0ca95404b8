// Package fonts provides the embedded fonts used by footprint's renderers.
//
// The Go font family (golang.org/x/image/font/gofont) is compiled into the
// binary, so raster output looks the same on every machine and SVG output
// can embed the face instead of relying on what the viewer has installed.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name used for the embedded face.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for viewers that ignore @font-face.
const FallbackFontFamily = `'Go', 'DejaVu Sans', 'Helvetica Neue', Arial, sans-serif`

// RegularTTF returns the regular-weight TTF data.
func RegularTTF() []byte { return goregular.TTF }

// BoldTTF returns the bold-weight TTF data.
func BoldTTF() []byte { return gobold.TTF }

// Cache for base64-encoded fonts (computed once on first access).
var (
	boldBase64     string
	boldBase64Once sync.Once
)

// BoldTTFBase64 returns the bold TTF data as a base64 string, for
// @font-face data URIs. The result is cached after first computation.
func BoldTTFBase64() string {
	boldBase64Once.Do(func() {
		boldBase64 = base64.StdEncoding.EncodeToString(gobold.TTF)
	})
	return boldBase64
}

type source struct {
	once sync.Once
	src  *text.FontSource
	err  error
}

func (s *source) load(data []byte) (*text.FontSource, error) {
	s.once.Do(func() { s.src, s.err = text.NewFontSource(data) })
	return s.src, s.err
}

var regular, bold source

// Regular returns the parsed regular font, ready for gg faces.
func Regular() (*text.FontSource, error) { return regular.load(goregular.TTF) }

// Bold returns the parsed bold font, ready for gg faces. Labels and titles
// in footprint figures are bold.
func Bold() (*text.FontSource, error) { return bold.load(gobold.TTF) }
