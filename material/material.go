// Package material describes how a sprite mesh is drawn: a tint color and an
// optional texture sampled with the mesh's UVs.
package material

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

type Material struct {
	Name  string
	Color colorful.Color
	// Texture reference, resolved by the renderer. Empty means untextured.
	Texture string
}

// Untextured white.
func Default() Material {
	return Material{Name: "default", Color: colorful.Color{R: 1, G: 1, B: 1}}
}

func (m Material) WithColor(c colorful.Color) Material {
	m.Color = c
	return m
}

func (m Material) WithTexture(texture string) Material {
	m.Texture = texture
	return m
}

func (m Material) Textured() bool {
	return m.Texture != ""
}

// A color drawn uniformly over hue, saturation and value.
func RandomColor(r *rand.Rand) colorful.Color {
	return colorful.Hsv(r.Float64()*360, r.Float64(), r.Float64())
}

// Parse a "#rrggbb" color.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "parsing color %q", hex)
	}
	return c, nil
}
