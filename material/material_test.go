package material

import (
	"math/rand"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterial(t *testing.T) {
	m := Default()
	assert.False(t, m.Textured())
	assert.Equal(t, "#ffffff", m.Color.Hex())

	red := colorful.Color{R: 1}
	textured := m.WithColor(red).WithTexture("bricks.png")
	assert.True(t, textured.Textured())
	assert.Equal(t, red, textured.Color)
	// Builders copy
	assert.False(t, m.Textured())
}

func TestRandomColor(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		c := RandomColor(r)
		for _, channel := range []float64{c.R, c.G, c.B} {
			assert.InDelta(t, 0.5, channel, 0.5+1e-9, "color %v out of gamut", c)
		}
	}

	// Deterministic for a given source
	a := RandomColor(rand.New(rand.NewSource(1)))
	b := RandomColor(rand.New(rand.NewSource(1)))
	assert.Equal(t, a, b)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", c.Hex())

	_, err = ParseColor("orange")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `parsing color "orange"`)
}
