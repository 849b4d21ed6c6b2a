package shape

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// This is for debugging purposes only

// Padding around the mesh in pixels
const drawPadding = 20

// Rasterize the mesh with the origin at the bottom left. Triangles are filled
// with their average UV (u as red, v as green); triangles with non-finite UVs
// are filled magenta.
func (m *Mesh) Draw(scale float64) image.Image {
	b := m.Bounds()
	if b.IsEmpty() {
		return gg.NewContext(2*drawPadding, 2*drawPadding).Image()
	}

	width := int(scale*b.Width()) + drawPadding*2
	height := int(scale*b.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(colornames.Black)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-b.MinX, -b.MinY)

	c.SetLineWidth(1)
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a, bi, ci := m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]
		m.traceTriangle(c, a, bi, ci)
		c.SetColor(m.triangleColor(a, bi, ci))
		c.FillPreserve()
		c.SetColor(colornames.Cyan)
		c.Stroke()
	}
	return c.Image()
}

func (m *Mesh) EncodePNG(w io.Writer, scale float64) error {
	return gg.NewContextForImage(m.Draw(scale)).EncodePNG(w)
}

func (m *Mesh) SavePNG(path string, scale float64) error {
	return gg.SavePNG(path, m.Draw(scale))
}

func (m *Mesh) traceTriangle(c *gg.Context, a, b, d int) {
	c.MoveTo(m.Vertices[a].X, m.Vertices[a].Y)
	c.LineTo(m.Vertices[b].X, m.Vertices[b].Y)
	c.LineTo(m.Vertices[d].X, m.Vertices[d].Y)
	c.ClosePath()
}

func (m *Mesh) triangleColor(a, b, d int) color.Color {
	if len(m.UV) != len(m.Vertices) {
		return colornames.Gray
	}
	u := (m.UV[a].U + m.UV[b].U + m.UV[d].U) / 3
	v := (m.UV[a].V + m.UV[b].V + m.UV[d].V) / 3
	if math.IsNaN(u) || math.IsNaN(v) || math.IsInf(u, 0) || math.IsInf(v, 0) {
		return colornames.Magenta
	}
	return color.RGBA{R: channel(u), G: channel(v), B: 128, A: 255}
}

func channel(f float64) uint8 {
	return uint8(math.Round(255 * math.Max(0, math.Min(1, f))))
}
