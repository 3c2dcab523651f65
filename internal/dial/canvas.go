// Package dial renders the 2D polar calibration diagrams that accompany a
// printed dodecahedron: the equinox day dial (latitude from the noon light
// spot) and the night dial (hour from star sightings). The diagrams take
// nothing from the mesh generator beyond documented constants.
package dial

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"roman-dodecahedron/internal/mathutil"
)

// Canvas is a white raster with anti-aliased stroke and text helpers.
// Polar helpers use compass azimuth: 0° is north (up), clockwise positive.
type Canvas struct {
	Img *image.NRGBA
}

func NewCanvas(size int) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{255, 255, 255, 255}), image.Point{}, draw.Src)
	return &Canvas{Img: img}
}

// Polar converts a compass azimuth in degrees and radius in pixels to
// canvas coordinates around (cx, cy).
func Polar(cx, cy, r, azimuthDeg float64) (float64, float64) {
	a := mathutil.Deg2Rad(azimuthDeg)
	return cx + r*math.Sin(a), cy - r*math.Cos(a)
}

// fillPath fills a closed polygon.
func (c *Canvas) fillPath(pts [][2]float64, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	b := c.Img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
	z.Draw(c.Img, b, image.NewUniform(col), image.Point{})
}

// Line strokes one segment as a filled quad.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	// Unit perpendicular, scaled to half width.
	px, py := -dy/l*width/2, dx/l*width/2
	c.fillPath([][2]float64{
		{x0 + px, y0 + py},
		{x1 + px, y1 + py},
		{x1 - px, y1 - py},
		{x0 - px, y0 - py},
	}, col)
}

// Arc strokes a circular arc from azimuth a0 to a1 degrees (clockwise,
// compass convention) around (cx, cy).
func (c *Canvas) Arc(cx, cy, r, a0, a1, width float64, col color.NRGBA) {
	steps := int(math.Abs(a1-a0)/2) + 1
	px, py := Polar(cx, cy, r, a0)
	for i := 1; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		x, y := Polar(cx, cy, r, a)
		c.Line(px, py, x, y, width, col)
		px, py = x, y
	}
}

// Dot fills a circle of the given radius.
func (c *Canvas) Dot(cx, cy, r float64, col color.NRGBA) {
	const steps = 24
	pts := make([][2]float64, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / steps
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	c.fillPath(pts, col)
}

// Text draws s with its baseline starting at (x, y).
func (c *Canvas) Text(x, y float64, s string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(s)
}

// TextCentered draws s horizontally centered on x.
func (c *Canvas) TextCentered(x, y float64, s string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(s)
	d.Dot = fixed.P(int(x)-w.Round()/2, int(y))
	d.DrawString(s)
}
