package dial

import (
	"fmt"
	"image"
	"image/color"
)

// StarSighting maps one star at one night hour to the hole it should be
// sighted through. Hole 1 points north; holes advance clockwise, 30° per
// sector. Hole 0 means the zenith (dial center).
type StarSighting struct {
	Star string
	Hole int
	Ring int // hour ring 1..5 (I, III, VI, IX, XII); 0 pins the center
}

// summerStars is the summer-sky sighting table.
var summerStars = []StarSighting{
	{"Vega", 10, 1},
	{"Vega", 0, 2},
	{"Vega", 1, 3},
	{"Vega", 7, 4},

	{"Deneb", 11, 1},
	{"Deneb", 10, 2},
	{"Deneb", 1, 3},

	{"Altair", 9, 1},
	{"Altair", 11, 2},
	{"Altair", 0, 3},

	{"Arcturus", 8, 1},
	{"Arcturus", 7, 2},
	{"Arcturus", 5, 3},

	{"Polaris", 1, 0},
}

// ringLabels are the night hours marked by the five rings.
var ringLabels = [5]string{"I", "III", "VI", "IX", "XII"}

var starColors = map[string]color.NRGBA{
	"Vega":     {0, 90, 180, 255},
	"Deneb":    {170, 60, 0, 255},
	"Altair":   {0, 130, 60, 255},
	"Arcturus": {150, 30, 140, 255},
	"Polaris":  {0, 0, 0, 255},
}

// NightDialParams configures the night dial.
type NightDialParams struct {
	Size int
}

// NightDial renders 12 sectors (one per hole) crossed by 5 hour rings,
// with the summer-star sighting marks.
func NightDial(p NightDialParams) *image.NRGBA {
	if p.Size <= 0 {
		p.Size = 900
	}
	c := NewCanvas(p.Size)

	black := color.NRGBA{0, 0, 0, 255}
	grid := color.NRGBA{150, 150, 150, 255}

	cx := float64(p.Size) / 2
	cy := float64(p.Size) / 2
	maxR := 0.40 * float64(p.Size)

	// Sector boundaries and hole numbers, hole 1 at north.
	for k := 0; k < 12; k++ {
		az := float64(k) * 30
		x, y := Polar(cx, cy, maxR, az)
		c.Line(cx, cy, x, y, 1, grid)
		lx, ly := Polar(cx, cy, maxR+18, az)
		c.TextCentered(lx, ly+4, fmt.Sprintf("%d", k+1), black)
	}

	// Hour rings.
	for i := 1; i <= 5; i++ {
		r := maxR * float64(i) / 5
		c.Arc(cx, cy, r, 0, 360, 1, black)
		c.Text(cx+4, cy-r-4, ringLabels[i-1], black)
	}

	// Star sightings.
	for _, s := range summerStars {
		col := starColors[s.Star]
		r := maxR * float64(s.Ring) / 5
		az := float64(s.Hole-1) * 30
		if s.Hole == 0 || s.Ring == 0 {
			r, az = 0, 0
		}
		x, y := Polar(cx, cy, r, az)
		c.Dot(x, y, 5, col)
		c.Text(x+8, y-4, s.Star, col)
	}

	c.TextCentered(cx, 30, "ROMAN NIGHT DIAL (SUMMER STARS)", black)
	c.TextCentered(cx, 48, "Sight each star through its hole; the ring gives the night hour.", black)

	return c.Img
}
