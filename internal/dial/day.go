package dial

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"roman-dodecahedron/internal/mathutil"
)

// DayDialParams configures the equinox day dial.
type DayDialParams struct {
	HoleHeightMM float64 // hole center height above the surface: circumradius + standoff
	Size         int     // output image is Size x Size pixels
	MinLat       float64 // southernmost latitude arc, degrees north
	MaxLat       float64 // northernmost latitude arc, degrees north
	StepLat      float64
}

// DefaultDayDialParams matches the 80mm build with 15mm standoffs.
func DefaultDayDialParams() DayDialParams {
	return DayDialParams{
		HoleHeightMM: 55,
		Size:         900,
		MinLat:       25,
		MaxLat:       55,
		StepLat:      5,
	}
}

// dayRadius is the equinox shadow geometry: solar altitude is 90°-lat, so
// the light spot lands at r = h·tan(lat) from the point below the hole.
func dayRadius(holeHeight, latDeg float64) float64 {
	return holeHeight * math.Tan(mathutil.Deg2Rad(latDeg))
}

// DayDial renders a north-facing semicircular fan: radial alignment lines
// every 15° and one arc per latitude band at its equinox spot distance.
func DayDial(p DayDialParams) *image.NRGBA {
	c := NewCanvas(p.Size)

	black := color.NRGBA{0, 0, 0, 255}
	grid := color.NRGBA{150, 150, 150, 255}

	// Scale so the outermost arc (limit of the scale, 60°N) fits.
	rimMM := dayRadius(p.HoleHeightMM, 60)
	pxPerMM := 0.80 * float64(p.Size) / (2 * rimMM)
	cx := float64(p.Size) / 2
	cy := 0.88 * float64(p.Size)

	// Radial alignment lines across the north-facing fan.
	for az := -75.0; az <= 75; az += 15 {
		x, y := Polar(cx, cy, rimMM*pxPerMM, az)
		c.Line(cx, cy, x, y, 1, grid)
	}

	// Latitude arcs with labels on the north axis.
	for lat := p.MinLat; lat <= p.MaxLat; lat += p.StepLat {
		r := dayRadius(p.HoleHeightMM, lat) * pxPerMM
		c.Arc(cx, cy, r, -90, 90, 1.5, black)
		// basicfont covers ASCII only, so no degree sign here.
		c.TextCentered(cx, cy-r-5, fmt.Sprintf("%.0fN", lat), black)
	}

	// Crosshair: the dodecahedron stands here.
	c.Line(cx-10, cy, cx+10, cy, 1.5, black)
	c.Line(cx, cy-10, cx, cy+10, 1.5, black)

	c.TextCentered(cx, 30, "ROMAN DAY DIAL (EQUINOX)", black)
	c.TextCentered(cx, 48, fmt.Sprintf("Calibrated for hole height %.0fmm", p.HoleHeightMM), black)
	c.TextCentered(cx, 66, "Align north. Place dodecahedron on its knobs at the crosshair.", black)
	c.TextCentered(cx, float64(p.Size)-28, "At solar noon, read latitude where the light spot crosses the scale.", black)
	c.TextCentered(cx, float64(p.Size)-12, "Valid at equinox; apply the solstice correction table otherwise.", black)

	return c.Img
}
