package dial

import (
	"testing"
)

func TestDayDialRenders(t *testing.T) {
	p := DefaultDayDialParams()
	p.Size = 400
	img := DayDial(p)

	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("bounds %v", b)
	}

	ink := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i-3] != 255 || img.Pix[i-2] != 255 || img.Pix[i-1] != 255 {
			ink++
		}
	}
	if ink < 100 {
		t.Errorf("day dial nearly blank: %d non-white pixels", ink)
	}
}

func TestNightDialRenders(t *testing.T) {
	img := NightDial(NightDialParams{Size: 400})

	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("bounds %v", b)
	}

	ink := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i-3] != 255 || img.Pix[i-2] != 255 || img.Pix[i-1] != 255 {
			ink++
		}
	}
	if ink < 100 {
		t.Errorf("night dial nearly blank: %d non-white pixels", ink)
	}
}

func TestDayRadiusGrowsNorthward(t *testing.T) {
	prev := 0.0
	for lat := 25.0; lat <= 55; lat += 5 {
		r := dayRadius(55, lat)
		if r <= prev {
			t.Fatalf("radius not increasing at %g°N: %g <= %g", lat, r, prev)
		}
		prev = r
	}
}
