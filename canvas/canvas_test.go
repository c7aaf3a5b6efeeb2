package canvas

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#00f0ff")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.RGBA{0x00, 0xf0, 0xff, 0xff}) {
		t.Errorf("Expected cyan, got %v", c)
	}

	c, err = ParseHexColor("9d4edd80")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.RGBA{0x4f, 0x27, 0x6f, 0x80}) {
		t.Errorf("Expected premultiplied violet, got %v", c)
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestParseHexColorPremultipliesAlpha(t *testing.T) {
	c, err := ParseHexColor("#ff000080")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (color.RGBA{128, 0, 0, 128}) {
		t.Errorf("Expected {128 0 0 128}, got %v", c)
	}

	c = MustHexColor("#ffffff00")
	if c != (color.RGBA{}) {
		t.Errorf("Expected transparent to be all zero, got %v", c)
	}

	// Every channel must stay within alpha
	c = MustHexColor("#fefdfc7f")
	if c.R > c.A || c.G > c.A || c.B > c.A {
		t.Errorf("Expected channels at most alpha, got %v", c)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	if !PointInPolygon(5, 5, square) {
		t.Error("Expected centre to be inside")
	}
	if PointInPolygon(15, 5, square) {
		t.Error("Expected point right of square to be outside")
	}
	if PointInPolygon(5, -1, square) {
		t.Error("Expected point above square to be outside")
	}
}

func TestRegularPolygonRadius(t *testing.T) {
	pts := RegularPolygon(100, 50, 8, 0, func(int) float64 { return 10 })
	if len(pts) != 8 {
		t.Fatalf("Expected 8 vertices, got %d", len(pts))
	}
	for i, p := range pts {
		d := Distance(100, 50, p.X, p.Y)
		if math.Abs(d-10) > 1e-9 {
			t.Errorf("Vertex %d at distance %f, expected 10", i, d)
		}
	}

	minX, minY, maxX, maxY := Bounds(pts)
	if minX < 89.99 || maxX > 110.01 || minY < 39.99 || maxY > 60.01 {
		t.Errorf("Unexpected bounds %f %f %f %f", minX, minY, maxX, maxY)
	}
}

func TestRecorderStartsFrameOnClear(t *testing.T) {
	r := NewRecorder()
	red := color.RGBA{255, 0, 0, 255}

	r.Clear()
	r.FillCircle(1, 2, 3, red)
	r.FillCircle(4, 5, 6, red)
	if r.Count(OpFillCircle, red) != 2 {
		t.Errorf("Expected 2 circles, got %d", r.Count(OpFillCircle, red))
	}

	r.Clear()
	if r.Count(OpFillCircle, red) != 0 {
		t.Errorf("Expected new frame to be empty, got %d circles", r.Count(OpFillCircle, red))
	}
	if r.Frames != 2 {
		t.Errorf("Expected 2 frames, got %d", r.Frames)
	}
}
