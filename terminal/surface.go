// Package terminal hosts the reel in a tcell screen. Each cell shows two
// vertically stacked samples using half-block glyphs.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"ebiten-reel/canvas"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// Surface rasterizes canvas commands into a grid of cell samples. A cell
// covers cellWidth*cellHeight canvas pixels and holds two samples.
type Surface struct {
	cellWidth  float64
	cellHeight float64
	cols, rows int
	samples    []color.RGBA
	set        []bool
}

// NewSurface creates an empty surface for the given cell size in canvas pixels
func NewSurface(cellWidth, cellHeight float64) *Surface {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 2
	}
	return &Surface{cellWidth: cellWidth, cellHeight: cellHeight}
}

// Resize sets the grid to cols x rows cells and clears it
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	n := s.cols * s.rows * 2
	s.samples = make([]color.RGBA, n)
	s.set = make([]bool, n)
}

// PixelSize returns the canvas size covered by the grid
func (s *Surface) PixelSize() (width, height float64) {
	return float64(s.cols) * s.cellWidth, float64(s.rows) * s.cellHeight
}

func (s *Surface) sampleHeight() float64 {
	return s.cellHeight / 2
}

// sampleAt maps a canvas point to the sample containing it
func (s *Surface) sampleAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellWidth)), int(math.Floor(y / s.sampleHeight()))
}

func (s *Surface) center(sx, sy int) (float64, float64) {
	return (float64(sx) + 0.5) * s.cellWidth, (float64(sy) + 0.5) * s.sampleHeight()
}

// sampleRange clips a canvas box to sample indices
func (s *Surface) sampleRange(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0, y0 = s.sampleAt(minX, minY)
	x1, y1 = s.sampleAt(maxX, maxY)
	return max(x0, 0), max(y0, 0), min(x1, s.cols-1), min(y1, s.rows*2-1)
}

func (s *Surface) plot(sx, sy int, c color.RGBA) {
	if sx < 0 || sy < 0 || sx >= s.cols || sy >= s.rows*2 {
		return
	}
	i := sy*s.cols + sx
	if c.A < 0xff && s.set[i] {
		// Source-over on premultiplied colors
		under := s.samples[i]
		k := uint32(0xff - c.A)
		c = color.RGBA{
			R: over(c.R, under.R, k),
			G: over(c.G, under.G, k),
			B: over(c.B, under.B, k),
			A: over(c.A, under.A, k),
		}
	}
	s.samples[i] = c
	s.set[i] = true
}

// over composites one premultiplied channel, saturating at 0xff
func over(src, dst uint8, k uint32) uint8 {
	return uint8(min(uint32(src)+uint32(dst)*k/0xff, 0xff))
}

// Clear implements canvas.Surface
func (s *Surface) Clear() {
	clear(s.samples)
	clear(s.set)
}

// FillPolygon implements canvas.Surface
func (s *Surface) FillPolygon(pts []canvas.Point, c color.RGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	minX, minY, maxX, maxY := canvas.Bounds(pts)
	x0, y0, x1, y1 := s.sampleRange(minX, minY, maxX, maxY)
	hit := false
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			if cx, cy := s.center(sx, sy); canvas.PointInPolygon(cx, cy, pts) {
				s.plot(sx, sy, c)
				hit = true
			}
		}
	}
	if !hit {
		sx, sy := s.sampleAt((minX+maxX)/2, (minY+maxY)/2)
		s.plot(sx, sy, c)
	}
}

// StrokePolygon implements canvas.Surface
func (s *Surface) StrokePolygon(pts []canvas.Point, width float64, c color.RGBA) {
	if len(pts) < 2 || c.A == 0 {
		return
	}
	step := math.Min(s.cellWidth, s.sampleHeight()) / 2
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		length := canvas.Distance(a.X, a.Y, b.X, b.Y)
		n := int(math.Ceil(length/step)) + 1
		for k := 0; k < n; k++ {
			t := float64(k) / float64(n)
			sx, sy := s.sampleAt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
			s.plot(sx, sy, c)
		}
	}
}

// FillCircle implements canvas.Surface. Circles smaller than a sample still
// light the sample under their centre.
func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	x0, y0, x1, y1 := s.sampleRange(cx-r, cy-r, cx+r, cy+r)
	hit := false
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			if px, py := s.center(sx, sy); canvas.Distance(px, py, cx, cy) <= r {
				s.plot(sx, sy, c)
				hit = true
			}
		}
	}
	if !hit {
		sx, sy := s.sampleAt(cx, cy)
		s.plot(sx, sy, c)
	}
}

// FillRect implements canvas.Surface
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	x0, y0, x1, y1 := s.sampleRange(x, y, x+w, y+h)
	hit := false
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			if px, py := s.center(sx, sy); px >= x && px < x+w && py >= y && py < y+h {
				s.plot(sx, sy, c)
				hit = true
			}
		}
	}
	if !hit {
		sx, sy := s.sampleAt(x+w/2, y+h/2)
		s.plot(sx, sy, c)
	}
}

// Flush writes the samples to screen. Call Show afterwards.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := (row*2)*s.cols + col
			bottom := top + s.cols

			switch {
			case s.set[top] && s.set[bottom]:
				style := tcell.StyleDefault.Foreground(rgb(s.samples[top])).Background(rgb(s.samples[bottom]))
				screen.SetContent(col, row, upperHalf, nil, style)
			case s.set[top]:
				screen.SetContent(col, row, upperHalf, nil, tcell.StyleDefault.Foreground(rgb(s.samples[top])))
			case s.set[bottom]:
				screen.SetContent(col, row, lowerHalf, nil, tcell.StyleDefault.Foreground(rgb(s.samples[bottom])))
			default:
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
			}
		}
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
