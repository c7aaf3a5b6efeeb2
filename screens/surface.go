package screens

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-reel/canvas"
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Surface draws canvas commands onto an ebiten image with the vector package.
// The target is swapped every frame with SetTarget.
type Surface struct {
	target    *ebiten.Image
	antialias bool
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewSurface creates a surface with no target; draws are dropped until one is set
func NewSurface(antialias bool) *Surface {
	return &Surface{antialias: antialias}
}

// SetTarget selects the image the next frame is drawn onto
func (s *Surface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Clear implements canvas.Surface
func (s *Surface) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

// FillPolygon implements canvas.Surface
func (s *Surface) FillPolygon(pts []canvas.Point, c color.RGBA) {
	if s.target == nil || len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := straight(c)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: s.antialias,
	}
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// StrokePolygon implements canvas.Surface
func (s *Surface) StrokePolygon(pts []canvas.Point, width float64, c color.RGBA) {
	if s.target == nil || len(pts) < 2 || width <= 0 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(s.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, s.antialias)
	}
}

// FillCircle implements canvas.Surface
func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	if s.target == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c, s.antialias)
}

// FillRect implements canvas.Surface
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if s.target == nil || w <= 0 || h <= 0 {
		return
	}
	// Pixel blocks stay crisp
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// straight converts a premultiplied color to straight-alpha vertex components
func straight(c color.RGBA) (r, g, b, a float32) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	a = float32(c.A) / 0xff
	return unit(float32(c.R) / 0xff / a), unit(float32(c.G) / 0xff / a), unit(float32(c.B) / 0xff / a), a
}

func unit(v float32) float32 {
	return min(v, 1)
}
