// Package canvas defines the 2D drawing contract the simulation renders onto.
// Hosts supply the implementation (ebiten image, terminal cells, recorder).
package canvas

import "image/color"

// Point is a position on the surface in pixels
type Point struct {
	X, Y float64
}

// Surface is a resizable 2D drawing target.
// Implementations clip anything outside their bounds.
type Surface interface {
	// Clear erases the whole surface
	Clear()
	// FillPolygon fills the closed polygon described by pts
	FillPolygon(pts []Point, c color.RGBA)
	// StrokePolygon outlines the closed polygon described by pts
	StrokePolygon(pts []Point, width float64, c color.RGBA)
	// FillCircle fills a circle centred on (cx, cy)
	FillCircle(cx, cy, r float64, c color.RGBA)
	// FillRect fills an axis-aligned rectangle with its top-left at (x, y)
	FillRect(x, y, w, h float64, c color.RGBA)
}
