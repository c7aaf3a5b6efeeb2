package canvas

import "math"

// Distance returns the Euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds returns the axis-aligned bounding box of pts
func Bounds(pts []Point) (minX, minY, maxX, maxY float64) {
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// PointInPolygon reports whether (x, y) lies inside the closed polygon pts (even-odd rule)
func PointInPolygon(x, y float64, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// RegularPolygon returns n vertices around (cx, cy). radius is called per vertex index.
func RegularPolygon(cx, cy float64, n int, phase float64, radius func(i int) float64) []Point {
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := phase + (math.Pi*2/float64(n))*float64(i)
		r := radius(i)
		pts = append(pts, Point{
			X: cx + math.Cos(angle)*r,
			Y: cy + math.Sin(angle)*r,
		})
	}
	return pts
}
