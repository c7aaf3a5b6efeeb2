package canvas

import "image/color"

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpClear OpKind = iota
	OpFillPolygon
	OpStrokePolygon
	OpFillCircle
	OpFillRect
)

// Op is one recorded draw call
type Op struct {
	Kind   OpKind
	Points []Point
	X, Y   float64
	W, H   float64
	R      float64
	Color  color.RGBA
}

// Recorder is a Surface that keeps every draw call of the current frame.
// Clear starts a new frame.
type Recorder struct {
	Ops    []Op
	Frames int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear implements Surface
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Frames++
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

// FillPolygon implements Surface
func (r *Recorder) FillPolygon(pts []Point, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: append([]Point(nil), pts...), Color: c})
}

// StrokePolygon implements Surface
func (r *Recorder) StrokePolygon(pts []Point, width float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolygon, Points: append([]Point(nil), pts...), W: width, Color: c})
}

// FillCircle implements Surface
func (r *Recorder) FillCircle(cx, cy, radius float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, R: radius, Color: c})
}

// FillRect implements Surface
func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

// Count returns how many ops of the given kind and color were recorded this frame
func (r *Recorder) Count(kind OpKind, c color.RGBA) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind && op.Color == c {
			n++
		}
	}
	return n
}

// Filter returns the ops of the given kind and color recorded this frame
func (r *Recorder) Filter(kind OpKind, c color.RGBA) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind && op.Color == c {
			out = append(out, op)
		}
	}
	return out
}
