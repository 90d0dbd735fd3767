package canvas

import (
	"fmt"
	"strings"
)

// Recorder is a Canvas that records every draw call as a formatted line.
// It backs the engine tests: two frames are identical exactly when their
// recorded op lists are identical.
type Recorder struct {
	ops []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Ops returns a copy of the recorded draw calls in order.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.ops))
	copy(out, r.ops)
	return out
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func fmtColor(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func fmtPoints(pts []Point) string {
	var b strings.Builder
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.3f,%.3f", pt.X, pt.Y)
	}
	return b.String()
}

func (r *Recorder) Clear(c Color) {
	r.log("clear %s", fmtColor(c))
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.log("circle %.3f,%.3f r=%.3f %s", x, y, radius, fmtColor(c))
}

func (r *Recorder) FillCircleBatch(batch []Circle, c Color) {
	var b strings.Builder
	for i, ci := range batch {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.3f,%.3f,%.3f", ci.X, ci.Y, ci.R)
	}
	r.log("circles [%s] %s", b.String(), fmtColor(c))
}

func (r *Recorder) FillEllipse(x, y, rx, ry float64, c Color) {
	r.log("ellipse %.3f,%.3f %.3fx%.3f %s", x, y, rx, ry, fmtColor(c))
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c Color) {
	r.log("line %.3f,%.3f-%.3f,%.3f w=%.3f %s", x1, y1, x2, y2, width, fmtColor(c))
}

func (r *Recorder) FillPath(p *Path, dx, dy float64, c Color) {
	for _, ring := range p.Flatten() {
		r.log("path+%.3f,%.3f [%s] %s", dx, dy, fmtPoints(ring), fmtColor(c))
	}
}

func (r *Recorder) FillPoly(pts []Point, c Color) {
	r.log("poly [%s] %s", fmtPoints(pts), fmtColor(c))
}

func (r *Recorder) StrokePoly(pts []Point, width float64, c Color) {
	r.log("stroke w=%.3f [%s] %s", width, fmtPoints(pts), fmtColor(c))
}

func (r *Recorder) StrokeSegments(segs [][]Point, width float64, c Color) {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(fmtPoints(seg))
	}
	r.log("segments w=%.3f [%s] %s", width, b.String(), fmtColor(c))
}
