// Package canvas abstracts the 2D drawing surface the scene engine renders
// to. The engine only ever talks to the Canvas interface; the raylib-backed
// implementation lives with the window code, and tests use Recorder.
package canvas

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Fade scales a color's alpha by the given factor, clamped to [0,1].
func Fade(c Color, alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Circle is one entry of a batched circle fill.
type Circle struct {
	X, Y, R float64
}

// Canvas is the drawing surface contract. Implementations must treat every
// call as purely visual output; no call may mutate caller-owned data.
type Canvas interface {
	// Clear fills the whole surface with a single color.
	Clear(c Color)

	// FillCircle fills one circle.
	FillCircle(x, y, r float64, c Color)

	// FillCircleBatch fills every circle in the batch with one color.
	// Batching exists so callers can bound their draw-call count; an
	// implementation may still rasterize per circle internally.
	FillCircleBatch(batch []Circle, c Color)

	// FillEllipse fills an axis-aligned ellipse.
	FillEllipse(x, y, rx, ry float64, c Color)

	// Line strokes a single segment.
	Line(x1, y1, x2, y2, width float64, c Color)

	// FillPath fills a prepared path translated by (dx, dy). The path's
	// flattened geometry is cached inside the Path, so repeated fills of
	// the same path do not re-run curve subdivision.
	FillPath(p *Path, dx, dy float64, c Color)

	// FillPoly fills one closed polygon given directly as points.
	FillPoly(pts []Point, c Color)

	// StrokePoly strokes an open polyline.
	StrokePoly(pts []Point, width float64, c Color)

	// StrokeSegments strokes several polylines as one composite figure.
	StrokeSegments(segs [][]Point, width float64, c Color)
}
