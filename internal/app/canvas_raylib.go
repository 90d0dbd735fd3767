//go:build cgo
// +build cgo

package app

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/explorer/internal/canvas"
)

// raylibCanvas renders the engine's canvas calls through raylib. Concave
// cached paths (mountain peaks, the whale hull) are filled with an
// even-odd scanline pass, since raylib only fills convex primitives.
type raylibCanvas struct {
	xs []float64 // scanline intersection scratch
}

func rlColor(c canvas.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (rc *raylibCanvas) Clear(c canvas.Color) {
	rl.ClearBackground(rlColor(c))
}

func (rc *raylibCanvas) FillCircle(x, y, r float64, c canvas.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), rlColor(c))
}

func (rc *raylibCanvas) FillCircleBatch(batch []canvas.Circle, c canvas.Color) {
	col := rlColor(c)
	for _, ci := range batch {
		rl.DrawCircleV(rl.NewVector2(float32(ci.X), float32(ci.Y)), float32(ci.R), col)
	}
}

func (rc *raylibCanvas) FillEllipse(x, y, rx, ry float64, c canvas.Color) {
	rl.DrawEllipse(int32(x), int32(y), float32(rx), float32(ry), rlColor(c))
}

func (rc *raylibCanvas) Line(x1, y1, x2, y2, width float64, c canvas.Color) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		float32(width), rlColor(c),
	)
}

func (rc *raylibCanvas) FillPath(p *canvas.Path, dx, dy float64, c canvas.Color) {
	rc.fillRings(p.Flatten(), dx, dy, c)
}

func (rc *raylibCanvas) FillPoly(pts []canvas.Point, c canvas.Color) {
	rc.fillRings([][]canvas.Point{pts}, 0, 0, c)
}

func (rc *raylibCanvas) StrokePoly(pts []canvas.Point, width float64, c canvas.Color) {
	col := rlColor(c)
	w := float32(width)
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(
			rl.NewVector2(float32(pts[i-1].X), float32(pts[i-1].Y)),
			rl.NewVector2(float32(pts[i].X), float32(pts[i].Y)),
			w, col,
		)
	}
	// Round joints so thick polylines don't show gaps at bends.
	if width > 1.5 {
		for i := 1; i < len(pts)-1; i++ {
			rl.DrawCircleV(rl.NewVector2(float32(pts[i].X), float32(pts[i].Y)), w/2, col)
		}
	}
}

func (rc *raylibCanvas) StrokeSegments(segs [][]canvas.Point, width float64, c canvas.Color) {
	for _, seg := range segs {
		rc.StrokePoly(seg, width, c)
	}
}

// fillRings rasterizes closed rings with even-odd scanlines.
func (rc *raylibCanvas) fillRings(rings [][]canvas.Point, dx, dy float64, c canvas.Color) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		for _, pt := range ring {
			y := pt.Y + dy
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if minY > maxY {
		return
	}
	col := rlColor(c)

	for y := math.Floor(minY) + 0.5; y <= maxY; y++ {
		rc.xs = rc.xs[:0]
		for _, ring := range rings {
			n := len(ring)
			for i := 0; i < n; i++ {
				a, b := ring[i], ring[(i+1)%n]
				ay, by := a.Y+dy, b.Y+dy
				if (ay <= y) == (by <= y) {
					continue
				}
				t := (y - ay) / (by - ay)
				rc.xs = append(rc.xs, a.X+dx+t*(b.X-a.X))
			}
		}
		sort.Float64s(rc.xs)
		for i := 0; i+1 < len(rc.xs); i += 2 {
			rl.DrawLineV(
				rl.NewVector2(float32(rc.xs[i]), float32(y)),
				rl.NewVector2(float32(rc.xs[i+1]), float32(y)),
				col,
			)
		}
	}
}
