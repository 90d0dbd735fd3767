package engine

import (
	"math/rand/v2"

	"github.com/appengine-ltd/explorer/internal/canvas"
)

// buildMountainPath constructs one peak as a closed two-quad shape in
// local coordinates: origin at the base center, ground along y=0, peak at
// (0, -h). Control points are perturbed per instance so peaks come out
// irregular rather than symmetric triangles. The path is flattened here,
// at creation, so every later frame is translate-and-fill.
func buildMountainPath(p *canvas.Path, r *rand.Rand, h, leftW, rightW float64) {
	p.Reset()
	p.MoveTo(-leftW, 0)
	p.QuadTo(
		-leftW*0.5+rangeF(r, -0.15, 0.15)*leftW,
		-h*rangeF(r, 0.3, 0.6),
		0, -h,
	)
	p.QuadTo(
		rightW*0.5+rangeF(r, -0.15, 0.15)*rightW,
		-h*rangeF(r, 0.3, 0.6),
		rightW, 0,
	)
	p.Close()
	p.Flatten()
}

// Whale silhouette, unit coordinates: snout at x=0, fluke tips at x=1,
// y up is negative, overall height about 0.22 units before the size
// scale. Twelve cubic segments trace snout, forehead, dorsal ridge, the
// small dorsal fin, the peduncle taper, upper fluke, fluke tip, notch,
// lower fluke, lower tip, belly and lower jaw.
var whaleHull []canvas.Point

// Pectoral fin, two cubic segments.
var whaleFin []canvas.Point

func init() {
	var hull canvas.Path
	hull.MoveTo(0, 0.02)
	hull.CubicTo(0.0, -0.04, 0.05, -0.09, 0.14, -0.10)   // snout -> forehead
	hull.CubicTo(0.25, -0.115, 0.40, -0.115, 0.52, -0.10) // forehead -> dorsal ridge
	hull.CubicTo(0.58, -0.105, 0.60, -0.155, 0.635, -0.145) // ridge -> fin crest
	hull.CubicTo(0.66, -0.137, 0.67, -0.10, 0.70, -0.095)   // fin -> back
	hull.CubicTo(0.78, -0.08, 0.84, -0.055, 0.88, -0.04)    // peduncle taper
	hull.CubicTo(0.92, -0.03, 0.96, -0.06, 1.0, -0.095)     // upper fluke
	hull.CubicTo(0.985, -0.06, 0.975, -0.03, 0.965, -0.005) // fluke tip -> notch
	hull.CubicTo(0.975, 0.025, 0.99, 0.05, 1.0, 0.08)       // notch -> lower fluke
	hull.CubicTo(0.955, 0.055, 0.92, 0.035, 0.88, 0.03)     // lower tip -> peduncle
	hull.CubicTo(0.78, 0.06, 0.62, 0.095, 0.45, 0.10)       // -> belly
	hull.CubicTo(0.30, 0.10, 0.16, 0.085, 0.07, 0.055)      // belly -> jaw
	hull.CubicTo(0.03, 0.04, 0.0, 0.03, 0.0, 0.02)          // jaw -> snout
	hull.Close()
	whaleHull = hull.Flatten()[0]

	var fin canvas.Path
	fin.MoveTo(0.22, 0.07)
	fin.CubicTo(0.26, 0.12, 0.30, 0.155, 0.33, 0.17)
	fin.CubicTo(0.30, 0.14, 0.27, 0.10, 0.24, 0.075)
	fin.Close()
	whaleFin = fin.Flatten()[0]
}

// whaleWagWeight ramps the tail-wag influence from zero over the forward
// body to full at the fluke tips, so the wag reads as a flex of the tail
// rather than a rigid rotation.
func whaleWagWeight(unitX float64) float64 {
	const start = 0.45
	if unitX <= start {
		return 0
	}
	t := (unitX - start) / (1 - start)
	return t * t
}
