package engine

import (
	"math"
	"testing"

	"github.com/appengine-ltd/explorer/internal/canvas"
)

func dist(a, b canvas.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestKneePreservesThighLengthWithinReach(t *testing.T) {
	hip := canvas.Point{X: 100, Y: 100}
	cases := []canvas.Point{
		{X: 100, Y: 125},
		{X: 107, Y: 124},
		{X: 93, Y: 122},
		{X: 104, Y: 110},
	}
	for _, foot := range cases {
		if d := dist(hip, foot); d > 2*upperLegLen {
			t.Fatalf("test case out of reach: %g", d)
		}
		knee := kneeFor(hip, foot)
		if got := dist(hip, knee); math.Abs(got-upperLegLen) > 1e-9 {
			t.Fatalf("expected |knee-hip| = %g for foot %v, got %g", upperLegLen, foot, got)
		}
	}
}

func TestKneeClampsToMidpointBeyondReach(t *testing.T) {
	hip := canvas.Point{X: 0, Y: 0}
	foot := canvas.Point{X: 0, Y: 40} // beyond 2*upperLegLen

	knee := kneeFor(hip, foot)
	if math.IsNaN(knee.X) || math.IsNaN(knee.Y) {
		t.Fatalf("expected real-valued knee beyond full extension, got %v", knee)
	}
	if knee != (canvas.Point{X: 0, Y: 20}) {
		t.Fatalf("expected straight-leg midpoint (0,20), got %v", knee)
	}
}

func TestKneePointsForward(t *testing.T) {
	hip := canvas.Point{X: 0, Y: 0}
	for _, footX := range []float64{-7, -3, 0, 3, 7} {
		knee := kneeFor(hip, canvas.Point{X: footX, Y: 24})
		mid := canvas.Point{X: footX / 2, Y: 12}
		if knee.X < mid.X {
			t.Fatalf("expected knee forward of the hip-foot midpoint, got %v for foot x=%g", knee, footX)
		}
	}
}

func TestWalkPoseStaysRealAcrossFullStride(t *testing.T) {
	const anchorX, groundY = 420.0, 192.0
	for phase := 0.0; phase < 4*math.Pi; phase += 0.01 {
		p := walkPose(phase, anchorX, groundY)
		for i := 0; i < 2; i++ {
			if math.IsNaN(p.Knee[i].X) || math.IsNaN(p.Knee[i].Y) {
				t.Fatalf("NaN knee at phase %g", phase)
			}
			if got := dist(p.Hip, p.Knee[i]); math.Abs(got-upperLegLen) > 1e-9 {
				t.Fatalf("thigh length broken at phase %g: %g", phase, got)
			}
			if p.Foot[i].Y > groundY+1e-9 {
				t.Fatalf("foot below ground at phase %g: %g", phase, p.Foot[i].Y)
			}
		}
	}
}

func TestFootPathIsContinuousAtPhaseBoundaries(t *testing.T) {
	const eps = 1e-4
	x1, y1 := footAt(stanceShare - eps)
	x2, y2 := footAt(stanceShare + eps)
	if math.Abs(x1-x2) > 0.01 || math.Abs(y1-y2) > 0.01 {
		t.Fatalf("discontinuity at stance/swing boundary: (%g,%g) vs (%g,%g)", x1, y1, x2, y2)
	}

	x3, y3 := footAt(1 - eps)
	x4, y4 := footAt(0)
	if math.Abs(x3-x4) > 0.01 || math.Abs(y3-y4) > 0.01 {
		t.Fatalf("discontinuity at cycle wrap: (%g,%g) vs (%g,%g)", x3, y3, x4, y4)
	}
}

func TestFootVelocityVanishesAtTouchdownAndLiftOff(t *testing.T) {
	// The smoothstep horizontal profile and half-sine lift both have
	// zero slope at the swing boundaries; sample numerically.
	const h = 1e-5
	for _, c := range []float64{stanceShare, 1 - h} {
		xA, _ := footAt(c)
		xB, _ := footAt(c + h)
		swingSpan := 1 - stanceShare
		// Normalize against mid-swing speed, which is decidedly nonzero.
		mx1, _ := footAt(stanceShare + swingSpan*0.5)
		mx2, _ := footAt(stanceShare + swingSpan*0.5 + h)
		boundary := math.Abs(xB-xA) / h
		mid := math.Abs(mx2-mx1) / h
		if boundary > mid*0.05 {
			t.Fatalf("expected near-zero horizontal velocity at swing boundary %g, got %g (mid %g)", c, boundary, mid)
		}
	}
}

func TestStandingPoseIsRelaxedAndGrounded(t *testing.T) {
	p := standingPose(420, 192)
	for i := 0; i < 2; i++ {
		if p.Foot[i].Y != 192 {
			t.Fatalf("expected feet on the ground line, got %g", p.Foot[i].Y)
		}
		if got := dist(p.Hip, p.Knee[i]); math.Abs(got-upperLegLen) > 1e-9 {
			t.Fatalf("expected slight knee bend to preserve thigh length, got %g", got)
		}
		if p.Hand[i].Y <= p.Elbow[i].Y {
			t.Fatalf("expected arms hanging at the sides")
		}
	}
	if p.Head.Y >= p.Shoulder.Y {
		t.Fatalf("expected head above shoulder")
	}
}
