package engine

import (
	"math"
	"testing"

	"github.com/appengine-ltd/explorer/internal/canvas"
)

func newTestEngine(t *testing.T, width, height float64, mobile, reduced bool) (*Engine, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder()
	e, err := New(Config{
		Canvas:        rec,
		Width:         width,
		Height:        height,
		Mobile:        mobile,
		ReducedMotion: reduced,
		Seed:          42,
	})
	if err != nil {
		t.Fatalf("unexpected engine construction error: %v", err)
	}
	return e, rec
}

func TestParallaxProjectionRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	for i := 0; i < 50; i++ {
		e.Update(0.1)
	}
	if e.camera <= 0 {
		t.Fatalf("expected camera to advance, got %g", e.camera)
	}

	for _, par := range []float64{0, 0.05, 0.1, 0.5, 1.0} {
		for _, screenX := range []float64{-200, 0, 600, 1200, 1280} {
			world := e.toWorldX(screenX, par)
			back := e.toScreenX(world, par)
			if math.Abs(back-screenX) > 1e-9 {
				t.Fatalf("expected projection round trip at parallax %g, got %g want %g", par, back, screenX)
			}
		}
	}
}

func TestSpawnConversionKeepsLowParallaxEntitiesNearEdge(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	// Walk far enough that a naive spawn (worldX = screenX) would place
	// low-parallax entities thousands of units off-screen.
	for i := 0; i < 2000; i++ {
		e.Update(0.1)
	}

	e.stars.clear()
	e.addStar(1230)
	s := e.stars.live[len(e.stars.live)-1]
	sx := e.toScreenX(s.WorldX, kindParallax[KindStar])
	if math.Abs(sx-1230) > 1e-9 {
		t.Fatalf("expected star to project to its spawn position, got screenX %g", sx)
	}
}

func TestEdgeFadeRampsOverSpawnBand(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	cases := []struct {
		screenX float64
		want    float64
	}{
		{1260, 0},
		{1200, 0},
		{1170, 0.5},
		{1140, 1},
		{600, 1},
		{-100, 1},
	}
	for _, tc := range cases {
		if got := e.edgeFade(tc.screenX); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("edgeFade(%g) = %g, want %g", tc.screenX, got, tc.want)
		}
	}
}

func TestDepthAlphaAttenuatesByParallax(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	near := e.depthAlpha(1, 1.0, 600)
	far := e.depthAlpha(1, 0.1, 600)
	if math.Abs(near-1.0) > 1e-9 {
		t.Fatalf("expected full opacity at parallax 1, got %g", near)
	}
	if math.Abs(far-0.37) > 1e-9 {
		t.Fatalf("expected washed-out far alpha 0.37, got %g", far)
	}
}

func TestWindStaysBounded(t *testing.T) {
	for tt := 0.0; tt < 10000; tt += 0.37 {
		w := windAt(tt)
		if w < -0.5 || w > 0.5 {
			t.Fatalf("expected wind in [-0.5,0.5], got %g at t=%g", w, tt)
		}
	}
}

func TestWindFrequencyRatioIsNotSimpleRational(t *testing.T) {
	ratio := windFreqB / windFreqA
	for q := 1; q <= 128; q++ {
		scaled := ratio * float64(q)
		if math.Abs(scaled-math.Round(scaled)) < 1e-3 {
			t.Fatalf("expected irrational frequency ratio, but %g*%d is within 1e-3 of an integer", ratio, q)
		}
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	e.Update(5.0) // stalled tab
	if math.Abs(e.camera-walkSpeed*maxDelta) > 1e-9 {
		t.Fatalf("expected camera to advance one clamped step, got %g", e.camera)
	}
}
