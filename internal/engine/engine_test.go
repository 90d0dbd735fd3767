package engine

import (
	"testing"

	"github.com/appengine-ltd/explorer/internal/canvas"
	"github.com/appengine-ltd/explorer/internal/palette"
)

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{Width: 100, Height: 100}); err == nil {
		t.Fatalf("expected error for nil canvas")
	}
	if _, err := New(Config{Canvas: canvas.NewRecorder(), Width: 0, Height: 100}); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := New(Config{Canvas: canvas.NewRecorder(), Width: 100, Height: -5}); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestDrawIsIdempotentWithoutUpdate(t *testing.T) {
	e, rec := newTestEngine(t, 1200, 220, false, false)

	// Make sure every kind's draw path is exercised. One second of
	// updates leaves the meteor alive with life to spare.
	e.addWhale(700)
	e.addJellyfish(650)
	e.addUFO(500)
	e.addMeteor(900)
	for i := 0; i < 20; i++ {
		e.Update(0.05)
	}

	rec.Reset()
	e.Draw()
	first := rec.Ops()

	rec.Reset()
	e.Draw()
	second := rec.Ops()

	if len(first) == 0 {
		t.Fatalf("expected the scene to produce draw calls")
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical op counts, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected bit-identical frames, op %d differs:\n%s\n%s", i, first[i], second[i])
		}
	}
}

func TestReducedMotionFreezesSimulation(t *testing.T) {
	e, rec := newTestEngine(t, 1200, 220, false, false)

	for i := 0; i < 10; i++ {
		e.Update(0.1)
	}
	e.SetReducedMotion(true)

	if e.camera != 0 || e.clock != 0 || e.walkPhase != 0 {
		t.Fatalf("expected clock, camera and walk phase reset, got %g %g %g", e.clock, e.camera, e.walkPhase)
	}

	e.Update(1.0)
	if e.camera != 0 || e.walkPhase != 0 {
		t.Fatalf("expected update to be a no-op under reduced motion, camera=%g phase=%g", e.camera, e.walkPhase)
	}

	rec.Reset()
	e.Draw()
	if len(rec.Ops()) == 0 {
		t.Fatalf("expected the static pose to still render")
	}
}

func TestReducedMotionReseedsTheScene(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	for i := 0; i < 200; i++ {
		e.Update(0.1)
	}
	e.SetReducedMotion(true)

	if n := e.stars.len(); n != 20 {
		t.Fatalf("expected a re-seeded scene with 20 stars, got %d", n)
	}
	for _, s := range e.stars.live {
		if s.WorldX < 0 || s.WorldX > 1200 {
			t.Fatalf("expected re-seeded star within the viewport, got worldX %g", s.WorldX)
		}
	}

	// Disabling resumes updates without another reseed.
	e.SetReducedMotion(false)
	e.Update(0.1)
	if e.camera == 0 {
		t.Fatalf("expected camera to advance after reduced motion is disabled")
	}
}

func TestResizeRecomputesGroundLine(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)
	if e.groundY != 220-groundInset {
		t.Fatalf("expected ground at %g, got %g", 220-groundInset, e.groundY)
	}

	e.Resize(800, 300)
	if e.width != 800 || e.height != 300 || e.groundY != 300-groundInset {
		t.Fatalf("expected resized viewport, got %gx%g ground %g", e.width, e.height, e.groundY)
	}

	// Degenerate dimensions are ignored rather than corrupting state.
	e.Resize(0, -10)
	if e.width != 800 || e.height != 300 {
		t.Fatalf("expected degenerate resize ignored, got %gx%g", e.width, e.height)
	}
}

func TestThemeChangePicksUpNewColors(t *testing.T) {
	bg := "#141A1F"
	rec := canvas.NewRecorder()
	e, err := New(Config{
		Canvas: rec,
		Lookup: func(token string) string {
			if token == palette.TokenBackground {
				return bg
			}
			return ""
		},
		Width:  600,
		Height: 200,
		Seed:   7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e.Draw()
	before := rec.Ops()[0]

	bg = "#F5F2EC"
	e.OnThemeChange()
	rec.Reset()
	e.Draw()
	after := rec.Ops()[0]

	if before == after {
		t.Fatalf("expected the background clear to change after a theme change")
	}

	// A malformed lookup result keeps the previous color.
	bg = "oops"
	e.OnThemeChange()
	rec.Reset()
	e.Draw()
	if rec.Ops()[0] != after {
		t.Fatalf("expected malformed color to leave the cached background in place")
	}
}

func TestMultipleEnginesDoNotInterfere(t *testing.T) {
	a, _ := newTestEngine(t, 1200, 220, false, false)
	b, recB := newTestEngine(t, 1200, 220, false, false)

	for i := 0; i < 30; i++ {
		a.Update(0.05)
	}
	// b never updated; it must still draw its untouched seeded scene
	// identically to a fresh engine.
	c, recC := newTestEngine(t, 1200, 220, false, false)

	b.Draw()
	c.Draw()
	opsB, opsC := recB.Ops(), recC.Ops()
	if len(opsB) != len(opsC) {
		t.Fatalf("expected untouched engine to match a fresh one, got %d and %d ops", len(opsB), len(opsC))
	}
	for i := range opsB {
		if opsB[i] != opsC[i] {
			t.Fatalf("expected op %d identical, got:\n%s\n%s", i, opsB[i], opsC[i])
		}
	}
	if a.camera == 0 {
		t.Fatalf("expected updated engine to have advanced")
	}
}
