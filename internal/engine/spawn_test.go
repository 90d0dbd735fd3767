package engine

import (
	"math"
	"testing"
)

func TestSeededSceneComposition(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	if n := e.stars.len(); n != 20 {
		t.Fatalf("expected exactly 20 seeded stars at width 1200, got %d", n)
	}
	if n := e.balloons.len(); n != 1 {
		t.Fatalf("expected exactly 1 seeded balloon, got %d", n)
	}
	if n := e.clouds.len(); n != 3 {
		t.Fatalf("expected 3 seeded clouds at width 1200, got %d", n)
	}
	if n := e.grass.len(); n != 10 {
		t.Fatalf("expected 10 seeded grass tufts at width 1200, got %d", n)
	}
	if n := e.pebbles.len(); n != 5 {
		t.Fatalf("expected 5 seeded pebbles at width 1200, got %d", n)
	}
	if n := e.mountains.len(); n < 6 || n > 10 {
		t.Fatalf("expected two clusters of 3-5 peaks, got %d peaks", n)
	}
	if n := e.birds.len(); n < 3 || n > 4 {
		t.Fatalf("expected one solo bird plus a 2-3 bird formation, got %d", n)
	}

	for _, s := range e.stars.live {
		if s.WorldX < 0 || s.WorldX > 1200 {
			t.Fatalf("expected seeded star worldX within [0,1200], got %g", s.WorldX)
		}
	}
}

func TestSeededSceneIsDeterministicPerSeed(t *testing.T) {
	a, recA := newTestEngine(t, 1200, 220, false, false)
	b, recB := newTestEngine(t, 1200, 220, false, false)

	a.Draw()
	b.Draw()

	opsA, opsB := recA.Ops(), recB.Ops()
	if len(opsA) == 0 {
		t.Fatalf("expected the seeded scene to draw something")
	}
	if len(opsA) != len(opsB) {
		t.Fatalf("expected identical draw op counts, got %d and %d", len(opsA), len(opsB))
	}
	for i := range opsA {
		if opsA[i] != opsB[i] {
			t.Fatalf("expected identical scenes for the same seed, op %d differs:\n%s\n%s", i, opsA[i], opsB[i])
		}
	}
}

func TestSpawnThenCullRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	const delta = 50.0
	e.addGrass(e.width + delta)
	tracked := e.grass.live[len(e.grass.live)-1].WorldX

	present := func() bool {
		for _, g := range e.grass.live {
			if g.WorldX == tracked {
				return true
			}
		}
		return false
	}

	// At parallax 1 the entity crosses screenX=-200 after exactly
	// (width + delta + cullMargin) / walkSpeed seconds.
	lifetime := (e.width + delta + cullMargin) / walkSpeed

	const dt = 0.05
	elapsed := 0.0
	for elapsed+dt < lifetime-0.2 {
		e.Update(dt)
		elapsed += dt
	}
	if !present() {
		t.Fatalf("expected tracked grass alive at %.2fs of %.2fs", elapsed, lifetime)
	}

	for elapsed < lifetime+0.2 {
		e.Update(dt)
		elapsed += dt
	}
	if present() {
		t.Fatalf("expected tracked grass culled after %.2fs", elapsed)
	}
}

func TestMeteorLifeDecayCullsAtZero(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	e.addMeteor(e.width + 30)
	if e.meteors.len() != 1 {
		t.Fatalf("expected one meteor after direct spawn, got %d", e.meteors.len())
	}
	m := e.meteors.live[0]
	if m.Life != meteorStartLife || m.MaxLife != meteorStartLife {
		t.Fatalf("expected starting life %g, got life=%g max=%g", meteorStartLife, m.Life, m.MaxLife)
	}

	// 1.4s at decay 1.5/s drains the starting life of 2.
	for i := 0; i < 28; i++ {
		e.Update(0.05)
	}
	if e.meteors.len() != 0 {
		t.Fatalf("expected meteor culled once life reached zero, still %d live", e.meteors.len())
	}
}

func TestRareKindsAppearAtStaggeredDistances(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)

	if e.jellies.len() != 0 || e.ufos.len() != 0 || e.whales.len() != 0 {
		t.Fatalf("expected no rare entities in the seeded scene")
	}

	// UFOs are gated on ~3 viewport widths of travel.
	gate := kindFirstAt[KindUFO] * e.width
	for e.camera < gate-walkSpeed {
		e.Update(0.1)
		if e.ufos.len() != 0 {
			t.Fatalf("expected no ufo before %.0f traveled, saw one at %.0f", gate, e.camera)
		}
	}
	for e.camera < gate+800 && e.ufos.len() == 0 {
		e.Update(0.1)
	}
	if e.ufos.len() == 0 {
		t.Fatalf("expected a ufo shortly after %.0f traveled", gate)
	}
}

func TestMountainClusterHeightsCappedAndCenterWeighted(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 120, false, false) // short viewport
	e.mountains.clear()

	e.addMountainCluster(300)
	if n := e.mountains.len(); n < 3 || n > 5 {
		t.Fatalf("expected a cluster of 3-5 peaks, got %d", n)
	}
	limit := e.groundY * 0.85
	for _, m := range e.mountains.live {
		if m.Height > limit+1e-9 {
			t.Fatalf("expected peak height capped at %g, got %g", limit, m.Height)
		}
		if len(m.Path.Flatten()) != 1 {
			t.Fatalf("expected a single closed peak ring")
		}
	}

	// Insertion order is tallest-first so nearer peaks overdraw.
	for i := 1; i < e.mountains.len(); i++ {
		if e.mountains.live[i].Height > e.mountains.live[i-1].Height+1e-9 {
			t.Fatalf("expected peaks inserted tallest-first")
		}
	}
}

func TestBirdFormationSharesLeaderVelocity(t *testing.T) {
	e, _ := newTestEngine(t, 1200, 220, false, false)
	e.birds.clear()

	e.addBirdFormation(600, 3)
	if e.birds.len() != 3 {
		t.Fatalf("expected 3 birds in formation, got %d", e.birds.len())
	}
	leader := e.birds.live[0]
	for rank, b := range e.birds.live[1:] {
		if b.Speed != leader.Speed {
			t.Fatalf("expected follower %d to share leader speed", rank+1)
		}
		if b.WorldX >= leader.WorldX {
			t.Fatalf("expected follower %d behind the leader", rank+1)
		}
		if math.Abs(b.Y-leader.Y) < 6 || math.Abs(b.Y-leader.Y) > 24 {
			t.Fatalf("expected follower %d vertically offset 6-24, got %g", rank+1, math.Abs(b.Y-leader.Y))
		}
	}
}
