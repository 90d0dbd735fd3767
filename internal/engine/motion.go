package engine

const (
	meteorStartLife = 2.0
	meteorLifeDecay = 1.5

	flapRate = 6.0 // bird wing phase, rad/s

	// A risen balloon is done once it clears the top by this margin.
	balloonTopMargin = 40.0
)

// tickPools advances per-kind motion. Kinds with zero intrinsic velocity
// (stars, mountains, whales, ufos, grass, pebbles) move only through the
// camera/parallax relationship; their twinkle, bob and hover phases are
// derived from the clock at draw time so Draw stays read-only.
func (e *Engine) tickPools(dt float64) {
	wind := e.wind

	for _, c := range e.clouds.live {
		c.WorldX += (c.Speed + 2*wind) * dt
	}
	for _, b := range e.birds.live {
		b.WorldX += (b.Speed + 5*wind) * dt
		b.FlapPhase += flapRate * dt
	}
	for _, m := range e.meteors.live {
		m.WorldX += m.VX * dt
		m.Y += m.VY * dt
		m.Life -= meteorLifeDecay * dt
	}
	for _, b := range e.balloons.live {
		b.WorldX += 3 * wind * dt
		b.Y -= b.Rise * dt
	}
	for _, j := range e.jellies.live {
		j.WorldX += (j.Speed + 2*wind) * dt
	}
}

// cullPools recycles entities that drifted past the left margin or whose
// liveness predicate failed.
func (e *Engine) cullPools() {
	offLeft := func(worldX, parallax float64) bool {
		return e.toScreenX(worldX, parallax) < -cullMargin
	}

	cullPool(&e.stars, func(s *Star) bool {
		return offLeft(s.WorldX, kindParallax[KindStar])
	})
	cullPool(&e.clouds, func(c *Cloud) bool {
		return offLeft(c.WorldX, kindParallax[KindCloud])
	})
	cullPool(&e.mountains, func(m *Mountain) bool {
		return offLeft(m.WorldX, kindParallax[KindMountain])
	})
	cullPool(&e.birds, func(b *Bird) bool {
		return offLeft(b.WorldX, kindParallax[KindBird])
	})
	cullPool(&e.ufos, func(u *UFO) bool {
		return offLeft(u.WorldX, kindParallax[KindUFO])
	})
	cullPool(&e.meteors, func(m *Meteor) bool {
		return m.Life <= 0 || offLeft(m.WorldX, kindParallax[KindMeteor])
	})
	cullPool(&e.balloons, func(b *Balloon) bool {
		return b.Y < -balloonTopMargin || offLeft(b.WorldX, kindParallax[KindBalloon])
	})
	cullPool(&e.whales, func(w *Whale) bool {
		return offLeft(w.WorldX, kindParallax[KindWhale])
	})
	cullPool(&e.jellies, func(j *Jellyfish) bool {
		return offLeft(j.WorldX, kindParallax[KindJellyfish])
	})
	cullPool(&e.grass, func(g *Grass) bool {
		return offLeft(g.WorldX, kindParallax[KindGrass])
	})
	cullPool(&e.pebbles, func(p *Pebble) bool {
		return offLeft(p.WorldX, kindParallax[KindPebble])
	})
}
