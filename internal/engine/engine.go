// Package engine implements the Explorer home-page scene: a continuously
// scrolling procedurally generated parallax world walked through by a
// stick figure. The engine owns simulation state only; drawing goes
// through the canvas.Canvas supplied at construction, colors come from a
// host color-lookup callback, and the host drives one Update/Draw pair
// per animation frame.
package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/appengine-ltd/explorer/internal/canvas"
	"github.com/appengine-ltd/explorer/internal/palette"
)

const groundInset = 28.0

// Config carries everything the engine consumes but does not own.
type Config struct {
	Canvas        canvas.Canvas
	Lookup        palette.Lookup
	Width, Height float64
	Mobile        bool
	ReducedMotion bool
	Seed          int64
}

// Engine is one scene instance. Instances are independent; nothing here
// is process-global, so multiple canvases can each run their own engine.
type Engine struct {
	cv     canvas.Canvas
	colors *palette.Palette
	rng    *rand.Rand

	width, height float64
	groundY       float64
	mobile        bool
	reduced       bool

	clock     float64 // simulated seconds
	camera    float64 // total distance walked, world units
	wind      float64 // shared drift influence, [-0.5, 0.5]
	walkPhase float64 // figure stride phase, radians

	stars     pool[Star]
	clouds    pool[Cloud]
	mountains pool[Mountain]
	birds     pool[Bird]
	ufos      pool[UFO]
	meteors   pool[Meteor]
	balloons  pool[Balloon]
	whales    pool[Whale]
	jellies   pool[Jellyfish]
	grass     pool[Grass]
	pebbles   pool[Pebble]

	// next spawn threshold per kind, in cumulative world distance
	// comparable to camera+width.
	next [kindCount]float64

	// draw scratch, reused across frames to keep Draw allocation-free.
	starBatch [starBuckets][]canvas.Circle
	polyBuf   []canvas.Point
	strokeBuf []canvas.Point
}

// New builds an engine and seeds the initial scene composition.
func New(cfg Config) (*Engine, error) {
	if cfg.Canvas == nil {
		return nil, fmt.Errorf("engine: nil canvas")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("engine: invalid dimensions %gx%g", cfg.Width, cfg.Height)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cv:      cfg.Canvas,
		colors:  palette.New(cfg.Lookup),
		rng:     seededRNG(seed),
		mobile:  cfg.Mobile,
		reduced: cfg.ReducedMotion,
	}
	e.stars.max = capFor(KindStar, cfg.Mobile)
	e.clouds.max = capFor(KindCloud, cfg.Mobile)
	e.mountains.max = capFor(KindMountain, cfg.Mobile)
	e.birds.max = capFor(KindBird, cfg.Mobile)
	e.ufos.max = capFor(KindUFO, cfg.Mobile)
	e.meteors.max = capFor(KindMeteor, cfg.Mobile)
	e.balloons.max = capFor(KindBalloon, cfg.Mobile)
	e.whales.max = capFor(KindWhale, cfg.Mobile)
	e.jellies.max = capFor(KindJellyfish, cfg.Mobile)
	e.grass.max = capFor(KindGrass, cfg.Mobile)
	e.pebbles.max = capFor(KindPebble, cfg.Mobile)

	e.Resize(cfg.Width, cfg.Height)
	e.seedScene()
	return e, nil
}

// Update advances the simulation by dt seconds. It is a no-op while
// reduced motion is active. dt is clamped so dropped host frames cannot
// cause visible teleportation.
func (e *Engine) Update(dt float64) {
	if e.reduced || dt <= 0 {
		return
	}
	if dt > maxDelta {
		dt = maxDelta
	}

	e.clock += dt
	e.camera += walkSpeed * dt
	e.wind = windAt(e.clock)
	e.walkPhase += strideRate * dt

	e.tickPools(dt)
	e.runSpawners()
	e.cullPools()
}

// Resize updates the viewport and the derived ground line. Takes effect
// atomically before the next update/draw pair.
func (e *Engine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.width = width
	e.height = height
	e.groundY = height - groundInset
}

// OnThemeChange re-reads every cached color from the host lookup. It does
// not redraw; the next Draw picks up the new colors.
func (e *Engine) OnThemeChange() {
	e.colors.Refresh()
}

// SetReducedMotion toggles the static mode. Enabling resets the clock and
// camera and re-seeds the scene into a busy-but-static composition;
// disabling simply resumes phase-driven updates.
func (e *Engine) SetReducedMotion(enabled bool) {
	if enabled == e.reduced {
		return
	}
	e.reduced = enabled
	if !enabled {
		return
	}
	e.clock = 0
	e.camera = 0
	e.wind = 0
	e.walkPhase = 0
	e.clearPools()
	e.seedScene()
}

func (e *Engine) clearPools() {
	e.stars.clear()
	e.clouds.clear()
	e.mountains.clear()
	e.birds.clear()
	e.ufos.clear()
	e.meteors.clear()
	e.balloons.clear()
	e.whales.clear()
	e.jellies.clear()
	e.grass.clear()
	e.pebbles.clear()
}

func (e *Engine) poolLen(k Kind) int {
	switch k {
	case KindStar:
		return e.stars.len()
	case KindCloud:
		return e.clouds.len()
	case KindMountain:
		return e.mountains.len()
	case KindBird:
		return e.birds.len()
	case KindUFO:
		return e.ufos.len()
	case KindMeteor:
		return e.meteors.len()
	case KindBalloon:
		return e.balloons.len()
	case KindWhale:
		return e.whales.len()
	case KindJellyfish:
		return e.jellies.len()
	case KindGrass:
		return e.grass.len()
	case KindPebble:
		return e.pebbles.len()
	}
	return 0
}

func (e *Engine) poolFull(k Kind) bool {
	switch k {
	case KindStar:
		return e.stars.full()
	case KindCloud:
		return e.clouds.full()
	case KindMountain:
		return e.mountains.full()
	case KindBird:
		return e.birds.full()
	case KindUFO:
		return e.ufos.full()
	case KindMeteor:
		return e.meteors.full()
	case KindBalloon:
		return e.balloons.full()
	case KindWhale:
		return e.whales.full()
	case KindJellyfish:
		return e.jellies.full()
	case KindGrass:
		return e.grass.full()
	case KindPebble:
		return e.pebbles.full()
	}
	return true
}
