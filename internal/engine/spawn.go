package engine

import (
	"math"
	"sort"
)

// Spawn intervals per kind, in world distance between admissions.
// Mobile multiplies these by 1.5.
var kindIntervals = [kindCount][2]float64{
	KindStar:      {30, 80},
	KindCloud:     {250, 500},
	KindMountain:  {420, 820},
	KindBird:      {200, 420},
	KindUFO:       {900, 1500},
	KindMeteor:    {600, 1100},
	KindBalloon:   {800, 1400},
	KindWhale:     {1500, 2400},
	KindJellyfish: {700, 1200},
	KindGrass:     {40, 110},
	KindPebble:    {90, 180},
}

// First appearance of the rare kinds, as multiples of the viewport width
// already traveled. Zero means the kind spawns from the start.
var kindFirstAt = [kindCount]float64{
	KindMeteor:    0.8,
	KindBalloon:   2.2,
	KindJellyfish: 2.5,
	KindUFO:       3.0,
	KindWhale:     3.8,
}

const mobileIntervalScale = 1.5

func (e *Engine) intervalDraw(k Kind) float64 {
	iv := kindIntervals[k]
	d := rangeF(e.rng, iv[0], iv[1])
	if e.mobile {
		d *= mobileIntervalScale
	}
	return d
}

// runSpawners advances every kind's distance-driven schedule once. A full
// pool skips the actual spawn but still advances the threshold, so
// capacity pressure never causes bursty catch-up spawning.
func (e *Engine) runSpawners() {
	traveled := e.camera + e.width
	for k := Kind(0); k < kindCount; k++ {
		if traveled < e.next[k] {
			continue
		}
		if !e.poolFull(k) {
			e.spawnKind(k, e.width+rangeF(e.rng, 20, 80))
		}
		e.next[k] += e.intervalDraw(k)
	}
}

func (e *Engine) spawnKind(k Kind, screenX float64) {
	switch k {
	case KindStar:
		e.addStar(screenX)
	case KindCloud:
		e.addCloud(screenX)
	case KindMountain:
		e.addMountainCluster(screenX)
	case KindBird:
		if chance(e.rng, 0.3) {
			e.addBirdFormation(screenX, rangeI(e.rng, 2, 3))
		} else {
			e.addBird(screenX)
		}
	case KindUFO:
		e.addUFO(screenX)
	case KindMeteor:
		e.addMeteor(screenX)
	case KindBalloon:
		e.addBalloon(screenX)
	case KindWhale:
		e.addWhale(screenX)
	case KindJellyfish:
		e.addJellyfish(screenX)
	case KindGrass:
		e.addGrass(screenX)
	case KindPebble:
		e.addPebble(screenX)
	}
}

func (e *Engine) addStar(screenX float64) {
	if e.stars.full() {
		return
	}
	s := e.stars.acquire()
	u := e.rng.Float64()
	*s = Star{
		WorldX:       e.toWorldX(screenX, kindParallax[KindStar]),
		Y:            rangeF(e.rng, 8, e.groundY*0.6),
		Radius:       0.5 + 2.8*u*u, // power-law biased small
		TwinkleSpeed: rangeF(e.rng, 0.8, 2.5),
		TwinklePhase: rangeF(e.rng, 0, 2*math.Pi),
	}
	e.stars.add(s)
}

func (e *Engine) addCloud(screenX float64) {
	if e.clouds.full() {
		return
	}
	c := e.clouds.acquire()
	*c = Cloud{
		WorldX: e.toWorldX(screenX, kindParallax[KindCloud]),
		Y:      rangeF(e.rng, 15, e.groundY*0.45),
		Radius: rangeF(e.rng, 6, 18),
		Speed:  rangeF(e.rng, 1, 4),
	}
	e.clouds.add(c)
}

// addMountainCluster lays 3-5 peaks left to right from the given screen
// position. Peak heights are weighted toward the cluster center and the
// peaks are inserted tallest-first so shorter peaks overdraw taller ones,
// which reads as depth without any per-frame sorting.
func (e *Engine) addMountainCluster(screenX float64) {
	n := rangeI(e.rng, 3, 5)
	maxH := e.groundY * 0.85

	type peak struct {
		center        float64
		height        float64
		leftW, rightW float64
	}
	peaks := make([]peak, 0, n)

	cursor := screenX
	mid := float64(n-1) / 2
	for i := 0; i < n; i++ {
		leftW := rangeF(e.rng, 25, 65)
		rightW := rangeF(e.rng, 25, 65)
		weight := 1.0
		if mid > 0 {
			weight = 0.55 + 0.45*(1-math.Abs(float64(i)-mid)/mid)
		}
		h := rangeF(e.rng, 55, 165) * weight
		if h > maxH {
			h = maxH
		}
		center := cursor + leftW*0.7
		cursor = center + rightW*0.7
		peaks = append(peaks, peak{center: center, height: h, leftW: leftW, rightW: rightW})
	}

	sort.Slice(peaks, func(a, b int) bool { return peaks[a].height > peaks[b].height })

	for _, pk := range peaks {
		if e.mountains.full() {
			return
		}
		m := e.mountains.acquire()
		m.WorldX = e.toWorldX(pk.center, kindParallax[KindMountain])
		m.Height = pk.height
		m.LeftW = pk.leftW
		m.RightW = pk.rightW
		buildMountainPath(&m.Path, e.rng, pk.height, pk.leftW, pk.rightW)
		e.mountains.add(m)
	}
}

func (e *Engine) addBird(screenX float64) {
	if e.birds.full() {
		return
	}
	b := e.birds.acquire()
	*b = Bird{
		WorldX:    e.toWorldX(screenX, kindParallax[KindBird]),
		Y:         rangeF(e.rng, e.groundY*0.25, e.groundY*0.6),
		Span:      rangeF(e.rng, 5, 16),
		Speed:     rangeF(e.rng, 10, 20),
		FlapPhase: rangeF(e.rng, 0, 2*math.Pi),
	}
	e.birds.add(b)
}

// addBirdFormation creates a small V: followers share the leader's height
// band and velocity, trailing behind on alternating sides per rank.
func (e *Engine) addBirdFormation(screenX float64, count int) {
	if e.birds.full() {
		return
	}
	leader := e.birds.acquire()
	*leader = Bird{
		WorldX:    e.toWorldX(screenX, kindParallax[KindBird]),
		Y:         rangeF(e.rng, e.groundY*0.25, e.groundY*0.55),
		Span:      rangeF(e.rng, 8, 16),
		Speed:     rangeF(e.rng, 10, 20),
		FlapPhase: rangeF(e.rng, 0, 2*math.Pi),
	}
	e.birds.add(leader)

	for rank := 1; rank < count; rank++ {
		if e.birds.full() {
			return
		}
		side := 1.0
		if rank%2 == 0 {
			side = -1.0
		}
		f := e.birds.acquire()
		*f = Bird{
			WorldX:    leader.WorldX - rangeF(e.rng, 12, 20)*float64(rank),
			Y:         leader.Y + side*rangeF(e.rng, 6, 12)*float64((rank+1)/2),
			Span:      leader.Span * rangeF(e.rng, 0.8, 0.95),
			Speed:     leader.Speed,
			FlapPhase: rangeF(e.rng, 0, 2*math.Pi),
		}
		e.birds.add(f)
	}
}

func (e *Engine) addUFO(screenX float64) {
	if e.ufos.full() {
		return
	}
	u := e.ufos.acquire()
	*u = UFO{
		WorldX:     e.toWorldX(screenX, kindParallax[KindUFO]),
		Y:          rangeF(e.rng, 20, e.groundY*0.4),
		Scale:      rangeF(e.rng, 0.6, 1.4),
		HoverPhase: rangeF(e.rng, 0, 2*math.Pi),
	}
	e.ufos.add(u)
}

func (e *Engine) addMeteor(screenX float64) {
	if e.meteors.full() {
		return
	}
	speed := rangeF(e.rng, 200, 350)
	angle := rangeF(e.rng, 0.15, 0.4)
	m := e.meteors.acquire()
	*m = Meteor{
		WorldX:  e.toWorldX(screenX, kindParallax[KindMeteor]),
		Y:       rangeF(e.rng, 10, e.groundY*0.35),
		VX:      -math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Tail:    rangeF(e.rng, 25, 80),
		Life:    meteorStartLife,
		MaxLife: meteorStartLife,
	}
	e.meteors.add(m)
}

func (e *Engine) addBalloon(screenX float64) {
	if e.balloons.full() {
		return
	}
	b := e.balloons.acquire()
	*b = Balloon{
		WorldX:    e.toWorldX(screenX, kindParallax[KindBalloon]),
		Y:         rangeF(e.rng, e.groundY*0.35, e.groundY*0.75),
		Size:      rangeF(e.rng, 8, 20),
		Rise:      rangeF(e.rng, 4, 12),
		SwayPhase: rangeF(e.rng, 0, 2*math.Pi),
	}
	e.balloons.add(b)
}

func (e *Engine) addWhale(screenX float64) {
	if e.whales.full() {
		return
	}
	w := e.whales.acquire()
	*w = Whale{
		WorldX:   e.toWorldX(screenX, kindParallax[KindWhale]),
		Y:        rangeF(e.rng, e.groundY*0.3, e.groundY*0.55),
		Size:     rangeF(e.rng, 40, 95),
		BobPhase: rangeF(e.rng, 0, 2*math.Pi),
	}
	e.whales.add(w)
}

func (e *Engine) addJellyfish(screenX float64) {
	if e.jellies.full() {
		return
	}
	j := e.jellies.acquire()
	*j = Jellyfish{
		WorldX:     e.toWorldX(screenX, kindParallax[KindJellyfish]),
		Y:          rangeF(e.rng, e.groundY*0.35, e.groundY*0.75),
		Size:       rangeF(e.rng, 6, 16),
		Speed:      rangeF(e.rng, 2, 6),
		PulsePhase: rangeF(e.rng, 0, 2*math.Pi),
		Tentacles:  rangeI(e.rng, 3, 5),
	}
	for i := 0; i < j.Tentacles; i++ {
		j.TentPhase[i] = rangeF(e.rng, 0, 2*math.Pi)
	}
	e.jellies.add(j)
}

func (e *Engine) addGrass(screenX float64) {
	if e.grass.full() {
		return
	}
	g := e.grass.acquire()
	*g = Grass{
		WorldX: e.toWorldX(screenX, kindParallax[KindGrass]),
		Blades: rangeI(e.rng, 2, 3),
	}
	for i := 0; i < g.Blades; i++ {
		g.Height[i] = rangeF(e.rng, 3, 11)
		g.Lean[i] = rangeF(e.rng, -0.25, 0.25)
	}
	e.grass.add(g)
}

func (e *Engine) addPebble(screenX float64) {
	if e.pebbles.full() {
		return
	}
	p := e.pebbles.acquire()
	*p = Pebble{
		WorldX: e.toWorldX(screenX, kindParallax[KindPebble]),
		Radius: rangeF(e.rng, 0.8, 3.5),
	}
	e.pebbles.add(p)
}

// slot places instance i of n across [0, span] with jitter inside its
// bin, so seeded entities spread evenly instead of clumping.
func (e *Engine) slot(span float64, n, i int) float64 {
	bin := span / float64(n)
	return float64(i)*bin + bin*0.5 + rangeF(e.rng, -bin*0.3, bin*0.3)
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// seedScene populates the initial busy-but-static composition. It runs at
// construction and again whenever reduced motion is enabled, always with
// the camera at rest.
func (e *Engine) seedScene() {
	w := e.width

	nStars := clampI(int(w/60), 14, 20)
	for i := 0; i < nStars; i++ {
		e.addStar(e.slot(w, nStars, i))
	}

	nClouds := clampI(int(w/400), 3, 4)
	for i := 0; i < nClouds; i++ {
		e.addCloud(e.slot(w, nClouds, i))
	}

	e.addBalloon(e.slot(w, 1, 0))

	e.addBird(rangeF(e.rng, w*0.15, w*0.45))
	e.addBirdFormation(rangeF(e.rng, w*0.55, w*0.85), rangeI(e.rng, 2, 3))

	// One cluster in the left third, one in the right third.
	e.addMountainCluster(rangeF(e.rng, w*0.05, w*0.18))
	e.addMountainCluster(rangeF(e.rng, w*0.62, w*0.78))

	nGrass := clampI(int(w/120), 8, 12)
	for i := 0; i < nGrass; i++ {
		e.addGrass(e.slot(w, nGrass, i))
	}

	nPebbles := clampI(int(w/240), 4, 6)
	for i := 0; i < nPebbles; i++ {
		e.addPebble(e.slot(w, nPebbles, i))
	}

	e.resetSpawners()
}

// resetSpawners schedules every kind's first admission: rare kinds wait
// for their staggered first-appearance distance, everything else starts
// one interval past the right edge.
func (e *Engine) resetSpawners() {
	for k := Kind(0); k < kindCount; k++ {
		if kindFirstAt[k] > 0 {
			e.next[k] = kindFirstAt[k]*e.width + e.width
			continue
		}
		e.next[k] = e.camera + e.width + e.intervalDraw(k)
	}
}
