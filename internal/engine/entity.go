package engine

import "github.com/appengine-ltd/explorer/internal/canvas"

// Kind tags one entity family. Each kind owns its own pool, capacity and
// parallax factor; the closed set is what lets the renderer batch per type
// instead of dispatching through an interface.
type Kind uint8

const (
	KindStar Kind = iota
	KindCloud
	KindMountain
	KindBird
	KindUFO
	KindMeteor
	KindBalloon
	KindWhale
	KindJellyfish
	KindGrass
	KindPebble
	kindCount
)

var kindNames = [kindCount]string{
	"star", "cloud", "mountain", "bird", "ufo", "meteor",
	"balloon", "whale", "jellyfish", "grass", "pebble",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Parallax factor per kind, fixed for the life of every entity.
// 0 pins to the screen, 1 moves in lockstep with the camera.
var kindParallax = [kindCount]float64{
	KindStar:      0.1,
	KindCloud:     0.15,
	KindMountain:  0.2,
	KindBird:      0.5,
	KindUFO:       0.6,
	KindMeteor:    0.05,
	KindBalloon:   0.35,
	KindWhale:     0.55,
	KindJellyfish: 0.4,
	KindGrass:     1.0,
	KindPebble:    1.0,
}

// Pool capacities, desktop and mobile.
var kindCaps = [kindCount][2]int{
	KindStar:      {30, 18},
	KindCloud:     {6, 4},
	KindMountain:  {12, 10},
	KindBird:      {8, 6},
	KindUFO:       {3, 2},
	KindMeteor:    {2, 1},
	KindBalloon:   {2, 1},
	KindWhale:     {1, 1},
	KindJellyfish: {2, 1},
	KindGrass:     {20, 12},
	KindPebble:    {10, 6},
}

func capFor(k Kind, mobile bool) int {
	if mobile {
		return kindCaps[k][1]
	}
	return kindCaps[k][0]
}

// pool is one kind's live set plus its free list. Removal is
// swap-with-last, so order inside a pool carries no meaning; recycled
// instances park on the free list until the next acquire.
type pool[T any] struct {
	live []*T
	free []*T
	max  int
}

func (p *pool[T]) full() bool { return len(p.live) >= p.max }

func (p *pool[T]) len() int { return len(p.live) }

// acquire pops a recycled instance or allocates a fresh one. The caller
// must reinitialize every field before adding it to the pool.
func (p *pool[T]) acquire() *T {
	if n := len(p.free); n > 0 {
		e := p.free[n-1]
		p.free = p.free[:n-1]
		return e
	}
	return new(T)
}

func (p *pool[T]) add(e *T) {
	p.live = append(p.live, e)
}

func (p *pool[T]) removeAt(i int) {
	last := len(p.live) - 1
	e := p.live[i]
	p.live[i] = p.live[last]
	p.live[last] = nil
	p.live = p.live[:last]
	p.free = append(p.free, e)
}

func (p *pool[T]) clear() {
	for i := len(p.live) - 1; i >= 0; i-- {
		p.removeAt(i)
	}
}

// cullPool walks backward so swap-remove never skips an element.
func cullPool[T any](p *pool[T], dead func(*T) bool) {
	for i := len(p.live) - 1; i >= 0; i-- {
		if dead(p.live[i]) {
			p.removeAt(i)
		}
	}
}

// Entity variants. Every variant stores its world-space X and enough
// per-instance parameters to draw without further allocation; screen
// position is always derived from worldX and the kind's parallax, never
// stored.

type Star struct {
	WorldX, Y    float64
	Radius       float64
	TwinkleSpeed float64
	TwinklePhase float64
}

type Cloud struct {
	WorldX, Y float64
	Radius    float64
	Speed     float64
}

type Mountain struct {
	WorldX        float64 // base-center of the peak
	Height        float64
	LeftW, RightW float64
	Path          canvas.Path
}

type Bird struct {
	WorldX, Y float64
	Span      float64
	Speed     float64
	FlapPhase float64
}

type UFO struct {
	WorldX, Y  float64
	Scale      float64
	HoverPhase float64
}

type Meteor struct {
	WorldX, Y     float64
	VX, VY        float64
	Tail          float64
	Life, MaxLife float64
}

type Balloon struct {
	WorldX, Y float64
	Size      float64
	Rise      float64
	SwayPhase float64
}

type Whale struct {
	WorldX, Y float64
	Size      float64
	BobPhase  float64
}

type Jellyfish struct {
	WorldX, Y  float64
	Size       float64
	Speed      float64
	PulsePhase float64
	Tentacles  int
	TentPhase  [5]float64
}

type Grass struct {
	WorldX float64
	Blades int
	Height [3]float64
	Lean   [3]float64
}

type Pebble struct {
	WorldX float64
	Radius float64
}
