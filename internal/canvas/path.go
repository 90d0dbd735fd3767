package canvas

type pathOpKind uint8

const (
	opMove pathOpKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

type pathOp struct {
	kind pathOpKind
	pts  [3]Point // quad uses pts[0..1], cubic uses all three
}

// Curve subdivision counts. Fixed rather than adaptive: scene shapes are
// small and the flattened geometry is cached, so the cost is paid once.
const (
	quadSteps  = 12
	cubicSteps = 16
)

// Path is a build-once vector path: record move/line/quad/cubic ops at
// construction time, then Flatten caches the subdivided polygon rings so
// per-frame fills are a translate-and-rasterize with no curve math.
type Path struct {
	ops   []pathOp
	flat  [][]Point
	stale bool
}

func (p *Path) add(op pathOp) {
	p.ops = append(p.ops, op)
	p.stale = true
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.add(pathOp{kind: opMove, pts: [3]Point{{x, y}}})
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.add(pathOp{kind: opLine, pts: [3]Point{{x, y}}})
}

// QuadTo appends a quadratic Bezier through control (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.add(pathOp{kind: opQuad, pts: [3]Point{{cx, cy}, {x, y}}})
}

// CubicTo appends a cubic Bezier with controls (c1x,c1y), (c2x,c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.add(pathOp{kind: opCubic, pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.add(pathOp{kind: opClose})
}

// Reset clears the path for reuse by a recycled entity.
func (p *Path) Reset() {
	p.ops = p.ops[:0]
	p.flat = p.flat[:0]
	p.stale = false
}

// Flatten returns the cached polygon rings, subdividing curves only when
// the op list changed since the last call.
func (p *Path) Flatten() [][]Point {
	if !p.stale {
		return p.flat
	}
	p.flat = p.flat[:0]

	var ring []Point
	var cur Point
	flush := func() {
		if len(ring) > 1 {
			p.flat = append(p.flat, ring)
		}
		ring = nil
	}

	for _, op := range p.ops {
		switch op.kind {
		case opMove:
			flush()
			cur = op.pts[0]
			ring = append(ring, cur)
		case opLine:
			cur = op.pts[0]
			ring = append(ring, cur)
		case opQuad:
			c, end := op.pts[0], op.pts[1]
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				u := 1 - t
				ring = append(ring, Point{
					X: u*u*cur.X + 2*u*t*c.X + t*t*end.X,
					Y: u*u*cur.Y + 2*u*t*c.Y + t*t*end.Y,
				})
			}
			cur = end
		case opCubic:
			c1, c2, end := op.pts[0], op.pts[1], op.pts[2]
			for i := 1; i <= cubicSteps; i++ {
				t := float64(i) / cubicSteps
				u := 1 - t
				ring = append(ring, Point{
					X: u*u*u*cur.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*end.X,
					Y: u*u*u*cur.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*end.Y,
				})
			}
			cur = end
		case opClose:
			flush()
		}
	}
	flush()

	p.stale = false
	return p.flat
}

// FlattenQuad subdivides a single quadratic curve into the given
// destination buffer, returning it. Used for scratch strokes (tentacles,
// ventral grooves) that change shape every frame and so cannot be cached.
func FlattenQuad(dst []Point, start, ctrl, end Point, steps int) []Point {
	dst = append(dst[:0], start)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		dst = append(dst, Point{
			X: u*u*start.X + 2*u*t*ctrl.X + t*t*end.X,
			Y: u*u*start.Y + 2*u*t*ctrl.Y + t*t*end.Y,
		})
	}
	return dst
}
