package engine

import (
	"math"

	"github.com/appengine-ltd/explorer/internal/canvas"
	"github.com/appengine-ltd/explorer/internal/palette"
)

const (
	starBuckets = 5

	whaleBobFreq    = 0.8
	whaleBobAmp     = 4.0
	ufoHoverFreq    = 1.3
	jellyPulseRate  = 2.5
	balloonSwayFreq = 1.2
)

// Draw renders the scene back to front. It never mutates entity state:
// twinkle, bob, hover and sway come from the clock, so calling Draw twice
// with no intervening Update produces identical output.
func (e *Engine) Draw() {
	bg := e.colors.Color(palette.TokenBackground)
	fg := e.colors.Color(palette.TokenForeground)
	muted := e.colors.Color(palette.TokenMuted)
	accent := e.colors.Color(palette.TokenAccent)
	border := e.colors.Color(palette.TokenBorder)
	surface := e.colors.Color(palette.TokenSurface)

	e.cv.Clear(bg)
	e.drawStars(fg)
	e.drawMeteors(fg)
	e.drawClouds(muted)
	e.drawWhales(muted)
	e.drawJellyfish(muted)
	e.drawBalloons(accent)
	e.drawMountains(border)
	e.drawGround(surface, border)
	e.drawPebbles(border)
	e.drawGrass(muted)
	e.drawBirds(fg)
	e.drawUFOs(accent, muted)
	e.drawFigure(fg)
}

// drawStars batches by quantized alpha: one fill pass per bucket instead
// of one per star, which bounds the draw-call count at any star count.
func (e *Engine) drawStars(fg canvas.Color) {
	for i := range e.starBatch {
		e.starBatch[i] = e.starBatch[i][:0]
	}
	par := kindParallax[KindStar]
	for _, s := range e.stars.live {
		sx := e.toScreenX(s.WorldX, par)
		twinkle := 0.4 + 0.6*math.Abs(math.Sin(e.clock*s.TwinkleSpeed+s.TwinklePhase))
		a := e.depthAlpha(twinkle, par, sx)
		if a <= 0 {
			continue
		}
		b := int(a * starBuckets)
		if b >= starBuckets {
			b = starBuckets - 1
		}
		e.starBatch[b] = append(e.starBatch[b], canvas.Circle{X: sx, Y: s.Y, R: s.Radius})
	}
	for b := 0; b < starBuckets; b++ {
		if len(e.starBatch[b]) == 0 {
			continue
		}
		a := (float64(b) + 0.5) / starBuckets
		e.cv.FillCircleBatch(e.starBatch[b], canvas.Fade(fg, a))
	}
}

// drawMeteors fakes a fading trail with two strokes, a longer faint one
// under a shorter brighter one, instead of a per-frame gradient.
func (e *Engine) drawMeteors(fg canvas.Color) {
	par := kindParallax[KindMeteor]
	for _, m := range e.meteors.live {
		sx := e.toScreenX(m.WorldX, par)
		a := e.depthAlpha(m.Life/m.MaxLife, par, sx)
		if a <= 0 {
			continue
		}
		speed := math.Hypot(m.VX, m.VY)
		if speed <= 0 {
			continue
		}
		tx, ty := -m.VX/speed, -m.VY/speed
		e.cv.Line(sx, m.Y, sx+tx*m.Tail, m.Y+ty*m.Tail, 2.0, canvas.Fade(fg, a*0.25))
		e.cv.Line(sx, m.Y, sx+tx*m.Tail*0.55, m.Y+ty*m.Tail*0.55, 1.2, canvas.Fade(fg, a*0.6))
		e.cv.FillCircle(sx, m.Y, 3.6, canvas.Fade(fg, a*0.35))
		e.cv.FillCircle(sx, m.Y, 1.8, canvas.Fade(fg, a))
	}
}

func (e *Engine) drawClouds(muted canvas.Color) {
	par := kindParallax[KindCloud]
	for _, c := range e.clouds.live {
		sx := e.toScreenX(c.WorldX, par)
		a := e.depthAlpha(0.75, par, sx)
		if a <= 0 {
			continue
		}
		col := canvas.Fade(muted, a)
		r := c.Radius
		e.cv.FillCircle(sx, c.Y, r, col)
		e.cv.FillCircle(sx-r*0.8, c.Y+r*0.2, r*0.7, col)
		e.cv.FillCircle(sx+r*0.8, c.Y+r*0.15, r*0.6, col)
	}
}

func (e *Engine) drawWhales(muted canvas.Color) {
	par := kindParallax[KindWhale]
	for _, w := range e.whales.live {
		sx := e.toScreenX(w.WorldX, par)
		a := e.depthAlpha(0.8, par, sx)
		if a <= 0 {
			continue
		}
		bob := whaleBobAmp * math.Sin(e.clock*whaleBobFreq+w.BobPhase)
		wag := w.Size * 0.08 * math.Sin(e.clock*whaleBobFreq*1.6+w.BobPhase)
		sy := w.Y + bob
		col := canvas.Fade(muted, a)

		e.polyBuf = e.polyBuf[:0]
		for _, pt := range whaleHull {
			e.polyBuf = append(e.polyBuf, canvas.Point{
				X: sx + pt.X*w.Size,
				Y: sy + pt.Y*w.Size + wag*whaleWagWeight(pt.X),
			})
		}
		e.cv.FillPoly(e.polyBuf, col)

		e.polyBuf = e.polyBuf[:0]
		for _, pt := range whaleFin {
			e.polyBuf = append(e.polyBuf, canvas.Point{X: sx + pt.X*w.Size, Y: sy + pt.Y*w.Size})
		}
		e.cv.FillPoly(e.polyBuf, canvas.Fade(muted, a*0.85))

		// Ventral grooves along the jaw and chest.
		grooveCol := canvas.Fade(muted, a*0.45)
		for g := 0; g < 3; g++ {
			off := float64(g) * 0.014
			start := canvas.Point{X: sx + (0.07+off)*w.Size, Y: sy + (0.05+off*0.8)*w.Size}
			end := canvas.Point{X: sx + (0.34+off*2)*w.Size, Y: sy + (0.092+off*0.5)*w.Size}
			ctrl := canvas.Point{X: (start.X + end.X) / 2, Y: end.Y + 0.012*w.Size}
			e.strokeBuf = canvas.FlattenQuad(e.strokeBuf, start, ctrl, end, 8)
			e.cv.StrokePoly(e.strokeBuf, 1, grooveCol)
		}
	}
}

func (e *Engine) drawJellyfish(muted canvas.Color) {
	par := kindParallax[KindJellyfish]
	for _, j := range e.jellies.live {
		sx := e.toScreenX(j.WorldX, par)
		a := e.depthAlpha(0.7, par, sx)
		if a <= 0 {
			continue
		}
		pulse := 1 + 0.15*math.Sin(e.clock*jellyPulseRate+j.PulsePhase)
		r := j.Size * pulse
		col := canvas.Fade(muted, a)

		// Bell: upper half-circle arc, closed along the rim.
		e.polyBuf = e.polyBuf[:0]
		const arcSteps = 12
		for i := 0; i <= arcSteps; i++ {
			ang := math.Pi + math.Pi*float64(i)/arcSteps
			e.polyBuf = append(e.polyBuf, canvas.Point{
				X: sx + math.Cos(ang)*r,
				Y: j.Y + math.Sin(ang)*r*0.9,
			})
		}
		e.cv.FillPoly(e.polyBuf, col)

		tentCol := canvas.Fade(muted, a*0.6)
		for t := 0; t < j.Tentacles; t++ {
			frac := (float64(t)+0.5)/float64(j.Tentacles)*2 - 1 // [-1,1] across the rim
			baseX := sx + frac*r*0.7
			sway := math.Sin(e.clock*1.8+j.TentPhase[t]) * j.Size * 0.3
			length := j.Size * 1.6
			start := canvas.Point{X: baseX, Y: j.Y}
			end := canvas.Point{X: baseX + sway, Y: j.Y + length}
			ctrl := canvas.Point{X: baseX + sway*0.3, Y: j.Y + length*0.55}
			e.strokeBuf = canvas.FlattenQuad(e.strokeBuf, start, ctrl, end, 8)
			e.cv.StrokePoly(e.strokeBuf, 1, tentCol)
		}
	}
}

func (e *Engine) drawBalloons(accent canvas.Color) {
	par := kindParallax[KindBalloon]
	for _, b := range e.balloons.live {
		sx := e.toScreenX(b.WorldX, par)
		a := e.depthAlpha(0.85, par, sx)
		if a <= 0 {
			continue
		}
		sway := 3*math.Sin(e.clock*balloonSwayFreq+b.SwayPhase) + 2*e.wind
		x := sx + sway
		r := b.Size * 0.5
		col := canvas.Fade(accent, a)

		e.cv.FillCircle(x, b.Y, r, col)
		e.cv.Line(x, b.Y+r, x, b.Y+r+b.Size*1.2, 1, canvas.Fade(accent, a*0.6))
		e.cv.FillEllipse(x, b.Y+r+b.Size*1.2, r*0.3, r*0.22, canvas.Fade(accent, a*0.8))
	}
}

func (e *Engine) drawMountains(border canvas.Color) {
	par := kindParallax[KindMountain]
	for _, m := range e.mountains.live {
		sx := e.toScreenX(m.WorldX, par)
		a := e.depthAlpha(0.9, par, sx)
		if a <= 0 {
			continue
		}
		e.cv.FillPath(&m.Path, sx, e.groundY, canvas.Fade(border, a))
	}
}

// drawGround fills the strip below the ground line and strokes the line
// itself.
func (e *Engine) drawGround(surface, border canvas.Color) {
	e.polyBuf = append(e.polyBuf[:0],
		canvas.Point{X: 0, Y: e.groundY},
		canvas.Point{X: e.width, Y: e.groundY},
		canvas.Point{X: e.width, Y: e.height},
		canvas.Point{X: 0, Y: e.height},
	)
	e.cv.FillPoly(e.polyBuf, surface)
	e.cv.Line(0, e.groundY, e.width, e.groundY, 1.5, canvas.Fade(border, 0.9))
}

func (e *Engine) drawPebbles(border canvas.Color) {
	par := kindParallax[KindPebble]
	for _, p := range e.pebbles.live {
		sx := e.toScreenX(p.WorldX, par)
		a := e.depthAlpha(0.8, par, sx)
		if a <= 0 {
			continue
		}
		e.cv.FillCircle(sx, e.groundY-p.Radius*0.4, p.Radius, canvas.Fade(border, a))
	}
}

func (e *Engine) drawGrass(muted canvas.Color) {
	par := kindParallax[KindGrass]
	for _, g := range e.grass.live {
		sx := e.toScreenX(g.WorldX, par)
		a := e.depthAlpha(0.7, par, sx)
		if a <= 0 {
			continue
		}
		col := canvas.Fade(muted, a)
		for i := 0; i < g.Blades; i++ {
			h := g.Height[i]
			lean := g.Lean[i] + 0.3*e.wind
			base := canvas.Point{X: sx + float64(i)*1.5 - 1.5, Y: e.groundY}
			tip := canvas.Point{X: base.X + lean*h*0.6, Y: e.groundY - h}
			ctrl := canvas.Point{X: base.X + lean*h*0.2, Y: e.groundY - h*0.6}
			e.strokeBuf = canvas.FlattenQuad(e.strokeBuf, base, ctrl, tip, 6)
			e.cv.StrokePoly(e.strokeBuf, 1, col)
		}
	}
}

func (e *Engine) drawBirds(fg canvas.Color) {
	par := kindParallax[KindBird]
	for _, b := range e.birds.live {
		sx := e.toScreenX(b.WorldX, par)
		a := e.depthAlpha(0.9, par, sx)
		if a <= 0 {
			continue
		}
		wingY := b.Y + math.Sin(b.FlapPhase)*b.Span*0.35
		e.strokeBuf = append(e.strokeBuf[:0],
			canvas.Point{X: sx - b.Span/2, Y: wingY},
			canvas.Point{X: sx, Y: b.Y},
			canvas.Point{X: sx + b.Span/2, Y: wingY},
		)
		e.cv.StrokePoly(e.strokeBuf, 1.2, canvas.Fade(fg, a))
	}
}

func (e *Engine) drawUFOs(accent, muted canvas.Color) {
	par := kindParallax[KindUFO]
	for _, u := range e.ufos.live {
		sx := e.toScreenX(u.WorldX, par)
		a := e.depthAlpha(0.9, par, sx)
		if a <= 0 {
			continue
		}
		y := u.Y + 4*u.Scale*math.Sin(e.clock*ufoHoverFreq+u.HoverPhase)

		e.cv.FillCircle(sx, y-3*u.Scale, 5*u.Scale, canvas.Fade(muted, a*0.7))
		e.cv.FillEllipse(sx, y, 14*u.Scale, 5*u.Scale, canvas.Fade(accent, a))
		for l := -1; l <= 1; l++ {
			blink := 0.4 + 0.6*math.Abs(math.Sin(e.clock*3+float64(l)))
			e.cv.FillCircle(sx+float64(l)*7*u.Scale, y+2*u.Scale, 1.2*u.Scale, canvas.Fade(muted, a*blink))
		}
	}
}

// drawFigure renders the stickman in two canvas calls: the head circle
// and one composite stroke covering spine, arms and legs.
func (e *Engine) drawFigure(fg canvas.Color) {
	anchorX := e.width * figureAnchorFrac
	var pose Pose
	if e.reduced {
		pose = standingPose(anchorX, e.groundY)
	} else {
		pose = walkPose(e.walkPhase, anchorX, e.groundY)
	}

	e.cv.FillCircle(pose.Head.X, pose.Head.Y, headRadius, fg)
	e.cv.StrokeSegments([][]canvas.Point{
		{pose.Hip, pose.Shoulder, pose.NeckTop},
		{pose.Shoulder, pose.Elbow[0], pose.Hand[0]},
		{pose.Shoulder, pose.Elbow[1], pose.Hand[1]},
		{pose.Hip, pose.Knee[0], pose.Foot[0]},
		{pose.Hip, pose.Knee[1], pose.Foot[1]},
	}, 2, fg)
}
