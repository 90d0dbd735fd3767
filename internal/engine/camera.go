package engine

import "math"

const (
	// walkSpeed is the camera's advance in world units per second; it is
	// also the figure's implied ground speed.
	walkSpeed = 60.0

	// cullMargin is how far past the left edge an entity may drift
	// before it is recycled.
	cullMargin = 200.0

	// edgeFadeBand is the screen-space span over which a freshly
	// spawned entity fades in instead of popping.
	edgeFadeBand = 60.0

	// maxDelta bounds a single simulation step so a stalled host frame
	// cannot teleport the scene.
	maxDelta = 0.1

	// Wind is the sum of two sines whose frequency ratio is sqrt(2):
	// irrational, so the oscillation never exactly repeats.
	windFreqA = 0.31
	windFreqB = windFreqA * math.Sqrt2
	windAmpA  = 0.3
	windAmpB  = 0.2
)

// toScreenX projects a world coordinate through the parallax model.
func (e *Engine) toScreenX(worldX, parallax float64) float64 {
	return worldX - e.camera*parallax
}

// toWorldX inverts the projection. Spawning depends on this: an entity
// placed just past the visible right edge must have the world coordinate
// that projects there at the current camera offset, or low-parallax
// entities end up thousands of units off-screen.
func (e *Engine) toWorldX(screenX, parallax float64) float64 {
	return screenX + e.camera*parallax
}

func windAt(t float64) float64 {
	return windAmpA*math.Sin(windFreqA*t) + windAmpB*math.Sin(windFreqB*t)
}

// edgeFade ramps 0 to 1 over the last edgeFadeBand units before the right
// edge and is 1 everywhere else on screen.
func (e *Engine) edgeFade(screenX float64) float64 {
	f := (e.width - screenX) / edgeFadeBand
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// depthAlpha composes an entity's drawn opacity: base visual alpha,
// atmospheric attenuation by depth, and the spawn-edge fade-in.
func (e *Engine) depthAlpha(base, parallax, screenX float64) float64 {
	return base * (0.3 + 0.7*parallax) * e.edgeFade(screenX)
}
