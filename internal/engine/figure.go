package engine

import (
	"math"

	"github.com/appengine-ltd/explorer/internal/canvas"
)

// Skeletal segment lengths, screen units. The pose is recomputed from
// the walk phase every frame; nothing here persists between frames.
const (
	headRadius  = 6.0
	neckLen     = 4.0
	torsoLen    = 26.0
	upperLegLen = 14.0
	lowerLegLen = 13.0
	upperArmLen = 10.0
	lowerArmLen = 10.0

	strideRate = 5.0 // walk phase, rad/s; one stride per 2*pi

	figureAnchorFrac = 0.35 // fixed screen anchor, fraction of width

	stanceShare = 0.6 // fraction of the cycle a foot spends on the ground
	strideReach = 7.0 // forward/backward foot offset from the anchor
	stepLift    = 4.0 // swing-phase vertical foot lift

	standHeight = 25.5 // hip height with the habitual slight knee bend
	forwardLean = 2.0
	twistAmp    = 1.6 // lateral counter-twist at the shoulder
	bobAmp      = 1.0 // double-frequency vertical bob

	armSwingAmp = 0.55 // upper arm swing, radians from vertical
	forearmAmp  = 0.65 // forearm amplitude relative to the upper arm
	forearmLag  = 0.45 // forearm phase lag, radians
	elbowBend   = 0.2  // constant resting elbow bend
)

// Pose holds the figure's joint positions for one frame.
type Pose struct {
	Head     canvas.Point
	NeckTop  canvas.Point
	Shoulder canvas.Point
	Hip      canvas.Point
	Elbow    [2]canvas.Point
	Hand     [2]canvas.Point
	Knee     [2]canvas.Point
	Foot     [2]canvas.Point
}

// footAt returns a foot's offset from the anchor for one point in the
// normalized cycle [0,1). Stance slides the foot linearly backward under
// the body; swing arcs it forward with a smoothstep horizontal profile
// and a half-sine lift, so both velocity components reach zero at
// touchdown and lift-off.
func footAt(cycle float64) (x, y float64) {
	if cycle < stanceShare {
		t := cycle / stanceShare
		return strideReach - 2*strideReach*t, 0
	}
	t := (cycle - stanceShare) / (1 - stanceShare)
	s := (6*t*t - 4*t*t*t) / 2
	return -strideReach + 2*strideReach*s, stepLift * math.Sin(math.Pi*t)
}

// kneeFor places the knee geometrically from the hip and foot: at the
// segment midpoint, offset perpendicular to the hip-foot line so the
// thigh keeps its length. When the leg is at or beyond full extension
// the offset clamps to zero instead of going imaginary.
func kneeFor(hip, foot canvas.Point) canvas.Point {
	dx := foot.X - hip.X
	dy := foot.Y - hip.Y
	d := math.Hypot(dx, dy)
	mid := canvas.Point{X: hip.X + dx/2, Y: hip.Y + dy/2}
	if d <= 0 {
		return canvas.Point{X: mid.X, Y: mid.Y - upperLegLen}
	}

	half := d / 2
	offSq := upperLegLen*upperLegLen - half*half
	if offSq <= 0 {
		return mid
	}
	off := math.Sqrt(offSq)

	// Perpendicular chosen so the knee points forward.
	px, py := dy/d, -dx/d
	if px < 0 {
		px, py = -px, -py
	}
	return canvas.Point{X: mid.X + px*off, Y: mid.Y + py*off}
}

// walkPose computes the full walking pose for one phase value.
func walkPose(phase, anchorX, groundY float64) Pose {
	var p Pose

	hipY := groundY - standHeight + bobAmp*math.Sin(2*phase)
	p.Hip = canvas.Point{X: anchorX, Y: hipY}

	// Counter-twist decays up the body: full at the shoulder, half at
	// the neck, a quarter at the head, modeling head stabilization.
	twist := twistAmp * math.Sin(phase)
	baseX := anchorX + forwardLean
	p.Shoulder = canvas.Point{X: baseX + twist, Y: hipY - torsoLen}
	p.NeckTop = canvas.Point{X: baseX + twist*0.5, Y: p.Shoulder.Y - neckLen}
	p.Head = canvas.Point{X: baseX + twist*0.25, Y: p.NeckTop.Y - headRadius}

	for i := 0; i < 2; i++ {
		cycle := math.Mod(phase/(2*math.Pi)+0.5*float64(i), 1)
		if cycle < 0 {
			cycle++
		}
		fx, fy := footAt(cycle)
		p.Foot[i] = canvas.Point{X: anchorX + fx, Y: groundY - fy}
		p.Knee[i] = kneeFor(p.Hip, p.Foot[i])

		// Arms swing contralateral to the legs; the forearm trails the
		// upper arm at reduced amplitude, which gives the trailing
		// elbow bend of a natural gait.
		armPhase := phase + math.Pi*float64(i+1)
		upper := armSwingAmp * math.Sin(armPhase)
		fore := armSwingAmp * forearmAmp * math.Sin(armPhase-forearmLag)
		p.Elbow[i] = canvas.Point{
			X: p.Shoulder.X + upperArmLen*math.Sin(upper),
			Y: p.Shoulder.Y + upperArmLen*math.Cos(upper),
		}
		p.Hand[i] = canvas.Point{
			X: p.Elbow[i].X + lowerArmLen*math.Sin(fore+elbowBend),
			Y: p.Elbow[i].Y + lowerArmLen*math.Cos(fore+elbowBend),
		}
	}
	return p
}

// standingPose is the reduced-motion pose: a relaxed stand with a slight
// knee bend and arms at the sides. Cheap enough to recompute statelessly.
func standingPose(anchorX, groundY float64) Pose {
	var p Pose

	hipY := groundY - (standHeight - 0.5)
	p.Hip = canvas.Point{X: anchorX, Y: hipY}
	p.Shoulder = canvas.Point{X: anchorX + 0.5, Y: hipY - torsoLen}
	p.NeckTop = canvas.Point{X: anchorX + 0.25, Y: p.Shoulder.Y - neckLen}
	p.Head = canvas.Point{X: anchorX, Y: p.NeckTop.Y - headRadius}

	for i := 0; i < 2; i++ {
		side := float64(2*i - 1) // -1 left, +1 right
		p.Foot[i] = canvas.Point{X: anchorX + side*3, Y: groundY}
		p.Knee[i] = kneeFor(p.Hip, p.Foot[i])
		p.Elbow[i] = canvas.Point{
			X: p.Shoulder.X + side*1.5,
			Y: p.Shoulder.Y + upperArmLen,
		}
		p.Hand[i] = canvas.Point{
			X: p.Elbow[i].X + side*1.0,
			Y: p.Elbow[i].Y + lowerArmLen - 0.5,
		}
	}
	return p
}
