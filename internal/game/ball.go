package game

import "math"

const (
	ballRadius = 14.0

	// Base rolling friction, applied as a per-tick multiplier tuned for
	// 60 Hz. Not true exponential decay; close enough at a fixed timestep.
	baseFriction = 0.985

	// Below stopSpeed the ball halts outright.
	stopSpeed = 5.0

	// Low-speed damping: below lowSpeedThreshold an extra decay factor
	// bleeds velocity so the ball never creeps at barely-visible speed.
	// The factor blends lowSpeedDampBase (near stop) with
	// lowSpeedDampNear (near the threshold), per 60 FPS frame.
	lowSpeedThreshold = 140.0
	lowSpeedDampBase  = 0.78
	lowSpeedDampNear  = 0.92
	lowSpeedSnap      = 30.0
)

// Ball is the player-controlled rolling ball. One Ball exists per level; the
// world replaces it wholesale on level load or reset.
type Ball struct {
	X, Y     float64
	VX, VY   float64
	R        float64
	InMotion bool

	smokeTimer float64
}

// NewBall creates a resting ball at (x,y) with the standard radius.
func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y, R: ballRadius}
}

// ApplyImpulse adds (ix,iy) to the ball's velocity. Any non-zero impulse
// puts the ball in motion.
func (b *Ball) ApplyImpulse(ix, iy float64) {
	b.VX += ix
	b.VY += iy
	if ix != 0 || iy != 0 {
		b.InMotion = true
	}
}

// SetConcealed starts (or restarts) the concealment effect for d seconds.
// While active the ball is invisible to agents regardless of geometry.
func (b *Ball) SetConcealed(d float64) {
	b.smokeTimer = math.Max(0, d)
}

// Concealed reports whether the concealment effect is active.
func (b *Ball) Concealed() bool {
	return b.smokeTimer > 0
}

// ConcealedRemaining returns the seconds of concealment left.
func (b *Ball) ConcealedRemaining() float64 {
	return b.smokeTimer
}

// Update advances the ball by dt seconds: explicit Euler integration, one
// collision pass per wall, then friction and low-speed damping. It never
// fails; degenerate inputs are absorbed by the geometry helpers.
func (b *Ball) Update(dt float64, walls []Rect) {
	b.X += b.VX * dt
	b.Y += b.VY * dt

	for _, w := range walls {
		resolveCircleWall(b, w)
	}

	speed := length(b.VX, b.VY)
	if speed < stopSpeed {
		b.VX, b.VY = 0, 0
		b.InMotion = false
	} else {
		b.VX *= baseFriction
		b.VY *= baseFriction

		if speed < lowSpeedThreshold {
			// Blend the two damping constants by how far below the
			// threshold the speed is, raised to dt*60 for frame-rate
			// independence.
			t := clamp(1-speed/lowSpeedThreshold, 0, 1)
			perFrame := lowSpeedDampBase*(1-t) + lowSpeedDampNear*t
			damp := math.Pow(perFrame, math.Max(1, dt*60))
			b.VX *= damp
			b.VY *= damp
			if length(b.VX, b.VY) < lowSpeedSnap {
				b.VX, b.VY = 0, 0
				b.InMotion = false
			}
		}
	}

	if b.smokeTimer > 0 {
		b.smokeTimer = math.Max(0, b.smokeTimer-dt)
	}
}
