package game

import "math"

const (
	// Chase speed relative to patrol speed.
	chaseSpeedMult = 1.35

	// Catch margin added to the ball radius when testing capture.
	catchMargin = 10.0

	// Number of rays swept across the field-of-view fan.
	agentRaySteps = 56

	// Below this distance a chasing agent stops advancing instead of
	// jittering on top of the ball.
	chaseDeadzone = 1e-3
)

// Agent is a guard walking between two patrol endpoints. It chases the ball
// while, and only while, the ball is inside its wall-occluded vision cone;
// the Chasing flag is recomputed from scratch every tick with no memory of
// earlier sightings.
type Agent struct {
	AX, AY float64 // patrol endpoint A (also the spawn point)
	BX, BY float64
	X, Y   float64

	// FaceX/FaceY is a unit vector except transiently when both patrol
	// endpoints coincide.
	FaceX, FaceY float64

	PatrolSpeed float64
	ChaseSpeed  float64
	ConeLen     float64
	Chasing     bool

	fovHalf  float64 // radians
	dir      int     // +1 toward B, -1 toward A
	raySteps int
}

// NewAgent creates a patrolling agent from level data, standing at endpoint
// A and facing endpoint B.
func NewAgent(s AgentSpec) *Agent {
	fx, fy := normalize(s.BX-s.AX, s.BY-s.AY)
	return &Agent{
		AX: s.AX, AY: s.AY,
		BX: s.BX, BY: s.BY,
		X: s.AX, Y: s.AY,
		FaceX: fx, FaceY: fy,
		PatrolSpeed: s.Speed,
		ChaseSpeed:  s.Speed * chaseSpeedMult,
		ConeLen:     s.ConeLen,
		fovHalf:     (s.FOVDeg / 2) * math.Pi / 180,
		dir:         1,
		raySteps:    agentRaySteps,
	}
}

// Update advances the agent by dt seconds and returns true when the agent
// has caught the ball this tick. Catching is only reported, never acted on;
// ending the game is the caller's decision.
func (a *Agent) Update(dt float64, ball *Ball, walls []Rect) bool {
	a.Chasing = targetVisible(a.X, a.Y, a.FaceX, a.FaceY, a.fovHalf, a.ConeLen,
		ball.X, ball.Y, walls, ball.Concealed())

	if a.Chasing {
		a.chase(dt, ball)
	} else {
		a.patrol(dt)
	}

	return length(ball.X-a.X, ball.Y-a.Y) <= ball.R+catchMargin
}

// chase moves straight at the ball's current position at chase speed.
func (a *Agent) chase(dt float64, ball *Ball) {
	dx, dy := ball.X-a.X, ball.Y-a.Y
	dist := length(dx, dy)
	if dist <= chaseDeadzone {
		return
	}
	nx, ny := dx/dist, dy/dist
	a.X += nx * a.ChaseSpeed * dt
	a.Y += ny * a.ChaseSpeed * dt
	a.FaceX, a.FaceY = nx, ny
}

// patrol walks toward the current endpoint, snapping to it exactly on
// arrival so no overshoot accumulates across direction flips.
func (a *Agent) patrol(dt float64) {
	tx, ty := a.AX, a.AY
	if a.dir > 0 {
		tx, ty = a.BX, a.BY
	}
	dx, dy := tx-a.X, ty-a.Y
	dist := length(dx, dy)
	step := a.PatrolSpeed * dt
	if dist <= step {
		a.X, a.Y = tx, ty
		a.dir = -a.dir
		if a.dir > 0 {
			a.FaceX, a.FaceY = normalize(a.BX-a.AX, a.BY-a.AY)
		} else {
			a.FaceX, a.FaceY = normalize(a.AX-a.BX, a.AY-a.BY)
		}
		return
	}
	nx, ny := normalize(dx, dy)
	a.X += nx * step
	a.Y += ny * step
	a.FaceX, a.FaceY = nx, ny
}

// LightCone returns the wall-clipped field-of-view fan, observer first.
// The renderer fills it as a triangle fan; it is also the agent's effective
// sight area for debugging.
func (a *Agent) LightCone(walls []Rect) []Point {
	return fieldOfViewPolygon(a.X, a.Y, a.FaceX, a.FaceY, a.fovHalf, a.ConeLen, a.raySteps, walls)
}

// Sees reports whether the agent can currently see the ball. This is the
// same query Update uses to pick its state.
func (a *Agent) Sees(ball *Ball, walls []Rect) bool {
	return targetVisible(a.X, a.Y, a.FaceX, a.FaceY, a.fovHalf, a.ConeLen,
		ball.X, ball.Y, walls, ball.Concealed())
}

// Reset returns the agent to its spawn state: at endpoint A, patrolling
// toward B.
func (a *Agent) Reset() {
	a.X, a.Y = a.AX, a.AY
	a.dir = 1
	a.Chasing = false
	a.FaceX, a.FaceY = normalize(a.BX-a.AX, a.BY-a.AY)
}
