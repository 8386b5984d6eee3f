package game

import (
	"fmt"
	"math"
)

const (
	// tickDT is the fixed simulation timestep.
	tickDT = 1.0 / 60.0

	// Seconds the ball stays concealed after a smoke shot.
	smokeDuration = 2.6

	// Cooldown after a floor transition so the ball does not bounce
	// straight back through the same stair trigger.
	stairCooldown = 0.4

	// Duration of the hole drop animation before the level counts as done.
	dropDuration = 0.9

	// Shot input limits (the aim gesture is produced externally).
	maxShotPower = 1000.0
	shotScale    = 1.9
)

// World owns all mutable simulation state for one level: the ball, the
// current floor's walls, doors, stairs and agents. All stepping is
// single-threaded; the wall set is read-only during a tick.
type World struct {
	level *Level
	floor int

	ball   *Ball
	agents []*Agent
	doors  []*Door
	stairs []StairSpec
	walls  []Rect // floor walls plus closed door rects, rebuilt when doors change

	caught bool
	won    bool

	dropTimer     float64
	stairCooldown float64
	tick          int

	log *SimLog
}

// NewWorld builds a world from a validated level.
func NewWorld(l *Level) *World {
	w := &World{
		level: l,
		log:   NewSimLog(),
	}
	w.ball = NewBall(l.StartX, l.StartY)
	w.enterFloor(l.StartFloor)
	return w
}

// enterFloor swaps in a floor's geometry and respawns its agents and doors.
// Agents never persist across floors; each floor owns its roster.
func (w *World) enterFloor(idx int) {
	w.floor = idx
	f := &w.level.Floors[idx]

	w.agents = w.agents[:0]
	for _, spec := range f.Agents {
		w.agents = append(w.agents, NewAgent(spec))
	}
	w.doors = w.doors[:0]
	for _, spec := range f.Doors {
		w.doors = append(w.doors, NewDoor(spec))
	}
	w.stairs = f.Stairs
	w.rebuildWalls()
}

// rebuildWalls recomputes the active collider set: static walls plus every
// closed door. Open doors block nothing, for collision or line of sight.
func (w *World) rebuildWalls() {
	f := &w.level.Floors[w.floor]
	w.walls = w.walls[:0]
	w.walls = append(w.walls, f.Walls...)
	for _, d := range w.doors {
		if !d.Open {
			w.walls = append(w.walls, d.Rect)
		}
	}
}

// Step advances the simulation one tick of dt seconds: ball first, then
// agents, then the world-level outcome checks. Ticks are uninterruptible;
// there is no partial rollback.
func (w *World) Step(dt float64) {
	if w.caught {
		return
	}
	if w.won {
		if w.dropTimer > 0 {
			w.dropTimer = math.Max(0, w.dropTimer-dt)
		}
		return
	}
	w.tick++

	if w.stairCooldown > 0 {
		w.stairCooldown = math.Max(0, w.stairCooldown-dt)
	}

	for i, d := range w.doors {
		wasOpen := d.Open
		d.UpdateHack(dt, w.ball)
		if d.Open && !wasOpen {
			w.rebuildWalls()
			w.log.Add(w.tick, fmt.Sprintf("door-%d", i), "door", "opened", d.Color, 0)
		}
	}

	wasMoving := w.ball.InMotion
	w.ball.Update(dt, w.walls)
	if wasMoving && !w.ball.InMotion {
		w.log.Add(w.tick, "ball", "motion", "stopped",
			fmt.Sprintf("at (%.0f,%.0f)", w.ball.X, w.ball.Y), 0)
	}

	for i, a := range w.agents {
		wasChasing := a.Chasing
		caught := a.Update(dt, w.ball, w.walls)
		if a.Chasing && !wasChasing {
			w.log.Add(w.tick, fmt.Sprintf("agent-%d", i), "agent", "chase_start",
				fmt.Sprintf("spotted ball at (%.0f,%.0f)", w.ball.X, w.ball.Y), 0)
		} else if !a.Chasing && wasChasing {
			w.log.Add(w.tick, fmt.Sprintf("agent-%d", i), "agent", "chase_end", "lost sight", 0)
		}
		if caught && !w.won {
			w.caught = true
			w.log.Add(w.tick, fmt.Sprintf("agent-%d", i), "outcome", "caught",
				fmt.Sprintf("at (%.0f,%.0f)", w.ball.X, w.ball.Y), 0)
			return
		}
	}

	// Hole sink: the ball must be well inside the cup, on the right floor.
	if w.floor == w.level.HoleFloor &&
		length(w.ball.X-w.level.HoleX, w.ball.Y-w.level.HoleY) <= w.level.HoleR-2 {
		w.won = true
		w.dropTimer = dropDuration
		w.ball.VX, w.ball.VY = 0, 0
		w.ball.InMotion = false
		w.log.Add(w.tick, "ball", "outcome", "win",
			fmt.Sprintf("sank after %d ticks", w.tick), 0)
		return
	}

	// Stair triggers move the ball between floors, with a cooldown so it
	// does not immediately re-trigger on the destination floor.
	if w.stairCooldown <= 0 {
		for _, s := range w.stairs {
			if !s.Rect.Contains(w.ball.X, w.ball.Y) {
				continue
			}
			if s.Target >= 0 && s.Target < len(w.level.Floors) {
				from := w.floor
				w.enterFloor(s.Target)
				w.stairCooldown = stairCooldown
				w.log.Add(w.tick, "ball", "floor", "change",
					fmt.Sprintf("%d → %d", from, s.Target), float64(s.Target))
			}
			break
		}
	}
}

// ApplyShot applies a player shot: the raw aim vector is capped at the
// maximum shot power, then scaled to an impulse. A smoke shot additionally
// conceals the ball. Shots are ignored while the ball is rolling or the
// level is over.
func (w *World) ApplyShot(ix, iy float64, smoke bool) bool {
	if w.ball.InMotion || w.caught || w.won {
		return false
	}
	power := length(ix, iy)
	if power > maxShotPower {
		nx, ny := normalize(ix, iy)
		ix, iy = nx*maxShotPower, ny*maxShotPower
	}
	w.ball.ApplyImpulse(ix*shotScale, iy*shotScale)
	kind := "normal"
	if smoke {
		w.ball.SetConcealed(smokeDuration)
		kind = "smoke"
	}
	w.log.Add(w.tick, "ball", "shot", kind,
		fmt.Sprintf("impulse (%.0f,%.0f)", ix*shotScale, iy*shotScale), power)
	return true
}

// ApplyImpulse adds a raw velocity impulse to the ball, bypassing shot
// capping and scaling.
func (w *World) ApplyImpulse(ix, iy float64) {
	w.ball.ApplyImpulse(ix, iy)
}

// SetConcealed starts a concealment effect of d seconds on the ball.
func (w *World) SetConcealed(d float64) {
	w.ball.SetConcealed(d)
}

// Reset returns the level to its initial state: ball at the start position
// on the start floor, agents on their spawn endpoints, doors closed.
func (w *World) Reset() {
	w.ball = NewBall(w.level.StartX, w.level.StartY)
	w.caught = false
	w.won = false
	w.dropTimer = 0
	w.stairCooldown = 0
	w.enterFloor(w.level.StartFloor)
	w.log.Add(w.tick, "--", "outcome", "reset", "", 0)
}

// Ball returns the live ball.
func (w *World) Ball() *Ball { return w.ball }

// Agents returns the current floor's agents.
func (w *World) Agents() []*Agent { return w.agents }

// Doors returns the current floor's doors.
func (w *World) Doors() []*Door { return w.doors }

// Stairs returns the current floor's stair triggers.
func (w *World) Stairs() []StairSpec { return w.stairs }

// Walls returns the active collider set (static walls + closed doors).
// Callers must treat it as read-only for the duration of the tick.
func (w *World) Walls() []Rect { return w.walls }

// Level returns the immutable level record.
func (w *World) Level() *Level { return w.level }

// Floor returns the index of the floor the ball is on.
func (w *World) Floor() int { return w.floor }

// Caught reports whether a guard has caught the ball.
func (w *World) Caught() bool { return w.caught }

// Won reports whether the ball has sunk into the hole.
func (w *World) Won() bool { return w.won }

// DropFinished reports whether the post-win drop animation has completed.
func (w *World) DropFinished() bool { return w.won && w.dropTimer <= 0 }

// Tick returns the number of simulation ticks stepped so far.
func (w *World) Tick() int { return w.tick }

// Log returns the world's event log.
func (w *World) Log() *SimLog { return w.log }
