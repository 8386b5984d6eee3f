package game

// Sim is a headless simulation harness used by scenario tests and the
// headless-report command. It steps a World at the fixed 60 Hz timestep
// with no Ebiten dependency and can inject scripted shots.
type Sim struct {
	World *World

	level *Level
	shots []scriptedShot
}

type scriptedShot struct {
	tick  int
	ix    float64
	iy    float64
	smoke bool
}

// SimOption is a builder function applied to a Sim during construction.
// Infrastructure options (world size, level) apply before entity options
// (walls, agents, ball position).
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // level selection, world size
	simOptEntity                      // walls, agents, doors, ball placement
)

// WithLevel runs the simulation on a full level record.
func WithLevel(l *Level) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.level = l
	}}
}

// WithWorldSize sets the playfield dimensions of the harness's scratch
// level. Ignored when WithLevel is given.
func WithWorldSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.level.WorldW = w
		s.level.WorldH = h
	}}
}

// WithWall adds a wall rectangle to floor zero of the scratch level.
func WithWall(x, y, w, h float64) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.level.Floors[0].Walls = append(s.level.Floors[0].Walls, Rect{X: x, Y: y, W: w, H: h})
	}}
}

// WithAgent adds a guard patrolling from (ax,ay) to (bx,by) with default
// speed, field of view and cone length.
func WithAgent(ax, ay, bx, by float64) SimOption {
	return WithAgentSpec(AgentSpec{
		AX: ax, AY: ay, BX: bx, BY: by,
		Speed: defaultAgentSpeed, FOVDeg: defaultAgentFOVDeg, ConeLen: defaultAgentConeLen,
	})
}

// WithAgentSpec adds a guard with explicit tuning.
func WithAgentSpec(spec AgentSpec) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.level.Floors[0].Agents = append(s.level.Floors[0].Agents, spec)
	}}
}

// WithDoor adds a hackable door to floor zero.
func WithDoor(spec DoorSpec) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.level.Floors[0].Doors = append(s.level.Floors[0].Doors, spec)
	}}
}

// WithBallAt sets the ball's start position.
func WithBallAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.level.StartX = x
		s.level.StartY = y
	}}
}

// WithHoleAt places the hole.
func WithHoleAt(x, y, r float64) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.level.HoleX = x
		s.level.HoleY = y
		s.level.HoleR = r
	}}
}

// WithShotAt schedules a shot to fire at the given tick.
func WithShotAt(tick int, ix, iy float64, smoke bool) SimOption {
	return SimOption{simOptEntity, func(s *Sim) {
		s.shots = append(s.shots, scriptedShot{tick: tick, ix: ix, iy: iy, smoke: smoke})
	}}
}

// NewSim constructs a harness in two ordered passes: infrastructure first,
// then entities, then the World is built from the assembled level. Without
// WithLevel a hole-in-a-corner scratch level is used so scenarios can place
// geometry freely.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		level: &Level{
			Name:   "harness",
			WorldW: 1400, WorldH: 2200,
			StartX: 700, StartY: 1100,
			HoleX: 50, HoleY: 50, HoleR: defaultHoleRadius,
			Floors: []Floor{{}},
		},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(s)
		}
	}
	s.World = NewWorld(s.level)
	return s
}

// RunTicks advances the simulation n ticks at 1/60 s, firing any scripted
// shots when their tick arrives.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.stepOne()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. It returns the tick at which the predicate was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*World) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.stepOne()
		if predicate(s.World) {
			return s.World.Tick()
		}
	}
	return -1
}

func (s *Sim) stepOne() {
	for _, shot := range s.shots {
		if shot.tick == s.World.Tick() {
			s.World.ApplyShot(shot.ix, shot.iy, shot.smoke)
		}
	}
	s.World.Step(tickDT)
}
