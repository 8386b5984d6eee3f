package game

// Snapshot is a per-tick copy of the world's observable state, shaped for
// JSON streaming to a spectator client and for report tooling. It contains
// no pointers into live simulation state.
type Snapshot struct {
	Tick   int          `json:"tick"`
	Floor  int          `json:"floor"`
	Caught bool         `json:"caught"`
	Won    bool         `json:"won"`
	Ball   BallState    `json:"ball"`
	Agents []AgentState `json:"agents"`
	Doors  []DoorState  `json:"doors,omitempty"`
}

// BallState is the ball's kinematic state at a tick.
type BallState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	R         float64 `json:"r"`
	InMotion  bool    `json:"inMotion"`
	Concealed bool    `json:"concealed"`
}

// AgentState is one agent's pose plus its light-cone polygon.
type AgentState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	FaceX   float64 `json:"faceX"`
	FaceY   float64 `json:"faceY"`
	Chasing bool    `json:"chasing"`
	Cone    []Point `json:"cone"`
}

// DoorState is one door's visible state.
type DoorState struct {
	Rect         Rect    `json:"rect"`
	Screen       Rect    `json:"screen"`
	Color        string  `json:"color"`
	Open         bool    `json:"open"`
	HackProgress float64 `json:"hackProgress"`
}

// StaticState describes the geometry that never changes during a level,
// sent once when a spectator joins.
type StaticState struct {
	Name   string  `json:"name"`
	WorldW float64 `json:"worldW"`
	WorldH float64 `json:"worldH"`
	HoleX  float64 `json:"holeX"`
	HoleY  float64 `json:"holeY"`
	HoleR  float64 `json:"holeR"`
	Floors []Floor `json:"floors"`
}

// Snapshot captures the current world state, including each agent's
// wall-clipped cone polygon.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		Floor:  w.floor,
		Caught: w.caught,
		Won:    w.won,
		Ball: BallState{
			X: w.ball.X, Y: w.ball.Y,
			VX: w.ball.VX, VY: w.ball.VY,
			R:         w.ball.R,
			InMotion:  w.ball.InMotion,
			Concealed: w.ball.Concealed(),
		},
	}
	for _, a := range w.agents {
		s.Agents = append(s.Agents, AgentState{
			X: a.X, Y: a.Y,
			FaceX: a.FaceX, FaceY: a.FaceY,
			Chasing: a.Chasing,
			Cone:    a.LightCone(w.walls),
		})
	}
	for _, d := range w.doors {
		s.Doors = append(s.Doors, DoorState{
			Rect:         d.Rect,
			Screen:       d.Screen,
			Color:        d.Color,
			Open:         d.Open,
			HackProgress: d.HackProgress(),
		})
	}
	return s
}

// StaticState returns the level geometry for a joining spectator.
func (w *World) StaticState() StaticState {
	return StaticState{
		Name:   w.level.Name,
		WorldW: w.level.WorldW,
		WorldH: w.level.WorldH,
		HoleX:  w.level.HoleX,
		HoleY:  w.level.HoleY,
		HoleR:  w.level.HoleR,
		Floors: w.level.Floors,
	}
}
