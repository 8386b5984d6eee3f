package game

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	defaultAgentSpeed   = 80.0
	defaultAgentFOVDeg  = 60.0
	defaultAgentConeLen = 260.0
	defaultHoleRadius   = 22.0
)

// AgentSpec is the level-data description of one guard: two patrol
// endpoints plus tuning. It is immutable; the live Agent copies from it.
type AgentSpec struct {
	AX      float64 `json:"ax"`
	AY      float64 `json:"ay"`
	BX      float64 `json:"bx"`
	BY      float64 `json:"by"`
	Speed   float64 `json:"speed"`
	FOVDeg  float64 `json:"fovDeg"`
	ConeLen float64 `json:"coneLen"`
}

// StairSpec is a trigger rectangle that moves the ball to another floor.
type StairSpec struct {
	Rect   Rect   `json:"rect"`
	Dir    string `json:"dir"` // "up" or "down", used by the renderer
	Target int    `json:"target"`
}

// DoorSpec describes a hackable door: the door rect blocks like a wall
// until hacked open via the adjacent screen rect.
type DoorSpec struct {
	Rect   Rect   `json:"rect"`
	Screen Rect   `json:"screen"`
	Color  string `json:"color"`
}

// DecorSpec is a purely cosmetic rectangle (rug, vent, elevator shaft).
type DecorSpec struct {
	Kind string `json:"kind"`
	Rect Rect   `json:"rect"`
}

// Floor holds the static geometry and agent roster for one floor.
type Floor struct {
	Walls  []Rect      `json:"walls"`
	Agents []AgentSpec `json:"agents,omitempty"`
	Stairs []StairSpec `json:"stairs,omitempty"`
	Doors  []DoorSpec  `json:"doors,omitempty"`
	Decor  []DecorSpec `json:"decor,omitempty"`
}

// Level is the fully-typed level record handed to the simulation. The core
// never sees raw JSON maps; everything is decoded and validated here.
type Level struct {
	Name       string
	WorldW     float64
	WorldH     float64
	StartX     float64
	StartY     float64
	StartFloor int
	HoleX      float64
	HoleY      float64
	HoleR      float64
	HoleFloor  int
	Floors     []Floor
}

// Wire-format records matching the stealth_level_N.json files. Walls are
// [x,y,w,h] quads; a file without a "floors" array folds its top-level
// walls/agents/stairs into a single floor zero.
type levelJSON struct {
	Name       string      `json:"name"`
	World      worldJSON   `json:"world"`
	Start      []float64   `json:"start"`
	StartFloor int         `json:"start_floor"`
	Hole       holeJSON    `json:"hole"`
	HoleFloor  int         `json:"hole_floor"`
	Floors     []floorJSON `json:"floors"`

	// Flat single-floor form.
	Walls  [][4]float64 `json:"walls"`
	Agents []agentJSON  `json:"agents"`
	Stairs []stairJSON  `json:"ramps"`
	Decor  []decorJSON  `json:"decor"`
}

type worldJSON struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type holeJSON struct {
	CX float64  `json:"cx"`
	CY float64  `json:"cy"`
	R  *float64 `json:"r"`
}

type floorJSON struct {
	Walls  [][4]float64 `json:"walls"`
	Agents []agentJSON  `json:"agents"`
	Stairs []stairJSON  `json:"stairs"`
	Doors  []doorJSON   `json:"doors"`
	Decor  []decorJSON  `json:"decor"`
}

type agentJSON struct {
	A       []float64 `json:"a"`
	B       []float64 `json:"b"`
	Speed   *float64  `json:"speed"`
	FOVDeg  *float64  `json:"fov_deg"`
	ConeLen *float64  `json:"cone_len"`
}

type stairJSON struct {
	Rect   [4]float64 `json:"rect"`
	Dir    string     `json:"dir"`
	Target *int       `json:"target"`
}

type doorJSON struct {
	Rect   [4]float64 `json:"rect"`
	Screen [4]float64 `json:"screen"`
	Color  string     `json:"color"`
}

type decorJSON struct {
	Kind string     `json:"kind"`
	Rect [4]float64 `json:"rect"`
}

// LoadLevel reads and parses a level file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	l, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return l, nil
}

// ParseLevel decodes a JSON level and validates it.
func ParseLevel(data []byte) (*Level, error) {
	var raw levelJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	l := &Level{
		Name:       raw.Name,
		WorldW:     raw.World.W,
		WorldH:     raw.World.H,
		StartFloor: raw.StartFloor,
		HoleX:      raw.Hole.CX,
		HoleY:      raw.Hole.CY,
		HoleR:      defaultHoleRadius,
		HoleFloor:  raw.HoleFloor,
	}
	if len(raw.Start) >= 2 {
		l.StartX, l.StartY = raw.Start[0], raw.Start[1]
	}
	if raw.Hole.R != nil {
		l.HoleR = *raw.Hole.R
	}

	floors := raw.Floors
	if len(floors) == 0 {
		floors = []floorJSON{{
			Walls:  raw.Walls,
			Agents: raw.Agents,
			Stairs: raw.Stairs,
			Decor:  raw.Decor,
		}}
	}
	for i, f := range floors {
		fl := Floor{}
		for _, w := range f.Walls {
			fl.Walls = append(fl.Walls, quadToRect(w))
		}
		for j, a := range f.Agents {
			if len(a.A) < 2 || len(a.B) < 2 {
				return nil, fmt.Errorf("floor %d agent %d: missing patrol endpoints", i, j)
			}
			spec := AgentSpec{
				AX: a.A[0], AY: a.A[1],
				BX: a.B[0], BY: a.B[1],
				Speed:   defaultAgentSpeed,
				FOVDeg:  defaultAgentFOVDeg,
				ConeLen: defaultAgentConeLen,
			}
			if a.Speed != nil {
				spec.Speed = *a.Speed
			}
			if a.FOVDeg != nil {
				spec.FOVDeg = *a.FOVDeg
			}
			if a.ConeLen != nil {
				spec.ConeLen = *a.ConeLen
			}
			fl.Agents = append(fl.Agents, spec)
		}
		for _, s := range f.Stairs {
			dir := s.Dir
			if dir == "" {
				dir = "up"
			}
			target := i + 1
			if dir == "down" {
				target = i - 1
			}
			if s.Target != nil {
				target = *s.Target
			}
			fl.Stairs = append(fl.Stairs, StairSpec{Rect: quadToRect(s.Rect), Dir: dir, Target: target})
		}
		for _, d := range f.Doors {
			fl.Doors = append(fl.Doors, DoorSpec{
				Rect:   quadToRect(d.Rect),
				Screen: quadToRect(d.Screen),
				Color:  d.Color,
			})
		}
		for _, d := range f.Decor {
			fl.Decor = append(fl.Decor, DecorSpec{Kind: d.Kind, Rect: quadToRect(d.Rect)})
		}
		l.Floors = append(l.Floors, fl)
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func quadToRect(q [4]float64) Rect {
	return Rect{X: q[0], Y: q[1], W: q[2], H: q[3]}
}

// Validate checks the structural constraints the simulation relies on.
// Geometry outside world bounds is a level-authoring bug and rejected here
// so the core never has to defend against it.
func (l *Level) Validate() error {
	if l.WorldW <= 0 || l.WorldH <= 0 {
		return fmt.Errorf("world size must be positive, got %gx%g", l.WorldW, l.WorldH)
	}
	if len(l.Floors) == 0 {
		return fmt.Errorf("level has no floors")
	}
	if l.StartFloor < 0 || l.StartFloor >= len(l.Floors) {
		return fmt.Errorf("start_floor %d out of range (floors=%d)", l.StartFloor, len(l.Floors))
	}
	if l.HoleFloor < 0 || l.HoleFloor >= len(l.Floors) {
		return fmt.Errorf("hole_floor %d out of range (floors=%d)", l.HoleFloor, len(l.Floors))
	}
	if l.HoleR <= 0 {
		return fmt.Errorf("hole radius must be positive, got %g", l.HoleR)
	}
	for i, f := range l.Floors {
		for j, w := range f.Walls {
			if w.W < 0 || w.H < 0 {
				return fmt.Errorf("floor %d wall %d: negative size %gx%g", i, j, w.W, w.H)
			}
		}
		for j, a := range f.Agents {
			if a.Speed <= 0 {
				return fmt.Errorf("floor %d agent %d: speed must be positive, got %g", i, j, a.Speed)
			}
			if a.FOVDeg <= 0 || a.FOVDeg > 360 {
				return fmt.Errorf("floor %d agent %d: fov %g out of range", i, j, a.FOVDeg)
			}
			if a.ConeLen <= 0 {
				return fmt.Errorf("floor %d agent %d: cone length must be positive, got %g", i, j, a.ConeLen)
			}
		}
		for j, s := range f.Stairs {
			if s.Target < 0 || s.Target >= len(l.Floors) {
				return fmt.Errorf("floor %d stair %d: target %d out of range", i, j, s.Target)
			}
		}
	}
	return nil
}

// FallbackLevel is the built-in single-floor level used when no level file
// is available: a walled arena with one patrolling guard.
func FallbackLevel() *Level {
	return &Level{
		Name:   "fallback",
		WorldW: 1400, WorldH: 2200,
		StartX: 240, StartY: 220,
		HoleX: 1240, HoleY: 2020, HoleR: defaultHoleRadius,
		Floors: []Floor{{
			Walls: []Rect{
				{X: 0, Y: 0, W: 1400, H: 40},
				{X: 0, Y: 0, W: 40, H: 2200},
				{X: 1360, Y: 0, W: 40, H: 2200},
				{X: 0, Y: 2160, W: 1400, H: 40},
			},
			Agents: []AgentSpec{{
				AX: 300, AY: 600, BX: 1000, BY: 600,
				Speed: 90, FOVDeg: defaultAgentFOVDeg, ConeLen: defaultAgentConeLen,
			}},
		}},
	}
}
