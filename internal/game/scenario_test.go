package game

import "testing"

// dumpLog prints the full SimLog so it appears in `go test -v` output.
func dumpLog(t *testing.T, s *Sim) {
	t.Helper()
	entries := s.World.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// --- Scenario: Door Hacking ---

func TestScenario_DoorOpensAfterDwellAtScreen(t *testing.T) {
	t.Log("=== Door hacking: resting ball at the screen opens the door ===")

	s := NewSim(
		WithDoor(DoorSpec{
			Rect:   Rect{X: 600, Y: 1000, W: 20, H: 200},
			Screen: Rect{X: 690, Y: 1090, W: 20, H: 20},
			Color:  "red",
		}),
		// The scratch ball start (700,1100) sits on the screen.
	)
	if len(s.World.Walls()) != 1 {
		t.Fatalf("closed door should be the only collider, got %d", len(s.World.Walls()))
	}

	opened := s.RunUntil(func(w *World) bool { return w.Doors()[0].Open }, 300)
	dumpLog(t, s)
	if opened < 0 {
		t.Fatal("door never opened")
	}
	// Two seconds of dwell at 60 Hz.
	if opened < 118 || opened > 122 {
		t.Fatalf("door should open after ~120 ticks of dwell, opened at %d", opened)
	}
	if len(s.World.Walls()) != 0 {
		t.Fatal("open door must leave the collider set")
	}
	if s.World.Doors()[0].HackProgress() != 1 {
		t.Fatalf("hack progress should read complete, got %g", s.World.Doors()[0].HackProgress())
	}
	if s.World.Log().FirstTick("door", "opened") != opened {
		t.Fatal("door opening should be logged at the opening tick")
	}
}

func TestScenario_HackProgressPersistsAcrossVisits(t *testing.T) {
	s := NewSim(
		WithBallAt(100, 100),
		WithDoor(DoorSpec{
			Rect:   Rect{X: 600, Y: 1000, W: 20, H: 200},
			Screen: Rect{X: 90, Y: 90, W: 20, H: 20},
		}),
	)
	s.RunTicks(60) // one second of hacking
	door := s.World.Doors()[0]
	half := door.HackProgress()
	if half < 0.45 || half > 0.55 {
		t.Fatalf("expected roughly half progress, got %g", half)
	}

	// Knock the ball away; progress must hold.
	s.World.ApplyImpulse(400, 0)
	s.RunTicks(240)
	if door.Open {
		t.Fatal("door must not open while the ball is away")
	}
	if door.HackProgress() < half-1e-9 {
		t.Fatalf("progress should persist, got %g (was %g)", door.HackProgress(), half)
	}
}

// --- Scenario: Smoke ---

func TestScenario_SmokeDelaysChaseUntilExpiry(t *testing.T) {
	t.Log("=== Smoke: a concealed ball in plain view is not chased until the cloud clears ===")

	s := NewSim(
		WithBallAt(550, 1100),
		WithAgentSpec(AgentSpec{
			AX: 400, AY: 1100, BX: 410, BY: 1100,
			Speed: 10, FOVDeg: defaultAgentFOVDeg, ConeLen: defaultAgentConeLen,
		}),
		// A negligible smoke tap: the ball barely moves but the cloud pops.
		WithShotAt(0, 1, 0, true),
	)

	caughtAt := s.RunUntil(func(w *World) bool { return w.Caught() }, 3000)
	dumpLog(t, s)
	if caughtAt < 0 {
		t.Fatal("guard should eventually chase down the stationary ball")
	}

	firstChase := s.World.Log().FirstTick("agent", "chase_start")
	if firstChase < 0 {
		t.Fatal("expected a chase once the smoke cleared")
	}
	smokeTicks := int(smokeDuration / tickDT)
	if firstChase < smokeTicks {
		t.Fatalf("chase started at tick %d, inside the %d-tick smoke window", firstChase, smokeTicks)
	}
	if s.World.Log().FirstTick("outcome", "caught") < firstChase {
		t.Fatal("catch cannot precede the chase here")
	}
}

// --- Scenario: Guards ---

func TestScenario_PatrollingGuardCatchesBallInItsPath(t *testing.T) {
	t.Log("=== Guard: a ball resting on the patrol line gets spotted and caught ===")

	s := NewSim(
		WithBallAt(700, 1100),
		WithAgent(400, 1100, 900, 1100),
	)

	caughtAt := s.RunUntil(func(w *World) bool { return w.Caught() }, 1200)
	dumpLog(t, s)
	if caughtAt < 0 {
		t.Fatal("guard walking through the ball should catch it")
	}
	firstChase := s.World.Log().FirstTick("agent", "chase_start")
	if firstChase < 0 || firstChase > caughtAt {
		t.Fatalf("guard should spot the ball before catching it (chase=%d caught=%d)", firstChase, caughtAt)
	}

	// Frozen aftermath: no further ticks, no further log entries.
	n := len(s.World.Log().Entries())
	s.RunTicks(60)
	if s.World.Tick() != caughtAt || len(s.World.Log().Entries()) != n {
		t.Fatal("a caught world must stay frozen")
	}
}

func TestScenario_WallHidesBallFromPassingGuard(t *testing.T) {
	s := NewSim(
		WithBallAt(700, 1300),
		// Wall between the patrol line and the ball.
		WithWall(400, 1180, 500, 40),
		WithAgent(400, 1100, 900, 1100),
	)
	s.RunTicks(1200)
	if s.World.Caught() {
		t.Fatal("guard should never see or reach the ball behind the wall")
	}
	if s.World.Log().CountCategory("agent", "chase_start") != 0 {
		t.Fatal("no chase should start through a wall")
	}
}

// --- Scenario: Sinking the ball ---

func TestScenario_StraightPuttSinks(t *testing.T) {
	t.Log("=== Putt: a straight shot rolls across the cup and sinks ===")

	s := NewSim(
		WithBallAt(200, 50),
		WithHoleAt(50, 50, defaultHoleRadius),
		WithShotAt(0, -150, 0, false),
	)

	wonAt := s.RunUntil(func(w *World) bool { return w.Won() }, 1200)
	dumpLog(t, s)
	if wonAt < 0 {
		t.Fatalf("putt should sink, ball ended at (%g,%g)", s.World.Ball().X, s.World.Ball().Y)
	}
	if !s.World.Log().HasEntry("outcome", "win", "") {
		t.Fatal("win should be logged")
	}
	done := s.RunUntil(func(w *World) bool { return w.DropFinished() }, 120)
	if done < 0 {
		t.Fatal("drop animation should finish")
	}
}

// --- Scenario: Floors ---

// twoFloorLevel builds a level whose start position sits on a stair trigger
// on both floors, so transitions ping-pong as soon as the cooldown allows.
func twoFloorLevel() *Level {
	stairRect := Rect{X: 80, Y: 80, W: 60, H: 60}
	return &Level{
		Name:   "two-floor",
		WorldW: 600, WorldH: 600,
		StartX: 110, StartY: 110,
		HoleX: 500, HoleY: 500, HoleR: defaultHoleRadius, HoleFloor: 1,
		Floors: []Floor{
			{Stairs: []StairSpec{{Rect: stairRect, Dir: "up", Target: 1}}},
			{Stairs: []StairSpec{{Rect: stairRect, Dir: "down", Target: 0}}},
		},
	}
}

func TestScenario_StairCooldownPreventsBounceback(t *testing.T) {
	t.Log("=== Stairs: the transition cooldown stops an immediate return trip ===")

	s := NewSim(WithLevel(twoFloorLevel()))
	s.RunTicks(1)
	if s.World.Floor() != 1 {
		t.Fatalf("ball on the trigger should change floors at once, on floor %d", s.World.Floor())
	}

	// Inside the cooldown window the matching trigger upstairs stays cold.
	cooldownTicks := int(stairCooldown / tickDT)
	s.RunTicks(cooldownTicks - 2)
	if s.World.Floor() != 1 {
		t.Fatal("cooldown should hold the ball on the destination floor")
	}

	// Once it expires the return trigger fires.
	s.RunTicks(4)
	dumpLog(t, s)
	if s.World.Floor() != 0 {
		t.Fatalf("expired cooldown should allow the return trip, on floor %d", s.World.Floor())
	}
	changes := s.World.Log().Filter("floor", "change")
	if len(changes) != 2 {
		t.Fatalf("expected exactly 2 floor changes, got %d", len(changes))
	}
	if gap := changes[1].Tick - changes[0].Tick; gap < cooldownTicks {
		t.Fatalf("floor changes only %d ticks apart, cooldown is %d", gap, cooldownTicks)
	}
}

func TestScenario_AgentsRespawnOnFloorChange(t *testing.T) {
	l := twoFloorLevel()
	l.Floors[1].Agents = []AgentSpec{{
		AX: 400, AY: 110, BX: 500, BY: 110,
		Speed: defaultAgentSpeed, FOVDeg: defaultAgentFOVDeg, ConeLen: 100,
	}}
	s := NewSim(WithLevel(l))
	if len(s.World.Agents()) != 0 {
		t.Fatal("floor 0 has no guards")
	}
	s.RunTicks(1)
	if s.World.Floor() != 1 || len(s.World.Agents()) != 1 {
		t.Fatalf("floor 1 guard should spawn on arrival, got %d agents", len(s.World.Agents()))
	}
	a := s.World.Agents()[0]
	if a.X != 400 || a.Y != 110 {
		t.Fatalf("guard should spawn at endpoint A, got (%g,%g)", a.X, a.Y)
	}
}
