package game

import (
	"math"
	"testing"
)

func testAgentSpec() AgentSpec {
	return AgentSpec{
		AX: 0, AY: 0, BX: 100, BY: 0,
		Speed: 100, FOVDeg: 60, ConeLen: 260,
	}
}

// farBall is a resting ball placed well outside any cone.
func farBall() *Ball {
	return NewBall(10000, 10000)
}

func TestAgent_SpawnsAtAFacingB(t *testing.T) {
	a := NewAgent(testAgentSpec())
	if a.X != 0 || a.Y != 0 {
		t.Fatalf("agent should spawn at endpoint A, got (%g,%g)", a.X, a.Y)
	}
	if a.FaceX != 1 || a.FaceY != 0 {
		t.Fatalf("agent should face toward B, got (%g,%g)", a.FaceX, a.FaceY)
	}
	if math.Abs(a.ChaseSpeed-135) > 1e-9 {
		t.Fatalf("chase speed should be patrol speed x1.35, got %g", a.ChaseSpeed)
	}
}

func TestAgent_PatrolSnapsToEndpointAndFlips(t *testing.T) {
	a := NewAgent(testAgentSpec())
	b := farBall()
	a.Update(0.5, b, nil) // 50 units
	a.Update(0.5, b, nil) // arrives exactly at B
	if a.X != 100 || a.Y != 0 {
		t.Fatalf("agent should snap exactly onto B, got (%g,%g)", a.X, a.Y)
	}
	if a.FaceX != -1 || a.FaceY != 0 {
		t.Fatalf("agent should turn back toward A, got facing (%g,%g)", a.FaceX, a.FaceY)
	}
	a.Update(0.5, b, nil)
	if a.X != 50 {
		t.Fatalf("agent should walk back toward A, got x=%g", a.X)
	}
}

func TestAgent_PatrolStaysOnSegment(t *testing.T) {
	a := NewAgent(testAgentSpec())
	b := farBall()
	for i := 0; i < 600; i++ {
		a.Update(tickDT, b, nil)
		if a.X < -1e-9 || a.X > 100+1e-9 || math.Abs(a.Y) > 1e-9 {
			t.Fatalf("tick %d: agent left the patrol segment at (%g,%g)", i, a.X, a.Y)
		}
	}
}

func TestAgent_ChasesVisibleBall(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(150, 0) // dead ahead, inside the cone
	a.Update(tickDT, ball, nil)
	if !a.Chasing {
		t.Fatal("agent should chase a visible ball")
	}
	expected := a.ChaseSpeed * tickDT
	if math.Abs(a.X-expected) > 1e-9 {
		t.Fatalf("agent should advance at chase speed, got x=%g want %g", a.X, expected)
	}
	if a.FaceX != 1 || a.FaceY != 0 {
		t.Fatal("chasing agent should face the ball")
	}
}

func TestAgent_NoChaseMemory(t *testing.T) {
	// The chase flag is recomputed every tick; losing sight drops the
	// chase immediately with no grace period.
	a := NewAgent(testAgentSpec())
	ball := NewBall(150, 0)
	a.Update(tickDT, ball, nil)
	if !a.Chasing {
		t.Fatal("setup: ball should be visible")
	}
	ball.X = -150 // behind the agent
	a.Update(tickDT, ball, nil)
	if a.Chasing {
		t.Fatal("chase must end the tick sight is lost")
	}
}

func TestAgent_SmokeSuppressesChase(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(150, 0)
	ball.SetConcealed(1)
	a.Update(tickDT, ball, nil)
	if a.Chasing {
		t.Fatal("concealed ball must not trigger a chase")
	}
}

func TestAgent_WallBlocksChase(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(150, 0)
	walls := []Rect{{X: 50, Y: -50, W: 20, H: 100}}
	a.Update(tickDT, ball, walls)
	if a.Chasing {
		t.Fatal("occluded ball must not trigger a chase")
	}
}

func TestAgent_CatchWithinMargin(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(a.X+ballRadius+catchMargin-1, 0)
	if !a.Update(tickDT, ball, nil) {
		t.Fatal("ball within radius+margin should be caught")
	}
}

func TestAgent_CatchIgnoresConcealment(t *testing.T) {
	// Capture is physical contact; smoke hides the ball from sight but
	// does not stop a guard from stumbling into it.
	a := NewAgent(testAgentSpec())
	ball := NewBall(a.X+5, a.Y)
	ball.SetConcealed(5)
	if !a.Update(tickDT, ball, nil) {
		t.Fatal("adjacent concealed ball should still be caught")
	}
	if a.Chasing {
		t.Fatal("catching by contact must not flag a chase")
	}
}

func TestAgent_NoCatchJustOutsideMargin(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(10000, 10000)
	if a.Update(tickDT, ball, nil) {
		t.Fatal("distant ball must not be caught")
	}
}

func TestAgent_ChaseOnTopOfBallIsStable(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(a.X, a.Y)
	caught := a.Update(tickDT, ball, nil)
	if !caught {
		t.Fatal("coincident ball is caught")
	}
	if math.IsNaN(a.X) || math.IsNaN(a.FaceX) {
		t.Fatal("zero-distance chase must not produce NaN")
	}
}

func TestAgent_ResetReturnsToSpawn(t *testing.T) {
	a := NewAgent(testAgentSpec())
	ball := NewBall(150, 0)
	for i := 0; i < 30; i++ {
		a.Update(tickDT, ball, nil)
	}
	a.Reset()
	if a.X != 0 || a.Y != 0 || a.Chasing {
		t.Fatalf("reset should restore spawn state, got (%g,%g) chasing=%v", a.X, a.Y, a.Chasing)
	}
	if a.FaceX != 1 || a.FaceY != 0 {
		t.Fatal("reset should face toward B again")
	}
}
