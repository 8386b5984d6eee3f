package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// View size matches the original handheld layout: a tall window scrolling
// over a larger course.
const (
	viewW = 480
	viewH = 800
)

// Game wraps a World with input handling, a ball-following camera and
// rendering. It implements ebiten.Game at a fixed 60 Hz.
type Game struct {
	world    *World
	levels   []*Level
	levelIdx int

	camX, camY float64

	// Aim gesture state. The shot vector is aim start minus current drag
	// position, so pulling back and releasing slings the ball forward.
	aiming               bool
	aimStartX, aimStartY float64
	aimCurX, aimCurY     float64
	smokeMode            bool

	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool

	// Offscreen buffer for light-cone rendering; fans are drawn solid
	// then composited once at low alpha to avoid additive blowout.
	coneBuf *ebiten.Image
}

// New creates a Game over the given level rotation. With no levels it plays
// the guard-patrolled fallback level followed by the embedded courses.
func New(levels ...*Level) *Game {
	if len(levels) == 0 {
		levels = append([]*Level{FallbackLevel()}, DemoLevels()...)
	}
	g := &Game{
		levels:   levels,
		prevKeys: make(map[ebiten.Key]bool),
	}
	g.loadLevel(0)
	return g
}

// loadLevel swaps in the level at idx (wrapping) and rebuilds buffers.
func (g *Game) loadLevel(idx int) {
	g.levelIdx = ((idx % len(g.levels)) + len(g.levels)) % len(g.levels)
	l := g.levels[g.levelIdx]
	g.world = NewWorld(l)
	g.coneBuf = ebiten.NewImage(int(l.WorldW), int(l.WorldH))
	g.aiming = false
}

// Update runs one 60 Hz frame: input, simulation step, level rotation and
// camera follow.
func (g *Game) Update() error {
	g.handleKeys()
	g.handleMouse()

	g.world.Step(tickDT)
	if g.world.DropFinished() {
		g.loadLevel(g.levelIdx + 1)
	}

	g.updateCamera()
	return nil
}

// updateCamera keeps the ball framed with extra look-ahead below it,
// clamped to the world bounds.
func (g *Game) updateCamera() {
	l := g.world.Level()
	g.camX = clamp(g.world.Ball().X-viewW*0.5, 0, l.WorldW-viewW)
	g.camY = clamp(g.world.Ball().Y-viewH*0.28, 0, l.WorldH-viewH)
}

// screenToWorld converts window coordinates to world coordinates.
func (g *Game) screenToWorld(sx, sy float64) (float64, float64) {
	return sx + g.camX, sy + g.camY
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewW, viewH
}
