package game

import "github.com/hajimehoshi/ebiten/v2"

// Radius around the resting ball within which an aim gesture may start.
const aimGrabMargin = 36.0

// keyJustPressed is an edge detector over the previous frame's key state.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k) && !g.prevKeys[k]
}

// handleKeys processes mode and reset keys.
func (g *Game) handleKeys() {
	if g.keyJustPressed(ebiten.KeyS) {
		g.smokeMode = !g.smokeMode
	}
	if g.keyJustPressed(ebiten.KeyR) {
		g.world.Reset()
		g.aiming = false
	}
	if g.keyJustPressed(ebiten.KeyN) {
		g.loadLevel(g.levelIdx + 1)
	}
	for _, k := range []ebiten.Key{ebiten.KeyS, ebiten.KeyR, ebiten.KeyN} {
		g.prevKeys[k] = ebiten.IsKeyPressed(k)
	}
}

// handleMouse runs the aim-drag-release shot gesture. A press near the
// resting ball starts aiming; release fires with the pull-back vector. The
// world caps and scales the impulse.
func (g *Game) handleMouse() {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	defer func() { g.prevMouseLeft = pressed }()

	mx, my := ebiten.CursorPosition()
	wx, wy := g.screenToWorld(float64(mx), float64(my))

	if g.world.Caught() || g.world.Won() {
		if pressed && !g.prevMouseLeft {
			g.world.Reset()
		}
		return
	}

	switch {
	case pressed && !g.prevMouseLeft:
		b := g.world.Ball()
		if !b.InMotion && length(wx-b.X, wy-b.Y) <= b.R+aimGrabMargin {
			g.aiming = true
			g.aimStartX, g.aimStartY = wx, wy
			g.aimCurX, g.aimCurY = wx, wy
		}
	case pressed && g.aiming:
		g.aimCurX, g.aimCurY = wx, wy
	case !pressed && g.aiming:
		g.aiming = false
		g.world.ApplyShot(g.aimStartX-g.aimCurX, g.aimStartY-g.aimCurY, g.smokeMode)
	}
}
