package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const gridSpacing = 60

var (
	bgColor     = color.RGBA{R: 20, G: 23, B: 28, A: 255}
	gridColor   = color.RGBA{R: 31, G: 33, B: 41, A: 255}
	wallColor   = color.RGBA{R: 64, G: 71, B: 84, A: 255}
	stairUp     = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	stairDown   = color.RGBA{R: 102, G: 102, B: 102, A: 255}
	stairTread  = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	agentColor  = color.RGBA{R: 230, G: 51, B: 51, A: 255}
	coneTint    = color.RGBA{R: 255, G: 255, B: 166, A: 255}
	holeRim     = color.RGBA{R: 26, G: 128, B: 38, A: 255}
	holeCup     = color.RGBA{R: 5, G: 5, B: 5, A: 255}
	ballColor   = color.RGBA{R: 242, G: 242, B: 242, A: 255}
	ballSmoked  = color.RGBA{R: 90, G: 90, B: 97, A: 255}
	aimColor    = color.RGBA{R: 230, G: 230, B: 255, A: 180}
	screenClose = color.RGBA{R: 180, G: 60, B: 60, A: 255}
	screenOpen  = color.RGBA{R: 60, G: 180, B: 90, A: 255}
	bannerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Draw renders one frame: course geometry, occluded light cones, entities
// and the HUD, all offset by the camera.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	ox := float32(-g.camX)
	oy := float32(-g.camY)

	g.drawGrid(screen, ox, oy)
	g.drawDecor(screen, ox, oy)
	g.drawStairs(screen, ox, oy)
	g.drawWalls(screen, ox, oy)
	g.drawDoors(screen, ox, oy)
	g.drawLightCones(screen)
	g.drawHole(screen, ox, oy)
	g.drawAgents(screen, ox, oy)
	g.drawBall(screen, ox, oy)
	g.drawAim(screen, ox, oy)
	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image, ox, oy float32) {
	l := g.world.Level()
	w, h := float32(l.WorldW), float32(l.WorldH)
	for x := float32(0); x < w; x += gridSpacing {
		vector.StrokeLine(screen, ox+x, oy, ox+x, oy+h, 1, gridColor, false)
	}
	for y := float32(0); y < h; y += gridSpacing {
		vector.StrokeLine(screen, ox, oy+y, ox+w, oy+y, 1, gridColor, false)
	}
}

func (g *Game) drawWalls(screen *ebiten.Image, ox, oy float32) {
	for _, w := range g.world.Level().Floors[g.world.Floor()].Walls {
		vector.FillRect(screen, ox+float32(w.X), oy+float32(w.Y),
			float32(w.W), float32(w.H), wallColor, false)
	}
}

func (g *Game) drawDecor(screen *ebiten.Image, ox, oy float32) {
	for _, d := range g.world.Level().Floors[g.world.Floor()].Decor {
		r := d.Rect
		var c color.RGBA
		switch d.Kind {
		case "rug":
			c = color.RGBA{R: 33, G: 64, B: 46, A: 150}
		case "vent":
			c = color.RGBA{R: 191, G: 191, B: 199, A: 255}
		default: // elevator and anything unrecognised
			c = color.RGBA{R: 46, G: 51, B: 61, A: 255}
		}
		vector.FillRect(screen, ox+float32(r.X), oy+float32(r.Y),
			float32(r.W), float32(r.H), c, false)
	}
}

func (g *Game) drawStairs(screen *ebiten.Image, ox, oy float32) {
	const treads = 6
	for _, s := range g.world.Stairs() {
		r := s.Rect
		c := stairUp
		if s.Dir == "down" {
			c = stairDown
		}
		vector.FillRect(screen, ox+float32(r.X), oy+float32(r.Y),
			float32(r.W), float32(r.H), c, false)
		for i := 0; i < treads; i++ {
			y := oy + float32(r.Y) + float32(i)*float32(r.H)/treads
			vector.StrokeLine(screen, ox+float32(r.X), y,
				ox+float32(r.X+r.W), y, 1, stairTread, false)
		}
	}
}

func (g *Game) drawDoors(screen *ebiten.Image, ox, oy float32) {
	for _, d := range g.world.Doors() {
		if !d.Open {
			vector.FillRect(screen, ox+float32(d.Rect.X), oy+float32(d.Rect.Y),
				float32(d.Rect.W), float32(d.Rect.H), wallColor, false)
			vector.StrokeRect(screen, ox+float32(d.Rect.X), oy+float32(d.Rect.Y),
				float32(d.Rect.W), float32(d.Rect.H), 1.5, screenClose, false)
		}
		sc := screenClose
		if d.Open {
			sc = screenOpen
		}
		vector.FillRect(screen, ox+float32(d.Screen.X), oy+float32(d.Screen.Y),
			float32(d.Screen.W), float32(d.Screen.H), sc, false)
		// Hack progress bar above the screen.
		if p := d.HackProgress(); p > 0 && !d.Open {
			vector.FillRect(screen, ox+float32(d.Screen.X), oy+float32(d.Screen.Y)-6,
				float32(d.Screen.W)*float32(p), 3, screenOpen, false)
		}
	}
}

// drawLightCones fills each agent's field-of-view fan into an offscreen
// buffer, then composites the buffer once at low alpha. Overlapping cones
// therefore never stack brightness.
func (g *Game) drawLightCones(screen *ebiten.Image) {
	buf := g.coneBuf
	buf.Clear()

	anyChasing := false
	for _, a := range g.world.Agents() {
		if a.Chasing {
			anyChasing = true
		}
		pts := a.LightCone(g.world.Walls())
		if len(pts) < 3 {
			continue
		}
		var path vector.Path
		path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		vector.FillPath(buf, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})
	}

	opacity := 0.18
	if anyChasing {
		opacity = 0.35
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-g.camX, -g.camY)
	opts.ColorScale.ScaleWithColor(coneTint)
	opts.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(buf, opts)
}

func (g *Game) drawHole(screen *ebiten.Image, ox, oy float32) {
	l := g.world.Level()
	if g.world.Floor() != l.HoleFloor {
		return
	}
	hx := ox + float32(l.HoleX)
	hy := oy + float32(l.HoleY)
	vector.FillCircle(screen, hx, hy, float32(l.HoleR)+6, holeRim, true)
	vector.FillCircle(screen, hx, hy, float32(l.HoleR), holeCup, true)
}

func (g *Game) drawAgents(screen *ebiten.Image, ox, oy float32) {
	const half = 8
	for _, a := range g.world.Agents() {
		c := agentColor
		if a.Chasing {
			c = color.RGBA{R: 255, G: 90, B: 40, A: 255}
		}
		vector.FillRect(screen, ox+float32(a.X)-half, oy+float32(a.Y)-half,
			half*2, half*2, c, false)
		// Facing tick so patrol direction reads at a glance.
		vector.StrokeLine(screen, ox+float32(a.X), oy+float32(a.Y),
			ox+float32(a.X+a.FaceX*14), oy+float32(a.Y+a.FaceY*14), 2, c, false)
	}
}

func (g *Game) drawBall(screen *ebiten.Image, ox, oy float32) {
	b := g.world.Ball()
	c := ballColor
	if b.Concealed() {
		c = ballSmoked
	}
	vector.FillCircle(screen, ox+float32(b.X), oy+float32(b.Y), float32(b.R), c, true)
}

func (g *Game) drawAim(screen *ebiten.Image, ox, oy float32) {
	if !g.aiming {
		return
	}
	b := g.world.Ball()
	vector.StrokeLine(screen, ox+float32(b.X), oy+float32(b.Y),
		ox+float32(g.aimCurX), oy+float32(g.aimCurY), 2, aimColor, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	mode := "Normal"
	if g.smokeMode {
		mode = "Smoke"
	}
	l := g.world.Level()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  floor %d  mode: %s  [S]moke [R]eset [N]ext",
			l.Name, g.world.Floor(), mode), 6, 4)

	banner := ""
	switch {
	case g.world.Caught():
		banner = "Caught! Click or press R to restart."
	case g.world.Won():
		banner = "Level complete!"
	}
	if banner != "" {
		face := basicfont.Face7x13
		x := (viewW - len(banner)*face.Advance) / 2
		text.Draw(screen, banner, face, x, viewH/2, bannerColor)
	}
}
