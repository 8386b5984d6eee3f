package game

// wallRestitution is the fraction of the inbound normal velocity removed on
// contact. 1.8 over-corrects past perfectly inelastic, leaving a mild
// outbound bounce at 0.8x of the approach speed.
const wallRestitution = 1.8

// circleRectPenetration computes the push-out vector separating a circle at
// (cx,cy) with radius r from the rectangle w. hit is false when the circle
// does not penetrate. When the centre lies strictly inside the rectangle
// (interior=true) the push is along the axis of minimum edge penetration, in
// that edge's outward direction.
func circleRectPenetration(cx, cy, r float64, w Rect) (pushX, pushY float64, interior, hit bool) {
	closestX := clamp(cx, w.X, w.X+w.W)
	closestY := clamp(cy, w.Y, w.Y+w.H)
	dx := cx - closestX
	dy := cy - closestY
	d2 := dx*dx + dy*dy
	if d2 >= r*r {
		return 0, 0, false, false
	}
	if d2 == 0 {
		// Centre inside the rectangle: no contact normal exists, so push
		// out through whichever edge is nearest.
		left := cx - w.X
		right := w.X + w.W - cx
		bottom := cy - w.Y
		top := w.Y + w.H - cy
		m := left
		pushX, pushY = -r, 0
		if right < m {
			m = right
			pushX, pushY = r, 0
		}
		if bottom < m {
			m = bottom
			pushX, pushY = 0, -r
		}
		if top < m {
			pushX, pushY = 0, r
		}
		return pushX, pushY, true, true
	}
	d := length(dx, dy)
	nx, ny := dx/d, dy/d
	push := r - d
	return nx * push, ny * push, false, true
}

// resolveCircleWall corrects the ball's position and velocity against one
// wall rectangle. It runs once per wall per tick with no iterative pass;
// deep corner overlaps may take a few ticks to settle, which the ball's
// damping guarantees.
func resolveCircleWall(b *Ball, w Rect) bool {
	pushX, pushY, interior, hit := circleRectPenetration(b.X, b.Y, b.R, w)
	if !hit {
		return false
	}
	b.X += pushX
	b.Y += pushY
	// The interior case has no meaningful contact normal, so only the
	// surface case reflects velocity.
	if !interior {
		nx, ny := normalize(pushX, pushY)
		vn := b.VX*nx + b.VY*ny
		if vn < 0 {
			b.VX -= wallRestitution * vn * nx
			b.VY -= wallRestitution * vn * ny
		}
	}
	return true
}
