package game

import "math"

// fovEpsilon widens the cone boundary check slightly so a target sitting
// exactly on the edge does not flap in and out of view between ticks.
const fovEpsilon = 1e-6

// targetVisible reports whether an observer at (ox,oy) facing along the unit
// vector (faceX,faceY) can see the target at (tx,ty). The checks run
// cheapest-first: concealment, range, cone angle, then wall occlusion. A
// target at the observer's exact position normalizes to the zero direction,
// which skips the angle test and counts as visible when unoccluded.
func targetVisible(ox, oy, faceX, faceY, fovHalf, coneLen, tx, ty float64, walls []Rect, concealed bool) bool {
	if concealed {
		return false
	}
	dx, dy := tx-ox, ty-oy
	if length(dx, dy) > coneLen {
		return false
	}
	nx, ny := normalize(dx, dy)
	if (nx != 0 || ny != 0) && nx*faceX+ny*faceY < math.Cos(fovHalf+fovEpsilon) {
		return false
	}
	return !lineOfSightBlocked(ox, oy, tx, ty, walls)
}

// fieldOfViewPolygon sweeps steps+1 rays evenly across the cone from
// facing+fovHalf down to facing-fovHalf, clipping each against the nearest
// wall, and returns the fan boundary prefixed with the observer position.
// The same polygon drives both agent debug output and the rendered light
// cone, so the light on screen is exactly what the agent can reach.
func fieldOfViewPolygon(ox, oy, faceX, faceY, fovHalf, coneLen float64, steps int, walls []Rect) []Point {
	base := math.Atan2(faceY, faceX)
	startAng := base + fovHalf
	endAng := base - fovHalf

	pts := make([]Point, 0, steps+2)
	pts = append(pts, Point{X: ox, Y: oy})
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		ang := startAng + (endAng-startAng)*t
		dx, dy := math.Cos(ang), math.Sin(ang)

		bestD2 := math.Inf(1)
		var hitX, hitY float64
		found := false
		for _, w := range walls {
			hx, hy, ok := rayRectNearestHit(ox, oy, dx, dy, w)
			if !ok {
				continue
			}
			d2 := (hx-ox)*(hx-ox) + (hy-oy)*(hy-oy)
			if d2 < bestD2 {
				bestD2 = d2
				hitX, hitY = hx, hy
				found = true
			}
		}
		if !found || bestD2 > coneLen*coneLen {
			pts = append(pts, Point{X: ox + dx*coneLen, Y: oy + dy*coneLen})
		} else {
			pts = append(pts, Point{X: hitX, Y: hitY})
		}
	}
	return pts
}
