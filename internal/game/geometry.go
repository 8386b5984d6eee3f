package game

import "math"

// Rect is an axis-aligned rectangle in world units. Walls, trigger areas,
// door panels and hack screens are all Rects. W and H are never negative.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether the point (px,py) lies inside the rectangle,
// edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Expand returns the rectangle grown by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// edges returns the four edges as {x1,y1,x2,y2} quads, walked
// counter-clockwise from the bottom edge.
func (r Rect) edges() [4][4]float64 {
	return [4][4]float64{
		{r.X, r.Y, r.X + r.W, r.Y},
		{r.X + r.W, r.Y, r.X + r.W, r.Y + r.H},
		{r.X + r.W, r.Y + r.H, r.X, r.Y + r.H},
		{r.X, r.Y + r.H, r.X, r.Y},
	}
}

// Point is a 2-D position. Field-of-view polygons are ordered Point slices.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// rayReach is the segment length used to approximate an infinite ray.
const rayReach = 99999.0

// clamp bounds v to [lo, hi]. lo <= hi is assumed.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// length returns the Euclidean norm of (vx,vy).
func length(vx, vy float64) float64 {
	return math.Hypot(vx, vy)
}

// normalize returns the unit vector of (vx,vy). The zero vector normalizes
// to (0,0) rather than faulting.
func normalize(vx, vy float64) (float64, float64) {
	l := length(vx, vy)
	if l == 0 {
		return 0, 0
	}
	return vx / l, vy / l
}

// segmentIntersect solves the parametric intersection of the finite segments
// (x1,y1)->(x2,y2) and (x3,y3)->(x4,y4). It returns false when the segments
// are parallel or degenerate (determinant magnitude below 1e-9), or when the
// intersection falls outside either segment. On success t is the parameter
// along the first segment and (ix,iy) the intersection point.
func segmentIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) (hit bool, t, u, ix, iy float64) {
	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(den) < 1e-9 {
		return false, 0, 0, 0, 0
	}
	t = ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u = ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return false, 0, 0, 0, 0
	}
	ix = x1 + t*(x2-x1)
	iy = y1 + t*(y2-y1)
	return true, t, u, ix, iy
}

// rayRectNearestHit casts an effectively infinite ray from (ox,oy) along the
// direction (dirX,dirY) and returns the nearest intersection with the four
// edges of r, or ok=false when the ray misses entirely.
func rayRectNearestHit(ox, oy, dirX, dirY float64, r Rect) (hx, hy float64, ok bool) {
	farX := ox + dirX*rayReach
	farY := oy + dirY*rayReach
	bestT := math.Inf(1)
	for _, e := range r.edges() {
		hit, t, _, ix, iy := segmentIntersect(ox, oy, farX, farY, e[0], e[1], e[2], e[3])
		if hit && t < bestT {
			bestT = t
			hx, hy = ix, iy
			ok = true
		}
	}
	return hx, hy, ok
}

// lineOfSightBlocked reports whether the segment from (ox,oy) to (tx,ty)
// crosses any wall edge strictly between its endpoints. A wall the segment
// merely touches at either endpoint does not block; the far end carries a
// small epsilon margin so a target standing flush against a wall face is
// still considered visible.
func lineOfSightBlocked(ox, oy, tx, ty float64, walls []Rect) bool {
	for _, w := range walls {
		for _, e := range w.edges() {
			hit, t, _, _, _ := segmentIntersect(ox, oy, tx, ty, e[0], e[1], e[2], e[3])
			if hit && t > 0 && t < 1-1e-6 {
				return true
			}
		}
	}
	return false
}
