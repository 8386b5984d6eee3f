package game

// doorHackTime is the cumulative time the ball must spend at a door's hack
// screen before the door opens.
const doorHackTime = 2.0

// Door is a hackable barrier. While closed its rect is part of the active
// wall set for both collision and line of sight; once hacked open it stops
// blocking for the rest of the level (reset closes it again).
type Door struct {
	Rect   Rect
	Screen Rect
	Color  string
	Open   bool

	hackProgress float64
}

// NewDoor creates a closed door from level data.
func NewDoor(s DoorSpec) *Door {
	return &Door{Rect: s.Rect, Screen: s.Screen, Color: s.Color}
}

// UpdateHack accrues hack progress while the ball touches the screen rect
// and opens the door once enough time has accumulated. Progress persists
// when the ball rolls away; hacking resumes where it left off.
func (d *Door) UpdateHack(dt float64, ball *Ball) {
	if d.Open {
		return
	}
	if !d.Screen.Expand(ball.R).Contains(ball.X, ball.Y) {
		return
	}
	d.hackProgress += dt
	if d.hackProgress >= doorHackTime {
		d.Open = true
	}
}

// HackProgress returns hacking completion in [0,1] for the HUD.
func (d *Door) HackProgress() float64 {
	return clamp(d.hackProgress/doorHackTime, 0, 1)
}

// Reset closes the door and clears hack progress.
func (d *Door) Reset() {
	d.Open = false
	d.hackProgress = 0
}
