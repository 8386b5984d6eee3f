package game

// demoCourse builds one embedded course from wall quads.
func demoCourse(name string, startX, startY, holeX, holeY float64, walls [][4]float64) *Level {
	f := Floor{}
	for _, w := range walls {
		f.Walls = append(f.Walls, quadToRect(w))
	}
	return &Level{
		Name:   name,
		WorldW: 1400, WorldH: 2200,
		StartX: startX, StartY: startY,
		HoleX: holeX, HoleY: holeY, HoleR: defaultHoleRadius,
		Floors: []Floor{f},
	}
}

// DemoLevels returns the four embedded practice courses. They carry no
// guards; the guard-patrolled fallback level is the default game level.
func DemoLevels() []*Level {
	return []*Level{
		demoCourse("course-1", 900, 440, 960, 500, [][4]float64{
			{280, 160, 100, 540},
			{400, 600, 600, 100},
			{380, 600, 20, 100},
			{520, 220, 60, 380},
			{280, 40, 100, 120},
			{380, 40, 660, 80},
			{1040, 40, 80, 660},
			{1000, 600, 40, 100},
			{280, 700, 840, 20},
			{280, 0, 840, 40},
			{1120, 0, 20, 720},
		}),
		demoCourse("course-2", 1140, 1840, 560, 1840, [][4]float64{
			{480, 1920, 780, 80},
			{420, 1700, 60, 300},
			{500, 1680, 700, 60},
			{420, 1680, 80, 60},
			{1200, 1680, 60, 240},
		}),
		demoCourse("course-3", 580, 380, 940, 860, [][4]float64{
			{80, 580, 100, 440},
			{80, 260, 80, 20},
			{100, 320, 80, 260},
			{80, 300, 20, 280},
			{80, 180, 100, 160},
			{80, 100, 560, 80},
			{500, 440, 20, 180},
			{380, 580, 280, 80},
			{680, 100, 20, 380},
			{640, 100, 120, 80},
			{680, 100, 100, 560},
			{660, 580, 20, 80},
			{360, 580, 20, 80},
			{740, 100, 20, 520},
			{680, 660, 100, 120},
			{680, 940, 100, 160},
			{80, 1020, 100, 180},
			{600, 1100, 180, 100},
			{100, 1100, 520, 100},
			{780, 1160, 340, 40},
			{780, 1100, 340, 60},
			{780, 580, 340, 80},
			{1020, 660, 100, 440},
		}),
		demoCourse("course-4", 240, 220, 260, 1000, [][4]float64{
			{60, 200, 60, 900},
			{60, 120, 340, 80},
			{400, 120, 60, 440},
			{400, 620, 60, 340},
			{400, 1020, 60, 80},
			{60, 1100, 400, 80},
			{440, 620, 40, 340},
			{460, 1020, 100, 20},
			{460, 540, 100, 20},
			{540, 560, 20, 460},
		}),
	}
}
