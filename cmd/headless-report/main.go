package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/pebblegreen/stealth-golf/internal/game"
)

// runStats summarises one level played by the auto-putter.
type runStats struct {
	name string

	shots         int
	smokeShots    int
	chaseStarts   int
	chaseEnds     int
	doorsOpened   int
	floorChanges  int
	stops         int
	firstSpotTick int

	wonTick    int
	caughtTick int
	finalTick  int
}

func main() {
	var levelPath string
	var ticks int
	var maxShots int
	var smokeEvery int
	var copyOut bool

	flag.StringVar(&levelPath, "level", "", "path to a level JSON file (default: built-in rotation)")
	flag.IntVar(&ticks, "ticks", 7200, "tick budget per level")
	flag.IntVar(&maxShots, "max-shots", 20, "shot budget per level")
	flag.IntVar(&smokeEvery, "smoke-every", 0, "fire a smoke shot every Nth shot (0 = never)")
	flag.BoolVar(&copyOut, "copy", false, "copy the report to the system clipboard")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if maxShots <= 0 {
		fmt.Println("error: -max-shots must be > 0")
		return
	}

	var levels []*game.Level
	if levelPath != "" {
		l, err := game.LoadLevel(levelPath)
		if err != nil {
			log.Fatal(err)
		}
		levels = []*game.Level{l}
	} else {
		levels = append([]*game.Level{game.FallbackLevel()}, game.DemoLevels()...)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Headless Auto-Putter Report ===\n")
	fmt.Fprintf(&sb, "levels=%d ticks=%d max_shots=%d smoke_every=%d\n\n",
		len(levels), ticks, maxShots, smokeEvery)

	all := make([]runStats, 0, len(levels))
	for _, l := range levels {
		stats := runLevel(l, ticks, maxShots, smokeEvery)
		all = append(all, stats)
		printRun(&sb, stats)
	}
	printAggregate(&sb, all)

	fmt.Print(sb.String())
	if copyOut {
		if err := clipboard.WriteAll(sb.String()); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		} else {
			fmt.Println("(report copied to clipboard)")
		}
	}
}

// runLevel plays one level with the auto-putter: whenever the ball is at
// rest and the level is still live, shoot straight at the hole at full
// power. Fully deterministic; no randomness anywhere in the core.
func runLevel(l *game.Level, ticks, maxShots, smokeEvery int) runStats {
	sim := game.NewSim(game.WithLevel(l))
	w := sim.World

	shots := 0
	smokes := 0
	for i := 0; i < ticks; i++ {
		if !w.Ball().InMotion && !w.Caught() && !w.Won() && shots < maxShots {
			dx := l.HoleX - w.Ball().X
			dy := l.HoleY - w.Ball().Y
			smoke := smokeEvery > 0 && (shots+1)%smokeEvery == 0
			if w.ApplyShot(dx, dy, smoke) {
				shots++
				if smoke {
					smokes++
				}
			}
		}
		sim.RunTicks(1)
		if w.Caught() || (w.Won() && w.DropFinished()) {
			break
		}
	}

	sl := w.Log()
	return runStats{
		name:          l.Name,
		shots:         shots,
		smokeShots:    smokes,
		chaseStarts:   sl.CountCategory("agent", "chase_start"),
		chaseEnds:     sl.CountCategory("agent", "chase_end"),
		doorsOpened:   sl.CountCategory("door", "opened"),
		floorChanges:  sl.CountCategory("floor", "change"),
		stops:         sl.CountCategory("motion", "stopped"),
		firstSpotTick: sl.FirstTick("agent", "chase_start"),
		wonTick:       sl.FirstTick("outcome", "win"),
		caughtTick:    sl.FirstTick("outcome", "caught"),
		finalTick:     w.Tick(),
	}
}

func printRun(sb *strings.Builder, rs runStats) {
	fmt.Fprintf(sb, "--- Level %s ---\n", rs.name)
	outcome := "timeout"
	if rs.wonTick >= 0 {
		outcome = fmt.Sprintf("won@T=%d", rs.wonTick)
	} else if rs.caughtTick >= 0 {
		outcome = fmt.Sprintf("caught@T=%d", rs.caughtTick)
	}
	fmt.Fprintf(sb, "outcome: %s final_tick=%d\n", outcome, rs.finalTick)
	fmt.Fprintf(sb, "shots: total=%d smoke=%d stops=%d\n", rs.shots, rs.smokeShots, rs.stops)
	fmt.Fprintf(sb, "guards: first_spot=%s chase_starts=%d chase_ends=%d\n",
		tickString(rs.firstSpotTick), rs.chaseStarts, rs.chaseEnds)
	fmt.Fprintf(sb, "course: doors_opened=%d floor_changes=%d\n\n", rs.doorsOpened, rs.floorChanges)
}

func printAggregate(sb *strings.Builder, all []runStats) {
	won, caught, timeout := 0, 0, 0
	totalShots := 0
	totalChases := 0
	for _, rs := range all {
		switch {
		case rs.wonTick >= 0:
			won++
		case rs.caughtTick >= 0:
			caught++
		default:
			timeout++
		}
		totalShots += rs.shots
		totalChases += rs.chaseStarts
	}
	fmt.Fprintf(sb, "=== Aggregate ===\n")
	fmt.Fprintf(sb, "levels=%d won=%d caught=%d timeout=%d\n", len(all), won, caught, timeout)
	fmt.Fprintf(sb, "avg_shots_per_level=%.1f total_chase_episodes=%d\n",
		avg(totalShots, len(all)), totalChases)
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return fmt.Sprintf("T=%d", t)
}
