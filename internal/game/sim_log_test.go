package game

import (
	"strings"
	"testing"
)

func seededLog() *SimLog {
	sl := NewSimLog()
	sl.Add(10, "ball", "shot", "normal", "impulse (100,0)", 100)
	sl.Add(42, "agent-1", "agent", "chase_start", "spotted ball at (312,540)", 0)
	sl.Add(90, "agent-1", "agent", "chase_end", "lost sight", 0)
	sl.Add(120, "ball", "motion", "stopped", "at (400,540)", 0)
	return sl
}

func TestSimLog_FilterByCategoryAndKey(t *testing.T) {
	sl := seededLog()
	if got := len(sl.Filter("agent", "")); got != 2 {
		t.Fatalf("expected 2 agent entries, got %d", got)
	}
	if got := len(sl.Filter("agent", "chase_start")); got != 1 {
		t.Fatalf("expected 1 chase_start, got %d", got)
	}
	if got := len(sl.Filter("", "")); got != 4 {
		t.Fatalf("empty filter should match everything, got %d", got)
	}
}

func TestSimLog_FirstTick(t *testing.T) {
	sl := seededLog()
	if tick := sl.FirstTick("agent", "chase_start"); tick != 42 {
		t.Fatalf("expected first chase at tick 42, got %d", tick)
	}
	if tick := sl.FirstTick("outcome", "win"); tick != -1 {
		t.Fatalf("missing event should report -1, got %d", tick)
	}
}

func TestSimLog_LastOf(t *testing.T) {
	sl := seededLog()
	e, ok := sl.LastOf("agent", "")
	if !ok || e.Key != "chase_end" {
		t.Fatalf("expected the chase_end entry, got %+v ok=%v", e, ok)
	}
	if _, ok := sl.LastOf("door", ""); ok {
		t.Fatal("no door entries exist")
	}
}

func TestSimLog_HasEntrySubstring(t *testing.T) {
	sl := seededLog()
	if !sl.HasEntry("agent", "chase_start", "spotted") {
		t.Fatal("substring match should find the sighting")
	}
	if sl.HasEntry("agent", "chase_start", "vanished") {
		t.Fatal("non-matching substring must not match")
	}
}

func TestSimLogEntry_StringFormat(t *testing.T) {
	e := SimLogEntry{Tick: 42, Actor: "agent-1", Category: "agent", Key: "chase_start", Value: "spotted"}
	s := e.String()
	if !strings.HasPrefix(s, "[T=0042]") {
		t.Fatalf("expected zero-padded tick prefix, got %q", s)
	}
	if !strings.Contains(s, "chase_start") || !strings.Contains(s, "spotted") {
		t.Fatalf("entry fields missing from %q", s)
	}
}

func TestSimLog_FormatOneLinePerEntry(t *testing.T) {
	sl := seededLog()
	lines := strings.Split(strings.TrimRight(sl.Format(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
}
