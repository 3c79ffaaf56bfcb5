package app

import (
	"slices"
	"strings"
	"testing"
	"time"

	"sparselife/internal/core"
	"sparselife/internal/life"
	_ "sparselife/internal/sims/fullscan"
)

func newController(t *testing.T, running bool) (*Controller, *life.Grid) {
	t.Helper()
	g, err := life.New(10, 10, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	return NewController(g, 1, running), g
}

func TestEditsOnlyWhilePaused(t *testing.T) {
	c, g := newController(t, false)

	c.SetAlive(4, 4)
	if !g.Alive(4, 4) {
		t.Fatal("SetAlive ignored while paused")
	}
	c.SetAlive(-1, 20)

	c.ToggleRunning()
	c.SetDead(4, 4)
	c.SetAlive(0, 0)
	c.ClearGrid()
	c.Reseed()
	if !g.Alive(4, 4) || g.Alive(0, 0) {
		t.Fatal("edits must be ignored while running")
	}

	c.ToggleRunning()
	c.SetDead(4, 4)
	if g.Alive(4, 4) {
		t.Fatal("SetDead ignored while paused")
	}
}

func TestTickStepsOnlyWhileRunning(t *testing.T) {
	c, g := newController(t, false)
	place := func(r, col int) { c.SetAlive(r, col) }
	place(5, 4)
	place(5, 5)
	place(5, 6)

	if c.Tick() || g.Generation() != 0 {
		t.Fatal("paused tick advanced the grid")
	}
	c.StepOnce()
	if g.Generation() != 1 || !g.Alive(4, 5) {
		t.Fatal("StepOnce did not advance while paused")
	}

	c.ToggleRunning()
	if !c.Tick() || g.Generation() != 2 {
		t.Fatalf("running tick: generation %d, want 2", g.Generation())
	}
	c.StepOnce()
	if g.Generation() != 2 {
		t.Fatal("StepOnce must not run while running")
	}
}

func TestClearAndReseed(t *testing.T) {
	c, g := newController(t, false)
	c.Reseed()
	first := slices.Clone(g.Cells())
	if g.Population() == 0 {
		t.Fatal("reseed at density 0.3 produced an empty grid")
	}
	c.StepOnce()

	c.ClearGrid()
	if g.Population() != 0 || g.Generation() != 0 || g.ActiveCells() != 0 {
		t.Fatalf("clear: pop=%d gen=%d active=%d", g.Population(), g.Generation(), g.ActiveCells())
	}

	c.Reseed()
	if slices.Equal(first, g.Cells()) {
		t.Fatal("successive reseeds should draw fresh seeds")
	}

	other, _ := newController(t, false)
	other.Reseed()
	if !slices.Equal(first, other.Sim().Cells()) {
		t.Fatal("reseed sequence must be reproducible from the seed")
	}
}

func TestToggleRestartsRateMeter(t *testing.T) {
	c, _ := newController(t, true)
	clock := time.Unix(100, 0)
	c.now = func() time.Time { return clock }
	c.meter.Reset(clock)

	for i := 0; i < 30; i++ {
		clock = clock.Add(50 * time.Millisecond)
		c.Tick()
	}
	if c.Rate() < 19 || c.Rate() > 21 {
		t.Fatalf("rate = %.2f, want about 20", c.Rate())
	}

	c.ToggleRunning()
	if c.Rate() != 0 {
		t.Fatalf("rate = %.2f after toggle, want 0", c.Rate())
	}
}

func TestStatusReportsEngineCounters(t *testing.T) {
	c, g := newController(t, false)
	g.DrainDirty(nil)
	c.SetAlive(2, 2)

	status := c.Status()
	check := func(key, want string) {
		t.Helper()
		p, ok := status.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("%s = %q (found %v), want %q", key, p.Value, ok, want)
		}
	}
	check("generation", "0")
	check("state", "Paused")
	check("active", "9")
	check("draws", "1")

	line := c.StatusLine()
	if !strings.Contains(line, "Generation: 0") || !strings.Contains(line, "State: Paused") {
		t.Fatalf("status line %q", line)
	}
}

func TestControllerDrivesFullScan(t *testing.T) {
	factory, ok := core.Sims()["fullscan"]
	if !ok {
		t.Fatal("fullscan not registered")
	}
	sim, err := factory(core.Options{Rows: 6, Columns: 6, Density: 0})
	if err != nil {
		t.Fatal(err)
	}
	c := NewController(sim, 1, false)
	c.SetAlive(2, 1)
	c.SetAlive(2, 2)
	c.SetAlive(2, 3)
	c.StepOnce()

	cells := sim.Cells()
	if cells[1*6+2] != 1 || cells[3*6+2] != 1 || cells[2*6+1] != 0 {
		t.Fatalf("blinker did not rotate: %v", cells)
	}
	if _, ok := c.Status().Lookup("active"); ok {
		t.Fatal("fullscan has no candidate set to report")
	}
}
