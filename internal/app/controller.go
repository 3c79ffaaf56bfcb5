package app

import (
	"fmt"
	"strings"
	"time"

	"sparselife/internal/core"
)

// Controller applies input commands to a simulation and advances it once per
// tick while running. All calls must come from the loop goroutine.
type Controller struct {
	sim    core.Sim
	editor core.Editor

	running bool
	seeds   *core.RNG
	meter   *core.RateMeter
	now     func() time.Time
}

// NewController wraps sim. seed drives the sequence of reseeds.
func NewController(sim core.Sim, seed int64, running bool) *Controller {
	c := &Controller{
		sim:     sim,
		running: running,
		seeds:   core.NewRNG(seed),
		meter:   core.NewRateMeter(time.Second),
		now:     time.Now,
	}
	if editor, ok := sim.(core.Editor); ok {
		c.editor = editor
	}
	c.meter.Reset(c.now())
	return c
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

// Running reports whether generations advance on Tick.
func (c *Controller) Running() bool { return c.running }

// ToggleRunning flips between running and paused and restarts the rate meter.
func (c *Controller) ToggleRunning() {
	c.running = !c.running
	c.meter.Reset(c.now())
}

// SetAlive makes a cell alive. Ignored while running or out of range.
func (c *Controller) SetAlive(row, column int) {
	if c.running || c.editor == nil {
		return
	}
	c.editor.SetAlive(row, column)
}

// SetDead makes a cell dead. Ignored while running or out of range.
func (c *Controller) SetDead(row, column int) {
	if c.running || c.editor == nil {
		return
	}
	c.editor.SetDead(row, column)
}

// ClearGrid kills every cell and resets the generation. Ignored while running.
func (c *Controller) ClearGrid() {
	if c.running || c.editor == nil {
		return
	}
	c.editor.Clear()
}

// Reseed clears the grid and seeds it again with the next seed in the
// sequence. Ignored while running.
func (c *Controller) Reseed() {
	if c.running {
		return
	}
	c.sim.Reset(c.seeds.Int64())
}

// StepOnce advances a single generation while paused.
func (c *Controller) StepOnce() {
	if c.running {
		return
	}
	c.sim.Step()
}

// Tick advances one generation if running. It reports whether a step ran.
func (c *Controller) Tick() bool {
	if !c.running {
		return false
	}
	c.sim.Step()
	c.meter.Tick(c.now())
	return true
}

// Rate returns the measured generations per second.
func (c *Controller) Rate() float64 { return c.meter.Rate() }

// Status reports the values shown on the HUD.
func (c *Controller) Status() core.ParameterSnapshot {
	state := "Paused"
	if c.running {
		state = "Running"
	}
	params := []core.Parameter{
		core.TextParam("sim", "Sim", c.sim.Name()),
	}
	if gens, ok := c.sim.(core.Generations); ok {
		params = append(params, core.IntParam("generation", "Generation", gens.Generation()))
	}
	params = append(params,
		core.TextParam("state", "State", state),
		core.FloatParam("gps", "GenPerSec", c.meter.Rate()),
	)
	if src, ok := c.sim.(core.CandidateSource); ok {
		params = append(params, core.IntParam("active", "Active cells", src.ActiveCells()))
	}
	if src, ok := c.sim.(core.DirtySource); ok {
		params = append(params, core.IntParam("draws", "Cells to draw", src.PendingDraws()))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Status", Params: params}}}
}

// StatusLine renders Status on a single line.
func (c *Controller) StatusLine() string {
	var parts []string
	for _, g := range c.Status().Groups {
		for _, p := range g.Params {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return strings.Join(parts, " | ")
}
