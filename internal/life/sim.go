package life

import (
	"github.com/pkg/errors"

	"sparselife/internal/core"
)

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.columns, H: g.rows} }

// Cells exposes a 0/1 row-major view of the current states.
func (g *Grid) Cells() []uint8 { return g.display }

// Reset reseeds the grid at its configured density.
func (g *Grid) Reset(seed int64) {
	g.ResetAndSeed(g.density, core.NewRNG(seed))
}

// DrainDirty appends every changed cell to dst and empties the dirty set.
func (g *Grid) DrainDirty(dst []core.Change) []core.Change {
	g.sets.drain(func(i int32) {
		cell := &g.cells[i]
		dst = append(dst, core.Change{
			Point: core.Point{Row: cell.row, Column: cell.column},
			Alive: cell.alive,
		})
	})
	return dst
}

// PendingDraws returns the number of cells waiting to be drawn.
func (g *Grid) PendingDraws() int { return g.sets.PendingDraws() }

// Candidates appends the positions scheduled for the next generation to dst.
func (g *Grid) Candidates(dst []core.Point) []core.Point {
	for _, i := range g.sets.candidates.list {
		cell := &g.cells[i]
		dst = append(dst, core.Point{Row: cell.row, Column: cell.column})
	}
	return dst
}

// ActiveCells returns the size of the candidate set.
func (g *Grid) ActiveCells() int { return g.sets.ActiveCells() }

// Verify checks the bookkeeping invariants by full scan: every counter equals
// the number of live neighbors, and every cell the rule would flip is a
// candidate.
func (g *Grid) Verify() error {
	population := 0
	for i := range g.cells {
		cell := &g.cells[i]
		live := 0
		for _, n := range cell.Neighbors() {
			if g.cells[n].alive {
				live++
			}
		}
		if live != int(cell.live) {
			return errors.Errorf("cell (%d,%d) counts %d live neighbors, actual %d",
				cell.row, cell.column, cell.live, live)
		}
		if nextState(cell.alive, cell.live) != cell.alive && !g.sets.IsCandidate(int32(i)) {
			return errors.Errorf("cell (%d,%d) would change but is not a candidate", cell.row, cell.column)
		}
		if cell.alive {
			population++
		}
	}
	if population != g.population {
		return errors.Errorf("population %d, actual %d", g.population, population)
	}
	return nil
}

func init() {
	core.Register("life", func(opts core.Options) (core.Sim, error) {
		g, err := New(opts.Rows, opts.Columns, opts.Density)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
