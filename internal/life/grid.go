package life

import (
	"github.com/pkg/errors"

	"sparselife/internal/core"
)

// Grid owns a fixed rows×columns array of cells with hard edges, along with
// the active-set bookkeeping that lets Step cost O(candidates) instead of
// O(rows×columns). A Grid is not safe for concurrent use.
type Grid struct {
	rows, columns int
	density       float64

	cells   []Cell
	sets    ActiveSetTracker
	display []uint8

	generation int
	population int
}

// New allocates a grid of dead cells and wires every cell to its in-bounds
// neighbors. density is the probability used by Reset.
func New(rows, columns int, density float64) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", rows, columns)
	}
	if density < 0 || density > 1 {
		return nil, errors.Errorf("seed density must be within [0,1], got %v", density)
	}
	total := rows * columns
	g := &Grid{
		rows:    rows,
		columns: columns,
		density: density,
		cells:   make([]Cell, total),
		sets:    newActiveSetTracker(total),
		display: make([]uint8, total),
	}
	g.wireNeighbors()
	g.markAllDirty()
	return g, nil
}

// wireNeighbors runs once, before any state mutation.
func (g *Grid) wireNeighbors() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			cell := &g.cells[r*g.columns+c]
			cell.row, cell.column = r, c
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.columns {
						continue
					}
					cell.neighbors[cell.degree] = int32(nr*g.columns + nc)
					cell.degree++
				}
			}
		}
	}
}

func (g *Grid) index(row, column int) (int32, bool) {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return 0, false
	}
	return int32(row*g.columns + column), true
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Density returns the seeding probability used by Reset.
func (g *Grid) Density() float64 { return g.density }

// Generation returns the number of generations since the last reset.
func (g *Grid) Generation() int { return g.generation }

// Population returns the number of live cells.
func (g *Grid) Population() int { return g.population }

// Tracker exposes the candidate and dirty set sizes.
func (g *Grid) Tracker() *ActiveSetTracker { return &g.sets }

// Cell returns a copy of the cell at (row, column).
func (g *Grid) Cell(row, column int) (Cell, bool) {
	i, ok := g.index(row, column)
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Alive reports whether the cell at (row, column) is alive. Out-of-range
// coordinates are dead.
func (g *Grid) Alive(row, column int) bool {
	i, ok := g.index(row, column)
	return ok && g.cells[i].alive
}

// SetAlive makes the cell at (row, column) alive. Out-of-range coordinates
// are ignored.
func (g *Grid) SetAlive(row, column int) {
	if i, ok := g.index(row, column); ok {
		g.makeAlive(i)
	}
}

// SetDead makes the cell at (row, column) dead. Out-of-range coordinates are
// ignored.
func (g *Grid) SetDead(row, column int) {
	if i, ok := g.index(row, column); ok {
		g.makeDead(i)
	}
}

func (g *Grid) makeAlive(i int32) {
	cell := &g.cells[i]
	if cell.alive {
		return
	}
	cell.alive = true
	cell.nextAlive = true
	g.display[i] = 1
	g.population++
	for _, n := range cell.Neighbors() {
		g.cells[n].live++
		g.sets.markCandidate(n)
	}
	g.sets.markCandidate(i)
	g.sets.markDirty(i)
}

// makeDead schedules the neighbors as well as the cell itself: a dead cell
// that still has three live neighbors must be re-evaluated, and so must any
// neighbor whose count just dropped.
func (g *Grid) makeDead(i int32) {
	cell := &g.cells[i]
	if !cell.alive {
		return
	}
	cell.alive = false
	cell.nextAlive = false
	g.display[i] = 0
	g.population--
	for _, n := range cell.Neighbors() {
		g.cells[n].live--
		g.sets.markCandidate(n)
	}
	g.sets.markCandidate(i)
	g.sets.markDirty(i)
}

// Clear forces every cell dead, zeroes every counter and the candidate set,
// and resets the generation counter. Every cell is marked dirty so the next
// draw repaints the whole grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		cell := &g.cells[i]
		cell.alive = false
		cell.nextAlive = false
		cell.live = 0
		g.display[i] = 0
	}
	g.population = 0
	g.generation = 0
	g.sets.clearCandidates()
	g.sets.dirty.clear()
	g.markAllDirty()
}

// ResetAndSeed clears the grid and then makes each cell alive independently
// with probability density.
func (g *Grid) ResetAndSeed(density float64, rng *core.RNG) {
	g.Clear()
	for i := range g.cells {
		if rng.Chance(density) {
			g.makeAlive(int32(i))
		}
	}
}

func (g *Grid) markAllDirty() {
	for i := range g.cells {
		g.sets.markDirty(int32(i))
	}
}
