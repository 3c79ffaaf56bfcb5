package fullscan

import (
	"github.com/pkg/errors"

	"sparselife/internal/core"
)

// Life implements Conway's Game of Life with hard edges by rescanning every
// cell each generation.
type Life struct {
	cur, nxt   *core.ByteGrid
	density    float64
	generation int
}

// New returns a full-scan Life with the provided dimensions.
func New(rows, columns int, density float64) (*Life, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", rows, columns)
	}
	return &Life{
		cur:     core.NewByteGrid(columns, rows),
		nxt:     core.NewByteGrid(columns, rows),
		density: density,
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "fullscan" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Reset clears the board and seeds it at the configured density.
func (l *Life) Reset(seed int64) {
	l.Clear()
	rng := core.NewRNG(seed)
	cells := l.cur.Cells()
	for i := range cells {
		if rng.Chance(l.density) {
			cells[i] = 1
		}
	}
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// SetAlive makes (row, column) alive; out-of-range coordinates are ignored.
func (l *Life) SetAlive(row, column int) {
	if l.cur.Contains(column, row) {
		l.cur.Cells()[l.cur.Index(column, row)] = 1
	}
}

// SetDead makes (row, column) dead; out-of-range coordinates are ignored.
func (l *Life) SetDead(row, column int) {
	if l.cur.Contains(column, row) {
		l.cur.Cells()[l.cur.Index(column, row)] = 0
	}
}

// Alive reports whether (row, column) is alive.
func (l *Life) Alive(row, column int) bool { return l.cur.At(column, row) == 1 }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	next := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					neighbors += int(l.cur.At(x+dx, y+dy))
				}
			}
			idx := l.cur.Index(x, y)
			alive := l.cur.Cells()[idx] == 1
			next[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

func init() {
	core.Register("fullscan", func(opts core.Options) (core.Sim, error) {
		l, err := New(opts.Rows, opts.Columns, opts.Density)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
