package life

// maxNeighbors is the size of a Moore neighborhood.
const maxNeighbors = 8

// Cell is a single grid node. Neighbors are indices into the owning Grid's
// cell slice and never change after construction, so cells observe each other
// without owning each other.
type Cell struct {
	row, column int

	alive     bool
	nextAlive bool
	live      uint8

	neighbors [maxNeighbors]int32
	degree    uint8
}

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Column returns the cell's column.
func (c *Cell) Column() int { return c.column }

// Alive reports the current state.
func (c *Cell) Alive() bool { return c.alive }

// NextAlive reports the state computed by the last read phase.
func (c *Cell) NextAlive() bool { return c.nextAlive }

// LiveNeighbors returns the incrementally maintained live-neighbor count.
func (c *Cell) LiveNeighbors() int { return int(c.live) }

// Neighbors returns the indices of the in-bounds neighbors. Edge cells have 5,
// corner cells 3.
func (c *Cell) Neighbors() []int32 { return c.neighbors[:c.degree] }

// nextState applies B3/S23.
func nextState(alive bool, live uint8) bool {
	if alive {
		return live == 2 || live == 3
	}
	return live == 3
}
