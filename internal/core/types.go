package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a single cell by row and column.
type Point struct {
	Row    int
	Column int
}

// Change reports the current state of a cell whose appearance changed since
// the last draw.
type Change struct {
	Point
	Alive bool
}

// Options carries the construction parameters shared by every simulation.
type Options struct {
	Rows    int
	Columns int
	Density float64
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Editor is implemented by simulations that accept manual cell edits.
type Editor interface {
	SetAlive(row, column int)
	SetDead(row, column int)
	Clear()
}

// DirtySource is implemented by simulations that track which cells changed
// appearance. DrainDirty appends the pending changes to dst and empties the
// set.
type DirtySource interface {
	DrainDirty(dst []Change) []Change
	PendingDraws() int
}

// CandidateSource exposes the cells scheduled for evaluation next generation.
type CandidateSource interface {
	Candidates(dst []Point) []Point
	ActiveCells() int
}

// Generations reports how many generations ran since the last reset.
type Generations interface {
	Generation() int
}

// Factory constructs a Sim from the shared options.
type Factory func(opts Options) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in no particular order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	return names
}
