package life

// Step advances the grid by exactly one generation.
//
// The read phase computes next states for every candidate from counters that
// nothing touches until it finishes; the write phase then commits the flips,
// adjusts neighbor counters and builds the following candidate set. Keeping
// the phases apart makes the result independent of candidate order.
func (g *Grid) Step() {
	candidates := g.sets.candidates.list
	g.readPhase(candidates)
	g.writePhase(candidates)
	g.sets.advance()
	g.generation++
}

func (g *Grid) readPhase(candidates []int32) {
	for _, i := range candidates {
		cell := &g.cells[i]
		cell.nextAlive = nextState(cell.alive, cell.live)
	}
}

func (g *Grid) writePhase(candidates []int32) {
	for _, i := range candidates {
		cell := &g.cells[i]
		if cell.nextAlive == cell.alive {
			continue
		}
		cell.alive = cell.nextAlive
		g.sets.markDirty(i)
		g.sets.markNext(i)
		if cell.alive {
			g.display[i] = 1
			g.population++
			for _, n := range cell.Neighbors() {
				g.cells[n].live++
				g.sets.markNext(n)
			}
			continue
		}
		g.display[i] = 0
		g.population--
		for _, n := range cell.Neighbors() {
			g.cells[n].live--
			g.sets.markNext(n)
		}
	}
}
