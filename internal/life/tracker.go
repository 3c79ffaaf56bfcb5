package life

// indexSet is a set of cell indices backed by one membership flag per cell and
// an insertion-ordered list, so adds and clears never hash or allocate once
// the list has grown.
type indexSet struct {
	member []bool
	list   []int32
}

func newIndexSet(n int) indexSet {
	return indexSet{member: make([]bool, n)}
}

func (s *indexSet) add(i int32) {
	if s.member[i] {
		return
	}
	s.member[i] = true
	s.list = append(s.list, i)
}

func (s *indexSet) has(i int32) bool { return s.member[i] }

func (s *indexSet) len() int { return len(s.list) }

func (s *indexSet) clear() {
	for _, i := range s.list {
		s.member[i] = false
	}
	s.list = s.list[:0]
}

// ActiveSetTracker owns the candidate set (cells to evaluate next
// generation), the candidate set being built by the current write phase, and
// the dirty set (cells whose appearance changed since the last draw).
type ActiveSetTracker struct {
	candidates indexSet
	next       indexSet
	dirty      indexSet
}

func newActiveSetTracker(n int) ActiveSetTracker {
	return ActiveSetTracker{
		candidates: newIndexSet(n),
		next:       newIndexSet(n),
		dirty:      newIndexSet(n),
	}
}

// markCandidate schedules i for evaluation in the coming generation. Manual
// edits use it between generations.
func (t *ActiveSetTracker) markCandidate(i int32) { t.candidates.add(i) }

// markNext schedules i for evaluation in the generation after the one being
// written.
func (t *ActiveSetTracker) markNext(i int32) { t.next.add(i) }

func (t *ActiveSetTracker) markDirty(i int32) { t.dirty.add(i) }

// advance promotes the write phase's set to the current candidate set and
// empties the other one for reuse.
func (t *ActiveSetTracker) advance() {
	t.candidates, t.next = t.next, t.candidates
	t.next.clear()
}

// clearCandidates drops every scheduled evaluation.
func (t *ActiveSetTracker) clearCandidates() {
	t.candidates.clear()
	t.next.clear()
}

// drain hands every dirty index to fn and empties the dirty set.
func (t *ActiveSetTracker) drain(fn func(i int32)) {
	for _, i := range t.dirty.list {
		fn(i)
	}
	t.dirty.clear()
}

// ActiveCells returns the size of the candidate set.
func (t *ActiveSetTracker) ActiveCells() int { return t.candidates.len() }

// PendingDraws returns the size of the dirty set.
func (t *ActiveSetTracker) PendingDraws() int { return t.dirty.len() }

// IsCandidate reports whether cell i will be evaluated next generation.
func (t *ActiveSetTracker) IsCandidate(i int32) bool { return t.candidates.has(i) }

// IsDirty reports whether cell i is waiting to be drawn.
func (t *ActiveSetTracker) IsDirty(i int32) bool { return t.dirty.has(i) }
