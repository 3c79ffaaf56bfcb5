package life

import "testing"

func TestIndexSetDeduplicates(t *testing.T) {
	s := newIndexSet(8)
	s.add(3)
	s.add(5)
	s.add(3)
	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}
	if !s.has(3) || !s.has(5) || s.has(4) {
		t.Fatalf("membership wrong: %v", s.member)
	}
	s.clear()
	if s.len() != 0 || s.has(3) || s.has(5) {
		t.Fatal("clear left members behind")
	}
	s.add(3)
	if s.len() != 1 {
		t.Fatalf("len after re-add = %d, want 1", s.len())
	}
}

func TestTrackerAdvanceSwapsSets(t *testing.T) {
	tr := newActiveSetTracker(6)
	tr.markCandidate(0)
	tr.markCandidate(1)
	tr.markNext(4)

	tr.advance()

	if tr.ActiveCells() != 1 || !tr.IsCandidate(4) {
		t.Fatalf("candidates after advance = %v, want [4]", tr.candidates.list)
	}
	if tr.IsCandidate(0) || tr.IsCandidate(1) {
		t.Fatal("old candidates survived advance")
	}
	if tr.next.len() != 0 || tr.next.has(0) {
		t.Fatal("next set must be empty after advance")
	}
}

func TestTrackerDrainEmptiesDirtySet(t *testing.T) {
	tr := newActiveSetTracker(4)
	tr.markDirty(2)
	tr.markDirty(0)
	tr.markDirty(2)

	var got []int32
	tr.drain(func(i int32) { got = append(got, i) })

	if len(got) != 2 || got[0] != 2 || got[1] != 0 {
		t.Fatalf("drained %v, want [2 0]", got)
	}
	if tr.PendingDraws() != 0 || tr.IsDirty(2) {
		t.Fatal("dirty set not emptied")
	}
}
