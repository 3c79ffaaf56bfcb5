package fullscan

import "testing"

func newLife(t *testing.T, rows, columns int) *Life {
	t.Helper()
	l, err := New(rows, columns, 0)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, columns, err)
	}
	return l
}

func TestBlinkerOscillation(t *testing.T) {
	life := newLife(t, 5, 5)
	life.SetAlive(1, 2)
	life.SetAlive(2, 2)
	life.SetAlive(3, 2)

	life.Step()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if life.Alive(r, c) != expects[[2]int{r, c}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, life.Alive(r, c), expects[[2]int{r, c}])
			}
		}
	}

	life.Step()

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if life.Alive(r, c) != expects[[2]int{r, c}] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", r, c, life.Alive(r, c), expects[[2]int{r, c}])
			}
		}
	}
	if life.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", life.Generation())
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// A vertical blinker on column 0 would survive on a torus; with hard
	// edges it still oscillates, but nothing may appear on the far column.
	life := newLife(t, 5, 5)
	life.SetAlive(1, 0)
	life.SetAlive(2, 0)
	life.SetAlive(3, 0)

	life.Step()

	for r := 0; r < 5; r++ {
		if life.Alive(r, 4) {
			t.Fatalf("cell (%d,4) came alive across the edge", r)
		}
	}
	if !life.Alive(2, 0) || !life.Alive(2, 1) {
		t.Fatal("expected horizontal half-blinker at row 2")
	}
	if life.Alive(1, 0) || life.Alive(3, 0) {
		t.Fatal("vertical ends should have died")
	}
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	if _, err := New(0, 5, 0); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := New(5, -1, 0); err == nil {
		t.Fatal("expected error for negative columns")
	}
}
