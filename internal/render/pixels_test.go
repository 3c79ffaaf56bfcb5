package render

import (
	"image/color"
	"testing"

	"sparselife/internal/core"
	"sparselife/internal/life"
	"sparselife/internal/sims/fullscan"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	grey  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func pixelAt(c *Canvas, row, column int) color.RGBA {
	base := (row*c.W + column) * 4
	return color.RGBA{R: c.Pix[base], G: c.Pix[base+1], B: c.Pix[base+2], A: c.Pix[base+3]}
}

func TestSyncPaintsOnlyDirtyCells(t *testing.T) {
	g, err := life.New(6, 8, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(8, 6, white, grey)

	if n := c.Sync(g); n != 48 {
		t.Fatalf("first sync painted %d cells, want full 48", n)
	}
	if g.PendingDraws() != 0 {
		t.Fatal("first sync must drain the dirty set")
	}
	if pixelAt(c, 0, 0) != grey {
		t.Fatalf("dead cell pixel = %v", pixelAt(c, 0, 0))
	}

	g.SetAlive(2, 3)
	g.SetAlive(2, 4)
	g.SetAlive(2, 5)
	if n := c.Sync(g); n != 3 {
		t.Fatalf("painted %d cells, want 3", n)
	}
	if pixelAt(c, 2, 4) != white {
		t.Fatalf("live cell pixel = %v", pixelAt(c, 2, 4))
	}

	g.Step()
	if n := c.Sync(g); n != 4 {
		t.Fatalf("painted %d cells after blinker step, want 4", n)
	}
	if pixelAt(c, 2, 3) != grey || pixelAt(c, 1, 4) != white || pixelAt(c, 3, 4) != white {
		t.Fatal("blinker rotation not reflected in pixels")
	}

	if n := c.Sync(g); n != 0 {
		t.Fatalf("idle sync painted %d cells", n)
	}
}

func TestSyncRepaintsSimsWithoutDirtySet(t *testing.T) {
	l, err := fullscan.New(4, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(4, 4, white, grey)
	l.SetAlive(1, 1)

	if n := c.Sync(l); n != 16 {
		t.Fatalf("painted %d, want 16", n)
	}
	if n := c.Sync(l); n != 16 {
		t.Fatalf("second sync painted %d, want 16", n)
	}
	if pixelAt(c, 1, 1) != white || pixelAt(c, 0, 0) != grey {
		t.Fatal("full repaint wrong")
	}
}

func TestPaintPointsTintsOnlyListedCells(t *testing.T) {
	buf := make([]byte, 3*2*4)
	for i := range buf {
		buf[i] = 9
	}
	tint := color.RGBA{R: 200, A: 90}

	PaintPoints(buf, 3, []core.Point{{Row: 1, Column: 2}}, tint)

	for i := 0; i < len(buf); i += 4 {
		want := [4]byte{}
		if i == (1*3+2)*4 {
			want = [4]byte{200, 0, 0, 90}
		}
		if got := [4]byte(buf[i : i+4]); got != want {
			t.Fatalf("pixel %d = %v, want %v", i/4, got, want)
		}
	}
}
