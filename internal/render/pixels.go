package render

import (
	"image/color"

	"sparselife/internal/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba(on), rgba(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// paintChanges rewrites only the pixels of the changed cells.
func paintChanges(buf []byte, columns int, changes []core.Change, on, off color.Color) {
	onPx, offPx := rgba(on), rgba(off)
	for _, ch := range changes {
		px := offPx
		if ch.Alive {
			px = onPx
		}
		base := (ch.Row*columns + ch.Column) * 4
		copy(buf[base:base+4], px[:])
	}
}

// PaintPoints clears buf to transparent and tints the listed cells of a grid
// with the given number of columns.
func PaintPoints(buf []byte, columns int, pts []core.Point, tint color.RGBA) {
	for i := range buf {
		buf[i] = 0
	}
	for _, p := range pts {
		base := (p.Row*columns + p.Column) * 4
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = tint.A
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Canvas holds the RGBA pixels of a grid, one pixel per cell, and keeps them
// in step with a simulation.
type Canvas struct {
	W, H    int
	Pix     []byte
	On, Off color.Color

	primed  bool
	changes []core.Change
}

// NewCanvas allocates a canvas for a w×h grid.
func NewCanvas(w, h int, on, off color.Color) *Canvas {
	return &Canvas{W: w, H: h, Pix: make([]byte, 4*w*h), On: on, Off: off}
}

// Sync brings Pix up to date with sim and returns how many cells were
// repainted. Simulations that track a dirty set are drained every call so
// only changed cells are touched; others are repainted in full.
func (c *Canvas) Sync(sim core.Sim) int {
	src, ok := sim.(core.DirtySource)
	if !ok || !c.primed {
		cells := sim.Cells()
		if len(cells) != c.W*c.H {
			return 0
		}
		fillBinaryRGBA(c.Pix, cells, c.On, c.Off)
		c.primed = true
		if ok {
			c.changes = src.DrainDirty(c.changes[:0])
		}
		return len(cells)
	}
	c.changes = src.DrainDirty(c.changes[:0])
	paintChanges(c.Pix, c.W, c.changes, c.On, c.Off)
	return len(c.changes)
}
