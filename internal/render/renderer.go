//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sparselife/internal/core"
)

// GridPainter keeps a one-pixel-per-cell image of the grid and uploads it
// only when cells changed.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	return &GridPainter{
		canvas: NewCanvas(w, h, on, off),
		img:    ebiten.NewImage(w, h),
	}
}

// Blit drains the simulation's pending changes into the painter image and
// draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	if gp.canvas.Sync(sim) > 0 {
		gp.img.WritePixels(gp.canvas.Pix)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.W, gp.canvas.H }
