//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sparselife/internal/core"
	"sparselife/internal/render"
)

// Overlay tints the cells in the candidate set so the active region of the
// grid is visible.
type Overlay struct {
	sim            core.Sim
	scale          int
	showCandidates bool

	maskImg *ebiten.Image
	maskBuf []byte
	points  []core.Point
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the candidate overlay with C.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCandidates = !o.showCandidates
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showCandidates {
		return
	}
	src, ok := o.sim.(core.CandidateSource)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*size.W*size.H)
	}
	o.points = src.Candidates(o.points[:0])
	render.PaintPoints(o.maskBuf, size.W, o.points, color.RGBA{R: 110, G: 52, B: 17, A: 110})
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
