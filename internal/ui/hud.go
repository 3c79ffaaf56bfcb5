//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sparselife/internal/core"
)

const (
	panelPadding = 6
	lineHeight   = 15
	panelWidth   = 190
)

// HUD draws the status panel in the top-left corner of the grid.
type HUD struct {
	visible bool
	panel   *ebiten.Image
	lines   []string
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update toggles visibility with H.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the snapshot as one "Label: value" line per parameter.
func (h *HUD) Draw(screen *ebiten.Image, snapshot core.ParameterSnapshot) {
	if h == nil || !h.visible {
		return
	}
	h.lines = h.lines[:0]
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	if len(h.lines) == 0 {
		return
	}
	height := 2*panelPadding + len(h.lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, nil)
}
