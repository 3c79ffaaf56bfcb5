//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sparselife/internal/config"
	"sparselife/internal/render"
	"sparselife/internal/ui"
)

var (
	aliveColor = color.White
	deadColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale     int
	tps       int
	fpsLimit  bool
	logStatus bool
	lastLog   time.Time
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, cfg config.Config) *Game {
	size := ctl.Sim().Size()
	g := &Game{
		ctl:       ctl,
		painter:   render.NewGridPainter(size.W, size.H, aliveColor, deadColor),
		hud:       ui.NewHUD(),
		overlay:   ui.NewOverlay(ctl.Sim(), cfg.CellSize),
		scale:     cfg.CellSize,
		tps:       cfg.TPS,
		fpsLimit:  cfg.FPSLimit,
		logStatus: cfg.LogStatus,
	}
	g.applyPacing()
	return g
}

// applyPacing caps the tick rate unless the generation rate is unlimited and
// the simulation is running. Paused frames are always paced.
func (g *Game) applyPacing() {
	if g.ctl.Running() && !g.fpsLimit {
		ebiten.SetVsyncEnabled(false)
		ebiten.SetTPS(ebiten.SyncWithFPS)
		return
	}
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(g.tps)
}

// Update handles input and advances the simulation by one generation when
// running.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.ToggleRunning()
		g.applyPacing()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.ctl.ClearGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	g.handleMouse()

	g.hud.Update()
	g.overlay.Update()

	g.ctl.Tick()
	g.maybeLogStatus()
	return nil
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 {
		return
	}
	row, column := y/g.scale, x/g.scale
	if left {
		g.ctl.SetAlive(row, column)
	}
	if right {
		g.ctl.SetDead(row, column)
	}
}

func (g *Game) maybeLogStatus() {
	if !g.logStatus {
		return
	}
	now := time.Now()
	if now.Sub(g.lastLog) < time.Second {
		return
	}
	g.lastLog = now
	log.Print(g.ctl.StatusLine())
}

// Draw renders the grid, drains the dirty set, and paints the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	status := g.ctl.Status()
	g.painter.Blit(screen, g.ctl.Sim(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim().Size()
	return s.W * g.scale, s.H * g.scale
}
