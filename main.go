package main

import (
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/screenpicker/internal/capture"
	"github.com/example/screenpicker/internal/picker"
	"github.com/example/screenpicker/internal/settings"
)

// Game is the full-screen overlay. It hosts the picker controller and acts
// as its window, pointer, cursor source and popup.
type Game struct {
	ctrl *picker.Controller
	ui   *UI

	input    *InputManager
	menu     *ContextMenu
	anim     *PickAnimation
	renderer *Renderer

	snapshot *capture.Snapshot
	prefs    *settings.Store
	deliver  *clipboardDelivery

	sessionID string
	scale     float64

	started  bool
	visible  bool
	finished bool
	err      error

	// lens pointer
	lensImg *ebiten.Image
	lensHot image.Point
}

func NewGame(snap *capture.Snapshot, prefs *settings.Store, deliver *clipboardDelivery, sessionID string, scale float64) *Game {
	return &Game{
		ui:        NewUI(scale),
		input:     NewInputManager(),
		menu:      NewContextMenu(scale),
		renderer:  NewRenderer(),
		snapshot:  snap,
		prefs:     prefs,
		deliver:   deliver,
		sessionID: sessionID,
		scale:     scale,
	}
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.finished {
		return ebiten.Termination
	}
	now := time.Now()
	if !g.started {
		g.started = true
		if err := g.ctrl.StartSession(g.sessionID); err != nil {
			return g.fail(err)
		}
	}

	// pointer moves and clicks drive the controller
	if err := g.input.HandlePickInput(g, now); err != nil {
		return g.fail(err)
	}
	if err := g.ctrl.Tick(now); err != nil {
		return g.fail(err)
	}

	if g.anim != nil && !g.anim.Update() {
		g.anim = nil
	}

	if err := g.input.HandleContextMenuInput(g); err != nil {
		return g.fail(err)
	}
	g.input.HandleCancel(g)

	if g.finished {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBackdrop(screen, g.snapshot)
	if g.anim != nil {
		g.anim.Draw(screen)
	}
	g.menu.Draw(screen, g.ui.face)
	g.renderer.DrawLens(screen, g.lensImg, g.lensHot)
}

// Layout works in device pixels so the overlay lines up with the capture.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(float64(outsideWidth) * g.scale), int(float64(outsideHeight) * g.scale)
}

// finish ends the ebiten loop after the current tick.
func (g *Game) finish() {
	g.finished = true
	g.ResetPointer()
}

func (g *Game) fail(err error) error {
	log.Printf("picker: %v", err)
	showFatal(err)
	g.err = err
	return err
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
