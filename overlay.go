package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/screenpicker/internal/colorfmt"
	"github.com/example/screenpicker/internal/picker"
	"github.com/example/screenpicker/internal/settings"
)

var (
	_ picker.Window       = (*Game)(nil)
	_ picker.Pointer      = (*Game)(nil)
	_ picker.CursorSource = (*Game)(nil)
	_ picker.Popup        = (*Game)(nil)
)

func (g *Game) Show() { g.visible = true }

func (g *Game) Visible() bool { return g.visible && !g.finished }

// SetPointerImage replaces the lens. The system cursor is hidden while a
// lens is installed; the lens itself is drawn at the cursor every frame.
func (g *Game) SetPointerImage(img image.Image, hotspot image.Point) {
	if g.lensImg != nil {
		g.lensImg.Deallocate()
	}
	g.lensImg = ebiten.NewImageFromImage(img)
	g.lensHot = hotspot
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (g *Game) ResetPointer() {
	if g.lensImg != nil {
		g.lensImg.Deallocate()
		g.lensImg = nil
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (g *Game) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (g *Game) PlayAnimation(a picker.Animation, done func()) {
	g.anim = NewPickAnimation(a, done)
}

func (g *Game) ShowMenu(m picker.MenuRequest) {
	screen := g.snapshot.Bounds()
	current, _ := colorfmt.Parse(g.prefs.Option(settings.KeyColorType, string(colorfmt.Default)))
	g.menu.Show(m.At, m.Size, m.Color, current, screen)
}
