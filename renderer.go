package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/example/screenpicker/internal/capture"
)

// Renderer draws the frozen desktop and the lens.
type Renderer struct {
	backdrop *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// DrawBackdrop paints the snapshot taken before the overlay appeared, so
// the overlay looks like the desktop it covers. The GPU copy is made on the
// first frame.
func (r *Renderer) DrawBackdrop(screen *ebiten.Image, snap *capture.Snapshot) {
	if snap == nil {
		return
	}
	if r.backdrop == nil {
		r.backdrop = ebiten.NewImageFromImage(snap.Image())
	}
	screen.DrawImage(r.backdrop, nil)
}

// DrawLens draws the lens with its hotspot on the cursor.
func (r *Renderer) DrawLens(screen *ebiten.Image, lensImg *ebiten.Image, hot image.Point) {
	if lensImg == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(mx-hot.X), float64(my-hot.Y))
	screen.DrawImage(lensImg, op)
}

func faceHeight(face font.Face) int {
	if face == nil {
		return 16
	}
	return face.Metrics().Height.Ceil()
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}
