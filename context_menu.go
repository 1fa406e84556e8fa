package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/example/screenpicker/internal/colorfmt"
	"github.com/example/screenpicker/internal/popup"
)

// MenuAction describes how the format menu was left.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionChoose
	MenuActionDismiss
)

// ContextMenu is the format menu shown after a right click: a swatch of the
// picked color on top and one row per clipboard format below it.
type ContextMenu struct {
	visible  bool
	layout   popup.MenuLayout
	scale    float64
	swatch   int
	formats  []colorfmt.Format
	current  colorfmt.Format
	chosen   colorfmt.Format
	color    color.RGBA
	selected int
}

func NewContextMenu(scale float64) *ContextMenu {
	if scale <= 0 {
		scale = 1
	}
	return &ContextMenu{
		scale:    scale,
		formats:  colorfmt.All(),
		current:  colorfmt.Default,
		selected: -1,
	}
}

func (cm *ContextMenu) px(v int) int {
	return int(float64(v)*cm.scale + 0.5)
}

// Show opens the menu with its swatch of size swatch at `at`, moved as
// needed to stay inside screen.
func (cm *ContextMenu) Show(at image.Point, swatch int, col color.RGBA, current colorfmt.Format, screen image.Rectangle) {
	header := swatch + cm.px(MenuInnerPadding)
	if least := cm.px(MenuItemHeight); header < least {
		header = least
	}
	cm.layout = popup.MenuLayout{
		X:          at.X,
		Y:          at.Y,
		Width:      cm.px(MenuWidth),
		Header:     header,
		ItemHeight: cm.px(MenuItemHeight),
		Items:      len(cm.formats),
		Padding:    cm.px(MenuPadding),
	}.Fit(screen)
	cm.visible = true
	cm.swatch = swatch
	cm.color = col
	cm.current = current
	cm.selected = -1
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

func (cm *ContextMenu) Visible() bool { return cm.visible }

// Chosen is the format picked by the last MenuActionChoose.
func (cm *ContextMenu) Chosen() colorfmt.Format { return cm.chosen }

func (cm *ContextMenu) Color() color.RGBA { return cm.color }

// Update tracks the hover row and reports a choice or a dismissal. The menu
// hides itself in both cases.
func (cm *ContextMenu) Update() MenuAction {
	if !cm.visible {
		return MenuActionNone
	}

	mx, my := ebiten.CursorPosition()
	cm.selected = cm.layout.ItemAt(mx, my)

	// left click selects or closes
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cm.selected >= 0 {
			cm.chosen = cm.formats[cm.selected]
			cm.Hide()
			return MenuActionChoose
		}
		if !cm.layout.Contains(mx, my) {
			cm.Hide()
			return MenuActionDismiss
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cm.Hide()
		return MenuActionDismiss
	}
	return MenuActionNone
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	b := cm.layout.Bounds()
	bgX, bgY := float64(b.Min.X), float64(b.Min.Y)
	bgW, bgH := float64(b.Dx()), float64(b.Dy())
	bw := float64(cm.px(MenuBorderWidth))
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, bgH, ColorMenuBg)
	// border
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, bw, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY+bgH-bw, bgW, bw, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY, bw, bgH, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX+bgW-bw, bgY, bw, bgH, ColorMenuBorder)

	// swatch sits where the crosshair block was
	x, y := cm.layout.X, cm.layout.Y
	s := float64(cm.swatch)
	ebitenutil.DrawRect(screen, float64(x)-1, float64(y)-1, s+2, s+2, ColorSwatchBorder)
	ebitenutil.DrawRect(screen, float64(x), float64(y), s, s, cm.color)
	drawTextAt(screen, face, colorfmt.ToHex(cm.color), x+cm.swatch+cm.px(MenuInnerPadding), y+(cm.swatch-faceHeight(face))/2, ColorTextDim)

	inner := cm.px(MenuInnerPadding)
	marker := cm.px(MenuMarkerSize)
	for i, f := range cm.formats {
		r := cm.layout.ItemRect(i)
		// highlight on hover
		if cm.selected == i {
			ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), ColorMenuHighlight)
		}
		if f == cm.current {
			my := r.Min.Y + (r.Dy()-marker)/2
			ebitenutil.DrawRect(screen, float64(r.Min.X+inner), float64(my), float64(marker), float64(marker), ColorMenuCurrent)
		}
		ty := r.Min.Y + (r.Dy()-faceHeight(face))/2
		drawTextAt(screen, face, f.Label(), r.Min.X+inner*2+marker, ty, ColorText)
	}
}
