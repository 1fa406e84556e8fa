package main

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/example/screenpicker/internal/picker"
	"github.com/example/screenpicker/internal/settings"
)

// InputManager turns ebiten input into controller calls. It owns the
// transient input state; the controller owns the pick state and the
// ContextMenu its own hover state.
type InputManager struct {
	lastMouseX int
	lastMouseY int
	seen       bool
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// HandlePickInput reports cursor movement to the debounce and turns a left
// press into a pick and a right release into the format menu.
func (im *InputManager) HandlePickInput(g *Game, now time.Time) error {
	mx, my := ebiten.CursorPosition()
	if !im.seen || mx != im.lastMouseX || my != im.lastMouseY {
		im.seen = true
		im.lastMouseX, im.lastMouseY = mx, my
		g.ctrl.OnMouseMove(now)
	}
	pt := image.Pt(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.ctrl.State() == picker.StateActive {
		if err := g.ctrl.PrimaryAction(pt); err != nil {
			return err
		}
		if g.ctrl.State() == picker.StateCommitted {
			g.finish()
		}
		return nil
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		return g.ctrl.SecondaryAction(pt)
	}
	return nil
}

// HandleContextMenuInput applies the menu's outcome: a chosen format becomes
// the stored preference and the color is copied in it; a dismissal ends the
// program without copying.
func (im *InputManager) HandleContextMenuInput(g *Game) error {
	switch g.menu.Update() {
	case MenuActionNone:
	case MenuActionChoose:
		f := g.menu.Chosen()
		g.prefs.SetOption(settings.KeyColorType, string(f))
		if err := g.prefs.Save(); err != nil {
			log.Printf("save settings: %v", err)
		}
		if err := g.deliver.DeliverColor(g.menu.Color(), f); err != nil {
			return err
		}
		g.finish()
	case MenuActionDismiss:
		g.finish()
	}
	return nil
}

// HandleCancel ends an active session on Escape without copying anything.
func (im *InputManager) HandleCancel(g *Game) {
	if g.ctrl.State() != picker.StateActive {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("picker: cancelled")
		g.finish()
	}
}
