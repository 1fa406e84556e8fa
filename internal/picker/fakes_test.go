package picker

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/example/screenpicker/internal/capture"
	"github.com/example/screenpicker/internal/colorfmt"
	"github.com/example/screenpicker/internal/lens"
)

// journal records collaborator calls in order across fakes.
type journal struct {
	events []string
}

func (j *journal) add(format string, args ...any) {
	j.events = append(j.events, fmt.Sprintf(format, args...))
}

type recordingCapture struct {
	*capture.Snapshot
	grabs   []image.Rectangle
	screens int
	err     error
}

func (r *recordingCapture) Grab(rect image.Rectangle) (*image.RGBA, error) {
	r.grabs = append(r.grabs, rect)
	if r.err != nil {
		return nil, r.err
	}
	return r.Snapshot.Grab(rect)
}

func (r *recordingCapture) GrabScreen() (*image.RGBA, error) {
	r.screens++
	if r.err != nil {
		return nil, r.err
	}
	return r.Snapshot.GrabScreen()
}

type fakePointer struct {
	j       *journal
	images  []image.Image
	hotspot image.Point
	resets  int
}

func (p *fakePointer) SetPointerImage(img image.Image, hotspot image.Point) {
	p.images = append(p.images, img)
	p.hotspot = hotspot
	p.j.add("pointer.set")
}

func (p *fakePointer) ResetPointer() {
	p.resets++
	p.j.add("pointer.reset")
}

type fakeCursor struct{ x, y int }

func (c *fakeCursor) CursorPosition() (int, int) { return c.x, c.y }

type fakeWindow struct{ visible bool }

func (w *fakeWindow) Show()         { w.visible = true }
func (w *fakeWindow) Visible() bool { return w.visible }

type delivery struct {
	c color.RGBA
	f colorfmt.Format
}

type fakeDeliverer struct {
	j   *journal
	got []delivery
	err error
}

func (d *fakeDeliverer) DeliverColor(c color.RGBA, f colorfmt.Format) error {
	d.got = append(d.got, delivery{c, f})
	d.j.add("deliver %s %s", colorfmt.ToHex(c), f)
	return d.err
}

type fakeNotifier struct {
	j   *journal
	got [][2]string
}

func (n *fakeNotifier) ColorPicked(id, hex string) error {
	n.got = append(n.got, [2]string{id, hex})
	n.j.add("notify %s %s", id, hex)
	return nil
}

type fakePopup struct {
	j     *journal
	anims []Animation
	done  []func()
	menus []MenuRequest
}

func (p *fakePopup) PlayAnimation(a Animation, done func()) {
	p.anims = append(p.anims, a)
	p.done = append(p.done, done)
	p.j.add("animation %d,%d", a.At.X, a.At.Y)
}

func (p *fakePopup) ShowMenu(m MenuRequest) {
	p.menus = append(p.menus, m)
	p.j.add("menu %d,%d", m.At.X, m.At.Y)
}

type fakeOptions map[string]string

func (o fakeOptions) Option(key, def string) string {
	if v, ok := o[key]; ok {
		return v
	}
	return def
}

type rig struct {
	t        *testing.T
	j        *journal
	capture  *recordingCapture
	pointer  *fakePointer
	cursor   *fakeCursor
	window   *fakeWindow
	deliver  *fakeDeliverer
	notifier *fakeNotifier
	popup    *fakePopup
	options  fakeOptions
	ctrl     *Controller
}

type rigOption func(*Config, *rig)

func withNotifier() rigOption {
	return func(cfg *Config, r *rig) { cfg.Notifier = r.notifier }
}

func newRig(t *testing.T, screen image.Image, opts ...rigOption) *rig {
	t.Helper()
	j := &journal{}
	r := &rig{
		t:        t,
		j:        j,
		capture:  &recordingCapture{Snapshot: capture.FromImage(screen)},
		pointer:  &fakePointer{j: j},
		cursor:   &fakeCursor{},
		window:   &fakeWindow{},
		deliver:  &fakeDeliverer{j: j},
		notifier: &fakeNotifier{j: j},
		popup:    &fakePopup{j: j},
		options:  fakeOptions{},
	}
	cfg := Config{
		Geometry: lens.DefaultGeometry(1),
		Capture:  r.capture,
		Pointer:  r.pointer,
		Cursor:   r.cursor,
		Window:   r.window,
		Deliver:  r.deliver,
		Popup:    r.popup,
		Options:  r.options,
	}
	for _, o := range opts {
		o(&cfg, r)
	}
	ctrl, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.ctrl = ctrl
	return r
}

func (r *rig) start(id string, x, y int) {
	r.t.Helper()
	r.cursor.x, r.cursor.y = x, y
	if err := r.ctrl.StartSession(id); err != nil {
		r.t.Fatalf("StartSession: %v", err)
	}
}

func solidScreen(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var (
	epoch   = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	errGrab = errors.New("grab failed")
)
