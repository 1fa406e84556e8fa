package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/example/screenpicker/internal/capture"
	"github.com/example/screenpicker/internal/clipboard"
	"github.com/example/screenpicker/internal/dbusservice"
	"github.com/example/screenpicker/internal/lens"
	"github.com/example/screenpicker/internal/picker"
	"github.com/example/screenpicker/internal/settings"
)

const defaultHold = 30 * time.Second

type options struct {
	dbus         bool
	appID        string
	settingsPath string
	scale        float64
	display      int
	hold         time.Duration
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "screenpicker",
		Short: "Pick a color from anywhere on the screen",
		Long: `Covers the screen with a magnifying lens that follows the pointer.

Left click copies the color under the crosshair in the stored format.
Right click opens a menu to copy it in another format, which becomes the
new default. Escape cancels.

Examples:
  screenpicker                 # pick once and exit
  screenpicker --dbus          # wait for com.deepin.Picker.StartPick
  screenpicker --display 1     # pick on the second monitor`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd.Context(), opts); err != nil {
				log.Printf("screenpicker: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.dbus, "dbus", false, "Serve "+dbusservice.ServiceName+" on the session bus and wait for StartPick")
	cmd.Flags().StringVar(&opts.appID, "app-id", "", "Session id used with --dbus when StartPick passes an empty one")
	cmd.Flags().StringVar(&opts.settingsPath, "settings", settings.DefaultPath(), "Settings file")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "Device scale factor (0 detects it from the monitor)")
	cmd.Flags().IntVar(&opts.display, "display", 0, "Index of the display to pick on")
	cmd.Flags().DurationVar(&opts.hold, "hold", defaultHold, "How long to keep owning the clipboard after a copy")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every lens refresh")

	return cmd
}

func run(ctx context.Context, opts options) error {
	prefs, err := settings.Load(opts.settingsPath)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	var sessionID string
	var svc *dbusservice.Service
	if opts.dbus {
		svc, err = dbusservice.Start()
		if err != nil {
			return err
		}
		defer svc.Close()

		waitCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		requested, err := svc.WaitSession(waitCtx)
		stop()
		if err != nil {
			return fmt.Errorf("wait for StartPick: %w", err)
		}
		sessionID = sessionFor(requested, opts.appID)
	}

	screen, err := capture.NewScreen(opts.display)
	if err != nil {
		showFatal(err)
		return err
	}
	// the overlay draws over the desktop, so everything is read from a copy
	// taken before it appears
	snap, err := capture.Freeze(screen)
	if err != nil {
		showFatal(err)
		return err
	}

	scale := opts.scale
	if scale <= 0 {
		scale = ebiten.Monitor().DeviceScaleFactor()
	}

	clip := clipboard.New()
	deliver := newClipboardDelivery(clip, opts.verbose)
	g := NewGame(snap, prefs, deliver, sessionID, scale)

	cfg := picker.Config{
		Geometry: lens.DefaultGeometry(scale),
		Capture:  snap,
		Pointer:  g,
		Cursor:   g,
		Window:   g,
		Deliver:  deliver,
		Popup:    g,
		Options:  prefs,
		Verbose:  opts.verbose,
	}
	if svc != nil {
		cfg.Notifier = svc
	}
	g.ctrl, err = picker.New(cfg)
	if err != nil {
		return err
	}

	setupWindow(screen.Origin(), snap.Bounds(), scale)
	if err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
	}); err != nil {
		return err
	}

	if deliver.Last() != "" && prefs.Bool(settings.KeyHoldClipboard, true) {
		clip.Hold(opts.hold)
	}
	return nil
}

// sessionFor picks the id the color is reported under: the caller's own, or
// fallback when the caller sent none.
func sessionFor(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}

// setupWindow makes a borderless, always-on-top window covering the display.
// Window metrics are in device-independent pixels.
func setupWindow(origin image.Point, bounds image.Rectangle, scale float64) {
	ebiten.SetWindowTitle(appTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowSize(int(float64(bounds.Dx())/scale), int(float64(bounds.Dy())/scale))
	ebiten.SetWindowPosition(int(float64(origin.X)/scale), int(float64(origin.Y)/scale))
}
