package main

import (
	"image/color"
	"log"

	"github.com/example/screenpicker/internal/colorfmt"
	"github.com/example/screenpicker/internal/picker"
)

type textWriter interface {
	WriteText(s string) error
}

// clipboardDelivery copies picked colors as text in the requested format.
type clipboardDelivery struct {
	clip    textWriter
	verbose bool
	last    string
}

var _ picker.Deliverer = (*clipboardDelivery)(nil)

func newClipboardDelivery(clip textWriter, verbose bool) *clipboardDelivery {
	return &clipboardDelivery{clip: clip, verbose: verbose}
}

func (d *clipboardDelivery) DeliverColor(c color.RGBA, f colorfmt.Format) error {
	s := colorfmt.Encode(c, f)
	if err := d.clip.WriteText(s); err != nil {
		return err
	}
	d.last = s
	if d.verbose {
		log.Printf("copied %s as %s", s, f.Label())
	}
	return nil
}

// Last is the text most recently copied, empty if nothing was.
func (d *clipboardDelivery) Last() string { return d.last }
