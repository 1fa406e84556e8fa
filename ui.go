package main

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type UI struct {
	face font.Face
}

// NewUI loads the menu font at the device scale, falling back to the fixed
// bitmap face when the TTF cannot be used.
func NewUI(scale float64) *UI {
	ui := &UI{}
	if scale <= 0 {
		scale = 1
	}

	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("could not parse ttf: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 13, DPI: 72 * scale, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("could not create font face: %v; falling back to basic font", err)
		ui.face = basicfont.Face7x13
		return ui
	}
	ui.face = face
	return ui
}
