package appstate

import (
	"image"
	"image/color"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	headingFace font.Face
	bodyFace    font.Face
	buttonFace  font.Face
	labelFace   font.Face
	messageFace font.Face
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	newFace := func(size float64) font.Face {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			log.Fatalf("font face: %v", err)
		}
		return face
	}
	headingFace = newFace(36)
	bodyFace = newFace(18)
	buttonFace = newFace(16)
	labelFace = newFace(14)
	messageFace = newFace(48)
}

func measure(face font.Face, s string) int {
	d := &font.Drawer{Face: face}
	return d.MeasureString(s).Ceil()
}

// lineHeight returns the ascent and descent of face in whole pixels.
func lineHeight(face font.Face) (ascent, descent int) {
	m := face.Metrics()
	return m.Ascent.Ceil(), m.Descent.Ceil()
}

func drawString(dst *image.RGBA, face font.Face, col color.Color, dot image.Point, s string) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face, Dot: fixed.P(dot.X, dot.Y)}
	d.DrawString(s)
}

// drawStringCentered draws s centred inside r.
func drawStringCentered(dst *image.RGBA, face font.Face, col color.Color, r image.Rectangle, s string) {
	ascent, descent := lineHeight(face)
	x := r.Min.X + (r.Dx()-measure(face, s))/2
	y := r.Min.Y + (r.Dy()-ascent-descent)/2 + ascent
	drawString(dst, face, col, image.Pt(x, y), s)
}
