package appstate

import (
	"image"
	"math"

	"github.com/example/sketchpad/internal/sketch"
)

const (
	heading = "Canvas Drawing Project"

	penLabel       = "P:Pen"
	eraserLabel    = "E:Eraser"
	thicknessLabel = "Pen Thickness:"
	clearLabel     = "C:Clear"
	submitLabel    = "Submit"

	pad           = 16
	toolbarHeight = 40
	submitHeight  = 40
	sliderWidth   = 128
	knobRadius    = 8
	dropdownItemH = 28
)

var description = []string{
	"This is a simple drawing application where you can create and save",
	"your artwork. Use the tools above to draw and erase as needed.",
}

var dropdownOptions = []string{"Option 1", "Option 2", "Option 3"}

// target identifies an interactive region of the window.
type target int

const (
	targetNone target = iota
	targetDropdown
	targetDropdownItem
	targetPen
	targetEraser
	targetSlider
	targetClear
	targetCanvas
	targetSubmit
)

// layout holds the window geometry for one window size. All rectangles are in
// window pixels.
type layout struct {
	width, height int

	heading     image.Point
	description []image.Point

	dropdown      image.Rectangle
	dropdownItems []image.Rectangle

	pen, eraser image.Rectangle
	label       image.Rectangle
	slider      image.Rectangle
	clear       image.Rectangle

	canvas image.Rectangle
	submit image.Rectangle
}

func buttonWidth(label string) int { return measure(buttonFace, label) + 24 }

func toolbarWidth() int {
	return buttonWidth(penLabel) + buttonWidth(eraserLabel) + measure(labelFace, thicknessLabel) +
		sliderWidth + buttonWidth(clearLabel) + 4*pad
}

func dropdownWidth() int {
	w := 0
	for _, o := range dropdownOptions {
		w = max(w, measure(buttonFace, o))
	}
	return w + 3*pad
}

func headerHeight() int {
	ha, hd := lineHeight(headingFace)
	ba, bd := lineHeight(bodyFace)
	return ha + hd + 8 + len(description)*(ba+bd)
}

func contentHeight(canvas image.Point) int {
	return headerHeight() + 2*pad + toolbarHeight + pad + canvas.Y + 2*pad + submitHeight
}

// preferredSize returns a window size that fits every control around a
// canvas of the given size.
func preferredSize(canvas image.Point) (int, int) {
	w := max(canvas.X, toolbarWidth())
	for _, line := range description {
		w = max(w, measure(bodyFace, line))
	}
	w += 2 * pad
	w = max(w, measure(headingFace, heading)+2*(dropdownWidth()+2*pad))
	return w, contentHeight(canvas) + 2*pad
}

// computeLayout stacks the header, toolbar, canvas and submit button in a
// centred column and pins the dropdown to the top-right corner.
func computeLayout(width, height int, canvas image.Point) layout {
	l := layout{width: width, height: height}
	cx := width / 2
	y := max(pad, (height-contentHeight(canvas))/2)

	ha, hd := lineHeight(headingFace)
	l.heading = image.Pt(cx-measure(headingFace, heading)/2, y+ha)
	y += ha + hd + 8
	ba, bd := lineHeight(bodyFace)
	for _, line := range description {
		l.description = append(l.description, image.Pt(cx-measure(bodyFace, line)/2, y+ba))
		y += ba + bd
	}
	y += 2 * pad

	x := cx - toolbarWidth()/2
	row := func(w int) image.Rectangle {
		r := image.Rect(x, y, x+w, y+toolbarHeight)
		x += w + pad
		return r
	}
	l.pen = row(buttonWidth(penLabel))
	l.eraser = row(buttonWidth(eraserLabel))
	l.label = row(measure(labelFace, thicknessLabel))
	l.slider = row(sliderWidth)
	l.clear = row(buttonWidth(clearLabel))
	y += toolbarHeight + pad

	cxMin := max(pad, cx-canvas.X/2)
	l.canvas = image.Rect(cxMin, y, cxMin+canvas.X, y+canvas.Y)
	y += canvas.Y + 2*pad

	sw := buttonWidth(submitLabel) + 2*pad
	l.submit = image.Rect(cx-sw/2, y, cx-sw/2+sw, y+submitHeight)

	dw := dropdownWidth()
	l.dropdown = image.Rect(width-pad-dw, pad, width-pad, pad+36)
	for i := range dropdownOptions {
		top := l.dropdown.Max.Y + i*dropdownItemH
		l.dropdownItems = append(l.dropdownItems, image.Rect(l.dropdown.Min.X, top, l.dropdown.Max.X, top+dropdownItemH))
	}
	return l
}

// hit returns the control under p. The open dropdown list covers everything
// beneath it. idx is the dropdown option for targetDropdownItem.
func (l layout) hit(p image.Point, dropdownOpen bool) (t target, idx int) {
	if dropdownOpen {
		for i, r := range l.dropdownItems {
			if p.In(r) {
				return targetDropdownItem, i
			}
		}
	}
	switch {
	case p.In(l.dropdown):
		return targetDropdown, 0
	case p.In(l.pen):
		return targetPen, 0
	case p.In(l.eraser):
		return targetEraser, 0
	case p.In(l.slider):
		return targetSlider, 0
	case p.In(l.clear):
		return targetClear, 0
	case p.In(l.canvas):
		return targetCanvas, 0
	case p.In(l.submit):
		return targetSubmit, 0
	}
	return targetNone, 0
}

// origin is the canvas origin in window coordinates.
func (l layout) origin() sketch.Point {
	return sketch.Pt(float64(l.canvas.Min.X), float64(l.canvas.Min.Y))
}

func sliderTravel(r image.Rectangle) (x0, x1 int) {
	return r.Min.X + knobRadius, r.Max.X - knobRadius
}

// sliderValue maps a horizontal position on the slider to a thickness.
func sliderValue(r image.Rectangle, x int) int {
	x0, x1 := sliderTravel(r)
	if x1 <= x0 {
		return sketch.MinThickness
	}
	frac := float64(x-x0) / float64(x1-x0)
	frac = math.Max(0, math.Min(1, frac))
	return sketch.MinThickness + int(math.Round(frac*float64(sketch.MaxThickness-sketch.MinThickness)))
}

// sliderKnobX is the inverse of sliderValue.
func sliderKnobX(r image.Rectangle, v int) int {
	x0, x1 := sliderTravel(r)
	v = sketch.ClampThickness(v)
	span := float64(sketch.MaxThickness - sketch.MinThickness)
	return x0 + int(math.Round(float64(v-sketch.MinThickness)*float64(x1-x0)/span))
}
