package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/sketchpad/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button is a drawable UI element. Clicks are resolved by the session's hit
// test, so buttons only paint themselves.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var (
	_ Button = (*CacheButton)(nil)
	_ Button = (*ToolButton)(nil)
	_ Button = (*ActionButton)(nil)
)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.Invalidate()
	}
}

// Invalidate drops the cached renders, for example after the wrapped
// button changed its appearance.
func (cb *CacheButton) Invalidate() { cb.cache = [3]*image.RGBA{} }

// ToolButton selects the pen or the eraser. The selected button is drawn in
// its accent colour.
type ToolButton struct {
	label    string
	accent   color.RGBA
	selected bool
	theme    *theme.Theme
	rect     image.Rectangle
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	t := tb.theme
	bg := t.ButtonBackground
	switch state {
	case StateHover:
		bg = t.ButtonBackgroundHover
	case StatePressed:
		bg = t.ButtonBackgroundPress
	}
	fg, border := t.ButtonText, t.ButtonBorder
	if tb.selected {
		fg, border = tb.accent, tb.accent
	}
	draw.Draw(dst, tb.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	drawOutline(dst, tb.rect, border, 1)
	drawStringCentered(dst, buttonFace, fg, tb.rect, tb.label)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) {
	if r != tb.rect {
		tb.rect = r
	}
}

// ActionButton is a push button with a text label.
type ActionButton struct {
	label  string
	bg     [3]color.RGBA
	fg     color.RGBA
	border color.RGBA
	rect   image.Rectangle
}

func (ab *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, ab.rect, &image.Uniform{ab.bg[state]}, image.Point{}, draw.Src)
	if ab.border.A != 0 {
		drawOutline(dst, ab.rect, ab.border, 1)
	}
	drawStringCentered(dst, buttonFace, ab.fg, ab.rect, ab.label)
}

func (ab *ActionButton) Rect() image.Rectangle { return ab.rect }

func (ab *ActionButton) SetRect(r image.Rectangle) {
	if r != ab.rect {
		ab.rect = r
	}
}

// drawSlider draws the thickness slider track, knob and current value.
func drawSlider(dst *image.RGBA, r image.Rectangle, value int, t *theme.Theme) {
	x0, x1 := sliderTravel(r)
	cy := r.Min.Y + r.Dy()/2
	track := image.Rect(x0, cy-2, x1, cy+2)
	draw.Draw(dst, track, &image.Uniform{t.SliderTrack}, image.Point{}, draw.Src)
	kx := sliderKnobX(r, value)
	fill := image.Rect(x0, cy-2, kx, cy+2)
	draw.Draw(dst, fill, &image.Uniform{t.SliderKnob}, image.Point{}, draw.Src)
	fillCircle(dst, kx, cy, knobRadius, t.SliderKnob)
}

// drawDropdown draws the closed select box and, when open, its option list.
func drawDropdown(dst *image.RGBA, l layout, selected, hover int, open bool, t *theme.Theme) {
	r := l.dropdown
	draw.Draw(dst, r, &image.Uniform{t.DropdownBackground}, image.Point{}, draw.Src)
	drawOutline(dst, r, t.DropdownBorder, 1)
	ascent, descent := lineHeight(buttonFace)
	baseline := r.Min.Y + (r.Dy()-ascent-descent)/2 + ascent
	drawString(dst, buttonFace, t.Foreground, image.Pt(r.Min.X+8, baseline), dropdownOptions[selected])
	drawChevron(dst, image.Pt(r.Max.X-14, r.Min.Y+r.Dy()/2), t.Muted)
	if !open {
		return
	}
	for i, ir := range l.dropdownItems {
		bg := t.DropdownBackground
		if i == hover {
			bg = t.ButtonBackgroundHover
		}
		draw.Draw(dst, ir, &image.Uniform{bg}, image.Point{}, draw.Src)
		baseline := ir.Min.Y + (ir.Dy()-ascent-descent)/2 + ascent
		drawString(dst, buttonFace, t.Foreground, image.Pt(ir.Min.X+8, baseline), dropdownOptions[i])
	}
	list := image.Rectangle{Min: l.dropdownItems[0].Min, Max: l.dropdownItems[len(l.dropdownItems)-1].Max}
	drawOutline(dst, list, t.DropdownBorder, 1)
}

// drawChevron draws a small downward pointing triangle centred at c.
func drawChevron(dst *image.RGBA, c image.Point, col color.Color) {
	for i := 0; i < 4; i++ {
		y := c.Y - 2 + i
		for x := c.X - 4 + i; x <= c.X+4-i; x++ {
			dst.Set(x, y, col)
		}
	}
}

// drawOutline draws a rectangle border of the given thickness inside r.
func drawOutline(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	src := &image.Uniform{col}
	for _, side := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick),
		image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y),
		image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, side.Intersect(r), src, image.Point{}, draw.Src)
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, col color.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				img.Set(cx+x, cy+y, col)
			}
		}
	}
}
