package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
	"golang.org/x/exp/shiny/screen"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

type paintState struct {
	width, height int
	lay           layout
	canvas        *image.RGBA
	settings      sketch.Settings
	dropdownOpen  bool
	selected      int
	hover         target
	hoverItem     int
	pressed       target
	message       string
}

// painter owns the cached widgets. It is only used by the paint goroutine.
type painter struct {
	theme  *theme.Theme
	pen    *ToolButton
	eraser *ToolButton
	clear  *ActionButton
	submit *ActionButton

	buttons map[target]*CacheButton
}

func newPainter(t *theme.Theme) *painter {
	p := &painter{theme: t}
	p.pen = &ToolButton{label: penLabel, accent: t.PenActive, theme: t}
	p.eraser = &ToolButton{label: eraserLabel, accent: t.EraserActive, theme: t}
	p.clear = &ActionButton{
		label:  clearLabel,
		bg:     [3]color.RGBA{t.ButtonBackground, t.ButtonBackgroundHover, t.ButtonBackgroundPress},
		fg:     t.ButtonText,
		border: t.ButtonBorder,
	}
	p.submit = &ActionButton{
		label: submitLabel,
		bg:    [3]color.RGBA{t.SubmitBackground, t.SubmitHover, t.SubmitHover},
		fg:    t.SubmitText,
	}
	p.buttons = map[target]*CacheButton{
		targetPen:    {Button: p.pen},
		targetEraser: {Button: p.eraser},
		targetClear:  {Button: p.clear},
		targetSubmit: {Button: p.submit},
	}
	return p
}

func (p *painter) buttonState(t target, st paintState) ButtonState {
	switch {
	case st.pressed == t && st.hover == t:
		return StatePressed
	case st.hover == t:
		return StateHover
	}
	return StateDefault
}

// syncButtons moves the buttons to the current layout and refreshes the
// tool selection.
func (p *painter) syncButtons(st paintState) {
	rects := map[target]image.Rectangle{
		targetPen:    st.lay.pen,
		targetEraser: st.lay.eraser,
		targetClear:  st.lay.clear,
		targetSubmit: st.lay.submit,
	}
	for t, r := range rects {
		p.buttons[t].SetRect(r)
	}
	penSel := st.settings.Mode == sketch.ModePen
	if p.pen.selected != penSel {
		p.pen.selected = penSel
		p.buttons[targetPen].Invalidate()
	}
	if p.eraser.selected == penSel {
		p.eraser.selected = !penSel
		p.buttons[targetEraser].Invalidate()
	}
}

// render draws a full frame into dst. It returns false when ctx was
// cancelled before the frame was complete.
func (p *painter) render(ctx context.Context, dst *image.RGBA, st paintState) bool {
	t := p.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{t.Background}, image.Point{}, draw.Src)

	drawString(dst, headingFace, t.Foreground, st.lay.heading, heading)
	for i, dot := range st.lay.description {
		drawString(dst, bodyFace, t.Muted, dot, description[i])
	}
	if ctx.Err() != nil {
		return false
	}

	p.syncButtons(st)
	for _, bt := range []target{targetPen, targetEraser, targetClear} {
		p.buttons[bt].Draw(dst, p.buttonState(bt, st))
	}
	ascent, descent := lineHeight(labelFace)
	lr := st.lay.label
	drawString(dst, labelFace, t.Muted, image.Pt(lr.Min.X, lr.Min.Y+(lr.Dy()-ascent-descent)/2+ascent), thicknessLabel)
	drawSlider(dst, st.lay.slider, st.settings.Thickness, t)
	if ctx.Err() != nil {
		return false
	}

	render.DrawFrame(dst, st.lay.canvas, render.FrameOptions{
		Shadow:      render.DefaultShadowOptions(),
		Background:  t.CanvasBackground,
		Border:      t.CanvasBorder,
		BorderWidth: 1,
	})
	if st.canvas != nil {
		render.Composite(dst, st.lay.canvas.Min, st.canvas)
	}
	if ctx.Err() != nil {
		return false
	}

	p.buttons[targetSubmit].Draw(dst, p.buttonState(targetSubmit, st))
	drawDropdown(dst, st.lay, st.selected, st.hoverItem, st.dropdownOpen, t)

	if st.message != "" {
		drawMessage(dst, st.width, st.height, st.message, t)
	}
	return ctx.Err() == nil
}

// drawMessage shows msg in a box centred in the window.
func drawMessage(dst *image.RGBA, width, height int, msg string, t *theme.Theme) {
	wmsg := measure(messageFace, msg)
	ascent, descent := lineHeight(messageFace)
	px := (width - wmsg) / 2
	py := (height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	bg := t.CanvasBackground
	bg.A = 230
	draw.Draw(dst, rect, &image.Uniform{bg}, image.Point{}, draw.Over)
	drawOutline(dst, rect, t.Foreground, 2)
	drawString(dst, messageFace, t.Foreground, image.Pt(px, py), msg)
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, p *painter, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	if !p.render(ctx, b.RGBA(), st) {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
