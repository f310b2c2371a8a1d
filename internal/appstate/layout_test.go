package appstate

import (
	"image"
	"testing"

	"github.com/example/sketchpad/internal/sketch"
)

var canvasSize = image.Pt(500, 500)

func preferredLayout() layout {
	w, h := preferredSize(canvasSize)
	return computeLayout(w, h, canvasSize)
}

func TestPreferredSizeFitsEverything(t *testing.T) {
	l := preferredLayout()
	win := image.Rect(0, 0, l.width, l.height)
	for name, r := range map[string]image.Rectangle{
		"dropdown": l.dropdown,
		"pen":      l.pen,
		"eraser":   l.eraser,
		"slider":   l.slider,
		"clear":    l.clear,
		"canvas":   l.canvas,
		"submit":   l.submit,
	} {
		if !r.In(win) {
			t.Errorf("%s %v outside window %v", name, r, win)
		}
	}
	if l.canvas.Dx() != 500 || l.canvas.Dy() != 500 {
		t.Fatalf("canvas rect %v is not 500x500", l.canvas)
	}
}

func TestLayoutColumnOrder(t *testing.T) {
	l := preferredLayout()
	if l.description[len(l.description)-1].Y >= l.pen.Min.Y {
		t.Errorf("description overlaps toolbar")
	}
	if l.pen.Max.Y > l.canvas.Min.Y {
		t.Errorf("toolbar %v overlaps canvas %v", l.pen, l.canvas)
	}
	if l.canvas.Max.Y > l.submit.Min.Y {
		t.Errorf("canvas %v overlaps submit %v", l.canvas, l.submit)
	}
	if !(l.pen.Max.X <= l.eraser.Min.X && l.eraser.Max.X <= l.label.Min.X &&
		l.label.Max.X <= l.slider.Min.X && l.slider.Max.X <= l.clear.Min.X) {
		t.Errorf("toolbar items out of order: %v %v %v %v %v", l.pen, l.eraser, l.label, l.slider, l.clear)
	}
	mid := l.width / 2
	if c := (l.canvas.Min.X + l.canvas.Max.X) / 2; c < mid-1 || c > mid+1 {
		t.Errorf("canvas not centred: centre %d, window centre %d", c, mid)
	}
}

func TestLayoutCentresVertically(t *testing.T) {
	small := computeLayout(800, 600, canvasSize)
	big := computeLayout(800, 1200, canvasSize)
	if big.canvas.Min.Y <= small.canvas.Min.Y {
		t.Fatalf("taller window did not move content down: %v vs %v", big.canvas, small.canvas)
	}
	if big.dropdown != small.dropdown {
		t.Fatalf("dropdown should stay pinned to the top-right")
	}
}

func TestHit(t *testing.T) {
	l := preferredLayout()
	centre := func(r image.Rectangle) image.Point { return r.Min.Add(r.Size().Div(2)) }
	tests := []struct {
		name string
		p    image.Point
		open bool
		want target
		idx  int
	}{
		{"pen", centre(l.pen), false, targetPen, 0},
		{"eraser", centre(l.eraser), false, targetEraser, 0},
		{"slider", centre(l.slider), false, targetSlider, 0},
		{"clear", centre(l.clear), false, targetClear, 0},
		{"canvas", centre(l.canvas), false, targetCanvas, 0},
		{"submit", centre(l.submit), false, targetSubmit, 0},
		{"dropdown", centre(l.dropdown), false, targetDropdown, 0},
		{"closed list", centre(l.dropdownItems[1]), false, targetNone, 0},
		{"open list", centre(l.dropdownItems[2]), true, targetDropdownItem, 2},
		{"background", image.Pt(1, l.height-1), false, targetNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx := l.hit(tt.p, tt.open)
			if got != tt.want || idx != tt.idx {
				t.Fatalf("hit(%v) = %v,%d want %v,%d", tt.p, got, idx, tt.want, tt.idx)
			}
		})
	}
}

func TestSliderMapping(t *testing.T) {
	r := image.Rect(100, 0, 100+sliderWidth, toolbarHeight)
	x0, x1 := sliderTravel(r)
	if v := sliderValue(r, x0); v != sketch.MinThickness {
		t.Errorf("left end = %d", v)
	}
	if v := sliderValue(r, x1); v != sketch.MaxThickness {
		t.Errorf("right end = %d", v)
	}
	if v := sliderValue(r, -500); v != sketch.MinThickness {
		t.Errorf("far left = %d", v)
	}
	if v := sliderValue(r, 5000); v != sketch.MaxThickness {
		t.Errorf("far right = %d", v)
	}
	for v := sketch.MinThickness; v <= sketch.MaxThickness; v++ {
		if got := sliderValue(r, sliderKnobX(r, v)); got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}
