package sketch

import (
	"fmt"
	"image/color"
	"strings"
)

// Mode selects the active drawing tool.
type Mode int

const (
	ModePen Mode = iota
	ModeEraser
)

const (
	MinThickness     = 1
	MaxThickness     = 20
	DefaultThickness = 5
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModePen:
		return "pen"
	case ModeEraser:
		return "eraser"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool { return m == ModePen || m == ModeEraser }

// ParseMode converts a tool name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen":
		return ModePen, nil
	case "eraser":
		return ModeEraser, nil
	}
	return ModePen, fmt.Errorf("unknown mode %q (want pen or eraser)", s)
}

// ClampThickness limits v to the supported thickness range.
func ClampThickness(v int) int {
	if v < MinThickness {
		return MinThickness
	}
	if v > MaxThickness {
		return MaxThickness
	}
	return v
}

// Point is a position either in viewport or in surface-local coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Settings holds the tool state that persists across gestures.
type Settings struct {
	Mode      Mode
	Thickness int
}

// Gesture is the transient state of a stroke in progress. Last is only
// meaningful while Active is true.
type Gesture struct {
	Active bool
	Last   Point
}

// LineCap describes how segment end points are drawn.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	}
	return fmt.Sprintf("LineCap(%d)", int(c))
}

// CompositeOp is the rule used to combine new paint with existing pixels.
type CompositeOp int

const (
	// CompositeSourceOver paints the stroke colour over the surface.
	CompositeSourceOver CompositeOp = iota
	// CompositeDestinationOut removes existing pixels under the stroke.
	CompositeDestinationOut
)

func (op CompositeOp) String() string {
	switch op {
	case CompositeSourceOver:
		return "source-over"
	case CompositeDestinationOut:
		return "destination-out"
	}
	return fmt.Sprintf("CompositeOp(%d)", int(op))
}

// Surface is the immediate-mode raster the controller draws on.
type Surface interface {
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetCompositeOp(op CompositeOp)
	SetStrokeColor(c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	ClearRect(x, y, w, h float64)
	Size() (w, h int)
}

// Locator reports where the surface currently sits in viewport coordinates.
type Locator interface {
	Origin() Point
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func() Point

func (f LocatorFunc) Origin() Point { return f() }

// fixedOrigin is used when no locator is supplied.
type fixedOrigin Point

func (o fixedOrigin) Origin() Point { return Point(o) }
