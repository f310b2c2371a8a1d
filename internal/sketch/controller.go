// Package sketch turns pointer and touch input into line segments on a raster
// surface. A Controller is owned by a single UI goroutine and is not safe for
// concurrent use.
package sketch

import "image/color"

// Controller tracks tool settings and the gesture in progress and issues draw
// commands to its bound Surface.
type Controller struct {
	settings Settings
	gesture  Gesture
	color    color.Color

	surface Surface
	locator Locator

	settingsFn func(Settings)
}

// Option modifies a Controller during creation.
type Option func(*Controller)

// WithMode sets the initial tool.
func WithMode(m Mode) Option { return func(c *Controller) { c.settings.Mode = m } }

// WithThickness sets the initial stroke thickness. Out of range values are clamped.
func WithThickness(v int) Option { return func(c *Controller) { c.settings.Thickness = v } }

// WithStrokeColor sets the pen colour.
func WithStrokeColor(col color.Color) Option { return func(c *Controller) { c.color = col } }

// WithSettingsListener registers a callback invoked after the settings change.
func WithSettingsListener(fn func(Settings)) Option {
	return func(c *Controller) { c.settingsFn = fn }
}

// New creates a Controller with the provided options.
func New(opts ...Option) *Controller {
	c := &Controller{
		settings: Settings{Mode: ModePen, Thickness: DefaultThickness},
		color:    color.Black,
	}
	for _, o := range opts {
		o(c)
	}
	if !c.settings.Mode.valid() {
		c.settings.Mode = ModePen
	}
	c.settings.Thickness = ClampThickness(c.settings.Thickness)
	if c.color == nil {
		c.color = color.Black
	}
	return c
}

// Settings returns the current tool settings.
func (c *Controller) Settings() Settings { return c.settings }

// Gesture returns the state of the stroke in progress.
func (c *Controller) Gesture() Gesture { return c.gesture }

// StrokeColor returns the pen colour.
func (c *Controller) StrokeColor() color.Color { return c.color }

// Bound reports whether a surface has been attached.
func (c *Controller) Bound() bool { return c.surface != nil }

// Initialize binds the controller to surface and applies the base paint
// attributes. loc may be nil when input already arrives in surface-local
// coordinates.
func (c *Controller) Initialize(surface Surface, loc Locator) {
	if loc == nil {
		loc = fixedOrigin{}
	}
	c.surface = surface
	c.locator = loc
	c.applyPaint()
}

func (c *Controller) applyPaint() {
	if c.surface == nil {
		return
	}
	c.surface.SetLineWidth(float64(c.settings.Thickness))
	c.surface.SetLineCap(CapRound)
	c.surface.SetStrokeColor(c.color)
	c.surface.SetCompositeOp(CompositeSourceOver)
}

func (c *Controller) local(p Point) Point {
	return p.Sub(c.locator.Origin())
}

// BeginStroke starts a gesture at the viewport position p.
func (c *Controller) BeginStroke(p Point) {
	if c.surface == nil {
		return
	}
	c.gesture = Gesture{Active: true, Last: c.local(p)}
}

// ExtendStroke draws a segment from the last sampled position to p. It does
// nothing unless a gesture is active.
func (c *Controller) ExtendStroke(p Point) {
	if !c.gesture.Active || c.surface == nil {
		return
	}
	next := c.local(p)
	s := c.surface
	s.BeginPath()
	s.MoveTo(c.gesture.Last.X, c.gesture.Last.Y)
	s.LineTo(next.X, next.Y)
	if c.settings.Mode == ModeEraser {
		s.SetCompositeOp(CompositeDestinationOut)
		s.SetLineWidth(float64(c.settings.Thickness * 2))
	} else {
		s.SetCompositeOp(CompositeSourceOver)
		s.SetLineWidth(float64(c.settings.Thickness))
	}
	s.Stroke()
	c.gesture.Last = next
}

// EndStroke finishes the current gesture. Calling it without an active
// gesture is harmless.
func (c *Controller) EndStroke() {
	c.gesture.Active = false
}

// Clear erases the whole surface. Tool settings and the gesture are untouched.
func (c *Controller) Clear() {
	if c.surface == nil {
		return
	}
	w, h := c.surface.Size()
	c.surface.ClearRect(0, 0, float64(w), float64(h))
}

// SetMode selects the tool used for the next segment.
func (c *Controller) SetMode(m Mode) error {
	if !m.valid() {
		return &ModeError{Mode: m}
	}
	if c.settings.Mode == m {
		return nil
	}
	c.settings.Mode = m
	c.notify()
	return nil
}

// SetThickness sets the stroke thickness, clamped to [MinThickness, MaxThickness],
// and returns the value actually stored.
func (c *Controller) SetThickness(v int) int {
	v = ClampThickness(v)
	if v != c.settings.Thickness {
		c.settings.Thickness = v
		c.applyPaint()
		c.notify()
	}
	return v
}

func (c *Controller) notify() {
	if c.settingsFn != nil {
		c.settingsFn(c.settings)
	}
}

// TouchStart begins a gesture at the first touch point.
func (c *Controller) TouchStart(touches []Point) {
	if len(touches) == 0 {
		return
	}
	c.BeginStroke(touches[0])
}

// TouchMove extends the gesture to the first touch point.
func (c *Controller) TouchMove(touches []Point) {
	if len(touches) == 0 {
		return
	}
	c.ExtendStroke(touches[0])
}

// TouchEnd finishes the gesture.
func (c *Controller) TouchEnd() { c.EndStroke() }
