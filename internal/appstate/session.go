package appstate

import (
	"image"
	"log"
	"time"
	"unicode"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/sketch"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

const messageDuration = 2 * time.Second

// session holds the interactive state of one window. It is only touched by
// the event loop goroutine.
type session struct {
	ctl    *sketch.Controller
	canvas *canvas.Canvas
	lay    layout

	dropdownOpen bool
	selected     int
	hover        target
	hoverItem    int
	pressed      target

	drawing  bool
	sliding  bool
	touching bool
	touchSeq touch.Sequence

	message      string
	messageUntil time.Time

	now func() time.Time
	// submit is called with a copy of the canvas when Submit is activated.
	submit func(img *image.RGBA)
	// onMessage is called after a transient message was posted.
	onMessage func()
}

func newSession(ctl *sketch.Controller, cv *canvas.Canvas, lay layout) *session {
	return &session{ctl: ctl, canvas: cv, lay: lay, hoverItem: -1, now: time.Now}
}

// Origin implements sketch.Locator using the current canvas position.
func (s *session) Origin() sketch.Point { return s.lay.origin() }

func (s *session) messageVisible() bool {
	return s.message != "" && s.now().Before(s.messageUntil)
}

func (s *session) postMessage(msg string) {
	s.message = msg
	s.messageUntil = s.now().Add(messageDuration)
	log.Print(msg)
	if s.onMessage != nil {
		s.onMessage()
	}
}

// endStroke finishes any gesture, whatever input started it.
func (s *session) endStroke() {
	s.drawing = false
	s.touching = false
	s.ctl.EndStroke()
}

// handleMouse applies a mouse event and reports whether a repaint is needed.
func (s *session) handleMouse(e mouse.Event) bool {
	if e.Direction == mouse.DirStep {
		return false
	}
	p := image.Pt(int(e.X), int(e.Y))
	vp := sketch.Pt(float64(e.X), float64(e.Y))

	// A press dismisses the message and is then handled as usual.
	if s.messageVisible() && e.Direction == mouse.DirPress {
		s.messageUntil = time.Time{}
	}

	t, idx := s.lay.hit(p, s.dropdownOpen)
	repaint := false
	if t != s.hover || (t == targetDropdownItem && idx != s.hoverItem) {
		s.hover = t
		s.hoverItem = -1
		if t == targetDropdownItem {
			s.hoverItem = idx
		}
		repaint = true
	}

	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return repaint
		}
		if s.dropdownOpen && t != targetDropdown && t != targetDropdownItem {
			s.dropdownOpen = false
			return true
		}
		s.pressed = t
		switch t {
		case targetCanvas:
			s.drawing = true
			s.ctl.BeginStroke(vp)
		case targetSlider:
			s.sliding = true
			s.ctl.SetThickness(sliderValue(s.lay.slider, p.X))
		}
		return true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return repaint
		}
		if s.drawing {
			s.drawing = false
			s.ctl.EndStroke()
		}
		s.sliding = false
		if s.pressed != targetNone && s.pressed == t {
			s.activate(t, idx)
		}
		s.pressed = targetNone
		return true
	default:
		if s.sliding {
			s.ctl.SetThickness(sliderValue(s.lay.slider, p.X))
			return true
		}
		if s.drawing {
			if !p.In(s.lay.canvas) {
				s.drawing = false
				s.ctl.EndStroke()
				return true
			}
			s.ctl.ExtendStroke(vp)
			return true
		}
	}
	return repaint
}

// handleTouch follows the first touch sequence only. Other fingers are
// ignored until it lifts.
func (s *session) handleTouch(e touch.Event) bool {
	pts := []sketch.Point{sketch.Pt(float64(e.X), float64(e.Y))}
	switch e.Type {
	case touch.TypeBegin:
		if s.touching || !image.Pt(int(e.X), int(e.Y)).In(s.lay.canvas) {
			return false
		}
		s.touching = true
		s.touchSeq = e.Sequence
		s.ctl.TouchStart(pts)
	case touch.TypeMove:
		if !s.touching || e.Sequence != s.touchSeq {
			return false
		}
		s.ctl.TouchMove(pts)
	case touch.TypeEnd:
		if !s.touching || e.Sequence != s.touchSeq {
			return false
		}
		s.touching = false
		s.ctl.TouchEnd()
	}
	return true
}

// handleKey applies a key press. quit is set when the window should close.
func (s *session) handleKey(e key.Event) (repaint, quit bool) {
	if e.Direction != key.DirPress {
		return false, false
	}
	if e.Code == key.CodeEscape {
		if s.dropdownOpen {
			s.dropdownOpen = false
			return true, false
		}
		return false, false
	}
	switch unicode.ToLower(e.Rune) {
	case 'p':
		s.activate(targetPen, 0)
	case 'e':
		s.activate(targetEraser, 0)
	case 'c':
		s.activate(targetClear, 0)
	case '+', '=':
		s.ctl.SetThickness(s.ctl.Settings().Thickness + 1)
	case '-', '_':
		s.ctl.SetThickness(s.ctl.Settings().Thickness - 1)
	case 'q':
		return false, true
	default:
		return false, false
	}
	return true, false
}

func (s *session) activate(t target, idx int) {
	switch t {
	case targetPen:
		_ = s.ctl.SetMode(sketch.ModePen)
	case targetEraser:
		_ = s.ctl.SetMode(sketch.ModeEraser)
	case targetClear:
		s.ctl.Clear()
	case targetDropdown:
		s.dropdownOpen = !s.dropdownOpen
	case targetDropdownItem:
		s.selected = idx
		s.dropdownOpen = false
		log.Printf("dropdown: selected %s", dropdownOptions[idx])
	case targetSubmit:
		s.postMessage("Submitted!")
		if s.submit != nil {
			s.submit(s.snapshot())
		}
	}
}

// snapshot copies the canvas raster so it can leave the event goroutine.
func (s *session) snapshot() *image.RGBA {
	src := s.canvas.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

func (s *session) paintState(width, height int) paintState {
	st := paintState{
		width:        width,
		height:       height,
		lay:          s.lay,
		canvas:       s.snapshot(),
		settings:     s.ctl.Settings(),
		dropdownOpen: s.dropdownOpen,
		selected:     s.selected,
		hover:        s.hover,
		hoverItem:    s.hoverItem,
		pressed:      s.pressed,
	}
	if s.messageVisible() {
		st.message = s.message
	}
	return st
}
