// Package appstate runs the drawing window: a header, the tool row, the
// canvas and the submit button, driven by shiny.
package appstate

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// Submitter receives the drawing when the user presses Submit.
type Submitter interface {
	Submit(img image.Image)
}

// SubmitFunc adapts a function to the Submitter interface.
type SubmitFunc func(img image.Image)

func (f SubmitFunc) Submit(img image.Image) { f(img) }

// AppState holds application configuration for the UI.
type AppState struct {
	Controller *sketch.Controller
	Canvas     *canvas.Canvas
	Theme      *theme.Theme
	Title      string

	submitter Submitter
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithController sets the controller that receives pointer input.
func WithController(c *sketch.Controller) Option { return func(a *AppState) { a.Controller = c } }

// WithCanvas sets the drawing surface shown in the window.
func WithCanvas(c *canvas.Canvas) Option { return func(a *AppState) { a.Canvas = c } }

// WithTheme sets the colour palette.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithSubmitter registers the collaborator invoked by the Submit button.
func WithSubmitter(s Submitter) Option { return func(a *AppState) { a.submitter = s } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{Title: "Sketchpad"}
	for _, o := range opts {
		o(a)
	}
	if a.Controller == nil {
		a.Controller = sketch.New()
	}
	if a.Canvas == nil {
		a.Canvas = canvas.New(canvas.DefaultWidth, canvas.DefaultHeight)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// submit hands a snapshot to the submitter off the event goroutine.
func (a *AppState) submit(img *image.RGBA) {
	if a.submitter == nil {
		return
	}
	go a.submitter.Submit(img)
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	cw, ch := a.Canvas.Size()
	canvasSize := image.Pt(cw, ch)
	width, height := preferredSize(canvasSize)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	done := make(chan struct{})
	defer close(done)

	sess := newSession(a.Controller, a.Canvas, computeLayout(width, height, canvasSize))
	sess.submit = a.submit
	sess.onMessage = func() {
		// Repaint once the message has expired.
		time.AfterFunc(messageDuration+50*time.Millisecond, func() {
			select {
			case <-done:
			default:
				w.Send(paint.Event{})
			}
		})
	}
	a.Controller.Initialize(a.Canvas, sess)

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	cancelPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}
	p := newPainter(a.Theme)
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, p, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()
	defer close(paintCh)

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				cancelPaint()
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				sess.endStroke()
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			sess.lay = computeLayout(width, height, canvasSize)
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			st := sess.paintState(width, height)
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			if sess.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case touch.Event:
			if sess.handleTouch(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			repaint, quit := sess.handleKey(e)
			if quit {
				cancelPaint()
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}
