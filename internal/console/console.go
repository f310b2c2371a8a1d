// Package console drives a Controller and an off-screen canvas from text
// commands, one per line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/sketch"
)

// ErrUnknownCommand is returned for a command name the console does not know.
var ErrUnknownCommand = errors.New("unknown command")

const helpText = `commands:
  down X Y                  start a stroke at viewport position X,Y
  move X Y                  extend the stroke to X,Y
  up                        end the stroke
  touch start|move|end [X Y ...]
                            touch event, only the first point is used
  clear                     erase the canvas
  mode pen|eraser           select the tool
  thickness N               set the stroke thickness (1-20)
  origin X Y                move the canvas origin within the viewport
  settings                  show the current tool settings
  stats                     show canvas size and painted pixels
  submit                    submit the drawing
  help                      show this help
  exit                      leave the console`

// Console is a line oriented interpreter for drawing commands.
type Console struct {
	ctl    *sketch.Controller
	canvas *canvas.Canvas
	origin sketch.Point
	out    io.Writer
	errOut io.Writer
	prompt string
	submit func(image.Image)
}

// Option modifies a Console during creation.
type Option func(*Console)

// WithController sets the controller commands are applied to.
func WithController(ctl *sketch.Controller) Option { return func(c *Console) { c.ctl = ctl } }

// WithCanvas sets the surface the controller draws on.
func WithCanvas(cv *canvas.Canvas) Option { return func(c *Console) { c.canvas = cv } }

// WithOutput sets where command output and per-line errors are written.
func WithOutput(out, errOut io.Writer) Option {
	return func(c *Console) { c.out, c.errOut = out, errOut }
}

// WithPrompt sets the prompt printed before each line. Empty disables it.
func WithPrompt(p string) Option { return func(c *Console) { c.prompt = p } }

// WithSubmitter registers the function called by the submit command.
func WithSubmitter(fn func(image.Image)) Option { return func(c *Console) { c.submit = fn } }

// New creates a Console and binds its controller to the canvas.
func New(opts ...Option) *Console {
	c := &Console{out: io.Discard, errOut: io.Discard, prompt: "> "}
	for _, o := range opts {
		o(c)
	}
	if c.ctl == nil {
		c.ctl = sketch.New()
	}
	if c.canvas == nil {
		c.canvas = canvas.New(canvas.DefaultWidth, canvas.DefaultHeight)
	}
	c.ctl.Initialize(c.canvas, sketch.LocatorFunc(func() sketch.Point { return c.origin }))
	return c
}

// Canvas returns the surface being drawn on.
func (c *Console) Canvas() *canvas.Canvas { return c.canvas }

// Controller returns the controller commands are applied to.
func (c *Console) Controller() *sketch.Controller { return c.ctl }

// Run reads commands from r until EOF or exit. Errors are reported per line
// and do not stop the session.
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !scanner.Scan() {
			break
		}
		done, err := c.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.errOut, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// Execute runs a single command line. done reports that the session should
// end.
func (c *Console) Execute(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	args := strings.Fields(line)
	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "down":
		p, err := parsePoint(name, args)
		if err != nil {
			return false, err
		}
		c.ctl.BeginStroke(p)
	case "move":
		p, err := parsePoint(name, args)
		if err != nil {
			return false, err
		}
		c.ctl.ExtendStroke(p)
	case "up":
		c.ctl.EndStroke()
	case "touch":
		return false, c.touch(args)
	case "clear":
		c.ctl.Clear()
	case "mode":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: mode pen|eraser")
		}
		m, err := sketch.ParseMode(args[0])
		if err != nil {
			return false, err
		}
		if err := c.ctl.SetMode(m); err != nil {
			return false, err
		}
	case "thickness":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: thickness N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("thickness: %w", err)
		}
		fmt.Fprintf(c.out, "thickness=%d\n", c.ctl.SetThickness(n))
	case "origin":
		p, err := parsePoint(name, args)
		if err != nil {
			return false, err
		}
		c.origin = p
	case "settings":
		s := c.ctl.Settings()
		g := c.ctl.Gesture()
		fmt.Fprintf(c.out, "mode=%s thickness=%d drawing=%t last=%g,%g\n", s.Mode, s.Thickness, g.Active, g.Last.X, g.Last.Y)
	case "stats":
		w, h := c.canvas.Size()
		fmt.Fprintf(c.out, "size=%dx%d painted=%d\n", w, h, c.canvas.Coverage())
	case "submit":
		fmt.Fprintln(c.out, "Submitted!")
		if c.submit != nil {
			c.submit(c.canvas.Image())
		}
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return false, nil
}

func (c *Console) touch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: touch start|move|end [X Y ...]")
	}
	kind := strings.ToLower(args[0])
	pts, err := parsePoints(args[1:])
	if err != nil {
		return fmt.Errorf("touch %s: %w", kind, err)
	}
	switch kind {
	case "start":
		c.ctl.TouchStart(pts)
	case "move":
		c.ctl.TouchMove(pts)
	case "end":
		c.ctl.TouchEnd()
	default:
		return fmt.Errorf("touch: unknown phase %q", kind)
	}
	return nil
}

func parsePoint(name string, args []string) (sketch.Point, error) {
	if len(args) != 2 {
		return sketch.Point{}, fmt.Errorf("usage: %s X Y", name)
	}
	pts, err := parsePoints(args)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("%s: %w", name, err)
	}
	return pts[0], nil
}

// parsePoints reads coordinate pairs.
func parsePoints(args []string) ([]sketch.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("coordinates must come in X Y pairs")
	}
	pts := make([]sketch.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x %q: %w", args[i], err)
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y %q: %w", args[i+1], err)
		}
		pts = append(pts, sketch.Pt(x, y))
	}
	return pts, nil
}
