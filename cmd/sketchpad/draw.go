package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

// runWindow opens the drawing window. Tests replace it.
var runWindow = func(a *appstate.AppState) { a.Run() }

// drawCmd opens the drawing window.
type drawCmd struct {
	*root
	fs        *flag.FlagSet
	thickness int
	modeSpec  string
	colorSpec string

	mode  sketch.Mode
	color color.RGBA
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func (d *drawCmd) Program() string {
	return d.subcommandName("draw")
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.IntVar(&d.thickness, "thickness", r.config.Thickness, fmt.Sprintf("initial stroke thickness (%d-%d)", sketch.MinThickness, sketch.MaxThickness))
	fs.StringVar(&d.modeSpec, "mode", r.config.Mode.String(), "initial tool: pen or eraser")
	fs.StringVar(&d.colorSpec, "color", theme.Hex(r.config.StrokeColor), "pen color name or hex value")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: d}
	}
	var err error
	if d.mode, err = sketch.ParseMode(d.modeSpec); err != nil {
		return nil, fmt.Errorf("invalid -mode: %w", err)
	}
	if d.color, err = config.ParseColor(d.colorSpec); err != nil {
		return nil, fmt.Errorf("invalid -color: %w", err)
	}
	if c := sketch.ClampThickness(d.thickness); c != d.thickness {
		fmt.Fprintf(r.stderr, "warning: thickness %d out of range, using %d\n", d.thickness, c)
		d.thickness = c
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	cv := canvas.New(canvas.DefaultWidth, canvas.DefaultHeight)
	ctl := sketch.New(
		sketch.WithMode(d.mode),
		sketch.WithThickness(d.thickness),
		sketch.WithStrokeColor(d.color),
		sketch.WithSettingsListener(func(s sketch.Settings) {
			log.Printf("tool: mode=%s thickness=%d", s.Mode, s.Thickness)
		}),
	)
	st := appstate.New(
		appstate.WithController(ctl),
		appstate.WithCanvas(cv),
		appstate.WithTheme(d.activeTheme),
		appstate.WithTitle("Sketchpad"),
		appstate.WithSubmitter(appstate.SubmitFunc(d.notifySubmit)),
	)
	runWindow(st)
	return nil
}
