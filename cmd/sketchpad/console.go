package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/console"
	"github.com/example/sketchpad/internal/sketch"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, "; ")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// consoleCmd runs drawing commands against an off-screen canvas.
type consoleCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	execs  commandList
}

func (c *consoleCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *consoleCmd) Program() string {
	return c.subcommandName("console")
}

func parseConsoleCmd(args []string, r *root) (*consoleCmd, error) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &consoleCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.IntVar(&c.width, "width", canvas.DefaultWidth, "canvas width in pixels")
	fs.IntVar(&c.height, "height", canvas.DefaultHeight, "canvas height in pixels")
	fs.Var(&c.execs, "e", "execute a console command and exit (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 || c.width > canvas.MaxSide || c.height > canvas.MaxSide {
		return nil, fmt.Errorf("canvas size must be between 1 and %d on each side, got %dx%d", canvas.MaxSide, c.width, c.height)
	}
	return c, nil
}

func (c *consoleCmd) Run() error {
	ctl := sketch.New(
		sketch.WithMode(c.config.Mode),
		sketch.WithThickness(c.config.Thickness),
		sketch.WithStrokeColor(c.config.StrokeColor),
	)
	con := console.New(
		console.WithCanvas(canvas.New(c.width, c.height)),
		console.WithController(ctl),
		console.WithOutput(c.stdout, c.stderr),
		console.WithSubmitter(c.notifySubmit),
	)
	if len(c.execs) > 0 {
		for _, line := range c.execs {
			done, err := con.Execute(line)
			if err != nil {
				return fmt.Errorf("%s: %w", line, err)
			}
			if done {
				break
			}
		}
		return nil
	}
	fmt.Fprintln(c.stdout, "Enter commands (type 'exit' to quit, 'help' for a list)")
	return con.Run(c.stdin)
}
