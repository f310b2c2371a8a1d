package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	submitAlerts bool
	themeName    string
	activeTheme  *theme.Theme

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWith(cfg, notify.New(prefs), os.Stdin, os.Stdout, os.Stderr)
}

func newRootWith(cfg *config.Config, n *notify.Notifier, stdin io.Reader, stdout, stderr io.Writer) *root {
	r := &root{
		fs:       flag.NewFlagSet("sketchpad", flag.ContinueOnError),
		program:  "sketchpad",
		notifier: n,
		config:   cfg,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}
	r.fs.SetOutput(stderr)
	r.fs.BoolVar(&r.submitAlerts, "notify-submit", cfg.Notify.Submit, "show a desktop notification when the drawing is submitted")

	// Precedence: CLI > SKETCHPAD_THEME > config file > Default
	// The flag default stays empty so the fallback can be resolved in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark or a theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

// resolveTheme loads the -theme flag value, falling back to the configured
// theme. SKETCHPAD_THEME has already been folded into the config by the
// loader.
func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = r.config.Theme
	}
	t, err := theme.NewLoader(r.config.Themes).Load(themeName)
	if err != nil {
		// Only warn if a specific theme was requested.
		if themeName != "" && themeName != "default" {
			fmt.Fprintf(r.stderr, "warning: %v. using default.\n", err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: r}
		}
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSubmit, r.submitAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "console":
		cmd, err = parseConsoleCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func (r *root) notifySubmit(img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Submit("", img)
}

// subcommandName joins the program name and a subcommand for help output.
func (r *root) subcommandName(name string) string {
	return strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
}
