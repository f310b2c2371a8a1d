package main

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/appstate"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/platform"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

type testRoot struct {
	*root
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	sent   []string
}

func newTestRoot(t *testing.T, cfg *config.Config, stdin string) *testRoot {
	t.Helper()
	t.Setenv("SKETCHPAD_THEME", "")
	if cfg == nil {
		cfg = config.New()
	}
	tr := &testRoot{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	n := notify.New(notify.DefaultPreferences())
	n.SetSender(func(title, body string, _ platform.Options) error {
		tr.sent = append(tr.sent, body)
		return nil
	})
	tr.root = newRootWith(cfg, n, strings.NewReader(stdin), tr.stdout, tr.stderr)
	return tr
}

// captureWindow replaces the window runner and returns the state it was given.
func captureWindow(t *testing.T) **appstate.AppState {
	t.Helper()
	var got *appstate.AppState
	original := runWindow
	runWindow = func(a *appstate.AppState) { got = a }
	t.Cleanup(func() { runWindow = original })
	return &got
}

func TestRootWithoutCommandIsUsage(t *testing.T) {
	tr := newTestRoot(t, nil, "")
	err := tr.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: sketchpad", "draw", "console", "-notify-submit"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestUnknownCommandIsUsage(t *testing.T) {
	tr := newTestRoot(t, nil, "")
	var uerr *UsageError
	if err := tr.Run([]string{"paint"}); !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	tr := newTestRoot(t, nil, "")
	if err := tr.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tr.stdout.String(), "sketchpad version dev") {
		t.Fatalf("version output = %q", tr.stdout.String())
	}
}

func TestDrawUsesFlags(t *testing.T) {
	got := captureWindow(t)
	tr := newTestRoot(t, nil, "")
	err := tr.Run([]string{"-theme", "dark", "draw", "-mode", "eraser", "-thickness", "40", "-color", "red"})
	if err != nil {
		t.Fatal(err)
	}
	a := *got
	if a == nil {
		t.Fatal("window not started")
	}
	s := a.Controller.Settings()
	if s.Mode != sketch.ModeEraser || s.Thickness != sketch.MaxThickness {
		t.Fatalf("settings = %+v", s)
	}
	if c, _ := a.Controller.StrokeColor().(color.RGBA); c != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("stroke color = %v", a.Controller.StrokeColor())
	}
	if a.Theme == nil || a.Theme.Name != "dark" {
		t.Fatalf("theme = %+v", a.Theme)
	}
	if !strings.Contains(tr.stderr.String(), "out of range") {
		t.Fatalf("missing clamp warning: %q", tr.stderr.String())
	}
}

func TestDrawDefaultsFromConfig(t *testing.T) {
	got := captureWindow(t)
	cfg := config.New()
	cfg.Thickness = 12
	cfg.Mode = sketch.ModeEraser
	tr := newTestRoot(t, cfg, "")
	if err := tr.Run([]string{"draw"}); err != nil {
		t.Fatal(err)
	}
	s := (*got).Controller.Settings()
	if s.Mode != sketch.ModeEraser || s.Thickness != 12 {
		t.Fatalf("settings = %+v", s)
	}
}

func TestDrawRejectsBadValues(t *testing.T) {
	captureWindow(t)
	for _, args := range [][]string{
		{"draw", "-mode", "marker"},
		{"draw", "-color", "nope"},
	} {
		tr := newTestRoot(t, nil, "")
		if err := tr.Run(args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestThemePrecedence(t *testing.T) {
	cfg := config.New()
	cfg.Theme = "mine"
	mine := theme.Default()
	mine.Name = "mine"
	cfg.Themes = map[string]*theme.Theme{"mine": mine}
	tr := newTestRoot(t, cfg, "")
	if got := tr.resolveTheme(); got != mine {
		t.Fatalf("config theme not used, got %q", got.Name)
	}
	tr.themeName = "dark"
	if got := tr.resolveTheme(); got.Name != "dark" {
		t.Fatalf("flag theme not used, got %q", got.Name)
	}
	tr.themeName = "missing-theme"
	if got := tr.resolveTheme(); got.Name != "Default" {
		t.Fatalf("fallback theme = %q", got.Name)
	}
	warn := tr.stderr.String()
	if !strings.Contains(warn, "missing-theme") || !strings.Contains(warn, "mine") {
		t.Fatalf("warning should name the theme and the alternatives: %q", warn)
	}
}

func TestConsoleExec(t *testing.T) {
	tr := newTestRoot(t, nil, "")
	err := tr.Run([]string{"console", "-width", "50", "-height", "40", "-e", "down 5 5", "-e", "move 40 5", "-e", "stats"})
	if err != nil {
		t.Fatal(err)
	}
	out := tr.stdout.String()
	if !strings.Contains(out, "size=50x40 painted=") || strings.Contains(out, "painted=0") {
		t.Fatalf("stats output = %q", out)
	}
}

func TestConsoleRejectsCanvasSize(t *testing.T) {
	for _, size := range [][]string{{"0", "10"}, {"200000", "200000"}, {"10", "4097"}} {
		tr := newTestRoot(t, nil, "")
		err := tr.Run([]string{"console", "-width", size[0], "-height", size[1], "-e", "stats"})
		if err == nil || !strings.Contains(err.Error(), "canvas size") {
			t.Errorf("%vx%v: err = %v", size[0], size[1], err)
		}
		if tr.stdout.Len() != 0 {
			t.Errorf("%vx%v: console ran: %q", size[0], size[1], tr.stdout.String())
		}
	}
}

func TestConsoleExecError(t *testing.T) {
	tr := newTestRoot(t, nil, "")
	err := tr.Run([]string{"console", "-e", "bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("err = %v", err)
	}
}

func TestConsoleReadsStdin(t *testing.T) {
	tr := newTestRoot(t, nil, "thickness 3\nsettings\nexit\n")
	if err := tr.Run([]string{"console"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tr.stdout.String(), "mode=pen thickness=3") {
		t.Fatalf("output = %q", tr.stdout.String())
	}
}

func TestSubmitNotification(t *testing.T) {
	tr := newTestRoot(t, nil, "")
	if err := tr.Run([]string{"console", "-e", "submit"}); err != nil {
		t.Fatal(err)
	}
	if len(tr.sent) != 0 {
		t.Fatalf("notification sent while disabled: %v", tr.sent)
	}

	tr = newTestRoot(t, nil, "")
	if err := tr.Run([]string{"-notify-submit", "console", "-e", "submit"}); err != nil {
		t.Fatal(err)
	}
	if len(tr.sent) != 1 || tr.sent[0] != "Submitted!" {
		t.Fatalf("sent = %v", tr.sent)
	}
}

func TestConfigPrint(t *testing.T) {
	cfg := config.New()
	cfg.Thickness = 8
	tr := newTestRoot(t, cfg, "")
	if err := tr.Run([]string{"config", "print"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tr.stdout.String(), "thickness = 8") {
		t.Fatalf("output = %q", tr.stdout.String())
	}
	var uerr *UsageError
	if err := tr.Run([]string{"config"}); !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}
