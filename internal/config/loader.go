package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Environment variables read by the Loader.
const (
	EnvConfig = "SKETCHPAD_CONFIG"
	EnvTheme  = "SKETCHPAD_THEME"
)

// Loader finds the RC file and applies environment overrides on top of it.
type Loader struct {
	// Dev also looks for .sketchpadrc in the working directory.
	Dev bool
	// Path names the file explicitly. A missing explicit file is an error.
	Path string
}

// NewLoader returns a Loader for the given build version. path may be empty.
func NewLoader(version, path string) *Loader {
	return &Loader{Dev: version == "dev", Path: path}
}

// DefaultPath is $XDG_CONFIG_HOME/sketchpad/config.rc, or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "sketchpad", "config.rc"), nil
}

// Locate returns the file to read and whether it was named explicitly,
// either through Path or SKETCHPAD_CONFIG. It returns "" when no file exists.
func (l *Loader) Locate() (path string, explicit bool) {
	if l.Path != "" {
		return l.Path, true
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p, true
	}
	if l.Dev {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, ".sketchpadrc")
			if exists(p) {
				return p, false
			}
		}
	}
	if p, err := DefaultPath(); err == nil && exists(p) {
		return p, false
	}
	return "", false
}

// Load reads the located file, or starts from defaults when there is none,
// then applies SKETCHPAD_THEME.
func (l *Loader) Load() (*Config, error) {
	cfg := New()
	if path, explicit := l.Locate(); path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if cfg, err = Parse(f); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}
	if name := os.Getenv(EnvTheme); name != "" {
		cfg.Theme = name
	}
	return cfg, nil
}

func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
