package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const ext = ".theme"

// Loader resolves a theme name. Inline themes come from the [theme.NAME]
// sections of the RC file and shadow every other source.
type Loader struct {
	Inline map[string]*Theme
	Dirs   []string
}

// NewLoader returns a Loader that searches the user's theme directory and
// then the system one.
func NewLoader(inline map[string]*Theme) *Loader {
	l := &Loader{Inline: inline}
	if dir, err := os.UserConfigDir(); err == nil {
		l.Dirs = append(l.Dirs, filepath.Join(dir, "sketchpad", "themes"))
	}
	l.Dirs = append(l.Dirs, "/usr/share/sketchpad/themes")
	return l
}

// Load returns the theme called name. A name that is an existing file is
// parsed directly. The empty name selects Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := l.Inline[name]; ok {
		return t, nil
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		t, _, err := parseFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		return t, err
	}

	file := strings.TrimSuffix(name, ext) + ext
	if t, ok, err := parseFile(EmbeddedThemes, "defaults/"+file); ok {
		return t, err
	}
	for _, dir := range l.Dirs {
		if t, ok, err := parseFile(os.DirFS(dir), file); ok {
			return t, err
		}
	}
	return nil, fmt.Errorf("theme %q not found (available: %s)", name, strings.Join(l.Names(), ", "))
}

// Names lists every theme Load can find by name, sorted and without
// duplicates.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	for name := range l.Inline {
		seen[name] = true
	}
	collect := func(fsys fs.FS, dir string) {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
				seen[strings.TrimSuffix(e.Name(), ext)] = true
			}
		}
	}
	collect(EmbeddedThemes, "defaults")
	for _, dir := range l.Dirs {
		collect(os.DirFS(dir), ".")
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseFile reports ok=false when name cannot be opened in fsys so the
// caller can move on to the next source.
func parseFile(fsys fs.FS, name string) (t *Theme, ok bool, err error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	if t, err = Parse(f); err != nil {
		return nil, true, fmt.Errorf("theme %s: %w", name, err)
	}
	return t, true, nil
}
