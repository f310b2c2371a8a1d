package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `
# comment
Name: custom
Background: #101010
penactive: #00FF0080
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x10, 0x10, 0x10, 0xFF}) {
		t.Errorf("Background = %+v", th.Background)
	}
	if th.PenActive != (color.RGBA{0, 0x80, 0, 0x80}) {
		t.Errorf("PenActive = %+v", th.PenActive)
	}
	if th.EraserActive != Default().EraserActive {
		t.Errorf("EraserActive should keep the default, got %+v", th.EraserActive)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Foreground: red\n")); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
	if _, err := Parse(strings.NewReader("Foreground: #12345\n")); err == nil {
		t.Fatal("expected error for short hex colour")
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"default", "dark"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
	}
	if _, err := l.Load("does-not-exist"); err == nil {
		t.Fatal("expected error for a missing theme")
	}
}

func TestLoaderSources(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sepia.theme"), []byte("Name: sepia\nBackground: #704214\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.theme"), []byte("Background: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	inline := Default()
	inline.Name = "dark-override"
	l := &Loader{Inline: map[string]*Theme{"dark": inline}, Dirs: []string{filepath.Join(dir, "missing"), dir}}

	if th, err := l.Load("dark"); err != nil || th != inline {
		t.Fatalf("inline theme should shadow the embedded one: %v, %v", th, err)
	}
	th, err := l.Load("sepia")
	if err != nil {
		t.Fatalf("Load(sepia): %v", err)
	}
	if th.Background != (color.RGBA{0x70, 0x42, 0x14, 0xFF}) {
		t.Errorf("Background = %+v", th.Background)
	}
	if th, err := l.Load(filepath.Join(dir, "sepia.theme")); err != nil || th.Name != "sepia" {
		t.Fatalf("Load by path: %v, %v", th, err)
	}
	if _, err := l.Load("broken"); err == nil || strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected a parse error for broken.theme, got %v", err)
	}

	want := []string{"broken", "dark", "default", "sepia"}
	if got := l.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, in := range []string{"#010203", "#FF000080", "#00FF0040", "#FFFFFF00"} {
		c, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%s): %v", in, err)
		}
		if got := Hex(c); got != in {
			t.Errorf("round trip %s -> %+v -> %s", in, c, got)
		}
	}
}

func TestParseColorPremultipliesAlpha(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF000080", color.RGBA{0x80, 0, 0, 0x80}},
		{"#FFFFFF00", color.RGBA{}},
		{"#336699", color.RGBA{0x33, 0x66, 0x99, 0xFF}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%s) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.R > got.A || got.G > got.A || got.B > got.A {
			t.Errorf("ParseColor(%s) = %+v is not premultiplied", tt.in, got)
		}
	}
}
