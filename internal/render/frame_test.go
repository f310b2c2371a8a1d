package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	grey  = color.RGBA{200, 200, 200, 255}
)

func TestDrawFrameFillsAndBorders(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	r := image.Rect(10, 10, 30, 30)
	DrawFrame(dst, r, FrameOptions{Background: white, Border: grey, BorderWidth: 2})

	if got := dst.RGBAAt(20, 20); got != white {
		t.Fatalf("interior = %+v, want %+v", got, white)
	}
	for _, p := range []image.Point{{9, 20}, {8, 20}, {20, 31}, {30, 15}, {8, 8}} {
		if got := dst.RGBAAt(p.X, p.Y); got != grey {
			t.Errorf("border at %v = %+v, want %+v", p, got, grey)
		}
	}
	if got := dst.RGBAAt(7, 20); got.A != 0 {
		t.Errorf("pixel outside border painted: %+v", got)
	}
}

func TestDrawFrameShadowBelowCard(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	r := image.Rect(20, 20, 40, 40)
	opts := FrameOptions{
		Shadow:     ShadowOptions{Radius: 3, Offset: image.Pt(0, 6), Opacity: 1},
		Background: white,
	}
	DrawFrame(dst, r, opts)

	if a := dst.RGBAAt(30, 43).A; a == 0 {
		t.Fatal("expected shadow below the card")
	}
	if a := dst.RGBAAt(30, 12).A; a != 0 {
		t.Fatalf("unexpected shadow above the card (alpha %d)", a)
	}
	if got := dst.RGBAAt(30, 39); got != white {
		t.Fatalf("shadow leaked into the card: %+v", got)
	}
}

func TestDrawFrameNoShadowWhenOpacityZero(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 30, 30))
	DrawFrame(dst, image.Rect(10, 10, 20, 20), FrameOptions{
		Shadow: ShadowOptions{Radius: 4, Offset: image.Pt(3, 3), Opacity: 0},
	})
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			t.Fatal("frame without fill, border or shadow painted pixels")
		}
	}
}

func TestOutset(t *testing.T) {
	opts := FrameOptions{BorderWidth: 1, Shadow: ShadowOptions{Radius: 8, Offset: image.Pt(0, 4), Opacity: 0.3}}
	if got := opts.Outset(); got != 12 {
		t.Fatalf("Outset = %d, want 12", got)
	}
	opts.Shadow.Opacity = 0
	if got := opts.Outset(); got != 1 {
		t.Fatalf("Outset without shadow = %d, want 1", got)
	}
}

func TestCompositeKeepsBackground(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DrawFrame(dst, image.Rect(5, 5, 15, 15), FrameOptions{Background: white})
	surface := image.NewRGBA(image.Rect(0, 0, 10, 10))
	surface.SetRGBA(2, 2, color.RGBA{A: 255})
	Composite(dst, image.Pt(5, 5), surface)

	if got := dst.RGBAAt(7, 7); got != (color.RGBA{A: 255}) {
		t.Fatalf("ink pixel = %+v", got)
	}
	if got := dst.RGBAAt(8, 8); got != white {
		t.Fatalf("transparent surface pixel hid background: %+v", got)
	}
}

func TestBlurGraySpreads(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 9, 9))
	src.Pix[4*src.Stride+4] = 255
	out := blurGray(src, 1)
	if out.Pix[4*out.Stride+5] == 0 || out.Pix[3*out.Stride+4] == 0 {
		t.Fatal("blur did not spread to neighbours")
	}
	if out.Pix[0] != 0 {
		t.Fatal("blur reached a distant corner")
	}
}
