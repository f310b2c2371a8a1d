package canvas

import (
	"image/color"
	"testing"

	"github.com/example/sketchpad/internal/sketch"
)

func strokeLine(c *Canvas, x0, y0, x1, y1 float64) {
	c.BeginPath()
	c.MoveTo(x0, y0)
	c.LineTo(x1, y1)
	c.Stroke()
}

func TestNewCanvasIsBlank(t *testing.T) {
	c := New(0, 0)
	w, h := c.Size()
	if w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("size = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	if !c.Blank() {
		t.Fatal("new canvas is not blank")
	}
}

func TestNewCapsOversizedCanvas(t *testing.T) {
	c := New(200000, 10)
	if w, h := c.Size(); w != MaxSide || h != 10 {
		t.Fatalf("size = %dx%d, want %dx10", w, h, MaxSide)
	}
}

func TestPenStrokePaintsAlongSegment(t *testing.T) {
	c := New(100, 100)
	c.SetLineWidth(4)
	c.SetLineCap(sketch.CapRound)
	c.SetStrokeColor(color.RGBA{R: 255, A: 255})
	strokeLine(c, 10, 50, 90, 50)

	got := c.Image().RGBAAt(50, 50)
	if got.A != 255 || got.R != 255 {
		t.Fatalf("pixel on the segment = %+v, want opaque red", got)
	}
	if a := c.Image().RGBAAt(50, 60).A; a != 0 {
		t.Fatalf("pixel away from the segment has alpha %d", a)
	}
	// Round caps extend past the end point by half the width.
	if a := c.Image().RGBAAt(91, 50).A; a == 0 {
		t.Fatal("expected round cap coverage beyond the end point")
	}
}

func TestButtCapStopsAtEndPoint(t *testing.T) {
	c := New(100, 100)
	c.SetLineWidth(6)
	c.SetLineCap(sketch.CapButt)
	strokeLine(c, 10, 50, 40, 50)
	if a := c.Image().RGBAAt(43, 50).A; a != 0 {
		t.Fatalf("butt cap painted past the end point (alpha %d)", a)
	}
	if a := c.Image().RGBAAt(25, 50).A; a == 0 {
		t.Fatal("segment not painted")
	}
}

func TestZeroLengthRoundSegmentDrawsDot(t *testing.T) {
	c := New(50, 50)
	c.SetLineWidth(8)
	c.SetLineCap(sketch.CapRound)
	strokeLine(c, 25, 25, 25, 25)
	if a := c.Image().RGBAAt(25, 25).A; a == 0 {
		t.Fatal("expected a dot for a zero-length round segment")
	}
}

func TestDestinationOutErasesPixels(t *testing.T) {
	c := New(100, 100)
	c.SetLineWidth(10)
	c.SetLineCap(sketch.CapRound)
	strokeLine(c, 10, 50, 90, 50)
	before := c.Coverage()

	c.SetCompositeOp(sketch.CompositeDestinationOut)
	c.SetLineWidth(20)
	strokeLine(c, 30, 50, 70, 50)

	if a := c.Image().RGBAAt(50, 50).A; a != 0 {
		t.Fatalf("erased pixel alpha = %d, want 0", a)
	}
	if a := c.Image().RGBAAt(15, 50).A; a == 0 {
		t.Fatal("pixel outside the eraser path was removed")
	}
	if after := c.Coverage(); after >= before {
		t.Fatalf("coverage did not shrink: %d -> %d", before, after)
	}
}

func TestDestinationOutOnBlankCanvasStaysBlank(t *testing.T) {
	c := New(40, 40)
	c.SetCompositeOp(sketch.CompositeDestinationOut)
	c.SetLineWidth(10)
	strokeLine(c, 0, 0, 40, 40)
	if !c.Blank() {
		t.Fatal("eraser painted on a blank canvas")
	}
}

func TestClearRectBlanksCanvas(t *testing.T) {
	c := New(60, 60)
	c.SetLineWidth(12)
	c.SetLineCap(sketch.CapRound)
	strokeLine(c, 5, 5, 55, 55)
	strokeLine(c, 55, 5, 5, 55)
	if c.Blank() {
		t.Fatal("expected ink before clear")
	}
	c.ClearRect(0, 0, 60, 60)
	if !c.Blank() {
		t.Fatal("canvas not blank after full clear")
	}
}

func TestClearRectPartialAndNegative(t *testing.T) {
	c := New(20, 20)
	c.SetLineWidth(20)
	strokeLine(c, 0, 10, 20, 10)
	c.ClearRect(10, 20, 10, -20)
	if a := c.Image().RGBAAt(15, 10).A; a != 0 {
		t.Fatalf("cleared pixel alpha = %d", a)
	}
	if a := c.Image().RGBAAt(5, 10).A; a == 0 {
		t.Fatal("pixel outside cleared rectangle was removed")
	}
}

func TestStrokeOutsideBoundsDoesNotPanic(t *testing.T) {
	c := New(30, 30)
	c.SetLineWidth(8)
	c.SetLineCap(sketch.CapRound)
	strokeLine(c, -50, -50, 15, 15)
	strokeLine(c, 200, 200, 300, 300)
	if a := c.Image().RGBAAt(10, 10).A; a == 0 {
		t.Fatal("visible part of a partially clipped segment not painted")
	}
}

func TestSetLineWidthIgnoresInvalid(t *testing.T) {
	c := New(10, 10)
	c.SetLineWidth(3)
	c.SetLineWidth(0)
	c.SetLineWidth(-2)
	if c.LineWidth() != 3 {
		t.Fatalf("line width = %v, want 3", c.LineWidth())
	}
}

func TestControllerOnCanvas(t *testing.T) {
	c := New(DefaultWidth, DefaultHeight)
	ctl := sketch.New(sketch.WithThickness(4))
	ctl.Initialize(c, nil)

	ctl.BeginStroke(sketch.Pt(10, 10))
	ctl.ExtendStroke(sketch.Pt(20, 10))
	ctl.ExtendStroke(sketch.Pt(20, 20))
	ctl.EndStroke()
	if c.Image().RGBAAt(15, 10).A == 0 || c.Image().RGBAAt(20, 15).A == 0 {
		t.Fatal("polyline not rendered")
	}
	// No segment joins the first and last samples.
	if a := c.Image().RGBAAt(14, 16).A; a != 0 {
		t.Fatalf("unexpected ink between non-consecutive samples (alpha %d)", a)
	}

	ctl.Clear()
	if !c.Blank() {
		t.Fatal("canvas not blank after Clear")
	}
}
