package display

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"epdctl/internal/canvas"
	"epdctl/internal/epd"
	"epdctl/internal/font"
)

type fakePanel struct {
	calls  []string
	ink    []byte
	accent []byte
	bw     bool
	state  epd.State
	err    error
}

func (p *fakePanel) Init() error {
	p.calls = append(p.calls, "init")
	p.state = epd.Ready
	return p.err
}

func (p *fakePanel) SetColorMode(bw bool) error {
	p.calls = append(p.calls, "color")
	p.bw = bw
	return p.err
}

func (p *fakePanel) Push(ink, accent []byte) error {
	p.calls = append(p.calls, "push")
	p.ink = append([]byte(nil), ink...)
	p.accent = append([]byte(nil), accent...)
	return p.err
}

func (p *fakePanel) ClearPanel() error {
	p.calls = append(p.calls, "clear")
	return p.err
}

func (p *fakePanel) SetPartialWindow(x, y, w, h int) (image.Rectangle, error) {
	p.calls = append(p.calls, "window")
	_, r := epd.WindowDescriptor(x, y, w, h)
	return r, p.err
}

func (p *fakePanel) EnterPartial() error {
	p.calls = append(p.calls, "enter")
	return p.err
}

func (p *fakePanel) ExitPartial() error {
	p.calls = append(p.calls, "exit")
	return p.err
}

func (p *fakePanel) Sleep() error {
	p.calls = append(p.calls, "sleep")
	p.state = epd.PoweredOff
	return p.err
}

func (p *fakePanel) State() epd.State { return p.state }

var _ Panel = (*epd.Panel)(nil)

func TestUpdatePushesPlanes(t *testing.T) {
	p := &fakePanel{}
	d := New(p, 16, 2)
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	d.Clear()
	d.SetPixel(0, 0, canvas.Black)
	d.SetPixel(9, 1, canvas.Accent)
	if err := d.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if diff := cmp.Diff([]byte{0x80, 0, 0, 0}, p.ink); diff != "" {
		t.Errorf("ink plane (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{0, 0, 0, 0x40}, p.accent); diff != "" {
		t.Errorf("accent plane (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"init", "push"}, p.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if d.State() != epd.Ready {
		t.Errorf("State() = %v, want ready", d.State())
	}
}

func TestBlackWhiteModeMapsAccent(t *testing.T) {
	p := &fakePanel{}
	d := New(p, 8, 8)
	if err := d.SetColorMode(true); err != nil {
		t.Fatal(err)
	}
	if !p.bw || !d.BlackWhite() {
		t.Fatal("color mode not forwarded")
	}
	d.FillRect(0, 0, 8, 8, canvas.Accent)
	for y := 0; y < 8; y++ {
		if got := d.fb.Pixel(3, y); got != canvas.Black {
			t.Fatalf("Pixel(3, %d) = %v, want Black", y, got)
		}
	}
	d.SetColorMode(false)
	d.Fill(canvas.Accent)
	if got := d.fb.Pixel(3, 3); got != canvas.Accent {
		t.Errorf("after leaving bw mode Pixel(3, 3) = %v, want Accent", got)
	}
}

func TestOrientation(t *testing.T) {
	d := New(nil, 152, 296)
	if got, want := d.Bounds(), image.Rect(0, 0, 152, 296); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	d.SetOrientation(canvas.Rotate90)
	if got, want := d.Bounds(), image.Rect(0, 0, 296, 152); got != want {
		t.Errorf("rotated Bounds() = %v, want %v", got, want)
	}
	d.SetPixel(0, 0, canvas.Black)
	if got := d.fb.Pixel(151, 0); got != canvas.Black {
		t.Errorf("rotated origin not at physical (151, 0)")
	}
	// Orientation set before allocation carries over.
	d2 := New(nil, 152, 296)
	d2.SetOrientation(canvas.Rotate180)
	d2.SetPixel(0, 0, canvas.Black)
	if got := d2.fb.Pixel(151, 295); got != canvas.Black {
		t.Errorf("Rotate180 origin not at physical (151, 295)")
	}
	d2.SetOrientation(6)
	if d2.Orientation() != canvas.Rotate180 {
		t.Errorf("Orientation() = %v, want reduced modulo 4", d2.Orientation())
	}
}

func TestDrawText(t *testing.T) {
	d := New(nil, 64, 32)
	for _, f := range []struct {
		draw func(x, y int, s string, c canvas.Color, scale int) int
		font *font.Font
	}{
		{d.DrawTextSmall, font.Small},
		{d.DrawTextMedium, font.Medium},
		{d.DrawTextLarge, font.Large},
	} {
		d.Clear()
		end := f.draw(1, 1, "AB", canvas.Black, 1)
		if want := 1 + 2*f.font.Advance; end != want {
			t.Errorf("%s: end = %d, want %d", f.font.Name, end, want)
		}
		inked := false
		for y := 0; y < 32 && !inked; y++ {
			for x := 0; x < 64; x++ {
				if d.fb.Pixel(x, y) == canvas.Black {
					inked = true
					break
				}
			}
		}
		if !inked {
			t.Errorf("%s: nothing drawn", f.font.Name)
		}
	}
}

func TestRenderOnly(t *testing.T) {
	d := New(nil, 16, 16)
	if !d.RenderOnly() {
		t.Fatal("RenderOnly() = false for nil panel")
	}
	for name, fn := range map[string]func() error{
		"Init":         d.Init,
		"Update":       d.Update,
		"ClearPanel":   d.ClearPanel,
		"EnterPartial": d.EnterPartial,
		"ExitPartial":  d.ExitPartial,
		"Sleep":        d.Sleep,
	} {
		if err := fn(); err != nil {
			t.Errorf("%s() = %v, want nil", name, err)
		}
	}
	if d.State() != epd.Uninitialized {
		t.Errorf("State() = %v", d.State())
	}
	r, err := d.SetPartialWindow(3, 2, 6, 4)
	if err != nil || r != image.Rect(0, 2, 16, 6) {
		t.Errorf("SetPartialWindow() = %v, %v", r, err)
	}
}

func TestPartialForwarded(t *testing.T) {
	p := &fakePanel{}
	d := New(p, 64, 64)
	r, err := d.SetPartialWindow(9, 0, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(8, 0, 16, 4); r != want {
		t.Errorf("window = %v, want %v", r, want)
	}
	d.EnterPartial()
	d.ExitPartial()
	d.Sleep()
	if diff := cmp.Diff([]string{"window", "enter", "exit", "sleep"}, p.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestUpdateError(t *testing.T) {
	boom := errors.New("boom")
	d := New(&fakePanel{err: boom}, 8, 8)
	if err := d.Update(); !errors.Is(err, boom) {
		t.Errorf("Update() = %v, want wrapped %v", err, boom)
	}
}

func TestNoFramebuffer(t *testing.T) {
	p := &fakePanel{}
	d := New(p, 0, 10)
	if err := d.Init(); !errors.Is(err, ErrNoFramebuffer) {
		t.Errorf("Init() = %v, want ErrNoFramebuffer", err)
	}
	// Drawing is a no-op and must not panic.
	d.Clear()
	d.Fill(canvas.Black)
	d.FillRect(0, 0, 4, 4, canvas.Black)
	d.DrawRect(0, 0, 4, 4, canvas.Black)
	d.SetPixel(1, 1, canvas.Black)
	if end := d.DrawTextSmall(5, 0, "hi", canvas.Black, 1); end != 5 {
		t.Errorf("DrawTextSmall() = %d, want 5", end)
	}
	if err := d.Update(); !errors.Is(err, ErrNoFramebuffer) {
		t.Errorf("Update() = %v, want ErrNoFramebuffer", err)
	}
	if err := d.DrawImage(image.NewNRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrNoFramebuffer) {
		t.Errorf("DrawImage() = %v, want ErrNoFramebuffer", err)
	}
	if len(p.calls) != 0 {
		t.Errorf("panel called without a framebuffer: %v", p.calls)
	}
	var buf bytes.Buffer
	if err := d.PNG(&buf); !errors.Is(err, ErrNoFramebuffer) {
		t.Errorf("PNG() = %v, want ErrNoFramebuffer", err)
	}
}

func TestPreviewPNG(t *testing.T) {
	d := New(nil, 8, 4)
	d.SetOrientation(canvas.Rotate90)
	d.SetPixel(0, 0, canvas.Accent)
	var buf bytes.Buffer
	if err := d.PNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 4, 8); got != want {
		t.Errorf("preview bounds = %v, want %v", got, want)
	}
	if got := color.NRGBAModel.Convert(img.At(0, 0)); got != canvas.PreviewAccent {
		t.Errorf("preview (0, 0) = %v, want %v", got, canvas.PreviewAccent)
	}
}

func TestDrawImage(t *testing.T) {
	d := New(nil, 8, 8)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255
		}
	}
	if err := d.DrawImage(img); err != nil {
		t.Fatal(err)
	}
	if got := d.fb.Pixel(4, 4); got != canvas.Black {
		t.Errorf("Pixel(4, 4) = %v, want Black", got)
	}
}

func TestDrawImageWith(t *testing.T) {
	wide := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	for i := 3; i < len(wide.Pix); i += 4 {
		wide.Pix[i] = 255
	}

	d := New(nil, 8, 8)
	if err := d.DrawImageWith(wide, ImageOptions{}); err != nil {
		t.Fatal(err)
	}
	if d.fb.Pixel(0, 0) != canvas.White || d.fb.Pixel(0, 3) != canvas.Black {
		t.Error("letterboxed image not centered")
	}
	d.Clear()
	d.DrawImageWith(wide, ImageOptions{Crop: true})
	if d.fb.Pixel(0, 0) != canvas.Black {
		t.Error("cropped image does not cover the area")
	}

	grey := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range grey.Pix {
		grey.Pix[i] = 0xB0
		if i%4 == 3 {
			grey.Pix[i] = 0xFF
		}
	}
	d.Clear()
	d.DrawImage(grey)
	if n := countColor(d, canvas.Black); n != 0 {
		t.Errorf("thresholded light grey left %d black pixels", n)
	}
	d.SetDither(true)
	if !d.Dither() {
		t.Fatal("Dither() = false after SetDither(true)")
	}
	d.DrawImage(grey)
	if n := countColor(d, canvas.Black); n == 0 || n == 64 {
		t.Errorf("dithered light grey has %d of 64 black pixels", n)
	}
}

func countColor(d *Display, c canvas.Color) int {
	n := 0
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.fb.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestGuardSerializes(t *testing.T) {
	g := NewGuard(New(nil, 8, 8))
	const n = 50
	done := make(chan struct{})
	inside := 0
	for i := 0; i < n; i++ {
		go func() {
			g.Do(func(d *Display) error {
				inside++
				if inside != 1 {
					t.Errorf("%d goroutines inside Do", inside)
				}
				d.SetPixel(1, 1, canvas.Black)
				inside--
				return nil
			})
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
	boom := errors.New("boom")
	if err := g.Do(func(*Display) error { return boom }); err != boom {
		t.Errorf("Do() = %v, want %v", err, boom)
	}
}
