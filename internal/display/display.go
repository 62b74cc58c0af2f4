// Package display is the drawing API: it owns the framebuffer and the panel
// and translates drawing calls into framebuffer writes and panel updates.
//
// A Display is not safe for concurrent use; callers hold one lock around
// every call.
package display

import (
	"errors"
	"fmt"
	"image"
	"io"

	"epdctl/internal/canvas"
	"epdctl/internal/convert"
	"epdctl/internal/epd"
	"epdctl/internal/font"
	"epdctl/internal/log"
)

// ErrNoFramebuffer is returned by operations that need a framebuffer when
// none could be allocated.
var ErrNoFramebuffer = errors.New("display: no framebuffer")

// Panel is the hardware side of a Display. *epd.Panel implements it.
type Panel interface {
	Init() error
	SetColorMode(bwOnly bool) error
	Push(ink, accent []byte) error
	ClearPanel() error
	SetPartialWindow(x, y, w, h int) (image.Rectangle, error)
	EnterPartial() error
	ExitPartial() error
	Sleep() error
	State() epd.State
}

// Display couples one framebuffer with one panel. A nil panel runs in
// render-only mode: drawing and previews work, panel operations are skipped.
type Display struct {
	panel  Panel
	width  int
	height int

	fb          *canvas.Framebuffer
	orientation canvas.Orientation
	bwOnly      bool
	dither      bool
}

// New returns a Display for a width x height panel. The framebuffer is
// allocated on first use.
func New(panel Panel, width, height int) *Display {
	return &Display{panel: panel, width: width, height: height}
}

// framebuffer returns the framebuffer, allocating it if needed. On failure it
// logs and returns nil; every drawing call then becomes a no-op.
func (d *Display) framebuffer() *canvas.Framebuffer {
	if d.fb != nil {
		return d.fb
	}
	fb, err := canvas.New(d.width, d.height)
	if err != nil {
		log.Error("display: framebuffer allocation failed", err, "width", d.width, "height", d.height)
		return nil
	}
	fb.SetOrientation(d.orientation)
	d.fb = fb
	log.Debug("display: framebuffer allocated", "bytes", 2*canvas.PlaneSize(d.width, d.height))
	return fb
}

// RenderOnly reports whether the display has no panel attached.
func (d *Display) RenderOnly() bool { return d.panel == nil }

// Init allocates the framebuffer and runs the panel power-up sequence.
func (d *Display) Init() error {
	if d.framebuffer() == nil {
		return ErrNoFramebuffer
	}
	if d.panel == nil {
		log.Info("display: render-only mode, panel init skipped")
		return nil
	}
	return d.panel.Init()
}

// SetColorMode selects black/white-only driving. In that mode Accent is
// drawn as Black.
func (d *Display) SetColorMode(bwOnly bool) error {
	d.bwOnly = bwOnly
	if d.panel == nil {
		return nil
	}
	return d.panel.SetColorMode(bwOnly)
}

// BlackWhite reports the current color mode.
func (d *Display) BlackWhite() bool { return d.bwOnly }

// SetOrientation rotates every subsequent drawing call. Existing framebuffer
// content is not moved.
func (d *Display) SetOrientation(o canvas.Orientation) {
	d.orientation = o % 4
	if d.fb != nil {
		d.fb.SetOrientation(d.orientation)
	}
}

// Orientation returns the current rotation.
func (d *Display) Orientation() canvas.Orientation { return d.orientation }

// Bounds is the logical drawing area for the current orientation.
func (d *Display) Bounds() image.Rectangle {
	w, h := d.orientation.LogicalSize(d.width, d.height)
	return image.Rect(0, 0, w, h)
}

// Size returns the physical geometry.
func (d *Display) Size() (w, h int) { return d.width, d.height }

// State reports the panel link state, or Uninitialized in render-only mode.
func (d *Display) State() epd.State {
	if d.panel == nil {
		return epd.Uninitialized
	}
	return d.panel.State()
}

// Clear sets the framebuffer to white. The panel is unchanged until Update.
func (d *Display) Clear() {
	d.framebuffer().Clear()
}

// Fill sets every pixel to c.
func (d *Display) Fill(c canvas.Color) {
	d.framebuffer().Fill(d.ink(c))
}

// SetPixel draws one logical pixel.
func (d *Display) SetPixel(x, y int, c canvas.Color) {
	d.framebuffer().DrawPixel(x, y, d.ink(c))
}

// FillRect fills a logical rectangle.
func (d *Display) FillRect(x, y, w, h int, c canvas.Color) {
	d.framebuffer().FillRect(x, y, w, h, d.ink(c))
}

// DrawRect draws a 1 pixel logical outline.
func (d *Display) DrawRect(x, y, w, h int, c canvas.Color) {
	d.framebuffer().DrawRect(x, y, w, h, d.ink(c))
}

// DrawText draws text with f at logical (x, y) and returns the x just past
// the last glyph.
func (d *Display) DrawText(f *font.Font, x, y int, text string, c canvas.Color, scale int) int {
	fb := d.framebuffer()
	if fb == nil {
		return x
	}
	return f.DrawText(fb, x, y, text, d.ink(c), scale)
}

// DrawTextSmall, DrawTextMedium and DrawTextLarge draw with the 5x8, 6x12
// and 8x16 fonts.
func (d *Display) DrawTextSmall(x, y int, text string, c canvas.Color, scale int) int {
	return d.DrawText(font.Small, x, y, text, c, scale)
}

func (d *Display) DrawTextMedium(x, y int, text string, c canvas.Color, scale int) int {
	return d.DrawText(font.Medium, x, y, text, c, scale)
}

func (d *Display) DrawTextLarge(x, y int, text string, c canvas.Color, scale int) int {
	return d.DrawText(font.Large, x, y, text, c, scale)
}

// ImageOptions controls one DrawImageWith call.
type ImageOptions struct {
	Dither bool
	Crop   bool
}

// SetDither selects error diffusion as the default for DrawImage.
func (d *Display) SetDither(on bool) { d.dither = on }

// Dither reports the DrawImage default.
func (d *Display) Dither() bool { return d.dither }

// DrawImage scales img to fit the logical drawing area and classifies every
// pixel into white, black or accent, dithering if SetDither is on.
func (d *Display) DrawImage(img image.Image) error {
	return d.DrawImageWith(img, ImageOptions{Dither: d.dither})
}

// DrawImageWith is DrawImage with explicit options.
func (d *Display) DrawImageWith(img image.Image, o ImageOptions) error {
	fb := d.framebuffer()
	if fb == nil {
		return ErrNoFramebuffer
	}
	convert.Draw(fb, img, convert.Options{BlackWhite: d.bwOnly, Dither: o.Dither, Crop: o.Crop})
	return nil
}

// Update pushes both planes to the panel and refreshes it.
func (d *Display) Update() error {
	fb := d.framebuffer()
	if fb == nil {
		return ErrNoFramebuffer
	}
	if d.panel == nil {
		log.Debug("display: render-only mode, update skipped")
		return nil
	}
	ink, accent := fb.Planes()
	if err := d.panel.Push(ink, accent); err != nil {
		return fmt.Errorf("display: update: %w", err)
	}
	return nil
}

// ClearPanel whitens the framebuffer and the panel RAM, then refreshes.
func (d *Display) ClearPanel() error {
	d.Clear()
	if d.panel == nil {
		return nil
	}
	return d.panel.ClearPanel()
}

// SetPartialWindow selects the partial refresh window in physical
// coordinates and returns it widened to byte boundaries.
func (d *Display) SetPartialWindow(x, y, w, h int) (image.Rectangle, error) {
	if d.panel == nil {
		_, r := epd.WindowDescriptor(x, y, w, h)
		return r, nil
	}
	return d.panel.SetPartialWindow(x, y, w, h)
}

// EnterPartial and ExitPartial toggle the controller's partial mode.
func (d *Display) EnterPartial() error {
	if d.panel == nil {
		return nil
	}
	return d.panel.EnterPartial()
}

func (d *Display) ExitPartial() error {
	if d.panel == nil {
		return nil
	}
	return d.panel.ExitPartial()
}

// Sleep puts the panel into deep sleep.
func (d *Display) Sleep() error {
	if d.panel == nil {
		return nil
	}
	return d.panel.Sleep()
}

// Preview renders the framebuffer in logical orientation.
func (d *Display) Preview() *image.NRGBA {
	fb := d.framebuffer()
	if fb == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	return fb.Image()
}

// PNG writes Preview as PNG.
func (d *Display) PNG(w io.Writer) error {
	fb := d.framebuffer()
	if fb == nil {
		return ErrNoFramebuffer
	}
	return fb.EncodePNG(w)
}

func (d *Display) ink(c canvas.Color) canvas.Color {
	if d.bwOnly && c == canvas.Accent {
		return canvas.Black
	}
	return c
}
