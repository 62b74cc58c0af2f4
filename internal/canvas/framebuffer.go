// Package canvas holds the two bit-planes that mirror the panel RAM and the
// coordinate transform used to draw into them.
//
// Planes are row-major, MSB-first:
//
//	byteIndex = y*BytesPerRow + x/8
//	mask      = 0x80 >> (x%8)
//
// A set bit means "pigment present" in that plane; an all-zero framebuffer is
// white.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// MaxPlaneSize bounds a single plane allocation.
const MaxPlaneSize = 1 << 20

// ErrGeometry is returned for a zero, negative or oversized panel geometry.
var ErrGeometry = errors.New("canvas: invalid geometry")

// Framebuffer is the in-memory copy of both panel planes. It is not safe for
// concurrent use. A nil *Framebuffer is valid and ignores all writes.
type Framebuffer struct {
	width       int
	height      int
	bytesPerRow int

	ink    []byte
	accent []byte

	orientation Orientation
}

// PlaneSize returns ceil(w/8)*h.
func PlaneSize(w, h int) int {
	return (w + 7) / 8 * h
}

// New allocates both planes for a w x h panel, cleared to white.
func New(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGeometry, w, h)
	}
	size := PlaneSize(w, h)
	if size > MaxPlaneSize {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes per plane", ErrGeometry, w, h, size)
	}
	return &Framebuffer{
		width:       w,
		height:      h,
		bytesPerRow: (w + 7) / 8,
		ink:         make([]byte, size),
		accent:      make([]byte, size),
	}, nil
}

// Width and Height return the physical geometry.
func (f *Framebuffer) Width() int {
	if f == nil {
		return 0
	}
	return f.width
}

func (f *Framebuffer) Height() int {
	if f == nil {
		return 0
	}
	return f.height
}

// BytesPerRow is ceil(Width/8).
func (f *Framebuffer) BytesPerRow() int {
	if f == nil {
		return 0
	}
	return f.bytesPerRow
}

// Planes exposes the ink and accent planes. Callers must not retain them
// across mutations they do not own.
func (f *Framebuffer) Planes() (ink, accent []byte) {
	if f == nil {
		return nil, nil
	}
	return f.ink, f.accent
}

// SetOrientation changes the rotation used by every logical drawing call.
func (f *Framebuffer) SetOrientation(o Orientation) {
	if f == nil {
		return
	}
	f.orientation = o % 4
}

func (f *Framebuffer) Orientation() Orientation {
	if f == nil {
		return Rotate0
	}
	return f.orientation
}

// Bounds is the logical drawing area for the current orientation.
func (f *Framebuffer) Bounds() image.Rectangle {
	if f == nil {
		return image.Rectangle{}
	}
	w, h := f.orientation.LogicalSize(f.width, f.height)
	return image.Rect(0, 0, w, h)
}

// Clear zeroes both planes.
func (f *Framebuffer) Clear() {
	if f == nil {
		return
	}
	clear(f.ink)
	clear(f.accent)
}

// Fill sets every pixel of both planes to c.
func (f *Framebuffer) Fill(c Color) {
	if f == nil {
		return
	}
	ink, accent := c.FillBytes()
	for i := range f.ink {
		f.ink[i] = ink
		f.accent[i] = accent
	}
}

// SetPixel writes c at physical (x, y). Out of range coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if f == nil || x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	idx := y*f.bytesPerRow + x/8
	mask := byte(0x80 >> (x % 8))
	ink, accent := c.Bits()
	if ink {
		f.ink[idx] |= mask
	} else {
		f.ink[idx] &^= mask
	}
	if accent {
		f.accent[idx] |= mask
	} else {
		f.accent[idx] &^= mask
	}
}

// Pixel reads the color at physical (x, y). Out of range reads return White.
func (f *Framebuffer) Pixel(x, y int) Color {
	if f == nil || x < 0 || y < 0 || x >= f.width || y >= f.height {
		return White
	}
	idx := y*f.bytesPerRow + x/8
	mask := byte(0x80 >> (x % 8))
	return FromBits(f.ink[idx]&mask != 0, f.accent[idx]&mask != 0)
}

// Transform maps logical coordinates to physical ones for the current
// orientation.
func (f *Framebuffer) Transform(x, y int) (int, int) {
	if f == nil {
		return x, y
	}
	return f.orientation.Transform(x, y, f.width, f.height)
}

// DrawPixel writes c at logical (x, y), transforming exactly once.
func (f *Framebuffer) DrawPixel(x, y int, c Color) {
	if f == nil {
		return
	}
	lw, lh := f.orientation.LogicalSize(f.width, f.height)
	if x < 0 || y < 0 || x >= lw || y >= lh {
		return
	}
	px, py := f.Transform(x, y)
	f.SetPixel(px, py, c)
}

// At reads the color at logical (x, y).
func (f *Framebuffer) At(x, y int) Color {
	if f == nil {
		return White
	}
	lw, lh := f.orientation.LogicalSize(f.width, f.height)
	if x < 0 || y < 0 || x >= lw || y >= lh {
		return White
	}
	px, py := f.Transform(x, y)
	return f.Pixel(px, py)
}

// FillRect fills the logical rectangle (x, y, w, h), clipped to Bounds.
func (f *Framebuffer) FillRect(x, y, w, h int, c Color) {
	r := f.clip(x, y, w, h)
	if r.Empty() {
		return
	}
	if f.orientation == Rotate0 {
		f.fillPhysical(r, c)
		return
	}
	for ly := r.Min.Y; ly < r.Max.Y; ly++ {
		for lx := r.Min.X; lx < r.Max.X; lx++ {
			px, py := f.Transform(lx, ly)
			f.SetPixel(px, py, c)
		}
	}
}

// DrawRect draws the 1 pixel outline of the logical rectangle (x, y, w, h).
// Only the edge segments inside Bounds are visited.
func (f *Framebuffer) DrawRect(x, y, w, h int, c Color) {
	r := f.clip(x, y, w, h)
	if r.Empty() {
		return
	}
	right, bottom := end(x, w)-1, end(y, h)-1
	for lx := r.Min.X; lx < r.Max.X; lx++ {
		f.DrawPixel(lx, y, c)
		f.DrawPixel(lx, bottom, c)
	}
	for ly := max(r.Min.Y, y+1); ly < min(r.Max.Y, bottom); ly++ {
		f.DrawPixel(x, ly, c)
		f.DrawPixel(right, ly, c)
	}
}

// clip returns the logical rectangle (x, y, w, h) intersected with Bounds.
func (f *Framebuffer) clip(x, y, w, h int) image.Rectangle {
	if f == nil || w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(end(x, w), end(y, h))}
	return r.Intersect(f.Bounds())
}

// end returns v+n for n > 0, saturating at math.MaxInt.
func end(v, n int) int {
	if v > 0 && n > math.MaxInt-v {
		return math.MaxInt
	}
	return v + n
}

// fillPhysical fills r (already clipped, physical coordinates), writing whole
// bytes for the aligned middle of each row.
func (f *Framebuffer) fillPhysical(r image.Rectangle, c Color) {
	inkByte, accentByte := c.FillBytes()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		x := r.Min.X
		for ; x < r.Max.X && x%8 != 0; x++ {
			f.SetPixel(x, y, c)
		}
		row := y * f.bytesPerRow
		for ; x+8 <= r.Max.X; x += 8 {
			f.ink[row+x/8] = inkByte
			f.accent[row+x/8] = accentByte
		}
		for ; x < r.Max.X; x++ {
			f.SetPixel(x, y, c)
		}
	}
}
