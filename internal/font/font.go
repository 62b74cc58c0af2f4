// Package font provides the three fixed-cell bitmap fonts used for panel text
// and the rasterizer that lays strings out through the canvas transform.
//
// Every font covers glyph codes 32..126 (printable ASCII) plus three extra
// codes produced by Decode: 127 (°), 128 (é) and 129 (è).
package font

import (
	"image"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	FirstCode = 32
	LastCode  = 129

	numGlyphs = LastCode - FirstCode + 1
)

// Font is a fixed-cell bitmap font at most 8 pixels wide. Glyph rows are
// stored MSB-first, bit 7 being the leftmost column.
type Font struct {
	Name    string
	Width   int
	Height  int
	Advance int

	rows []byte // numGlyphs * Height
}

var (
	// Small is the 5x8 font (5x7 glyphs with one blank row below).
	Small = newColumnFont("5x8", 6, glyphs5x8[:])
	// Medium is the 6x12 font, derived from the X11 misc-fixed 7x13 face.
	Medium = newBasicFont("6x12", basicfont.Face7x13, glyphsExtra6x12)
	// Large is the 8x16 VGA font.
	Large = newRowFont("8x16", 8, glyphs8x16[:])
)

// ByCode maps the wire font selector (0, 1, 2) to a font.
func ByCode(code int) (*Font, bool) {
	switch code {
	case 0:
		return Small, true
	case 1:
		return Medium, true
	case 2:
		return Large, true
	}
	return nil, false
}

// Glyph returns the row bytes of code, substituting '?' for anything outside
// FirstCode..LastCode. The returned slice must not be modified.
func (f *Font) Glyph(code byte) []byte {
	if code < FirstCode || code > LastCode {
		code = '?'
	}
	i := int(code-FirstCode) * f.Height
	return f.rows[i : i+f.Height]
}

// Set reports whether pixel (col, row) of code's glyph is inked.
func (f *Font) Set(code byte, col, row int) bool {
	if col < 0 || row < 0 || col >= f.Width || row >= f.Height {
		return false
	}
	return f.Glyph(code)[row]&(0x80>>col) != 0
}

func newRowFont(name string, advance int, glyphs [][16]byte) *Font {
	const w, h = 8, 16
	f := &Font{Name: name, Width: w, Height: h, Advance: advance, rows: make([]byte, numGlyphs*h)}
	for i := range glyphs {
		copy(f.rows[i*h:(i+1)*h], glyphs[i][:])
	}
	return f
}

// newColumnFont converts column-major glyphs (bit 0 = top row) to rows.
func newColumnFont(name string, advance int, glyphs [][5]byte) *Font {
	const w, h = 5, 8
	f := &Font{Name: name, Width: w, Height: h, Advance: advance, rows: make([]byte, numGlyphs*h)}
	for i, g := range glyphs {
		for col, bits := range g {
			for row := 0; row < h; row++ {
				if bits&(1<<row) != 0 {
					f.rows[i*h+row] |= 0x80 >> col
				}
			}
		}
	}
	return f
}

// newBasicFont rasterizes the ASCII range of face into a 6x12 cell, dropping
// the face's top row, which is blank for every glyph. Codes above 126 come
// from extra.
func newBasicFont(name string, face *basicfont.Face, extra [LastCode - 126][12]byte) *Font {
	const w, h = 6, 12
	f := &Font{Name: name, Width: w, Height: h, Advance: face.Advance, rows: make([]byte, numGlyphs*h)}
	for code := FirstCode; code <= 126; code++ {
		dot := fixed.P(0, face.Ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(code))
		if !ok {
			continue
		}
		base := (code - FirstCode) * h
		for row := 0; row < h; row++ {
			for col := 0; col < w && col < dr.Dx(); col++ {
				p := image.Pt(maskp.X+col, maskp.Y+row+1)
				if _, _, _, a := mask.At(p.X, p.Y).RGBA(); a >= 0x8000 {
					f.rows[base+row] |= 0x80 >> col
				}
			}
		}
	}
	for i, g := range extra {
		copy(f.rows[(127-FirstCode+i)*h:], g[:])
	}
	return f
}

var glyphsExtra6x12 = [LastCode - 126][12]byte{
	{0x00, 0x30, 0x48, 0x48, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // degree sign
	{0x00, 0x08, 0x10, 0x00, 0x78, 0x84, 0xFC, 0x80, 0x84, 0x78, 0x00, 0x00}, // e acute
	{0x00, 0x40, 0x20, 0x00, 0x78, 0x84, 0xFC, 0x80, 0x84, 0x78, 0x00, 0x00}, // e grave
}
