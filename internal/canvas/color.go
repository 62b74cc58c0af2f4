package canvas

import (
	"fmt"
	"image/color"
)

// Color is one of the three pigments a bi-plane panel can show.
type Color uint8

const (
	White Color = iota
	Black
	Accent
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Accent:
		return "accent"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Valid reports whether c is one of White, Black or Accent.
func (c Color) Valid() bool {
	return c <= Accent
}

// Bits returns the (ink, accent) plane bits for c. It is the only place the
// color to plane mapping is defined:
//
//	White  -> (0, 0)
//	Black  -> (1, 0)
//	Accent -> (0, 1)
//
// Unknown colors map to White.
func (c Color) Bits() (ink, accent bool) {
	switch c {
	case Black:
		return true, false
	case Accent:
		return false, true
	}
	return false, false
}

// FillBytes returns the whole-byte pattern of each plane for c.
func (c Color) FillBytes() (ink, accent byte) {
	i, a := c.Bits()
	if i {
		ink = 0xFF
	}
	if a {
		accent = 0xFF
	}
	return ink, accent
}

// FromBits is the inverse of Bits. A pair with both bits set cannot be
// produced by Bits; it reads back as Accent since the accent pigment wins on
// tri-color panels.
func FromBits(ink, accent bool) Color {
	switch {
	case accent:
		return Accent
	case ink:
		return Black
	}
	return White
}

// Preview colors used when the planes are rendered to an image.
var (
	PreviewWhite  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	PreviewBlack  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	PreviewAccent = color.NRGBA{R: 0xD0, G: 0x10, B: 0x10, A: 0xFF}
)

// NRGBA returns the preview color of c.
func (c Color) NRGBA() color.NRGBA {
	switch c {
	case Black:
		return PreviewBlack
	case Accent:
		return PreviewAccent
	}
	return PreviewWhite
}
