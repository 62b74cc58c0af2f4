// Package convert turns arbitrary images into tri-color framebuffer content.
package convert

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"epdctl/internal/canvas"
)

// Options controls Draw.
type Options struct {
	// BlackWhite maps accent-classified pixels to black.
	BlackWhite bool

	// Crop fills the whole drawing area and trims the overflow instead of
	// letterboxing the image inside it.
	Crop bool

	// Dither spreads the quantization error with Floyd-Steinberg diffusion
	// over the panel palette instead of thresholding each pixel.
	Dither bool

	// Scaler resamples the source. Nil selects draw.CatmullRom.
	Scaler draw.Scaler
}

// palette lists the panel pigments in canvas.Color order.
var palette = []color.Color{canvas.PreviewWhite, canvas.PreviewBlack, canvas.PreviewAccent}

// Draw scales img onto the logical drawing area of fb, preserving the aspect
// ratio and centering it, then writes every pixel as white, black or accent.
// Areas the image does not cover stay white.
func Draw(fb *canvas.Framebuffer, img image.Image, opts Options) {
	if fb == nil || img == nil || img.Bounds().Empty() {
		return
	}
	area := fb.Bounds()
	dst := image.NewNRGBA(area)
	draw.Draw(dst, area, image.White, image.Point{}, draw.Src)

	scaler := opts.Scaler
	if scaler == nil {
		scaler = draw.CatmullRom
	}
	src := img.Bounds()
	scaler.Scale(dst, Fit(src.Size(), area.Size(), opts.Crop), img, src, draw.Over, nil)

	if opts.Dither {
		drawDithered(fb, dst, opts.BlackWhite)
		return
	}
	for y := 0; y < area.Dy(); y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < area.Dx(); x++ {
			i := x * 4
			c := Classify(color.NRGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]})
			if c == canvas.White {
				continue
			}
			if opts.BlackWhite && c == canvas.Accent {
				c = canvas.Black
			}
			fb.DrawPixel(x, y, c)
		}
	}
}

// drawDithered diffuses img onto the panel palette and writes the non-white
// pixels. In black/white mode the accent pigment is left out of the palette.
func drawDithered(fb *canvas.Framebuffer, img *image.NRGBA, blackWhite bool) {
	pal := palette
	if blackWhite {
		pal = palette[:2]
	}
	d := dither.NewDitherer(pal)
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	p := d.DitherPaletted(img)

	b := p.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := canvas.Color(p.ColorIndexAt(x, y)); c != canvas.White {
				fb.DrawPixel(x, y, c)
			}
		}
	}
}

// Fit returns the rectangle inside a (0,0)-based area of size dst that an
// image of size src is scaled to, centered. With crop set the rectangle
// covers the area and may extend past it.
func Fit(src, dst image.Point, crop bool) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 || dst.X <= 0 || dst.Y <= 0 {
		return image.Rectangle{}
	}
	// Compare src.X/src.Y with dst.X/dst.Y without floating point.
	wider := src.X*dst.Y > dst.X*src.Y
	var w, h int
	if wider != crop {
		w = dst.X
		h = src.Y * dst.X / src.X
	} else {
		h = dst.Y
		w = src.X * dst.Y / src.Y
	}
	x := (dst.X - w) / 2
	y := (dst.Y - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Classify decides which color a pixel becomes on the panel.
//
//   - alpha < 128 is white
//   - R > 128 and R - max(G, B) > 32 is accent, however dark
//   - luma Y = 0.299R + 0.587G + 0.114B below 128 is black
//   - anything else is white
func Classify(c color.NRGBA) canvas.Color {
	if c.A < 128 {
		return canvas.White
	}
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	if r > 128 && r-max(g, b) > 32 {
		return canvas.Accent
	}
	if 0.299*r+0.587*g+0.114*b < 128 {
		return canvas.Black
	}
	return canvas.White
}
