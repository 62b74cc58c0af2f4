package canvas

import (
	"image"
	"image/png"
	"io"
)

// Image renders the planes as seen by the caller, i.e. in logical
// coordinates for the current orientation. Planes are walked in physical
// order and each pixel is mapped back through the inverse transform.
func (f *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(f.Bounds())
	if f == nil {
		return img
	}
	for py := 0; py < f.height; py++ {
		for px := 0; px < f.width; px++ {
			lx, ly := f.orientation.Inverse(px, py, f.width, f.height)
			img.SetNRGBA(lx, ly, f.Pixel(px, py).NRGBA())
		}
	}
	return img
}

// EncodePNG writes Image() as PNG.
func (f *Framebuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}
