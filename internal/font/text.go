package font

import "epdctl/internal/canvas"

// DrawChar draws glyph code with its top-left corner at logical (x, y), each
// source pixel replicated into a scale x scale block. Only inked pixels are
// written; the background is left untouched.
func (f *Font) DrawChar(fb *canvas.Framebuffer, x, y int, code byte, c canvas.Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	glyph := f.Glyph(code)
	for row, bits := range glyph {
		if bits == 0 {
			continue
		}
		for col := 0; col < f.Width; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			fb.FillRect(x+col*scale, y+row*scale, scale, scale, c)
		}
	}
}

// DrawText decodes text and draws it along the logical x axis starting at
// (x, y). It returns the logical x just past the last glyph.
//
// Coordinates are logical, so each pixel goes through the orientation
// transform exactly once: a rotated panel shows the string upright for a
// reader holding the panel in that orientation.
func (f *Font) DrawText(fb *canvas.Framebuffer, x, y int, text string, c canvas.Color, scale int) int {
	if scale < 1 {
		scale = 1
	}
	for _, code := range Decode(text) {
		f.DrawChar(fb, x, y, code, c, scale)
		x += f.Advance * scale
	}
	return x
}

// Measure returns the logical size DrawText would cover.
func (f *Font) Measure(text string, scale int) (w, h int) {
	if scale < 1 {
		scale = 1
	}
	n := len(Decode(text))
	if n == 0 {
		return 0, 0
	}
	return n * f.Advance * scale, f.Height * scale
}
