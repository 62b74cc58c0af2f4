package epd

import (
	"fmt"
	"image"
)

// WindowDescriptor returns the 7 parameter bytes of the partial window
// command for (x, y, w, h). Columns are widened to whole bytes: x is
// truncated to a multiple of 8 and the end column rounded up to the last
// pixel of its byte. Column values are sent as their low byte only; rows are
// big-endian 16-bit.
func WindowDescriptor(x, y, w, h int) ([7]byte, image.Rectangle) {
	xStart := x &^ 7
	xEnd := (x + w - 1) | 7
	yEnd := y + h - 1
	d := [7]byte{
		byte(xStart),
		byte(xEnd),
		byte(y >> 8), byte(y),
		byte(yEnd >> 8), byte(yEnd),
		partialScanInside,
	}
	return d, image.Rect(xStart, y, xEnd+1, yEnd+1)
}

// SetPartialWindow selects the RAM window used by a later partial refresh.
// Whether the panel honors it depends on the controller firmware.
func (p *Panel) SetPartialWindow(x, y, w, h int) (image.Rectangle, error) {
	if err := p.ready(); err != nil {
		return image.Rectangle{}, err
	}
	r := image.Rect(x, y, x+w, y+h)
	if w <= 0 || h <= 0 || !r.In(image.Rect(0, 0, p.opts.Width, p.opts.Height)) {
		return image.Rectangle{}, fmt.Errorf("epd: partial window %v outside %dx%d", r, p.opts.Width, p.opts.Height)
	}
	d, aligned := WindowDescriptor(x, y, w, h)
	if err := p.bus.SendIndexed(cmdPartialWindow, d[:]); err != nil {
		return image.Rectangle{}, err
	}
	return aligned, nil
}

// EnterPartial switches the controller into partial mode.
func (p *Panel) EnterPartial() error {
	if err := p.ready(); err != nil {
		return err
	}
	return p.bus.SendCommand(cmdPartialIn)
}

// ExitPartial leaves partial mode.
func (p *Panel) ExitPartial() error {
	if err := p.ready(); err != nil {
		return err
	}
	return p.bus.SendCommand(cmdPartialOut)
}
