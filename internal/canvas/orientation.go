package canvas

import "fmt"

// Orientation is the clockwise rotation applied to logical coordinates.
type Orientation uint8

const (
	Rotate0 Orientation = iota
	Rotate90
	Rotate180
	Rotate270
)

// ParseOrientation accepts the wire value 0..3.
func ParseOrientation(v int) (Orientation, error) {
	if v < 0 || v > int(Rotate270) {
		return Rotate0, fmt.Errorf("canvas: invalid orientation %d (must be 0-3)", v)
	}
	return Orientation(v), nil
}

// Degrees returns 0, 90, 180 or 270.
func (o Orientation) Degrees() int {
	return int(o%4) * 90
}

func (o Orientation) String() string {
	return fmt.Sprintf("%d°", o.Degrees())
}

// Swapped reports whether the logical axes are exchanged relative to the
// physical ones.
func (o Orientation) Swapped() bool {
	return o == Rotate90 || o == Rotate270
}

// LogicalSize returns the drawable width and height seen by callers for a
// panel that is physically w x h.
func (o Orientation) LogicalSize(w, h int) (int, int) {
	if o.Swapped() {
		return h, w
	}
	return w, h
}

// Transform maps logical (x, y) onto physical coordinates of a w x h panel.
// The logical extents are (lw, lh) = LogicalSize(w, h):
//
//	0°:   (x, y)
//	90°:  (lh-1-y, x)
//	180°: (lw-1-x, lh-1-y)
//	270°: (y, lw-1-x)
func (o Orientation) Transform(x, y, w, h int) (int, int) {
	lw, lh := o.LogicalSize(w, h)
	switch o {
	case Rotate90:
		return lh - 1 - y, x
	case Rotate180:
		return lw - 1 - x, lh - 1 - y
	case Rotate270:
		return y, lw - 1 - x
	}
	return x, y
}

// Inverse maps physical coordinates back to logical ones.
func (o Orientation) Inverse(px, py, w, h int) (int, int) {
	lw, lh := o.LogicalSize(w, h)
	switch o {
	case Rotate90:
		return py, lh - 1 - px
	case Rotate180:
		return lw - 1 - px, lh - 1 - py
	case Rotate270:
		return lw - 1 - py, px
	}
	return px, py
}
